package config

import (
	"errors"
	"strconv"
	"testing"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("PLANETOIDS_TEST_VALUE", "set")

	if got := GetEnv("PLANETOIDS_TEST_VALUE", "fallback"); got != "set" {
		t.Errorf("GetEnv() = %q, want %q", got, "set")
	}
	if got := GetEnv("PLANETOIDS_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("GetEnv() = %q, want %q", got, "fallback")
	}
}

func TestGetEnvInt(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		set      bool
		expected int
		wantErr  bool
	}{
		{name: "unset", expected: 7},
		{name: "valid", value: "42", set: true, expected: 42},
		{name: "negative", value: "-3", set: true, expected: -3},
		{name: "garbage", value: "lots", set: true, expected: 7, wantErr: true},
		{name: "float", value: "2.5", set: true, expected: 7, wantErr: true},
		{name: "empty", value: "", set: true, expected: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := "PLANETOIDS_TEST_INT_" + tt.name
			if tt.set {
				t.Setenv(key, tt.value)
			}
			got, err := GetEnvInt(key, 7)
			if got != tt.expected {
				t.Errorf("GetEnvInt() = %d, want %d", got, tt.expected)
			}
			if tt.wantErr != (err != nil) {
				t.Fatalf("GetEnvInt() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, strconv.ErrSyntax) {
				t.Errorf("GetEnvInt() error = %v, want strconv.ErrSyntax", err)
			}
		})
	}
}
