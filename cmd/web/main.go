package main

import (
	_ "embed"
	"errors"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/tomz197/planetoids/internal/config"
)

const (
	defaultHost = "0.0.0.0"
	defaultPort = "8080"
)

//go:embed index.html
var htmlPage string

// landingPage serves the page telling visitors how to connect over SSH.
func landingPage(sshHost, sshPort string) http.Handler {
	page := strings.NewReplacer("{{.SSHHost}}", sshHost, "{{.SSHPort}}", sshPort).Replace(htmlPage)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(page))
	})
}

func main() {
	logger := config.NewLogger(os.Stderr, "web")

	host := config.GetEnv("WEB_HOST", defaultHost)
	port := config.GetEnv("WEB_PORT", defaultPort)
	sshHost := config.GetEnv("SSH_DISPLAY_HOST", "your-server.com")
	sshPort := config.GetEnv("SSH_DISPLAY_PORT", "2222")

	srv := &http.Server{
		Addr:              net.JoinHostPort(host, port),
		Handler:           landingPage(sshHost, sshPort),
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting web server", "addr", "http://"+srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server error", "err", err)
	}
}
