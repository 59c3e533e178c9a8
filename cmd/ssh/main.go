package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"
	"github.com/tomz197/planetoids/internal/config"
	"github.com/tomz197/planetoids/internal/game"
	"github.com/tomz197/planetoids/internal/loop"
	"github.com/tomz197/planetoids/internal/wave"
)

const (
	defaultHost        = "::"
	defaultPort        = "2222"
	defaultHostKeyPath = "/app/keys/host_key"
)

func main() {
	logger := config.NewLogger(os.Stderr, "ssh")

	host := config.GetEnv("SSH_HOST", defaultHost)
	port := config.GetEnv("SSH_PORT", defaultPort)
	hostKeyPath := config.GetEnv("SSH_HOST_KEY", defaultHostKeyPath)
	logger.Info("ssh config", "host", host, "port", port, "host_key", hostKeyPath)

	// Every session plays its own copy of the same wave.
	desc, err := wave.LoadOrDefault(config.GetEnv(config.EnvWave, ""))
	if err != nil {
		logger.Fatal("load wave", "err", err)
	}
	cfg, err := wave.ConfigFromEnv()
	if err != nil {
		logger.Fatal("load config", "err", err)
	}

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(host, port)),
		wish.WithMiddleware(
			gameMiddleware(desc, cfg, logger),
			activeterm.Middleware(),
			logging.Middleware(),
		),
		// Set TCP_NODELAY to reduce latency for game input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}
	if hostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(hostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		logger.Fatal("create server", "err", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("starting ssh server", "addr", net.JoinHostPort(host, port))
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logger.Fatal("server error", "err", err)
		}
	}()

	<-done
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		logger.Fatal("shutdown error", "err", err)
	}
}

// gameMiddleware runs an independent game for each PTY session.
func gameMiddleware(desc *wave.Description, cfg wave.Config, logger *log.Logger) wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(sess ssh.Session) {
			pty, winCh, ok := sess.Pty()
			if !ok {
				fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
				return
			}

			sessLog := logger.With("user", sess.User(), "remote", sess.RemoteAddr().String())
			sessLog.Info("session started", "term", pty.Term, "width", pty.Window.Width, "height", pty.Window.Height)

			sizes := newSizeTracker(pty.Window.Width, pty.Window.Height)
			go func() {
				for win := range winCh {
					sizes.update(win.Width, win.Height)
				}
			}()

			ctrl, err := game.NewController(desc, cfg, sessLog)
			if err != nil {
				sessLog.Error("create game", "err", err)
				return
			}
			runner := loop.NewRunner(ctrl, bufio.NewReader(sess), sess, loop.Options{
				TermSizeFunc: sizes.getSize,
				Logger:       sessLog,
			})
			if err := runner.Run(sess.Context()); err != nil && !errors.Is(err, context.Canceled) {
				sessLog.Error("game error", "err", err)
			}

			sessLog.Info("session ended", "high_score", ctrl.HighScore())
			next(sess)
		}
	}
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}
