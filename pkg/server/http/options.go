package http_server

import (
	"net"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	_defaultAddr    = ":8080"
	_defaultTimeout = 5 * time.Second
)

// Option -.
type Option func(*Server)

// Port -.
func Port(port string) Option {
	return func(s *Server) {
		s.address = net.JoinHostPort("", port)
	}
}

// Timeout -.
func Timeout(timeout time.Duration) Option {
	return func(s *Server) {
		s.timeout = timeout
	}
}

// AuthGate installs the auth gate as a global middleware.
func AuthGate(gate gin.HandlerFunc) Option {
	return func(s *Server) {
		s.authGate = gate
	}
}
