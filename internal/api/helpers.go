package api

import (
	"crypto/subtle"
	"strings"

	"github.com/danielgtaylor/huma/v2"
)

// requireAdmin validates the Authorization header against the configured
// admin token. The comparison is constant-time.
func (s *Server) requireAdmin(authHeader string) error {
	if s.adminToken == "" {
		return huma.Error403Forbidden("Admin API is disabled")
	}

	if authHeader == "" {
		return huma.Error401Unauthorized("Missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return huma.Error401Unauthorized("Invalid authorization header format")
	}

	if subtle.ConstantTimeCompare([]byte(parts[1]), []byte(s.adminToken)) != 1 {
		return huma.Error401Unauthorized("Invalid token")
	}

	return nil
}

// MessageResponse is a simple message payload.
type MessageResponse struct {
	Message string `json:"message" doc:"Status message"`
}

// MessageOutput wraps a message response for Huma.
type MessageOutput struct {
	Body MessageResponse
}
