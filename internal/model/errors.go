package model

import "errors"

// Common errors used across the application
var (
	// Team errors
	ErrTeamNotFound = errors.New("team not found")

	// Permission errors
	ErrHostRoleNotConfigured = errors.New("host role not configured for guild")
	ErrPermissionDenied      = errors.New("permission denied")

	// Argument errors
	ErrInvalidColorComponent = errors.New("color component out of range")

	// Gateway errors
	ErrGuildNotFound = errors.New("guild not found")
	ErrRoleNotFound  = errors.New("role not found")
)
