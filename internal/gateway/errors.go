package gateway

import "errors"

var (
	// ErrAuthFailed indicates the token was rejected (HTTP 401).
	ErrAuthFailed = errors.New("authentication failed: token invalid or expired")

	// ErrPermissionDenied indicates the token lacks access to the projects
	// API (HTTP 403).
	ErrPermissionDenied = errors.New("permission denied: user cannot access projects")

	// ErrEndpointMissing indicates the projects API does not exist on this
	// Artifactory instance (HTTP 404, pre-projects versions).
	ErrEndpointMissing = errors.New("API endpoint not found: Artifactory version may not support projects")
)
