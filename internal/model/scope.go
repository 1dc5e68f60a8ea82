package model

// Scope carries the caller identity for a request. The UI is single-user, so
// the session ID is the only identity we track.
type Scope struct {
	SessionID string
}

// Environment is the deployment environment name.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
