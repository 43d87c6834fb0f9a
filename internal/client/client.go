package client

import "context"

// AuthResult is the service's answer to a successful login or registration.
type AuthResult struct {
	Token string
	Name  string
}

// ActivityEntry is one row of the account activity feed.
type ActivityEntry struct {
	Timestamp string `json:"timestamp"`
	EventType string `json:"eventType"`
	Details   string `json:"details"`
}

// Dashboard bundles everything the dashboard view renders.
type Dashboard struct {
	LastLogin         string          `json:"lastLogin"`
	AdditionalDetails string          `json:"additionalDetails"`
	Activity          []ActivityEntry `json:"activity"`
}

// Client defines the operations of the remote session service.
//
// Contract:
//   - Login / Register: exchange credentials for a session token.
//   - LogActivity: record an account event; the reply body is ignored.
//   - GetDashboard: fetch the data behind the dashboard view.
//
// Implementations report failures using the error kinds in errors.go:
// ErrUnavailable for transport problems, ErrMalformedResponse for replies
// with no status, and *ServerError for business rejections.
type Client interface {
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Register(ctx context.Context, name, email, phone, password string) (*AuthResult, error)
	LogActivity(ctx context.Context, token, eventType, details string) error
	GetDashboard(ctx context.Context, token string) (*Dashboard, error)
}
