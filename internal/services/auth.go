// Package services contains the application services of the Pietos client:
// authentication, dashboard data, and activity logging. Each service wraps
// the remote client and the session store; the CLI layer stays free of
// wire-level concerns.
package services

import (
	"context"
	"fmt"

	"github.com/pietos/pietos-cli/internal/client"
	"github.com/pietos/pietos-cli/internal/logging"
	"github.com/pietos/pietos-cli/internal/session"
)

// minPasswordLen matches the registration rule enforced by the service's
// web client.
const minPasswordLen = 6

// ValidateRegistration applies the local registration rules. It is exported
// so the form layer can reject bad input before a submission even starts.
func ValidateRegistration(password, confirm string) error {
	if password != confirm {
		return ErrPasswordMismatch
	}
	if len(password) < minPasswordLen {
		return ErrPasswordTooShort
	}
	return nil
}

// AuthService drives the session lifecycle.
//
// Contract:
//   - Login: authenticate and start a session; returns the display name.
//   - Register: validate locally, create the account, start a session.
//   - Logout: record the session duration and clear the session.
//
// State is mutated only after a successful response; business and
// transport failures leave the session untouched.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, name, email, phone, password, confirm string) error
	Logout(ctx context.Context) error
}

type authService struct {
	client   client.Client
	store    *session.Store
	activity ActivityService
	log      logging.Logger
}

func NewAuthService(c client.Client, store *session.Store, activity ActivityService, log logging.Logger) AuthService {
	return &authService{client: c, store: store, activity: activity, log: log}
}

func (a *authService) Login(ctx context.Context, email, password string) (string, error) {
	res, err := a.client.Login(ctx, email, password)
	if err != nil {
		return "", err
	}

	user := session.User{Name: res.Name, Email: email}
	if err := a.store.Set(ctx, res.Token, user); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}

	a.log.Info(ctx, "logged in", "user", res.Name)
	return res.Name, nil
}

func (a *authService) Register(ctx context.Context, name, email, phone, password, confirm string) error {
	if err := ValidateRegistration(password, confirm); err != nil {
		return err
	}

	res, err := a.client.Register(ctx, name, email, phone, password)
	if err != nil {
		return err
	}

	// The token payload may be opaque at this point; the identity shown is
	// the one the user just submitted.
	if err := a.store.Set(ctx, res.Token, session.User{Name: name, Email: email}); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}

	a.log.Info(ctx, "account created", "user", name)
	return nil
}

func (a *authService) Logout(ctx context.Context) error {
	if d, ok := a.store.Duration(); ok {
		a.activity.Log(ctx, "Logout", fmt.Sprintf("Session Duration: %ds", int(d.Seconds())))
	}

	if err := a.store.Clear(ctx); err != nil {
		return err
	}

	a.log.Info(ctx, "logged out")
	return nil
}
