package cli

import (
	"context"
	"errors"
	"time"

	"github.com/pietos/pietos-cli/internal/client"
	"github.com/pietos/pietos-cli/internal/services"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in
// tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates against the session
// service. On success the main view is shown, a deferred verification (if
// any) is completed and recorded, and the auth dialog closes after a short
// delay.
//
// Authentication failures are rendered to the user and recovered here;
// only input I/O errors propagate.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}

	done, ok := a.beginSubmit("Logging in...")
	if !ok {
		return nil
	}
	defer done()

	if _, err := a.auth.Login(ctx, email, password); err != nil {
		a.renderAuthError(ctx, err)
		return nil
	}

	a.ShowMain()
	a.println("Login successful! Redirecting to home page...")

	if svc, ok := a.store.TakePendingVerification(); ok {
		a.printf("You are now performing a %s verification.\n", svc)
		a.activity.Log(ctx, "Verification", "Verified "+svc)
	}

	a.closeAuthDialogAfter(ctx, a.config.ModalCloseDelay)
	return nil
}

// Register prompts for the registration form and creates an account.
// Validation failures never reach the network; they are rendered before
// the submission starts.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, "Enter phone", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	confirm, err := getPassword("Confirm password", a.out)
	if err != nil {
		return err
	}

	if err := services.ValidateRegistration(password, confirm); err != nil {
		a.renderAuthError(ctx, err)
		return nil
	}

	done, ok := a.beginSubmit("Creating Account...")
	if !ok {
		return nil
	}
	defer done()

	if err := a.auth.Register(ctx, name, email, phone, password, confirm); err != nil {
		a.renderAuthError(ctx, err)
		return nil
	}

	a.ShowMain()
	a.println("Account created successfully! Welcome!")

	// The web client keeps the registration dialog up a little longer.
	a.closeAuthDialogAfter(ctx, a.config.ModalCloseDelay*3/2)
	return nil
}

// Logout ends the session and returns to the main view.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		a.log.Error(ctx, "logout failed", "err", err)
		a.println("An error occurred. Please try again.")
		return nil
	}

	a.ShowMain()
	a.println("Logged out successfully!")
	return nil
}

// openLoginForm is what gated flows call when a session is required: the
// terminal stand-in for opening the auth modal on its login tab.
func (a *App) openLoginForm(ctx context.Context) {
	a.println("Please log in to continue.")
	_ = a.Login(ctx)
}

// closeAuthDialogAfter schedules the cosmetic auto-close of the auth
// dialog. Fire-and-forget: nothing in the session logic depends on it.
func (a *App) closeAuthDialogAfter(ctx context.Context, d time.Duration) {
	scheduleFn(d, func() {
		a.log.Debug(ctx, "auth dialog closed")
	})
}

// renderAuthError maps the error taxonomy to the user-facing wording:
// local validation and business errors verbatim, everything else the
// generic message with the detail kept for diagnostics.
func (a *App) renderAuthError(ctx context.Context, err error) {
	switch {
	case errors.Is(err, services.ErrPasswordMismatch):
		a.println("Passwords do not match.")
	case errors.Is(err, services.ErrPasswordTooShort):
		a.println("Password must be at least 6 characters.")
	default:
		if se, ok := client.AsServerError(err); ok {
			a.println(se.Message)
			return
		}
		a.log.Error(ctx, "auth request failed", "err", err)
		a.println("An error occurred. Please try again.")
	}
}
