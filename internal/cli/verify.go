package cli

import (
	"context"

	"github.com/pietos/pietos-cli/internal/verification"
)

// Verify triggers one verification service by name.
//
// Anonymous services run immediately; a session, if present, only adds an
// activity entry. Gated services run when a session exists and are
// otherwise deferred: the service name is parked as the pending
// verification and the login form opens.
func (a *App) Verify(ctx context.Context, serviceName string) error {
	req, ok := a.registry.Resolve(serviceName)
	if !ok {
		a.printf("Unknown service: %s\n", serviceName)
		a.println("Use 'services' to list the available verifications.")
		return nil
	}

	switch req.Kind {
	case verification.KindAnonymous:
		a.printf("You are now performing a %s verification without needing to log in.\n", req.Service)
		if a.isLoggedIn() {
			a.activity.Log(ctx, "Verification", "Verified "+req.Service)
		}

	case verification.KindAuthRequired:
		if !a.isLoggedIn() {
			a.store.DeferVerification(req.Service)
			a.openLoginForm(ctx)
			return nil
		}
		a.printf("You are now performing a %s verification.\n", req.Service)
		a.activity.Log(ctx, "Verification", "Verified "+req.Service)
	}

	return nil
}

// ListServices prints the verification services of the main view.
func (a *App) ListServices() {
	a.println("Verification services:")
	for _, name := range a.registry.Services() {
		req, _ := a.registry.Resolve(name)
		a.printf("  - %s (%s)\n", name, req.Kind)
	}
}
