package cli

import (
	"context"
	"fmt"

	"github.com/pietos/pietos-cli/internal/client"
)

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// ShowMain reveals the main page and hides the dashboard. The page is
// redrawn from the top, the terminal equivalent of resetting the scroll
// position.
func (a *App) ShowMain() {
	a.view = ViewMain

	a.println()
	a.println("=== Pietos — Trust, But Verify ===")
	if u := a.store.User(); u.Name != "" {
		a.printf("Signed in as %s\n", u.Name)
	} else {
		a.println("Not signed in")
	}

	a.println("Verification services:")
	for _, name := range a.registry.Services() {
		req, _ := a.registry.Resolve(name)
		a.printf("  - %s (%s)\n", name, req.Kind)
	}
}

// ShowDashboard reveals the dashboard. Without an active session it opens
// the login form instead and never issues the fetch. Fetch failures render
// inline; the view stays on the dashboard.
func (a *App) ShowDashboard(ctx context.Context) {
	if !a.isLoggedIn() {
		a.openLoginForm(ctx)
		return
	}

	a.view = ViewDashboard

	a.println()
	a.printf("Hello, %s!\n", a.store.User().Name)
	a.println("Welcome to your personalized dashboard. Below you can find your recent activity and statistics.")
	a.println("Loading your dashboard data...")

	d, err := a.dashboard.Fetch(ctx)
	if err != nil {
		a.renderDashboardError(ctx, err)
		return
	}
	a.renderDashboard(d)
}

func (a *App) renderDashboard(d *client.Dashboard) {
	lastLogin := d.LastLogin
	if lastLogin == "" {
		lastLogin = "N/A"
	}
	a.printf("Last Login: %s\n", lastLogin)
	a.printf("Session Statistics: %s\n", d.AdditionalDetails)

	a.println("Recent Activity:")
	if len(d.Activity) == 0 {
		a.println("  No recent activity found. Start a verification to see your history!")
		return
	}
	for _, entry := range d.Activity {
		a.printf("  %s: %s - %s\n", entry.Timestamp, entry.EventType, entry.Details)
	}
}

func (a *App) renderDashboardError(ctx context.Context, err error) {
	if se, ok := client.AsServerError(err); ok {
		a.println(se.Message)
		return
	}
	a.log.Debug(ctx, "error fetching dashboard data", "err", err)
	a.println("Failed to load dashboard data. Please try again later.")
}
