package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pietos/pietos-cli/internal/client"
	"github.com/pietos/pietos-cli/internal/session"
)

func TestShowMain(t *testing.T) {
	a, out := newTestApp(t, &fakeClient{})

	a.view = ViewDashboard
	a.ShowMain()

	assert.Equal(t, ViewMain, a.view)
	assert.Contains(t, out.String(), "Not signed in")
	assert.Contains(t, out.String(), "public-record (open)")
	assert.Contains(t, out.String(), "identity (login required)")
}

func TestShowDashboard_WithoutSessionOpensLoginForm(t *testing.T) {
	fc := &fakeClient{loginErr: client.ErrUnavailable}
	a, out := newTestApp(t, fc)
	stubInputs(t, "a@b.com", "secret")

	a.ShowDashboard(context.Background())

	assert.Contains(t, out.String(), "Please log in to continue.")
	assert.Zero(t, fc.dashCalls, "dashboard fetch must not happen without a session")
	assert.Equal(t, ViewMain, a.view)
}

func TestShowDashboard_RendersData(t *testing.T) {
	fc := &fakeClient{dashRes: &client.Dashboard{
		LastLogin:         "2024-01-01",
		AdditionalDetails: "5 sessions",
		Activity: []client.ActivityEntry{
			{Timestamp: "2024-01-01 10:00", EventType: "Verification", Details: "Verified identity"},
		},
	}}
	a, out := newTestApp(t, fc)
	require.NoError(t, a.store.Set(context.Background(), "x.y.z", session.User{Name: "Alice"}))

	a.ShowDashboard(context.Background())

	assert.Equal(t, ViewDashboard, a.view)
	s := out.String()
	assert.Contains(t, s, "Hello, Alice!")
	assert.Contains(t, s, "Loading your dashboard data...")
	assert.Contains(t, s, "Last Login: 2024-01-01")
	assert.Contains(t, s, "Session Statistics: 5 sessions")
	assert.Contains(t, s, "2024-01-01 10:00: Verification - Verified identity")
}

func TestShowDashboard_EmptyActivityFallback(t *testing.T) {
	fc := &fakeClient{dashRes: &client.Dashboard{
		LastLogin:         "2024-01-01",
		AdditionalDetails: "5 sessions",
		Activity:          []client.ActivityEntry{},
	}}
	a, out := newTestApp(t, fc)
	require.NoError(t, a.store.Set(context.Background(), "x.y.z", session.User{Name: "Alice"}))

	a.ShowDashboard(context.Background())

	assert.Contains(t, out.String(), "No recent activity found. Start a verification to see your history!")
}

func TestShowDashboard_MissingLastLoginRendersNA(t *testing.T) {
	fc := &fakeClient{dashRes: &client.Dashboard{AdditionalDetails: "1 session"}}
	a, out := newTestApp(t, fc)
	require.NoError(t, a.store.Set(context.Background(), "x.y.z", session.User{Name: "Alice"}))

	a.ShowDashboard(context.Background())
	assert.Contains(t, out.String(), "Last Login: N/A")
}

func TestShowDashboard_TransportErrorRendersInline(t *testing.T) {
	fc := &fakeClient{dashErr: client.ErrUnavailable}
	a, out := newTestApp(t, fc)
	require.NoError(t, a.store.Set(context.Background(), "x.y.z", session.User{Name: "Alice"}))

	a.ShowDashboard(context.Background())

	assert.Equal(t, ViewDashboard, a.view, "view stays on dashboard")
	assert.Contains(t, out.String(), "Failed to load dashboard data. Please try again later.")
}

func TestShowDashboard_BusinessErrorRendersServerMessage(t *testing.T) {
	fc := &fakeClient{dashErr: &client.ServerError{Message: "Session expired"}}
	a, out := newTestApp(t, fc)
	require.NoError(t, a.store.Set(context.Background(), "x.y.z", session.User{Name: "Alice"}))

	a.ShowDashboard(context.Background())

	assert.Equal(t, ViewDashboard, a.view)
	assert.Contains(t, out.String(), "Session expired")
}
