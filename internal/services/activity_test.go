package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pietos/pietos-cli/internal/client"
	"github.com/pietos/pietos-cli/internal/session"
)

func TestActivity_NoToken_NoCall(t *testing.T) {
	f := &fakeClient{}
	store := session.NewStore(newMemRepo(), testLogger())
	svc := NewActivityService(f, store, testLogger())

	svc.Log(context.Background(), "Verification", "Verified identity")
	assert.Zero(t, f.actCalls)
}

func TestActivity_WithToken_SendsEntry(t *testing.T) {
	f := &fakeClient{}
	store := session.NewStore(newMemRepo(), testLogger())
	require.NoError(t, store.Set(context.Background(), "tok-1", session.User{}))

	svc := NewActivityService(f, store, testLogger())
	svc.Log(context.Background(), "Verification", "Verified identity")

	require.Equal(t, 1, f.actCalls)
	assert.Equal(t, "tok-1", f.actTokens[0])
	assert.Equal(t, "Verification", f.actEvents[0])
	assert.Equal(t, "Verified identity", f.actDetails[0])
}

func TestActivity_FailureIsSwallowed(t *testing.T) {
	f := &fakeClient{actErr: client.ErrUnavailable}
	store := session.NewStore(newMemRepo(), testLogger())
	require.NoError(t, store.Set(context.Background(), "tok-1", session.User{}))

	svc := NewActivityService(f, store, testLogger())

	// No return value, no panic: failures stay internal.
	svc.Log(context.Background(), "Logout", "Session Duration: 1s")
	assert.Equal(t, 1, f.actCalls)
}

func TestDashboard_NoSession(t *testing.T) {
	f := &fakeClient{}
	store := session.NewStore(newMemRepo(), testLogger())
	svc := NewDashboardService(f, store, testLogger())

	_, err := svc.Fetch(context.Background())
	assert.ErrorIs(t, err, ErrNoSession)
	assert.Zero(t, f.dashCalls)
}

func TestDashboard_FetchUsesSessionToken(t *testing.T) {
	f := &fakeClient{dashRes: &client.Dashboard{LastLogin: "2024-01-01"}}
	store := session.NewStore(newMemRepo(), testLogger())
	require.NoError(t, store.Set(context.Background(), "tok-9", session.User{}))

	svc := NewDashboardService(f, store, testLogger())

	d, err := svc.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", d.LastLogin)
	assert.Equal(t, "tok-9", f.dashToken)
}
