package services

import (
	"context"
	"errors"

	"github.com/pietos/pietos-cli/internal/client"
	"github.com/pietos/pietos-cli/internal/logging"
	"github.com/pietos/pietos-cli/internal/session"
)

// ErrNoSession reports a dashboard fetch attempted without an active
// session. The view layer is expected to have checked first; this is the
// backstop.
var ErrNoSession = errors.New("no active session")

// DashboardService fetches the data behind the dashboard view, keyed by
// the current session token.
type DashboardService interface {
	Fetch(ctx context.Context) (*client.Dashboard, error)
}

type dashboardService struct {
	client client.Client
	store  *session.Store
	log    logging.Logger
}

func NewDashboardService(c client.Client, store *session.Store, log logging.Logger) DashboardService {
	return &dashboardService{client: c, store: store, log: log}
}

func (s *dashboardService) Fetch(ctx context.Context) (*client.Dashboard, error) {
	tok := s.store.Token()
	if tok == "" {
		return nil, ErrNoSession
	}

	d, err := s.client.GetDashboard(ctx, tok)
	if err != nil {
		s.log.Debug(ctx, "dashboard fetch failed", "err", err)
		return nil, err
	}
	return d, nil
}
