package services

import (
	"context"

	"github.com/pietos/pietos-cli/internal/client"
	"github.com/pietos/pietos-cli/internal/logging"
	"github.com/pietos/pietos-cli/internal/session"
)

// ActivityService records account events on the remote service.
//
// Logging is strictly fire-and-forget: nothing happens without a session
// token, failures are kept for diagnostics only, and there are no retries.
type ActivityService interface {
	Log(ctx context.Context, eventType, details string)
}

type activityService struct {
	client client.Client
	store  *session.Store
	log    logging.Logger
}

func NewActivityService(c client.Client, store *session.Store, log logging.Logger) ActivityService {
	return &activityService{client: c, store: store, log: log}
}

func (s *activityService) Log(ctx context.Context, eventType, details string) {
	tok := s.store.Token()
	if tok == "" {
		return
	}

	if err := s.client.LogActivity(ctx, tok, eventType, details); err != nil {
		s.log.Debug(ctx, "activity log failed", "eventType", eventType, "err", err)
	}
}
