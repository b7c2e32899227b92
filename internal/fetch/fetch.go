package fetch

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jcortez/mailgrab/internal/domain"
	"github.com/jcortez/mailgrab/internal/gmail"
)

// Options configures a single fetch invocation.
type Options struct {
	gmail.Filter
	MaxResults int64
}

// DefaultOptions returns the standard fetch options: unread messages only,
// capped at 100 results.
func DefaultOptions() Options {
	return Options{
		Filter:     gmail.Filter{UnreadOnly: true},
		MaxResults: 100,
	}
}

// SavePolicy states whether a run should persist a new last-run marker.
// It is decided once up front, before any network call.
type SavePolicy int

const (
	// SaveNever leaves the marker untouched (explicit --days/--since runs).
	SaveNever SavePolicy = iota
	// SaveOnSuccess records the run start time after a successful fetch
	// (first runs and incremental runs).
	SaveOnSuccess
)

// Service drives the two-phase fetch: list matching message IDs, then
// hydrate and normalize each one in provider order.
type Service struct {
	client gmail.Client
	log    *zap.SugaredLogger
}

// New creates a fetch Service backed by the given Gmail client.
func New(client gmail.Client, log *zap.SugaredLogger) *Service {
	return &Service{client: client, log: log}
}

// Fetch returns the normalized messages matching opts, in the order Gmail
// listed them. Any single hydrate or normalize failure aborts the whole
// fetch; there is no per-message retry or partial-result salvage.
func (s *Service) Fetch(ctx context.Context, opts Options) ([]domain.Message, error) {
	if opts.MaxResults <= 0 {
		opts.MaxResults = 100
	}

	query := gmail.BuildQuery(opts.Filter)
	s.log.Debugw("listing messages", "query", query, "max_results", opts.MaxResults)

	ids, err := s.client.ListMessageIDs(ctx, query, opts.MaxResults)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	s.log.Debugw("hydrating messages", "count", len(ids))
	messages := make([]domain.Message, 0, len(ids))
	for _, id := range ids {
		raw, err := s.client.GetMessage(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to get message %s: %w", id, err)
		}
		msg, err := gmail.Normalize(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to normalize message %s: %w", id, err)
		}
		messages = append(messages, *msg)
	}

	s.log.Debugw("fetch complete", "count", len(messages))
	return messages, nil
}
