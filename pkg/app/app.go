// Package app wires the client pieces together: config, local store, API
// client, and the saved session. CLIs and the TUI share it so snapshot
// fetching and offline fallback behave the same everywhere.
package app

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"tableflip.dev/tempo/pkg/api"
	"tableflip.dev/tempo/pkg/datekey"
	"tableflip.dev/tempo/pkg/store"
	"tableflip.dev/tempo/pkg/task"
)

// ErrNotLoggedIn is returned by operations that need a session.
var ErrNotLoggedIn = errors.New("app: not logged in, run `tempo login` first")

// TaskLister is the slice of the API client the service needs for reads.
type TaskLister interface {
	List(ctx context.Context) ([]task.Task, error)
}

// Service provides high-level operations over the backend and local store.
// Lister defaults to Client; tests inject a stub.
type Service struct {
	Config      store.Config
	Persistence store.Persistence
	Client      *api.Client
	Session     *api.Session
	Lister      TaskLister
	Log         zerolog.Logger
}

// Load builds a Service from the on-disk config and any saved session.
// Being logged out is not an error here; commands that need a session call
// RequireSession.
func Load(log zerolog.Logger) (*Service, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	p, err := store.Load(cfg)
	if err != nil {
		return nil, err
	}

	s := &Service{Config: cfg, Persistence: p, Log: log}

	sess, err := p.Session()
	switch {
	case err == nil:
		s.Session = sess
		s.Client = api.New(cfg.APIBase(), api.WithToken(sess.Token), api.WithLogger(log))
	case errors.Is(err, store.ErrNoSession):
		s.Client = api.New(cfg.APIBase(), api.WithLogger(log))
	default:
		return nil, err
	}
	return s, nil
}

// RequireSession fails unless a login has been saved.
func (s *Service) RequireSession() error {
	if s.Session == nil {
		return ErrNotLoggedIn
	}
	return nil
}

// Today resolves the current calendar day under the backend offset.
func (s *Service) Today() datekey.Key {
	offset := datekey.DefaultOffsetHours
	if s.Config != nil {
		offset = s.Config.OffsetHours()
	}
	return datekey.Today(offset)
}

// Tasks returns the freshest snapshot available. A successful fetch refreshes
// the local cache; a failed fetch degrades to the last-known snapshot (stale
// reported as true) so views stay computable offline.
func (s *Service) Tasks(ctx context.Context) ([]task.Task, bool, error) {
	if err := s.RequireSession(); err != nil {
		return nil, false, err
	}

	tasks, err := s.lister().List(ctx)
	if err == nil {
		if saveErr := s.Persistence.SaveSnapshot(s.Session.User.ID, tasks); saveErr != nil {
			s.Log.Warn().Err(saveErr).Msg("could not refresh task snapshot cache")
		}
		return tasks, false, nil
	}

	s.Log.Warn().Err(err).Msg("task fetch failed, trying last-known snapshot")
	cached, cacheErr := s.Persistence.Snapshot(s.Session.User.ID)
	if cacheErr != nil {
		return nil, false, err
	}
	return cached, true, nil
}

func (s *Service) lister() TaskLister {
	if s.Lister != nil {
		return s.Lister
	}
	return s.Client
}
