// Package store is the client's local persistence: the saved session and the
// last-known task snapshot per user, so views stay computable when the
// backend is unreachable.
package store

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/tempo/pkg/api"
	"tableflip.dev/tempo/pkg/task"
)

// ErrNoSession is returned when no login has been saved.
var ErrNoSession = errors.New("store: no saved session")

// Persistence is the local storage contract.
type Persistence interface {
	Session() (*api.Session, error)
	SaveSession(s *api.Session) error
	ClearSession() error
	Snapshot(userID string) ([]task.Task, error)
	SaveSnapshot(userID string, tasks []task.Task) error
	ClearSnapshot(userID string) error
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	})}, nil
}

type persistence struct {
	d *diskv.Diskv
}

const sessionKey = "session-current"

func (p *persistence) Session() (*api.Session, error) {
	val, err := p.d.Read(sessionKey)
	if err != nil {
		return nil, ErrNoSession
	}
	s := &api.Session{}
	if err := json.Unmarshal(val, s); err != nil {
		return nil, fmt.Errorf("store: decode session: %w", err)
	}
	if s.Token == "" {
		return nil, ErrNoSession
	}
	return s, nil
}

func (p *persistence) SaveSession(s *api.Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("store: encode session: %w", err)
	}
	return p.d.Write(sessionKey, data)
}

func (p *persistence) ClearSession() error {
	if !p.d.Has(sessionKey) {
		return nil
	}
	return p.d.Erase(sessionKey)
}

func (p *persistence) Snapshot(userID string) ([]task.Task, error) {
	val, err := p.d.Read(snapshotKey(userID))
	if err != nil {
		return nil, fmt.Errorf("store: no snapshot for user: %w", err)
	}
	var tasks []task.Task
	if err := json.Unmarshal(val, &tasks); err != nil {
		return nil, fmt.Errorf("store: decode snapshot: %w", err)
	}
	return tasks, nil
}

func (p *persistence) SaveSnapshot(userID string, tasks []task.Task) error {
	data, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("store: encode snapshot: %w", err)
	}
	return p.d.Write(snapshotKey(userID), data)
}

func (p *persistence) ClearSnapshot(userID string) error {
	key := snapshotKey(userID)
	if !p.d.Has(key) {
		return nil
	}
	return p.d.Erase(key)
}

// snapshotKey makes `snapshot-<encoded user>`; hex keeps arbitrary user IDs
// path-safe and free of the `-` separator the key transform splits on.
func snapshotKey(userID string) string {
	return "snapshot-" + hex.EncodeToString([]byte(userID))
}

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "-")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}
