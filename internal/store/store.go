// Package store holds the job board collections and mirrors them to a key-value layer.
package store

import (
	"encoding/json"
	"errors"
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/spigell/talentx/internal/board"
)

const (
	KeyJobs         = "talentx_mock_jobs"
	KeyApplications = "talentx_mock_applications"
	KeyInvitations  = "talentx_mock_invitations"
)

// Seed is the dataset used when nothing usable is persisted yet.
type Seed struct {
	Jobs         []board.Job
	Applications []board.Application
	Invitations  []board.Invitation
	Talents      []board.Talent
}

// PersistResult describes the outcome of mirroring one collection to the KV layer.
type PersistResult struct {
	Key   string
	Bytes int
	Err   error
}

func (r PersistResult) OK() bool {
	return r.Err == nil
}

// Store is the only owner and mutator of the job board collections. Readers get
// snapshots; writers replace a whole collection at once.
type Store struct {
	mu           sync.RWMutex
	jobs         []board.Job
	applications []board.Application
	invitations  []board.Invitation
	talents      []board.Talent

	kv     KV
	logger *zap.Logger
}

// Open builds the store from the KV layer, using the seed for every collection that is
// missing or unreadable. A nil kv keeps everything in memory only.
func Open(kv KV, logger *zap.Logger, seed Seed) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Store{
		kv:      kv,
		logger:  logger,
		talents: slices.Clone(seed.Talents),
	}

	s.jobs = load(s, KeyJobs, seed.Jobs)
	s.applications = load(s, KeyApplications, seed.Applications)
	s.invitations = load(s, KeyInvitations, seed.Invitations)

	logger.Debug("store opened",
		zap.Int("jobs", len(s.jobs)),
		zap.Int("applications", len(s.applications)),
		zap.Int("invitations", len(s.invitations)),
		zap.Int("talents", len(s.talents)),
		zap.Bool("persistent", kv != nil),
	)

	return s
}

// Close releases the KV layer.
func (s *Store) Close() error {
	if s.kv == nil {
		return nil
	}
	return s.kv.Close()
}

func (s *Store) ListJobs() []board.Job {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.jobs)
}

func (s *Store) ListApplications() []board.Application {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.applications)
}

func (s *Store) ListInvitations() []board.Invitation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.invitations)
}

func (s *Store) ListTalents() []board.Talent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.talents)
}

func (s *Store) ReplaceJobs(next []board.Job) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jobs = slices.Clone(next)
	s.report(s.persist(KeyJobs, s.jobs))
}

func (s *Store) ReplaceApplications(next []board.Application) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.applications = slices.Clone(next)
	s.report(s.persist(KeyApplications, s.applications))
}

func (s *Store) ReplaceInvitations(next []board.Invitation) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.invitations = slices.Clone(next)
	s.report(s.persist(KeyInvitations, s.invitations))
}

func (s *Store) persist(key string, v any) PersistResult {
	if s.kv == nil {
		return PersistResult{Key: key}
	}

	data, err := json.Marshal(v)
	if err != nil {
		return PersistResult{Key: key, Err: err}
	}

	if err := s.kv.Set(key, data); err != nil {
		return PersistResult{Key: key, Err: err}
	}

	return PersistResult{Key: key, Bytes: len(data)}
}

// report logs the persistence outcome. Failures stop here: the KV layer is a cache.
func (s *Store) report(r PersistResult) {
	if !r.OK() {
		s.logger.Warn("persisting collection failed", zap.String("key", r.Key), zap.Error(r.Err))
		return
	}
	if s.kv != nil {
		s.logger.Debug("collection persisted", zap.String("key", r.Key), zap.Int("bytes", r.Bytes))
	}
}

func load[T any](s *Store, key string, fallback []T) []T {
	if s.kv == nil {
		return slices.Clone(fallback)
	}

	data, err := s.kv.Get(key)
	if errors.Is(err, ErrNotFound) {
		s.logger.Debug("collection not persisted yet, using defaults", zap.String("key", key))
		return slices.Clone(fallback)
	}
	if err != nil {
		s.logger.Warn("reading collection failed, using defaults", zap.String("key", key), zap.Error(err))
		return slices.Clone(fallback)
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil || items == nil {
		s.logger.Warn("persisted collection is corrupt, using defaults", zap.String("key", key), zap.Error(err))
		return slices.Clone(fallback)
	}

	return items
}
