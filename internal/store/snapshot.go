package store

import (
	"context"       // Backend calls
	"encoding/json" // Snapshot serialization
	"errors"        // Sentinel errors
	"fmt"           // Error wrapping

	"recycling_portal/internal/domain" // Snapshot model

	"github.com/sirupsen/logrus" // Structured logging
)

const (
	DefaultSnapshotKey    = "empire-admin-demo-v1"   // Key holding the serialized dataset
	DefaultCurrentUserKey = "empire-current-user-id" // Key holding the selected user id
)

// ErrParseFailure is returned by Load in strict mode when the stored snapshot cannot be decoded
var ErrParseFailure = errors.New("stored snapshot could not be parsed")

// SnapshotStore loads and saves the whole dataset under a single key
type SnapshotStore struct {
	kv     KV
	key    string
	strict bool
}

// Option configures a SnapshotStore
type Option func(*SnapshotStore)

// WithKey overrides the dataset key
func WithKey(key string) Option {
	return func(s *SnapshotStore) { s.key = key }
}

// WithStrict makes Load return ErrParseFailure instead of degrading to an empty snapshot
func WithStrict(strict bool) Option {
	return func(s *SnapshotStore) { s.strict = strict }
}

// NewSnapshotStore builds a store on top of kv
func NewSnapshotStore(kv KV, opts ...Option) *SnapshotStore {
	s := &SnapshotStore{kv: kv, key: DefaultSnapshotKey}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load returns the stored snapshot. On first-ever load the seed dataset is written and
// returned. A value that fails to decode yields the empty snapshot unless strict mode is on.
func (s *SnapshotStore) Load(ctx context.Context) (domain.Snapshot, error) {
	raw, found, err := s.kv.Get(ctx, s.key)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("load snapshot: %w", err)
	}
	if !found {
		seed := domain.Seed()
		if err := s.Save(ctx, seed); err != nil {
			return domain.Snapshot{}, fmt.Errorf("seed snapshot: %w", err)
		}
		logrus.WithFields(logrus.Fields{
			"key":    s.key,
			"metals": len(seed.MetalPrices),
			"users":  len(seed.Users),
		}).Info("Seeded empty store")
		return seed, nil
	}

	var snap domain.Snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		if s.strict {
			return domain.Snapshot{}, fmt.Errorf("%w: %v", ErrParseFailure, err)
		}
		logrus.WithFields(logrus.Fields{
			"key":   s.key,
			"error": err.Error(),
		}).Warn("Stored snapshot is unreadable, starting from an empty dataset")
		return domain.Empty(), nil
	}
	return snap.Normalize(), nil
}

// Save overwrites the stored snapshot
func (s *SnapshotStore) Save(ctx context.Context, snap domain.Snapshot) error {
	b, err := json.Marshal(snap.Normalize())
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := s.kv.Set(ctx, s.key, string(b)); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}
