package storage

import (
	"context"
	"errors"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/barberpro/internal/logging"
	"github.com/BruksfildServices01/barberpro/internal/metrics"
)

// Store is the entity store. Every collection is one record holding the
// whole JSON array, so a Save replaces the collection in a single Put.
type Store struct {
	provider  Provider
	namespace string
	log       zerolog.Logger
}

func New(provider Provider, namespace string) *Store {
	return &Store{
		provider:  provider,
		namespace: namespace,
		log:       logging.Component(logging.ComponentStorage),
	}
}

func (s *Store) Close() error {
	return s.provider.Close()
}

func (s *Store) key(name string) string {
	return s.namespace + name
}

// Load returns the persisted collection, or its seed (possibly empty) when
// nothing was ever saved under that name.
func Load[T any](ctx context.Context, s *Store, collection string) ([]T, error) {
	raw, ok, err := s.get(ctx, collection)
	if err != nil {
		return nil, err
	}
	if !ok {
		return seedFor[T](collection), nil
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		metrics.StorageOperations.WithLabelValues("decode", metrics.ResultError).Inc()
		return nil, &FailureError{Op: "decode", Key: s.key(collection), Err: err}
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// Save replaces the whole collection.
func Save[T any](ctx context.Context, s *Store, collection string, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return &FailureError{Op: "encode", Key: s.key(collection), Err: err}
	}
	return s.put(ctx, collection, raw)
}

func (s *Store) LoadLogo(ctx context.Context) (string, bool, error) {
	raw, ok, err := s.get(ctx, keyLogo)
	if err != nil || !ok {
		return "", false, err
	}
	if len(raw) == 0 {
		return "", false, nil
	}
	return string(raw), true, nil
}

// SaveLogo overwrites the logo wholesale.
func (s *Store) SaveLogo(ctx context.Context, dataURI string) error {
	return s.put(ctx, keyLogo, []byte(dataURI))
}

func (s *Store) get(ctx context.Context, name string) ([]byte, bool, error) {
	key := s.key(name)
	start := time.Now()
	raw, ok, err := s.provider.Get(ctx, key)
	metrics.StorageDuration.WithLabelValues("get").Observe(time.Since(start).Seconds())

	switch {
	case err != nil:
		metrics.StorageOperations.WithLabelValues("get", metrics.ResultError).Inc()
		s.log.Error().Err(err).Str("key", key).Msg("storage read failed")
		return nil, false, wrap("get", key, err)
	case !ok:
		metrics.StorageOperations.WithLabelValues("get", metrics.ResultMiss).Inc()
	default:
		metrics.StorageOperations.WithLabelValues("get", metrics.ResultOK).Inc()
	}
	return raw, ok, nil
}

func (s *Store) put(ctx context.Context, name string, raw []byte) error {
	key := s.key(name)
	start := time.Now()
	err := s.provider.Put(ctx, key, raw)
	metrics.StorageDuration.WithLabelValues("put").Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.StorageOperations.WithLabelValues("put", metrics.ResultError).Inc()
		s.log.Error().Err(err).Str("key", key).Int("bytes", len(raw)).Msg("storage write failed")
		return wrap("put", key, err)
	}
	metrics.StorageOperations.WithLabelValues("put", metrics.ResultOK).Inc()
	s.log.Debug().Str("key", key).Int("bytes", len(raw)).Msg("collection saved")
	return nil
}

func wrap(op, key string, err error) error {
	var fe *FailureError
	if errors.As(err, &fe) {
		return err
	}
	return &FailureError{Op: op, Key: key, Err: err}
}
