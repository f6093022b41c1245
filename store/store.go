package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rmanyari/beam/coder"
	"github.com/rmanyari/beam/internal/envelope"
	"github.com/rmanyari/beam/log"
	"github.com/rmanyari/beam/metrics"
)

var (
	ErrNoNamespace = errors.New("store: empty namespace")
	ErrNoProvider  = errors.New("store: nil provider")
	ErrNoCoder     = errors.New("store: nil coder")
)

// Options configure a Store. Namespace, Provider and Coder are required;
// the rest default sensibly.
type Options[T any] struct {
	Namespace string // key prefix avoiding collisions, e.g. "user"
	Provider  Provider
	Coder     coder.Coder[T]

	Logger log.Logger    // nil disables logging
	TTL    time.Duration // 0 => entries do not expire
}

// Store persists values of type T in a Provider. Writes encode through the
// coder bridge's outer entry point and reads decode through it.
//
// Reads self-heal: an entry failing the envelope check or the decode is
// deleted, counted and reported as a miss rather than surfaced as an error,
// so one corrupt entry cannot wedge its key.
type Store[T any] struct {
	ns  string
	p   Provider
	c   coder.Coder[T]
	lg  log.Logger
	ttl time.Duration

	hits      metrics.CounterCell
	misses    metrics.CounterCell
	selfHeals metrics.CounterCell
	entrySize metrics.DistributionCell
}

func New[T any](opts Options[T]) (*Store[T], error) {
	if opts.Namespace == "" {
		return nil, ErrNoNamespace
	}
	if opts.Provider == nil {
		return nil, ErrNoProvider
	}
	if opts.Coder == nil {
		return nil, ErrNoCoder
	}
	lg := opts.Logger
	if lg == nil {
		lg = log.Nop{}
	}
	return &Store[T]{
		ns:  opts.Namespace,
		p:   opts.Provider,
		c:   opts.Coder,
		lg:  lg,
		ttl: opts.TTL,
	}, nil
}

func (s *Store[T]) key(k string) string { return s.ns + ":" + k }

// Put encodes value in the outer context and stores it under key.
func (s *Store[T]) Put(ctx context.Context, key string, value T) error {
	var buf bytes.Buffer
	if err := coder.EncodeOuter(s.c, value, &buf); err != nil {
		return fmt.Errorf("store: encode %q: %w", key, err)
	}
	entry := envelope.Wrap(buf.Bytes())
	s.entrySize.Update(int64(len(entry)))

	ok, err := s.p.Set(ctx, s.key(key), entry, int64(len(entry)), s.ttl)
	if err != nil {
		return fmt.Errorf("store: set %q: %w", key, err)
	}
	if !ok {
		s.lg.Warn("store: set rejected", log.Fields{"key": key, "bytes": len(entry)})
		return nil
	}
	s.lg.Debug("store: put", log.Fields{"key": key, "bytes": len(entry)})
	return nil
}

// Get loads and decodes the value under key.
func (s *Store[T]) Get(ctx context.Context, key string) (T, bool, error) {
	var zero T
	sk := s.key(key)

	b, ok, err := s.p.Get(ctx, sk)
	if err != nil {
		return zero, false, fmt.Errorf("store: get %q: %w", key, err)
	}
	if !ok {
		s.misses.Inc(1)
		return zero, false, nil
	}

	payload, err := envelope.Unwrap(b)
	if err != nil {
		s.heal(ctx, sk, key, "corrupt", err)
		return zero, false, nil
	}
	v, err := coder.DecodeOuter(s.c, bytes.NewReader(payload))
	if err != nil {
		s.heal(ctx, sk, key, "decode", err)
		return zero, false, nil
	}

	s.hits.Inc(1)
	return v, true, nil
}

// Delete removes the entry under key.
func (s *Store[T]) Delete(ctx context.Context, key string) error {
	return s.p.Del(ctx, s.key(key))
}

// Close closes the underlying provider.
func (s *Store[T]) Close(ctx context.Context) error { return s.p.Close(ctx) }

func (s *Store[T]) heal(ctx context.Context, storageKey, key, reason string, cause error) {
	s.selfHeals.Inc(1)
	s.misses.Inc(1)
	if err := s.p.Del(ctx, storageKey); err != nil {
		s.lg.Warn("store: self-heal delete failed", log.Fields{"key": key, "err": err})
	}
	s.lg.Warn("store: self-heal", log.Fields{"key": key, "reason": reason, "err": cause})
}

// Stats is a snapshot of the store's cumulative metrics.
type Stats struct {
	Hits      int64
	Misses    int64
	SelfHeals int64
	EntrySize metrics.DistributionData
}

func (s *Store[T]) Stats() Stats {
	return Stats{
		Hits:      s.hits.Cumulative(),
		Misses:    s.misses.Cumulative(),
		SelfHeals: s.selfHeals.Cumulative(),
		EntrySize: s.entrySize.Cumulative(),
	}
}
