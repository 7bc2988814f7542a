package database

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

// Record is anything stored in a collection under an integer id.
type Record interface {
	RecordID() int
}

// Store serializes access to each collection of a Backend. One mutex per
// Kind is held across every load-mutate-save span.
type Store struct {
	backend Backend
	logger  zerolog.Logger
	locks   map[Kind]*sync.Mutex
}

func NewStore(backend Backend, logger zerolog.Logger) *Store {
	locks := make(map[Kind]*sync.Mutex, len(Kinds))
	for _, k := range Kinds {
		locks[k] = &sync.Mutex{}
	}
	return &Store{
		backend: backend,
		logger:  logger.With().Str("component", "store").Logger(),
		locks:   locks,
	}
}

func (s *Store) Close() error {
	return s.backend.Close()
}

func (s *Store) lock(kind Kind) *sync.Mutex {
	mu, ok := s.locks[kind]
	if !ok {
		panic(fmt.Sprintf("database: unknown collection %q", kind))
	}
	return mu
}

// Batch is the in-memory copy of a collection handed to Collection.Update.
type Batch[T Record] struct {
	Records []T
	lastID  int
}

// NextID reserves the next id. Ids never repeat, even after deletes.
func (b *Batch[T]) NextID() int {
	b.lastID++
	return b.lastID
}

// Collection is the typed view of one Kind.
type Collection[T Record] struct {
	store *Store
	kind  Kind
}

func NewCollection[T Record](store *Store, kind Kind) *Collection[T] {
	store.lock(kind)
	return &Collection[T]{store: store, kind: kind}
}

func (c *Collection[T]) Kind() Kind {
	return c.kind
}

// Load returns every record in stored order.
func (c *Collection[T]) Load(ctx context.Context) ([]T, error) {
	mu := c.store.lock(c.kind)
	mu.Lock()
	defer mu.Unlock()

	batch, err := c.read(ctx)
	if err != nil {
		return nil, err
	}
	return batch.Records, nil
}

// Save overwrites the collection with records.
func (c *Collection[T]) Save(ctx context.Context, records []T) error {
	mu := c.store.lock(c.kind)
	mu.Lock()
	defer mu.Unlock()

	batch, err := c.read(ctx)
	if err != nil {
		return err
	}
	batch.Records = records
	return c.write(ctx, batch)
}

// Update runs fn against a fresh copy of the collection and persists the
// result. Nothing is written when fn returns an error.
func (c *Collection[T]) Update(ctx context.Context, fn func(b *Batch[T]) error) error {
	mu := c.store.lock(c.kind)
	mu.Lock()
	defer mu.Unlock()

	batch, err := c.read(ctx)
	if err != nil {
		return err
	}
	if err := fn(batch); err != nil {
		return err
	}
	return c.write(ctx, batch)
}

func (c *Collection[T]) read(ctx context.Context) (*Batch[T], error) {
	snap, err := c.store.backend.Read(ctx, c.kind)
	if err != nil {
		c.store.logger.Error().Err(err).Str("kind", string(c.kind)).Msg("read collection")
		return nil, fmt.Errorf("%w: read %s: %v", ErrStorageUnavailable, c.kind, err)
	}

	records := make([]T, 0)
	if len(bytes.TrimSpace(snap.Data)) > 0 {
		if err := json.Unmarshal(snap.Data, &records); err != nil {
			c.store.logger.Error().Err(err).Str("kind", string(c.kind)).Msg("decode collection")
			return nil, fmt.Errorf("%w: decode %s: %v", ErrStorageUnavailable, c.kind, err)
		}
	}

	if records == nil {
		records = make([]T, 0)
	}
	lastID := snap.LastID
	for _, r := range records {
		lastID = max(lastID, r.RecordID())
	}
	return &Batch[T]{Records: records, lastID: lastID}, nil
}

func (c *Collection[T]) write(ctx context.Context, batch *Batch[T]) error {
	records := batch.Records
	if records == nil {
		records = make([]T, 0)
	}
	for _, r := range records {
		batch.lastID = max(batch.lastID, r.RecordID())
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.kind, err)
	}
	if err := c.store.backend.Write(ctx, c.kind, Snapshot{Data: data, LastID: batch.lastID}); err != nil {
		c.store.logger.Error().Err(err).Str("kind", string(c.kind)).Msg("write collection")
		return fmt.Errorf("%w: write %s: %v", ErrStorageUnavailable, c.kind, err)
	}
	c.store.logger.Debug().Str("kind", string(c.kind)).Int("records", len(records)).Msg("collection saved")
	return nil
}
