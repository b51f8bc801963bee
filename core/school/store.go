package school

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/trezcool/elimu/core"
)

var (
	// errors
	ErrNotFound          = errors.New("object not found")
	ErrUnknownPreference = errors.New("unknown preference")
	ErrBookUnavailable   = core.NewRuleError("book not available")
	ErrAlreadyReturned   = core.NewRuleError("loan already returned")

	preferenceDefaults = map[string]json.RawMessage{
		SlotAuth:       json.RawMessage(`{"isAuthenticated":false,"role":null,"userId":null}`),
		SlotTheme:      json.RawMessage(`false`),
		SlotOnboarding: json.RawMessage(`true`),
	}
)

// Store is the single source of truth: it owns the current Dataset.
// Writers are serialized; every accepted mutation is saved right away.
type Store struct {
	mu       sync.RWMutex
	data     Dataset
	repo     Repository
	logger   core.Logger
	recorder Recorder
}

// NewStore returns a Store holding the seed dataset; call Load to read the saved one.
func NewStore(repo Repository, logger core.Logger, recorder Recorder) *Store {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &Store{
		data:     Seed(),
		repo:     repo,
		logger:   logger,
		recorder: recorder,
	}
}

// Load reads the saved dataset. Missing, unreadable or malformed data is replaced by fresh seed data.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	payload, err := s.repo.LoadSlot(ctx, SlotData)
	if err == nil {
		var data Dataset
		if data, err = decodeDataset(payload); err == nil {
			s.data = data
			return
		}
		s.logger.Warn("stored dataset is malformed, falling back to seed data", err)
	} else if errors.Cause(err) == ErrSlotNotFound {
		s.logger.Info("no stored dataset, starting from seed data")
	} else {
		s.logger.Warn("could not read stored dataset, falling back to seed data", err)
	}
	s.data = Seed()
	s.save(ctx)
}

func decodeDataset(payload []byte) (Dataset, error) {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(payload, &keys); err != nil {
		return Dataset{}, errors.Wrap(err, "decoding dataset")
	}
	if keys == nil {
		return Dataset{}, errors.New("dataset is null")
	}
	for _, c := range Collections {
		if _, ok := keys[string(c)]; !ok {
			return Dataset{}, errors.Errorf("dataset has no %q collection", c)
		}
	}
	var data Dataset
	if err := json.Unmarshal(payload, &data); err != nil {
		return Dataset{}, errors.Wrap(err, "decoding dataset")
	}
	return data.normalize(), nil
}

// Snapshot returns the current dataset. It must be treated as read-only.
func (s *Store) Snapshot() Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data
}

// Blob returns the current dataset exactly as it is saved.
func (s *Store) Blob() ([]byte, error) {
	data, err := json.Marshal(s.Snapshot())
	return data, errors.Wrap(err, "encoding dataset")
}

// Apply runs the mutation `fn` against the current dataset and replaces the collections it returns.
// When fn fails the store is left untouched.
func (s *Store) Apply(ctx context.Context, op string, fn func(d Dataset) ([]Replacement, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	repls, err := fn(s.data)
	if err != nil {
		s.recorder.ObserveMutation(op, err, time.Since(start))
		return err
	}
	s.data = s.data.With(repls...)
	s.save(ctx)
	s.recorder.ObserveMutation(op, nil, time.Since(start))
	return nil
}

// Replace swaps the given collections for their new values.
func (s *Store) Replace(ctx context.Context, repls ...Replacement) {
	_ = s.Apply(ctx, "replace", func(Dataset) ([]Replacement, error) { return repls, nil })
}

// Reset replaces the whole dataset with fresh seed data.
func (s *Store) Reset(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	s.data = Seed()
	s.save(ctx)
	s.recorder.ObserveMutation("reset", nil, time.Since(start))
}

// save writes the dataset; failures are logged and never retried.
func (s *Store) save(ctx context.Context) {
	payload, err := json.Marshal(s.data)
	if err == nil {
		err = s.repo.SaveSlot(ctx, SlotData, payload)
	}
	if err != nil {
		s.logger.Error("saving dataset failed", errors.Wrap(err, "saving dataset"))
	}
	s.recorder.ObserveSave(err)
}

// Preference returns the value saved under one of the preference slots (auth, theme, onboarding).
func (s *Store) Preference(ctx context.Context, key string) (json.RawMessage, error) {
	def, ok := preferenceDefaults[key]
	if !ok {
		return nil, ErrUnknownPreference
	}
	value, err := s.repo.LoadSlot(ctx, key)
	if err != nil {
		if errors.Cause(err) == ErrSlotNotFound {
			return def, nil
		}
		return nil, errors.Wrap(err, "loading preference")
	}
	return value, nil
}

// SetPreference saves `value` (any JSON document) under a preference slot.
func (s *Store) SetPreference(ctx context.Context, key string, value json.RawMessage) error {
	if _, ok := preferenceDefaults[key]; !ok {
		return ErrUnknownPreference
	}
	if !json.Valid(value) {
		return core.NewValidationError(nil, core.FieldError{Field: "value", Error: "must be a JSON document"})
	}
	return errors.Wrap(s.repo.SaveSlot(ctx, key, value), "saving preference")
}
