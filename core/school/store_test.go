package school

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/elimu/core"
)

func TestStoreLoad(t *testing.T) {
	ctx := context.Background()

	saved := Seed()
	saved.Events = saved.Events[:1]
	savedBlob, _ := json.Marshal(saved)

	tests := []struct {
		name       string
		slot       []byte
		loadErr    error
		wantEvents int
		wantSaved  bool
	}{
		{name: "missing slot", wantEvents: 4, wantSaved: true},
		{name: "stored dataset", slot: savedBlob, wantEvents: 1},
		{name: "not json", slot: []byte("{oops"), wantEvents: 4, wantSaved: true},
		{name: "null", slot: []byte("null"), wantEvents: 4, wantSaved: true},
		{name: "missing collection", slot: []byte(`{"students":[]}`), wantEvents: 4, wantSaved: true},
		{name: "wrong shape", slot: []byte(strings.Replace(string(savedBlob), `"books":[`, `"books":{"x":[`, 1)), wantEvents: 4, wantSaved: true},
		{name: "read error", loadErr: errors.New("disk on fire"), wantEvents: 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMemRepo()
			if tt.slot != nil {
				repo.slots[SlotData] = tt.slot
			}
			repo.loadErr = tt.loadErr

			store := NewStore(repo, &testLogger{}, nil)
			store.Load(ctx)

			assert.Len(t, store.Snapshot().Events, tt.wantEvents)
			if tt.wantSaved {
				assert.Equal(t, 1, repo.saves, "fallback data must be saved")
			} else if tt.loadErr == nil {
				assert.Zero(t, repo.saves)
			}
		})
	}
}

func TestStoreLoadNormalizesNullCollections(t *testing.T) {
	blob := `{"students":null,"teachers":[],"classes":[],"lessonPlans":[],"timetable":[],"exams":[],` +
		`"fees":[],"staff":[],"messages":[],"events":[],"reports":[],"books":[],"bookLoans":[]}`
	repo := newMemRepo()
	repo.slots[SlotData] = []byte(blob)

	store := NewStore(repo, &testLogger{}, nil)
	store.Load(context.Background())

	d := store.Snapshot()
	assert.NotNil(t, d.Students)
	assert.Empty(t, d.Students)
}

func TestStoreApply(t *testing.T) {
	freezeClock(t)
	ctx := context.Background()
	repo := newMemRepo()
	rec := newCountRecorder()
	store := NewStore(repo, &testLogger{}, rec)
	store.Load(ctx)
	repo.saves = 0

	err := store.Apply(ctx, "add_event", func(d Dataset) ([]Replacement, error) {
		_, repls := d.AddEvent(NewEvent{Title: "Music Festival", Date: "05/12/2025", Type: "School Event"})
		return repls, nil
	})
	require.NoError(t, err)
	assert.Len(t, store.Snapshot().Events, 5)
	assert.Equal(t, 1, repo.saves, "every accepted mutation is saved")

	var onDisk Dataset
	require.NoError(t, json.Unmarshal(repo.slots[SlotData], &onDisk))
	assert.Equal(t, "ev5", onDisk.Events[4].ID)
	assert.Equal(t, 5, onDisk.Sequences[string(Events)])

	before := store.Snapshot()
	err = store.Apply(ctx, "issue_loan", func(d Dataset) ([]Replacement, error) {
		return nil, ErrBookUnavailable
	})
	assert.Equal(t, ErrBookUnavailable, err)
	assert.Equal(t, before, store.Snapshot(), "a failed mutation leaves the store untouched")
	assert.Equal(t, 1, repo.saves)

	assert.Equal(t, 1, rec.mutations["add_event"])
	assert.Equal(t, 1, rec.failures)
}

func TestStoreSaveFailureIsLogged(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo()
	logger := &testLogger{}
	rec := newCountRecorder()
	store := NewStore(repo, logger, rec)
	store.Load(ctx)

	repo.saveErr = errors.New("quota exceeded")
	store.Replace(ctx, ReplaceEvents([]Event{}))

	assert.Empty(t, store.Snapshot().Events, "the in-memory dataset keeps the change")
	assert.Equal(t, 1, rec.saveFails)
	require.NotEmpty(t, logger.entries)
	assert.Contains(t, logger.entries[len(logger.entries)-1], "quota exceeded")
}

func TestStoreReset(t *testing.T) {
	ctx := context.Background()
	store, repo, _ := newTestStore(t)

	store.Replace(ctx, ReplaceBooks([]Book{}), ReplaceStudents([]Student{}))
	store.Reset(ctx)
	first, err := store.Blob()
	require.NoError(t, err)
	store.Reset(ctx)
	second, err := store.Blob()
	require.NoError(t, err)

	want, _ := json.Marshal(Seed())
	assert.Equal(t, want, first)
	assert.Equal(t, first, second)
	assert.Equal(t, want, repo.slots[SlotData])
}

func TestStorePreferences(t *testing.T) {
	ctx := context.Background()
	store, _, _ := newTestStore(t)

	value, err := store.Preference(ctx, SlotTheme)
	require.NoError(t, err)
	assert.JSONEq(t, "false", string(value))

	require.NoError(t, store.SetPreference(ctx, SlotTheme, json.RawMessage("true")))
	value, err = store.Preference(ctx, SlotTheme)
	require.NoError(t, err)
	assert.JSONEq(t, "true", string(value))

	auth := json.RawMessage(`{"isAuthenticated":true,"role":"Admin","userId":"admin"}`)
	require.NoError(t, store.SetPreference(ctx, SlotAuth, auth))
	value, err = store.Preference(ctx, SlotAuth)
	require.NoError(t, err)
	assert.JSONEq(t, string(auth), string(value))

	_, err = store.Preference(ctx, SlotData)
	assert.Equal(t, ErrUnknownPreference, err, "the dataset is not a preference")
	assert.Equal(t, ErrUnknownPreference, store.SetPreference(ctx, "sms_other", json.RawMessage("1")))

	err = store.SetPreference(ctx, SlotOnboarding, json.RawMessage("{nope"))
	_, ok := err.(*core.ValidationError)
	assert.True(t, ok, "invalid JSON is a validation error")
}
