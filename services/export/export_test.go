package exportsvc

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/elimu/core/school"
	"github.com/trezcool/elimu/storage/blob"
	"github.com/trezcool/elimu/storage/inmem"
)

type testLogger struct {
	entries []string
}

func (l *testLogger) Debug(msg string, _ ...interface{}) { l.entries = append(l.entries, msg) }
func (l *testLogger) Info(msg string, _ ...interface{})  { l.entries = append(l.entries, msg) }
func (l *testLogger) Warn(msg string, _ ...interface{})  { l.entries = append(l.entries, msg) }
func (l *testLogger) Error(msg string, _ ...interface{}) { l.entries = append(l.entries, msg) }
func (l *testLogger) Fatal(msg string, _ ...interface{}) { l.entries = append(l.entries, msg) }

type failingSink struct{}

func (failingSink) Put(context.Context, string, []byte) (string, error) {
	return "", errors.New("bucket gone")
}

func newTestStore() *school.Store {
	store := school.NewStore(inmem.NewSlotRepository(inmem.Open()), &testLogger{}, nil)
	store.Load(context.Background())
	return store
}

func TestDocumentName(t *testing.T) {
	at := time.Date(2025, 11, 15, 10, 30, 0, 0, time.UTC)
	name := DocumentName(at)
	assert.Regexp(t, regexp.MustCompile(`^sms_data-20251115T103000-[0-9a-f-]{36}\.json$`), name)
	assert.NotEqual(t, name, DocumentName(at))
}

func TestExport(t *testing.T) {
	store := newTestStore()
	dir := t.TempDir()
	logger := &testLogger{}
	exp := NewExporter(store, blob.NewFSSink(dir), logger)

	loc, err := exp.Export(context.Background())
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(loc))

	got, err := os.ReadFile(loc)
	require.NoError(t, err)
	want, err := store.Blob()
	require.NoError(t, err)
	assert.Equal(t, want, got, "the export is the stored blob, unmodified")
	assert.Contains(t, logger.entries, "dataset exported")
}

func TestExportFailure(t *testing.T) {
	exp := NewExporter(newTestStore(), failingSink{}, &testLogger{})
	_, err := exp.Export(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bucket gone")
}

func TestScheduler(t *testing.T) {
	logger := &testLogger{}

	_, err := NewScheduler(NewExporter(newTestStore(), failingSink{}, logger), "every tuesday", logger)
	assert.Error(t, err, "invalid cron spec")

	sched, err := NewScheduler(NewExporter(newTestStore(), failingSink{}, logger), "0 2 * * *", logger)
	require.NoError(t, err)
	require.Len(t, sched.cron.Entries(), 1)

	sched.run()
	assert.Contains(t, logger.entries, "scheduled export failed")

	sched.Start()
	<-sched.Stop().Done()
}

func TestPairs(t *testing.T) {
	assert.Equal(t, map[string]interface{}{"now": 1, "entry": 2}, pairs([]interface{}{"now", 1, "entry", 2, "dangling"}))
}
