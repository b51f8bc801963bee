package dig_container

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	echoapi "github.com/trezcool/elimu/apps/api/echo"
	"github.com/trezcool/elimu/core"
	"github.com/trezcool/elimu/core/school"
	exportsvc "github.com/trezcool/elimu/services/export"
)

func TestContainer(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name          string
		configure     func(conf *core.Config)
		wantScheduler bool
	}{
		{name: "memory", configure: func(conf *core.Config) {}},
		{
			name: "sqlite with schedule",
			configure: func(conf *core.Config) {
				conf.Storage = core.StorageConfig{Engine: "sqlite", Path: dir + "/elimu.db"}
				conf.Export.Schedule = "@daily"
			},
			wantScheduler: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewWithConfig(func() *core.Config {
				conf := core.NewTestConfig()
				conf.Export.Dir = dir
				tt.configure(conf)
				return conf
			})

			err := c.Invoke(func(server *echoapi.Server, store *school.Store, scheduler *exportsvc.Scheduler, closeStorage StorageCloser) {
				assert.NotNil(t, server)
				assert.Len(t, store.Snapshot().Students, 5)
				assert.Equal(t, tt.wantScheduler, scheduler != nil)
				if scheduler != nil {
					scheduler.Start()
					<-scheduler.Stop().Done()
				}
				assert.NoError(t, closeStorage())
			})
			require.NoError(t, err)
		})
	}
}

func TestContainerRejectsUnknownEngine(t *testing.T) {
	c := NewWithConfig(func() *core.Config {
		conf := core.NewTestConfig()
		conf.Storage.Engine = "oracle"
		return conf
	})
	err := c.Invoke(func(*school.Store) {})
	assert.Error(t, err)
}

func TestContainerExporterWritesToSink(t *testing.T) {
	dir := t.TempDir()
	c := NewWithConfig(func() *core.Config {
		conf := core.NewTestConfig()
		conf.Export.Dir = dir
		return conf
	})
	require.NoError(t, c.Invoke(func(exporter *exportsvc.Exporter) {
		loc, err := exporter.Export(context.Background())
		require.NoError(t, err)
		assert.FileExists(t, loc)
	}))
}
