package exportsvc

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/trezcool/elimu/core"
	"github.com/trezcool/elimu/storage/blob"
)

// DownloadName is the file name of an on-demand export.
const DownloadName = "sms_data.json"

// Source is anything holding the current dataset blob.
type Source interface {
	Blob() ([]byte, error)
}

type Exporter struct {
	source Source
	sink   blob.Sink
	logger core.Logger
	now    func() time.Time
}

func NewExporter(source Source, sink blob.Sink, logger core.Logger) *Exporter {
	return &Exporter{source: source, sink: sink, logger: logger, now: time.Now}
}

// DocumentName returns a unique name for a document exported at `at`.
func DocumentName(at time.Time) string {
	return "sms_data-" + at.UTC().Format("20060102T150405") + "-" + uuid.NewString() + ".json"
}

// Export writes the current dataset blob, unmodified, to the sink and returns its location.
func (e *Exporter) Export(ctx context.Context) (string, error) {
	payload, err := e.source.Blob()
	if err != nil {
		return "", errors.Wrap(err, "exporting dataset")
	}
	loc, err := e.sink.Put(ctx, DocumentName(e.now()), payload)
	if err != nil {
		return "", errors.Wrap(err, "exporting dataset")
	}
	e.logger.Info("dataset exported", map[string]interface{}{"location": loc, "bytes": len(payload)})
	return loc, nil
}
