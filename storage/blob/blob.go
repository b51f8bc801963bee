// Package blob stores exported documents outside the application: on the local filesystem or in an S3 bucket.
package blob

import (
	"context"

	"github.com/pkg/errors"

	"github.com/trezcool/elimu/core"
)

// sink kinds
const (
	FS = "fs"
	S3 = "s3"
)

var ErrUnknownSink = errors.New("unknown export sink")

// Sink writes a document under `name` and returns where it ended up.
type Sink interface {
	Put(ctx context.Context, name string, payload []byte) (string, error)
}

// Open returns the sink selected by the export configuration.
func Open(ctx context.Context, conf core.ExportConfig) (Sink, error) {
	switch conf.Sink {
	case FS, "":
		return NewFSSink(conf.Dir), nil
	case S3:
		return NewS3Sink(ctx, conf)
	}
	return nil, errors.Wrapf(ErrUnknownSink, "%q", conf.Sink)
}
