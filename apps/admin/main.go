package main

import (
	"context"
	"log"
	"os"

	dig_container "github.com/trezcool/elimu/apps/api/di/dig"
	"github.com/trezcool/elimu/core"
	"github.com/trezcool/elimu/core/school"
	exportsvc "github.com/trezcool/elimu/services/export"
	"github.com/trezcool/elimu/storage/blob"
)

var logger *log.Logger

func main() {
	logger = log.New(os.Stderr, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	c := dig_container.New()

	var code int
	err := c.Invoke(func(conf *core.Config, appLogger core.Logger, store *school.Store, closeStorage dig_container.StorageCloser) {
		defer func() {
			if err := closeStorage(); err != nil {
				logger.Printf("closing storage: %v", err)
			}
		}()

		cli := commandLine{
			store: store,
			newExporter: func() (*exportsvc.Exporter, error) {
				sink, err := blob.Open(context.Background(), conf.Export)
				if err != nil {
					return nil, err
				}
				return exportsvc.NewExporter(store, sink, appLogger), nil
			},
			out: os.Stdout,
		}
		if err := cli.run(os.Args); err != nil {
			if err != errHelp {
				logger.Printf("\nerror: %s\n", err)
			}
			code = 1
		}
	})
	if err != nil {
		logger.Fatal(err)
	}
	os.Exit(code)
}
