package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
)

func (cli *commandLine) exportToFile(path string) error {
	blob, err := cli.store.Blob()
	if err != nil {
		return errors.Wrap(err, "encoding dataset")
	}
	if path == "-" {
		_, err = cli.out.Write(append(blob, '\n'))
		return err
	}
	if err := os.WriteFile(path, blob, 0o600); err != nil {
		return errors.Wrap(err, "writing export")
	}
	fmt.Fprintf(cli.out, "dataset written to %s\n", path)
	return nil
}

func (cli *commandLine) exportToSink() error {
	exporter, err := cli.newExporter()
	if err != nil {
		return err
	}
	loc, err := exporter.Export(context.Background())
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "dataset exported to %s\n", loc)
	return nil
}
