package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/trezcool/elimu/core/curriculum"
	"github.com/trezcool/elimu/core/school"
	exportsvc "github.com/trezcool/elimu/services/export"
)

var (
	confirmFunc = confirm // mockable

	errHelp         = errors.New("help provided")
	errNotConfirmed = errors.New("aborted: not confirmed")
)

type commandLine struct {
	store       *school.Store
	newExporter func() (*exportsvc.Exporter, error)
	out         io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  reset [-yes]                 - replace all data with the demo dataset")
	fmt.Fprintln(cli.out, "  export -out FILE | -sink     - write the dataset to FILE (- for stdout) or to the configured export sink")
	fmt.Fprintln(cli.out, "  stats [-level LEVEL]         - print dashboard figures")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	resetCmd := flag.NewFlagSet("reset", flag.ContinueOnError)
	resetYes := resetCmd.Bool("yes", false, "Do not ask for confirmation.")

	exportCmd := flag.NewFlagSet("export", flag.ContinueOnError)
	exportOut := exportCmd.String("out", "", "The file to write the dataset to, - for stdout.")
	exportSink := exportCmd.Bool("sink", false, "Send the dataset to the configured export sink.")

	statsCmd := flag.NewFlagSet("stats", flag.ContinueOnError)
	statsLevel := statsCmd.String("level", "", "Restrict class and subject counts to an education level.")

	switch args[1] {
	case "reset":
		if err := resetCmd.Parse(args[2:]); err != nil {
			return err
		}
		if !*resetYes {
			ok, err := confirmFunc("Replace ALL data with the demo dataset?")
			if err != nil {
				return err
			}
			if !ok {
				return errNotConfirmed
			}
		}
		return cli.reset()
	case "export":
		if err := exportCmd.Parse(args[2:]); err != nil {
			return err
		}
		if (*exportOut == "") == !*exportSink {
			exportCmd.Usage()
			return errHelp
		}
		if *exportSink {
			return cli.exportToSink()
		}
		return cli.exportToFile(*exportOut)
	case "stats":
		if err := statsCmd.Parse(args[2:]); err != nil {
			return err
		}
		level := curriculum.Level(*statsLevel)
		if level != "" && !level.Valid() {
			return fmt.Errorf("unknown education level %q", level)
		}
		return cli.stats(level)
	default:
		cli.printUsage()
		return errHelp
	}
}

// confirm asks a yes/no question on the terminal; anything but y/yes is a no.
func confirm(question string) (bool, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return false, errors.New("stdin is not a terminal, use -yes")
	}
	fmt.Printf("%s [y/N] ", question)
	answer, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

func (cli *commandLine) reset() error {
	cli.store.Reset(context.Background())
	fmt.Fprintln(cli.out, "dataset reset to the demo data")
	return nil
}
