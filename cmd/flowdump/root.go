package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/robert-malhotra/go-bloodflow/flow"
	"github.com/robert-malhotra/go-bloodflow/internal/cli"
	"github.com/robert-malhotra/go-bloodflow/internal/logger"
	"github.com/robert-malhotra/go-bloodflow/internal/preview"
	"github.com/robert-malhotra/go-bloodflow/internal/record"
)

type app struct {
	dir       string
	preview   int
	logLevel  zapcore.Level
	logFormat string

	stdout io.Writer
	stderr io.Writer
	log    *zap.Logger
}

func newRootCommand(stdout, stderr io.Writer) (*cobra.Command, error) {
	a := &app{stdout: stdout, stderr: stderr, log: zap.NewNop()}
	cmd := &cobra.Command{
		Use:               "flowdump",
		Short:             "Print a report of a flow analysis dataset directory",
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE:              a.runDataset,
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cli.BindOptions(cli.NewViper(cmd.Name()), cmd, []cli.Opt{
		cli.NewOpt(&a.dir, "dir", ".", "dataset directory"),
		cli.NewOpt(&a.preview, "preview", preview.DefaultLimit, "number of elements shown per array"),
		cli.NewOpt(&a.logLevel, "log-level", zapcore.WarnLevel, "log level: debug, info, warn or error"),
		cli.NewOpt(&a.logFormat, "log-format", "console", "log format: console or json"),
	})
	if err != nil {
		return nil, err
	}
	cmd.AddCommand(a.fileCommand(), a.listCommand(), a.kindsCommand())
	return cmd, nil
}

func (a *app) setup(*cobra.Command, []string) error {
	cfg := logger.NewConfig()
	cfg.Format = a.logFormat
	cfg.Level = a.logLevel
	log, err := cfg.New(a.stderr)
	if err != nil {
		return err
	}
	a.log = log
	return nil
}

func (a *app) options() []flow.Option {
	return []flow.Option{flow.WithPreviewLimit(a.preview), flow.WithLogger(a.log)}
}

func (a *app) runDataset(*cobra.Command, []string) error {
	defer a.log.Sync()
	rep, err := flow.ReadDataset(a.dir, a.options()...)
	if rep == nil {
		return err
	}
	fmt.Fprint(a.stdout, rep.Text())
	return a.failures(err)
}

// failures logs each combined error and summarises them.
func (a *app) failures(err error) error {
	errs := multierr.Errors(err)
	for _, e := range errs {
		a.log.Error("File failed", zap.Error(e))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%d file(s) could not be read", len(errs))
}

func (a *app) fileCommand() *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "file --kind KIND PATH...",
		Short: "Print the report of single files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, paths []string) error {
			defer a.log.Sync()
			k, err := record.ParseKind(kind)
			if err != nil {
				return err
			}
			var errs error
			for _, p := range paths {
				res, err := flow.ReadFile(p, k, a.options()...)
				fmt.Fprint(a.stdout, res.Text)
				errs = multierr.Append(errs, err)
			}
			return a.failures(errs)
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "", "record kind, see the kinds command")
	_ = cmd.MarkFlagRequired("kind")
	return cmd
}

func (a *app) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the files a dataset directory contains",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return flow.Walk(a.dir, func(path string, e flow.Entry, err error) error {
				state := "found"
				switch {
				case errors.Is(err, flow.ErrMissingFile):
					state = "missing"
				case err != nil:
					state = "error"
				}
				kind := "text"
				if !e.Text() {
					kind = e.Kind.String()
				}
				fmt.Fprintf(a.stdout, "%-8s%-22s%s\n", state, kind, path)
				return nil
			})
		},
	}
}

func (a *app) kindsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the record kinds accepted by the file command",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			names := make([]string, 0, len(record.Kinds()))
			for _, k := range record.Kinds() {
				names = append(names, k.String())
			}
			fmt.Fprintln(a.stdout, strings.Join(names, "\n"))
			return nil
		},
	}
}
