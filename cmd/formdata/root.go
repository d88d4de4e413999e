package main

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formdata"
	"github.com/goliatone/go-formdata/pkg/loader"
)

// Version is set via -ldflags.
var Version = "dev"

type app struct {
	stdout io.Writer
	logger *log.Logger

	verbose     bool
	allowHTTP   bool
	httpTimeout time.Duration
	maxBytes    int64
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{
		stdout: stdout,
		logger: log.NewWithOptions(stderr, log.Options{Prefix: "formdata"}),
	}

	root := &cobra.Command{
		Use:           "formdata",
		Short:         "Validate and normalize HTML5 form definitions",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          a.usageArgs(cobra.NoArgs),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if a.verbose {
				a.logger.SetLevel(log.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return a.usage(cmd, err)
	})

	flags := root.PersistentFlags()
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	flags.BoolVar(&a.allowHTTP, "allow-http", false, "allow http(s) sources")
	flags.DurationVar(&a.httpTimeout, "http-timeout", 10*time.Second, "timeout for remote sources")
	flags.Int64Var(&a.maxBytes, "max-bytes", loader.DefaultMaxBytes, "maximum document size in bytes")

	root.AddCommand(
		newValidateCmd(a),
		newNormalizeCmd(a),
		newSchemaCmd(a),
		newExampleCmd(a),
	)
	return root
}

func (a *app) loader() loader.Loader {
	options := []loader.LoaderOption{loader.WithMaxBytes(a.maxBytes)}
	if a.allowHTTP {
		options = append(options, loader.WithHTTPFallback(a.httpTimeout))
	}
	return formdata.NewLoader(options...)
}

// usageArgs wraps a cobra argument validator so violations exit with code 2.
func (a *app) usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return a.usage(cmd, err)
		}
		return nil
	}
}

func (a *app) usage(cmd *cobra.Command, err error) error {
	a.logger.Error(err.Error(), "usage", cmd.UseLine())
	return &ExitError{Code: 2, Err: err}
}

// fail logs err and converts it into an ExitError so main picks the code.
func (a *app) fail(code int, err error) error {
	a.logger.Error(err.Error())
	return &ExitError{Code: code, Err: err}
}
