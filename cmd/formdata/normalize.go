package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formdata"
	"github.com/goliatone/go-formdata/pkg/schema"
)

func newNormalizeCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "normalize <source>",
		Short: "Print the canonical JSON form of a JSON or YAML definition",
		Args:  a.usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := schema.ParseSource(args[0])
			if src == nil {
				return a.fail(2, errors.New("source is required"))
			}
			f, err := formdata.Load(cmd.Context(), a.loader(), src)
			if err != nil {
				reportInvalid(a, src.Location(), err)
				return &ExitError{Code: 1, Err: err}
			}
			data, err := f.ToJSON()
			if err != nil {
				return a.fail(1, err)
			}
			return a.write(output, data)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	return cmd
}

func (a *app) write(output string, data []byte) error {
	if output == "" {
		_, err := fmt.Fprintln(a.stdout, string(data))
		return err
	}
	if err := os.WriteFile(output, append(data, '\n'), 0o644); err != nil {
		return a.fail(1, fmt.Errorf("write output: %w", err))
	}
	a.logger.Info("written", "path", output, "bytes", len(data)+1)
	return nil
}
