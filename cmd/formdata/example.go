package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formdata"
	"github.com/goliatone/go-formdata/internal/samples"
)

func newExampleCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:       "example <" + strings.Join(samples.Names(), "|") + ">",
		Short:     "Print a built-in sample form",
		Args:      a.usageArgs(cobra.ExactArgs(1)),
		ValidArgs: samples.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := samples.Build(args[0])
			if err != nil {
				return a.fail(2, err)
			}
			if result := formdata.Validate(f); !result.Valid {
				return a.fail(1, fmt.Errorf("sample %s: %w", args[0], result.Err()))
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
