package main

import (
	"bytes"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formdata"
	"github.com/goliatone/go-formdata/pkg/schema"
)

func newSchemaCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the bundled JSON Schema",
		Args:  a.usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.logger.Debug("bundled schema", "file", schema.FileName, "version", schema.Version)
			return a.write(output, bytes.TrimRight(formdata.Schema(), "\n"))
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	return cmd
}
