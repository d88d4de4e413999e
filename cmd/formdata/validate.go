package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formdata"
	"github.com/goliatone/go-formdata/pkg/schema"
)

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <source>...",
		Short: "Check form definitions against the bundled schema and builder rules",
		Args:  a.usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			l := a.loader()
			failed := 0
			for _, raw := range args {
				src := schema.ParseSource(raw)
				if src == nil {
					a.logger.Error("empty source argument")
					failed++
					continue
				}
				a.logger.Debug("loading", "source", src.Location(), "kind", src.Kind())

				f, err := formdata.Load(cmd.Context(), l, src)
				if err != nil {
					failed++
					reportInvalid(a, src.Location(), err)
					continue
				}
				a.logger.Info("valid", "source", src.Location(), "form_id", f.Header().FormID, "elements", f.Len())
			}
			if failed > 0 {
				return &ExitError{Code: 1, Err: fmt.Errorf("%d of %d documents failed validation", failed, len(args))}
			}
			return nil
		},
	}
}

func reportInvalid(a *app, location string, err error) {
	var verr *schema.ValidationError
	if errors.As(err, &verr) {
		for _, issue := range verr.Issues {
			a.logger.Error("schema violation", "source", location, "field", issue.Field, "message", issue.Message)
		}
		return
	}
	a.logger.Error("invalid", "source", location, "err", err)
}
