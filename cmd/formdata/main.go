// Command formdata validates, normalizes, and prints HTML5 form definitions.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := newRootCmd(os.Stdout, os.Stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		log.NewWithOptions(os.Stderr, log.Options{Prefix: "formdata"}).Error(err.Error())
		os.Exit(1)
	}
}
