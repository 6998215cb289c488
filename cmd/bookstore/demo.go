// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/taibuivan/quantumbooks/internal/core/book"
	"github.com/taibuivan/quantumbooks/internal/demo"
	"github.com/taibuivan/quantumbooks/internal/fulfillment"
	"github.com/taibuivan/quantumbooks/internal/platform/clock"
)

func newDemoCmd() *cobra.Command {
	var (
		maxYearsOld int
		verbose     bool
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Replay the store walkthrough",
		Long: `Demo seeds three books (one per variant), buys each once, then removes
books older than --max-years-old relative to the current year.

Example:
  bookstore demo
  bookstore demo --max-years-old 5 --verbose`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			logger := newLogger(cmd.ErrOrStderr(), level, false)

			out := cmd.OutOrStdout()
			console := fulfillment.NewConsole(out, logger)
			catalog := book.NewCatalog(book.Fulfillment{Shipper: console, Mailer: console})
			service := book.NewService(catalog, clock.System{}, logger, nil)

			ctx := cmd.Context()
			if err := demo.Seed(ctx, service, out); err != nil {
				return err
			}
			return demo.Run(ctx, service, out, maxYearsOld)
		},
	}

	cmd.Flags().IntVar(&maxYearsOld, "max-years-old", demo.DefaultMaxYearsOld, "remove books older than this many years")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log service events to stderr")
	return cmd
}
