// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command bookstore runs the Quantum book store: the HTTP API, the scripted
// walkthrough, and staff token minting.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/taibuivan/quantumbooks/internal/platform/constants"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "bookstore",
		Short: "Quantum book store inventory",
		Long: `Quantum book store keeps a catalog of physical, digital and display-only
books. It can serve the catalog over HTTP, replay the store walkthrough, and
mint staff tokens for the inventory management routes.`,
		Version:       constants.AppVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newDemoCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newTokenCmd())
	root.AddCommand(newVersionCmd())
	return root
}

// newLogger builds the process logger. JSON goes to w so it can be shipped;
// the app attribute tags every record.
func newLogger(w io.Writer, level slog.Level, json bool) *slog.Logger {
	options := &slog.HandlerOptions{Level: level}

	var handler slog.Handler = slog.NewTextHandler(w, options)
	if json {
		handler = slog.NewJSONHandler(w, options)
	}
	return slog.New(handler).With(slog.String("app", constants.AppName))
}
