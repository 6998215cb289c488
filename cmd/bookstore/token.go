// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/taibuivan/quantumbooks/internal/platform/config"
	"github.com/taibuivan/quantumbooks/internal/platform/constants"
	"github.com/taibuivan/quantumbooks/internal/platform/sec"
)

func newTokenCmd() *cobra.Command {
	var (
		subject string
		role    string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token signed with STAFF_TOKEN_SECRET",
		Long: `Token prints a signed JWT for the inventory management routes.

Example:
  STAFF_TOKEN_SECRET=s3cret bookstore token --subject alice
  STAFF_TOKEN_SECRET=s3cret bookstore token --subject bob --role customer --ttl 15m`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if r := sec.Role(role); r != sec.RoleStaff && r != sec.RoleCustomer {
				return fmt.Errorf("token: unknown role %q", role)
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			tokens, err := sec.NewTokenService(cfg.StaffTokenSecret, constants.AuthIssuer)
			if err != nil {
				return fmt.Errorf("token: STAFF_TOKEN_SECRET must be set: %w", err)
			}

			signed, err := tokens.GenerateToken(subject, sec.Role(role), ttl)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), signed)
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "who the token is issued to (required)")
	cmd.Flags().StringVar(&role, "role", string(sec.RoleStaff), "role claim (staff or customer)")
	cmd.Flags().DurationVar(&ttl, "ttl", constants.DefaultStaffTokenTTL, "token lifetime")
	_ = cmd.MarkFlagRequired("subject")
	return cmd
}
