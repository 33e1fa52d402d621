// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/canonical/community-service/internal/revocation"
	"github.com/canonical/community-service/pkg/authentication"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Manage issued tokens",
}

var revokeTokenCmd = &cobra.Command{
	Use:   "revoke [token]",
	Short: "Revoke an issued token until it expires",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		op, err := newOperator()
		if err != nil {
			return err
		}
		defer op.Close()

		denylist, err := revocation.NewDenylist(
			revocation.Config{
				Driver:        op.specs.DenylistDriver,
				RedisAddr:     op.specs.RedisAddr,
				RedisPassword: op.specs.RedisPassword,
				RedisDB:       op.specs.RedisDB,
			},
			op.storage,
			op.dbClient,
			op.tracer,
			op.monitor,
			op.logger,
		)
		if err != nil {
			return fmt.Errorf("failed to create token denylist: %w", err)
		}
		defer denylist.Close()

		verifier := authentication.NewJWTVerifier(op.specs.TokenSecret, op.specs.TokenIssuer, denylist, op.tracer, op.monitor, op.logger)
		authenticator := authentication.NewAuthenticator(op.storage, nil, nil, verifier, denylist, nil, op.tracer, op.monitor, op.logger)

		if err := authenticator.Revoke(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("failed to revoke token: %w", err)
		}

		fmt.Println("Token revoked")
		return nil
	},
}

func init() {
	tokenCmd.AddCommand(revokeTokenCmd)
	rootCmd.AddCommand(tokenCmd)
}
