// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/canonical/community-service/internal/password"
	"github.com/canonical/community-service/internal/types"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage platform users",
}

var createUserCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a platform user not bound to any community",
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		plain, _ := cmd.Flags().GetString("password")
		firstName, _ := cmd.Flags().GetString("first-name")
		lastName, _ := cmd.Flags().GetString("last-name")

		if len(plain) < 8 {
			return fmt.Errorf("password must be at least 8 characters")
		}

		op, err := newOperator()
		if err != nil {
			return err
		}
		defer op.Close()

		hash, err := password.NewHasher(op.specs.BcryptCost).Hash(plain)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}

		user, err := op.storage.CreateUser(cmd.Context(), &types.User{
			Email:        email,
			PasswordHash: hash,
			FirstName:    firstName,
			LastName:     lastName,
		})
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}

		fmt.Printf("User created: %s (ID: %s)\n", user.Email, user.ID)
		return nil
	},
}

func init() {
	createUserCmd.Flags().String("email", "", "login email")
	createUserCmd.Flags().String("password", "", "initial password")
	createUserCmd.Flags().String("first-name", "", "first name")
	createUserCmd.Flags().String("last-name", "", "last name")
	_ = createUserCmd.MarkFlagRequired("email")
	_ = createUserCmd.MarkFlagRequired("password")

	userCmd.AddCommand(createUserCmd)
	rootCmd.AddCommand(userCmd)
}
