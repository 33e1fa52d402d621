// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/canonical/community-service/pkg/provisioning"
)

var communityCmd = &cobra.Command{
	Use:   "community",
	Short: "Manage communities",
}

var createCommunityCmd = &cobra.Command{
	Use:   "create",
	Short: "Provision a community for an existing unbound user",
	RunE: func(cmd *cobra.Command, args []string) error {
		domain, _ := cmd.Flags().GetString("domain")
		name, _ := cmd.Flags().GetString("name")
		ownerEmail, _ := cmd.Flags().GetString("owner-email")

		op, err := newOperator()
		if err != nil {
			return err
		}
		defer op.Close()

		defaults := provisioning.NewDefaults(op.specs.DefaultLocale, op.specs.DefaultCurrency, op.specs.DefaultCountry)
		if err := defaults.Validate(); err != nil {
			return fmt.Errorf("invalid community defaults: %w", err)
		}

		ctx := cmd.Context()
		owner, err := op.storage.GetUserByEmail(ctx, ownerEmail)
		if err != nil {
			return fmt.Errorf("failed to look up owner %s: %w", ownerEmail, err)
		}

		provisioner := provisioning.NewProvisioner(op.storage, op.dbClient, defaults, op.tracer, op.monitor, op.logger)
		community, err := provisioner.Provision(ctx, owner, domain, name)
		if err != nil {
			return fmt.Errorf("failed to create community: %w", err)
		}

		fmt.Printf("Community created: %s (ID: %s, domain: %s)\n", community.Name, community.ID, community.Domain)
		return nil
	},
}

var listCommunitiesCmd = &cobra.Command{
	Use:   "list",
	Short: "List communities",
	RunE: func(cmd *cobra.Command, args []string) error {
		page, _ := cmd.Flags().GetInt64("page")
		size, _ := cmd.Flags().GetInt64("size")

		op, err := newOperator()
		if err != nil {
			return err
		}
		defer op.Close()

		communities, err := op.storage.ListCommunities(cmd.Context(), page, size)
		if err != nil {
			return fmt.Errorf("failed to list communities: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tDOMAIN\tENABLED\tCREATED_AT")
		for _, c := range communities {
			fmt.Fprintf(w, "%s\t%s\t%s\t%v\t%s\n", c.ID, c.Name, c.Domain, c.Enabled, c.CreatedAt)
		}
		w.Flush()
		return nil
	},
}

func communityStatusCmd(use, short string, enabled bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [id]",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := newOperator()
			if err != nil {
				return err
			}
			defer op.Close()

			if err := op.storage.SetCommunityStatus(cmd.Context(), args[0], enabled); err != nil {
				return fmt.Errorf("failed to %s community: %w", use, err)
			}

			fmt.Printf("Community %sd: %s\n", use, args[0])
			return nil
		},
	}
}

var deleteCommunityCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a community and its site content",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		op, err := newOperator()
		if err != nil {
			return err
		}
		defer op.Close()

		if err := op.storage.DeleteCommunity(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("failed to delete community: %w", err)
		}

		fmt.Printf("Community deleted: %s\n", args[0])
		return nil
	},
}

func init() {
	createCommunityCmd.Flags().String("domain", "", "host the community site is served on")
	createCommunityCmd.Flags().String("name", "", "community display name")
	createCommunityCmd.Flags().String("owner-email", "", "email of the user that will own the community")
	_ = createCommunityCmd.MarkFlagRequired("domain")
	_ = createCommunityCmd.MarkFlagRequired("name")
	_ = createCommunityCmd.MarkFlagRequired("owner-email")

	listCommunitiesCmd.Flags().Int64("page", 1, "page number")
	listCommunitiesCmd.Flags().Int64("size", 100, "page size")

	communityCmd.AddCommand(createCommunityCmd)
	communityCmd.AddCommand(listCommunitiesCmd)
	communityCmd.AddCommand(communityStatusCmd("enable", "Enable a community", true))
	communityCmd.AddCommand(communityStatusCmd("disable", "Disable a community", false))
	communityCmd.AddCommand(deleteCommunityCmd)
	rootCmd.AddCommand(communityCmd)
}
