package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
)

func newTeamCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "team",
		Short: "Team commands",
	}

	cmd.AddCommand(newTeamListCmd())
	cmd.AddCommand(newTeamGetCmd())

	return cmd
}

func newTeamListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all registered teams",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result TeamList

			if err := client.Get("/api/v1/teams", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newTeamGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <channel>",
		Short: "Get the team bound to a channel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			channel := args[0]

			var result Team

			if err := client.Get(fmt.Sprintf("/api/v1/teams/%s", url.PathEscape(channel)), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newHostRoleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "host-role <guild>",
		Short: "Show the resolved host role for a guild",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			guild := args[0]

			var result HostRoleInfo

			if err := client.Get(fmt.Sprintf("/api/v1/guilds/%s/host-role", url.PathEscape(guild)), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
