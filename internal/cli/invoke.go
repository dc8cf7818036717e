package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func newInvokeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invoke",
		Short: "Submit an invocation through the debug endpoint",
	}

	cmd.AddCommand(newInvokePingCmd())
	cmd.AddCommand(newInvokeFileCmd())

	return cmd
}

func newInvokePingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Send a ping invocation",
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]any{
				"id":      "teamctl-ping",
				"command": "ping",
			}

			var result InvokeResult

			if err := client.Post("/api/v1/invoke", body, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newInvokeFileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "file <path>",
		Short: "Send an invocation read from a JSON file (use - for stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var data []byte
			var err error

			if args[0] == "-" {
				data, err = io.ReadAll(os.Stdin)
			} else {
				data, err = os.ReadFile(args[0])
			}
			if err != nil {
				return fmt.Errorf("failed to read invocation: %w", err)
			}

			var body map[string]any
			if err := json.Unmarshal(data, &body); err != nil {
				return fmt.Errorf("invalid invocation JSON: %w", err)
			}

			var result InvokeResult

			if err := client.Post("/api/v1/invoke", body, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
