package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/dwizi/dandi/internal/config"
	"github.com/dwizi/dandi/internal/dashboard"
	"github.com/dwizi/dandi/internal/keyclient"
)

func newKeysCommand(logger *slog.Logger) *cobra.Command {
	_ = logger
	var timeoutSec int

	cmd := &cobra.Command{
		Use:     "keys",
		Aliases: []string{"key"},
		Short:   "Manage API keys via the key API",
	}
	cmd.PersistentFlags().IntVar(&timeoutSec, "timeout-sec", 30, "request timeout in seconds")

	cmd.AddCommand(newKeysListCommand(&timeoutSec))
	cmd.AddCommand(newKeysCreateCommand(&timeoutSec))
	cmd.AddCommand(newKeysUpdateCommand(&timeoutSec))
	cmd.AddCommand(newKeysDeleteCommand(&timeoutSec))
	return cmd
}

func newKeysListCommand(timeoutSec *int) *cobra.Command {
	var reveal bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List API keys, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newKeyClientFromEnv(*timeoutSec)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(context.Background(), boundedTimeout(*timeoutSec))
			defer cancel()

			keys, err := client.List(ctx)
			if err != nil {
				return fmt.Errorf("list keys: %w", err)
			}
			if len(keys) == 0 {
				cmd.Println("No API keys found.")
				return nil
			}
			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(writer, "ID\tNAME\tUSAGE\tKEY")
			for _, key := range keys {
				fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n", key.ID, key.Name, humanize.Comma(key.Usage), dashboard.Display(key, reveal))
			}
			return writer.Flush()
		},
	}
	cmd.Flags().BoolVar(&reveal, "reveal", false, "print key values instead of masks")
	return cmd
}

func newKeysCreateCommand(timeoutSec *int) *cobra.Command {
	var (
		name  string
		value string
		usage int64
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an API key; the server generates a value when none is given",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(name) == "" {
				return fmt.Errorf("--name is required")
			}
			if usage < 0 {
				return fmt.Errorf("--usage must be non-negative")
			}
			client, err := newKeyClientFromEnv(*timeoutSec)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(context.Background(), boundedTimeout(*timeoutSec))
			defer cancel()

			created, err := client.Create(ctx, keyclient.Draft{Name: name, Value: value, Usage: usage})
			if err != nil {
				return fmt.Errorf("create key: %w", err)
			}
			cmd.Printf("Created key: %s\n", created.ID)
			cmd.Printf("Name: %s\n", created.Name)
			cmd.Printf("Value: %s\n", created.Value)
			cmd.Printf("Usage: %s\n", humanize.Comma(created.Usage))
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "key name")
	cmd.Flags().StringVar(&value, "value", "", "key value (blank to auto-generate)")
	cmd.Flags().Int64Var(&usage, "usage", 0, "initial usage counter")
	return cmd
}

func newKeysUpdateCommand(timeoutSec *int) *cobra.Command {
	var (
		name  string
		value string
		usage int64
	)
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an API key; unset flags keep their current values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := keyclient.KeyID(strings.TrimSpace(args[0]))
			client, err := newKeyClientFromEnv(*timeoutSec)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(context.Background(), boundedTimeout(*timeoutSec))
			defer cancel()

			keys, err := client.List(ctx)
			if err != nil {
				return fmt.Errorf("load key: %w", err)
			}
			current, ok := findKey(keys, id)
			if !ok {
				return fmt.Errorf("api key %s not found", id)
			}
			draft := keyclient.Draft{Name: current.Name, Value: current.Value, Usage: current.Usage}
			if cmd.Flags().Changed("name") {
				draft.Name = name
			}
			if cmd.Flags().Changed("value") {
				draft.Value = value
			}
			if cmd.Flags().Changed("usage") {
				if usage < 0 {
					return fmt.Errorf("--usage must be non-negative")
				}
				draft.Usage = usage
			}
			if strings.TrimSpace(draft.Name) == "" {
				return fmt.Errorf("--name cannot be blank")
			}

			updated, err := client.Update(ctx, id, draft)
			if err != nil {
				return fmt.Errorf("update key: %w", err)
			}
			cmd.Printf("Updated key: %s\n", updated.ID)
			cmd.Printf("Name: %s\n", updated.Name)
			cmd.Printf("Usage: %s\n", humanize.Comma(updated.Usage))
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "new key name")
	cmd.Flags().StringVar(&value, "value", "", "new key value")
	cmd.Flags().Int64Var(&usage, "usage", 0, "new usage counter")
	return cmd
}

func newKeysDeleteCommand(timeoutSec *int) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete an API key",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := keyclient.KeyID(strings.TrimSpace(args[0]))
			client, err := newKeyClientFromEnv(*timeoutSec)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(context.Background(), boundedTimeout(*timeoutSec))
			defer cancel()

			if err := client.Delete(ctx, id); err != nil {
				return fmt.Errorf("delete key: %w", err)
			}
			cmd.Printf("Deleted key: %s\n", id)
			return nil
		},
	}
}

func findKey(keys []keyclient.APIKey, id keyclient.KeyID) (keyclient.APIKey, bool) {
	for _, key := range keys {
		if key.ID == id {
			return key, true
		}
	}
	return keyclient.APIKey{}, false
}

func newKeyClientFromEnv(timeoutSec int) (*keyclient.Client, error) {
	cfg := config.FromEnv()
	client, err := keyclient.New(cfg)
	if err != nil {
		return nil, err
	}
	return client.WithTimeout(boundedTimeout(timeoutSec)), nil
}

func boundedTimeout(input int) time.Duration {
	if input < 1 {
		input = 30
	}
	if input > 600 {
		input = 600
	}
	return time.Duration(input) * time.Second
}
