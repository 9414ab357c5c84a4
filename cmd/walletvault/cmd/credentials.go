package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jmswanson/walletvault/internal/domain/model"
)

// parseRecordArg decodes a CLI JSON argument into a credential record. Only a
// JSON object is accepted; primitives, arrays, and null are rejected before
// they reach the vault.
func parseRecordArg(arg string) (model.CredentialRecord, error) {
	var record model.CredentialRecord
	if err := json.Unmarshal([]byte(arg), &record); err != nil {
		return nil, fmt.Errorf("argument must be a JSON object: %w", err)
	}
	if record == nil {
		return nil, fmt.Errorf("argument must be a JSON object, not null")
	}
	return record, nil
}

var setCmd = &cobra.Command{
	Use:   "set <json>",
	Short: "Store a credential record, replacing any existing one",
	Long: `Store a credential record, fully overwriting the current slot contents.

The argument is a JSON object; conventional fields are address, privateKey,
and token, but any JSON-representable fields are accepted.

Examples:
  walletvault set '{"address":"0xABC","token":"tok1"}'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		record, err := parseRecordArg(args[0])
		if err != nil {
			return err
		}
		if err := vault.Set(cmd.Context(), record); err != nil {
			return err
		}
		color.Green("Credentials stored.")
		return nil
	},
}

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the stored credential record",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		record, err := vault.Get(cmd.Context())
		if err != nil {
			return err
		}
		if record == nil {
			fmt.Println("No credentials stored.")
			return nil
		}
		return formatOutput(record)
	},
}

var fieldCmd = &cobra.Command{
	Use:   "field <name>",
	Short: "Print a single field of the stored credential record",
	Long: `Print a single field of the stored credential record.

A field holding a falsy value (false, 0, "") is reported as absent, the same
as a field that was never stored.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, ok, err := vault.GetField(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if !ok {
			fmt.Printf("Field %q is absent.\n", args[0])
			return nil
		}
		return formatOutput(map[string]any{args[0]: value})
	},
}

var updateCmd = &cobra.Command{
	Use:   "update <json>",
	Short: "Merge fields into the stored credential record",
	Long: `Shallow-merge the given fields into the stored credential record:
named fields overwrite, unnamed fields are preserved. With no record stored,
this behaves like set.

Examples:
  walletvault update '{"token":"tok2"}'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		partial, err := parseRecordArg(args[0])
		if err != nil {
			return err
		}
		if err := vault.Update(cmd.Context(), partial); err != nil {
			return err
		}
		color.Green("Credentials updated.")
		return nil
	},
}

var removeCmd = &cobra.Command{
	Use:   "remove",
	Short: "Delete the stored credential record",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := vault.Remove(cmd.Context()); err != nil {
			return err
		}
		color.Green("Credentials removed.")
		return nil
	},
}

var existsCmd = &cobra.Command{
	Use:   "exists",
	Short: "Report whether a credential record is stored",
	Long: `Report whether the storage slot holds a value. This check is
best-effort: an inaccessible backend reads as false.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(vault.Exists(cmd.Context()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(fieldCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(existsCmd)
}
