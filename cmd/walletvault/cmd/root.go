// Package cmd implements the walletvault CLI commands.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmswanson/walletvault/internal/adapter/driven/aesgcm"
	"github.com/jmswanson/walletvault/internal/adapter/driven/filecell"
	"github.com/jmswanson/walletvault/internal/adapter/driven/keyringcell"
	"github.com/jmswanson/walletvault/internal/adapter/driven/memcell"
	sqliteadapter "github.com/jmswanson/walletvault/internal/adapter/driven/sqlite"
	"github.com/jmswanson/walletvault/internal/application"
	"github.com/jmswanson/walletvault/internal/config"
	"github.com/jmswanson/walletvault/internal/domain/port/driven"
)

var (
	// Version is set at build time.
	Version = "0.1.0"

	// Global flags
	outputFormat string

	// Shared vault instance wired in PersistentPreRunE.
	vault *application.CredentialService

	// sqliteDB is non-nil when the sqlite backend is selected; closed in
	// PersistentPostRun.
	sqliteDB *sqliteadapter.DB
)

var rootCmd = &cobra.Command{
	Use:   "walletvault",
	Short: "Encrypted single-slot credential store",
	Long: `walletvault keeps one credential record (wallet address, private key,
auth token) encrypted at rest under a shared secret.

The record lives in a single storage slot backed by a memory, file, sqlite,
or OS-keyring cell, selected with WALLETVAULT_BACKEND. The secret comes from
WALLETVAULT_SECRET_KEY.`,
	Version:      Version,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip vault initialization for commands that don't touch the store.
		if cmd.Name() == "completion" || cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		cell, err := buildCell(cfg)
		if err != nil {
			return err
		}

		cipher, err := buildCipher(cfg)
		if err != nil {
			return err
		}

		warnDefaultKey := cfg.UsesDefaultSecretKey() && cfg.IsProduction
		vault = application.NewCredentialService(cell, cipher, slog.Default(), warnDefaultKey)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if sqliteDB != nil {
			if err := sqliteDB.Close(); err != nil {
				slog.Error("error closing database", "error", err)
			}
			sqliteDB = nil
		}
	},
}

// buildCell constructs the persistence cell selected by the configuration.
func buildCell(cfg *config.Config) (driven.Cell, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		return memcell.New(), nil
	case config.BackendFile:
		path := cfg.StorePath
		if path == "" {
			path = filecell.DefaultPath()
		}
		return filecell.New(path), nil
	case config.BackendSQLite:
		db, err := sqliteadapter.NewDB(cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		if err := sqliteadapter.RunMigrations(db.Writer); err != nil {
			db.Close()
			return nil, err
		}
		sqliteDB = db
		return sqliteadapter.NewCellRepo(db), nil
	case config.BackendKeyring:
		return keyringcell.New(cfg.KeyringService), nil
	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}

// buildCipher constructs the cipher: AES-256-GCM keyed by the configured
// secret, or the plaintext passthrough when insecure mode is enabled outside
// production.
func buildCipher(cfg *config.Config) (driven.Cipher, error) {
	if cfg.Insecure {
		slog.Warn("insecure mode: credentials are stored without encryption")
		return aesgcm.Noop{}, nil
	}
	return aesgcm.New(cfg.SecretKey)
}

var completionCmd = &cobra.Command{
	Use:       "completion [bash|zsh|fish|powershell]",
	Short:     "Generate shell completion scripts",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletionWithDesc(os.Stdout)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "json", "Output format: json or yaml")
	rootCmd.AddCommand(completionCmd)
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
