package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-backup-vault/internal/adapter"
	"github.com/MKhiriev/go-backup-vault/internal/client"
	"github.com/MKhiriev/go-backup-vault/internal/config"
	"github.com/MKhiriev/go-backup-vault/internal/crypto"
	"github.com/MKhiriev/go-backup-vault/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// recoveryKeyEnv lets scripts pass the recovery key without exposing it in
// the process list.
const recoveryKeyEnv = "VAULT_RECOVERY_KEY"

var (
	address  string
	logLevel string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "vaultctl",
		Short: "Command-line client for the backup vault",
		Long: `vaultctl talks to a backup-vault server.

Examples:
  # Print the account id derived from a recovery key
  vaultctl uid --key "$VAULT_RECOVERY_KEY"

  # Encrypt a backup with the recovery key and upload it
  vaultctl upload phone.db --key "$VAULT_RECOVERY_KEY" --username alice --encrypt

  # Restore the newest backup
  vaultctl download latest --key "$VAULT_RECOVERY_KEY" --decrypt -o phone.db

  # Arm the remote wipe flag and watch it from another device
  vaultctl wipe on --uid <uid>
  vaultctl watch --uid <uid>`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&address, "address", "a", "", "vault server address (overrides VAULT_ADDRESS)")
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "warn", "log level")

	rootCmd.AddCommand(
		newUIDCmd(),
		newLoginCmd(),
		newManifestCmd(),
		newUploadCmd(),
		newDownloadCmd(),
		newWipeCmd(),
		newWatchCmd(),
		newHealthCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

// newApp builds the client application from the environment and the
// persistent flags.
func newApp(cmd *cobra.Command) (*client.App, error) {
	if err := logger.SetLevel(logLevel); err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	log := logger.NewClientLogger("vaultctl", cmd.ErrOrStderr())

	cfg, err := config.GetClientConfig()
	if err != nil {
		return nil, err
	}
	if address != "" {
		cfg.Address = address
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	vault, err := adapter.NewHTTPVaultAdapter(*cfg, log)
	if err != nil {
		return nil, err
	}

	return client.NewApp(vault, crypto.NewSealer(), *cfg, cmd.OutOrStdout(), log), nil
}

func recoveryKey(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv(recoveryKeyEnv)
}
