package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-backup-vault/internal/client"
	"github.com/MKhiriev/go-backup-vault/internal/utils"
	"github.com/MKhiriev/go-backup-vault/models"
)

func newUIDCmd() *cobra.Command {
	var key string

	cmd := &cobra.Command{
		Use:   "uid",
		Short: "Print the account id derived from a recovery key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd)
			if err != nil {
				return err
			}
			return app.UID(recoveryKey(key))
		},
	}
	cmd.Flags().StringVarP(&key, "key", "k", "", "recovery key (default $"+recoveryKeyEnv+")")

	return cmd
}

func newLoginCmd() *cobra.Command {
	var username, key string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Verify credentials and show the account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd)
			if err != nil {
				return err
			}
			return app.Login(cmd.Context(), username, recoveryKey(key))
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "account username")
	cmd.Flags().StringVarP(&key, "key", "k", "", "recovery key (default $"+recoveryKeyEnv+")")
	_ = cmd.MarkFlagRequired("username")

	return cmd
}

func newManifestCmd() *cobra.Command {
	var uid uidFlags

	cmd := &cobra.Command{
		Use:   "manifest",
		Short: "List the backups of an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd)
			if err != nil {
				return err
			}
			return app.Manifest(cmd.Context(), uid.resolve())
		},
	}
	uid.register(cmd)

	return cmd
}

func newUploadCmd() *cobra.Command {
	var (
		uid  uidFlags
		opts client.UploadOptions
	)

	cmd := &cobra.Command{
		Use:   "upload <file|->",
		Short: "Upload an encrypted backup",
		Long: `Upload one backup blob. Use "-" to read it from standard input.

The server stores the blob verbatim. Pass --encrypt to seal it with the
recovery key first, or encrypt it yourself before uploading.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd)
			if err != nil {
				return err
			}
			opts.UID = uid.resolve()
			opts.Path = args[0]
			opts.Passphrase = recoveryKey(uid.key)
			return app.Upload(cmd.Context(), opts)
		},
	}
	uid.register(cmd)
	cmd.Flags().StringVarP(&opts.Username, "username", "u", "", "username recorded on first upload")
	cmd.Flags().StringVar(&opts.Timestamp, "timestamp", "", "backup epoch in milliseconds (default now)")
	cmd.Flags().BoolVar(&opts.Encrypt, "encrypt", false, "seal the file with the recovery key before upload")

	return cmd
}

func newDownloadCmd() *cobra.Command {
	var (
		uid  uidFlags
		opts client.DownloadOptions
	)

	cmd := &cobra.Command{
		Use:   "download <name|latest>",
		Short: "Download a backup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd)
			if err != nil {
				return err
			}
			opts.UID = uid.resolve()
			opts.Name = args[0]
			opts.Passphrase = recoveryKey(uid.key)
			return app.Download(cmd.Context(), opts)
		},
	}
	uid.register(cmd)
	cmd.Flags().StringVarP(&opts.Path, "output", "o", "-", "output file (- for stdout)")
	cmd.Flags().BoolVar(&opts.Decrypt, "decrypt", false, "open a backup sealed with --encrypt")

	return cmd
}

func newWipeCmd() *cobra.Command {
	var uid uidFlags

	cmd := &cobra.Command{
		Use:       "wipe <on|off>",
		Short:     "Set the remote wipe flag",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"on", "off"},
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd)
			if err != nil {
				return err
			}
			return app.Wipe(cmd.Context(), uid.resolve(), args[0] == "on")
		},
	}
	uid.register(cmd)

	return cmd
}

func newWatchCmd() *cobra.Command {
	var uid uidFlags

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Poll the remote wipe flag and report changes",
		Long:  `Poll the account manifest every VAULT_POLL_INTERVAL and print the remote wipe flag whenever it changes. Stops on Ctrl+C.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd)
			if err != nil {
				return err
			}
			return app.Watch(cmd.Context(), uid.resolve())
		},
	}
	uid.register(cmd)

	return cmd
}

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the server is running",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd)
			if err != nil {
				return err
			}
			return app.Health(cmd.Context())
		},
	}
}

func newVersionCmd() *cobra.Command {
	var remote bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "vaultctl %s\n", info.BuildVersion())
			fmt.Fprintf(out, "  Commit:     %s\n", info.BuildCommit())
			fmt.Fprintf(out, "  Build Date: %s\n", info.BuildDate())
			if !remote {
				return nil
			}

			app, err := newApp(cmd)
			if err != nil {
				return err
			}
			return app.Version(cmd.Context())
		},
	}
	cmd.Flags().BoolVar(&remote, "remote", false, "also print the server version")

	return cmd
}

// uidFlags selects an account either by uid or by recovery key.
type uidFlags struct {
	uid string
	key string
}

func (f *uidFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.uid, "uid", "", "account id")
	cmd.Flags().StringVarP(&f.key, "key", "k", "", "recovery key used to derive the account id")
	cmd.MarkFlagsMutuallyExclusive("uid", "key")
}

func (f *uidFlags) resolve() string {
	if f.uid != "" {
		return f.uid
	}
	if key := recoveryKey(f.key); key != "" {
		return utils.DeriveUID(key)
	}
	return ""
}
