package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/MKhiriev/go-backup-vault/internal/adapter"
	"github.com/MKhiriev/go-backup-vault/internal/config"
	"github.com/MKhiriev/go-backup-vault/internal/crypto"
	"github.com/MKhiriev/go-backup-vault/internal/logger"
	"github.com/MKhiriev/go-backup-vault/internal/utils"
	"github.com/MKhiriev/go-backup-vault/internal/workers"
	"github.com/MKhiriev/go-backup-vault/models"
)

const (
	// stdioPath selects standard input as the upload source and standard
	// output as the download target.
	stdioPath = "-"

	// latestBackup resolves to the newest backup listed in the manifest.
	latestBackup = "latest"
)

var (
	ErrEmptyRecoveryKey = errors.New("recovery key is empty")
	ErrNoBackups        = errors.New("account has no backups")
)

var _ Client = (*App)(nil)

// UploadOptions describes one upload. Empty Username and Timestamp let the
// server keep the recorded username and use the current time. With Encrypt
// set the file is sealed with Passphrase before it leaves the machine.
type UploadOptions struct {
	UID        string
	Path       string
	Username   string
	Timestamp  string
	Encrypt    bool
	Passphrase string
}

// DownloadOptions describes one download. Name may be "latest".
type DownloadOptions struct {
	UID        string
	Name       string
	Path       string
	Decrypt    bool
	Passphrase string
}

type App struct {
	vault  adapter.VaultAdapter
	sealer crypto.Sealer
	cfg    config.ClientConfig
	out    io.Writer
	stdin  io.Reader

	logger *logger.Logger
}

func NewApp(vault adapter.VaultAdapter, sealer crypto.Sealer, cfg config.ClientConfig, out io.Writer, logger *logger.Logger) *App {
	if out == nil {
		out = os.Stdout
	}

	return &App{
		vault:  vault,
		sealer: sealer,
		cfg:    cfg,
		out:    out,
		stdin:  os.Stdin,
		logger: logger,
	}
}

func (a *App) UID(recoveryKey string) error {
	if recoveryKey == "" {
		return ErrEmptyRecoveryKey
	}

	_, err := fmt.Fprintln(a.out, utils.DeriveUID(recoveryKey))
	return err
}

func (a *App) Login(ctx context.Context, username, recoveryKey string) error {
	resp, err := a.vault.Login(ctx, models.LoginRequest{Username: username, RecoveryKey: recoveryKey})
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	fmt.Fprintf(a.out, "uid: %s\n", resp.UID)
	return a.printManifest(resp.Manifest)
}

func (a *App) Manifest(ctx context.Context, uid string) error {
	manifest, err := a.vault.GetManifest(ctx, uid)
	if err != nil {
		return fmt.Errorf("manifest: %w", err)
	}

	return a.printManifest(manifest)
}

func (a *App) Upload(ctx context.Context, opts UploadOptions) error {
	var body io.Reader = a.stdin
	if opts.Path != stdioPath {
		f, err := os.Open(opts.Path)
		if err != nil {
			return fmt.Errorf("open backup: %w", err)
		}
		defer f.Close()
		body = f
	}

	if opts.Encrypt {
		plaintext, err := io.ReadAll(body)
		if err != nil {
			return fmt.Errorf("read backup: %w", err)
		}
		sealed, err := a.sealer.Seal(plaintext, opts.Passphrase)
		if err != nil {
			return fmt.Errorf("encrypt backup: %w", err)
		}
		body = bytes.NewReader(sealed)
	}

	resp, err := a.vault.Upload(ctx, models.UploadRequest{
		UID:       opts.UID,
		Username:  opts.Username,
		Timestamp: opts.Timestamp,
		Body:      body,
	})
	if err != nil {
		return fmt.Errorf("upload: %w", err)
	}

	fmt.Fprintln(a.out, "upload ok")
	if resp.RemoteWipeStatus {
		fmt.Fprintln(a.out, "remote wipe: ON")
	}

	return nil
}

func (a *App) Download(ctx context.Context, opts DownloadOptions) error {
	name := opts.Name
	if name == latestBackup {
		manifest, err := a.vault.GetManifest(ctx, opts.UID)
		if err != nil {
			return fmt.Errorf("manifest: %w", err)
		}
		if manifest.Latest == "" {
			return ErrNoBackups
		}
		name = manifest.Latest
	}

	var buf bytes.Buffer
	n, err := a.vault.Download(ctx, opts.UID, name, &buf)
	if err != nil {
		return fmt.Errorf("download: %w", err)
	}

	data := buf.Bytes()
	if opts.Decrypt {
		if data, err = a.sealer.Open(data, opts.Passphrase); err != nil {
			return fmt.Errorf("decrypt backup: %w", err)
		}
	}

	if opts.Path == stdioPath {
		_, err = a.out.Write(data)
		return err
	}

	if err = os.WriteFile(opts.Path, data, 0o600); err != nil {
		return fmt.Errorf("write backup: %w", err)
	}

	a.logger.Info().Str("backup", name).Str("size", humanize.IBytes(uint64(n))).Str("path", opts.Path).Msg("backup downloaded")
	_, err = fmt.Fprintf(a.out, "saved %s to %s\n", name, opts.Path)
	return err
}

func (a *App) Wipe(ctx context.Context, uid string, status bool) error {
	stored, err := a.vault.SetWipe(ctx, uid, status)
	if err != nil {
		return fmt.Errorf("wipe: %w", err)
	}

	_, err = fmt.Fprintf(a.out, "remote wipe: %s\n", onOff(stored))
	return err
}

// Watch blocks until ctx is cancelled, printing the wipe flag on start and
// on every change.
func (a *App) Watch(ctx context.Context, uid string) error {
	watcher := workers.NewWipeWatcher(a.vault, uid, a.cfg.PollInterval, func(e workers.WipeEvent) {
		prefix := "changed"
		if e.Initial {
			prefix = "current"
		}
		fmt.Fprintf(a.out, "%s %s remote wipe: %s\n", e.ObservedAt.Format("2006-01-02 15:04:05"), prefix, onOff(e.RemoteWipeStatus))
	}, a.logger)

	return workers.NewWorkers(watcher).Run(ctx)
}

func (a *App) Health(ctx context.Context) error {
	resp, err := a.vault.Health(ctx)
	if err != nil {
		return fmt.Errorf("health: %w", err)
	}

	_, err = fmt.Fprintf(a.out, "%s (%s)\n", resp.Status, resp.Timestamp)
	return err
}

func (a *App) Version(ctx context.Context) error {
	resp, err := a.vault.Version(ctx)
	if err != nil {
		return fmt.Errorf("version: %w", err)
	}

	fmt.Fprintf(a.out, "Server version: %s\n", resp.Version)
	fmt.Fprintf(a.out, "Server build date: %s\n", resp.BuildDate)
	_, err = fmt.Fprintf(a.out, "Server build commit: %s\n", resp.BuildCommit)
	return err
}

func (a *App) printManifest(m models.Manifest) error {
	username := m.Username
	if username == "" {
		username = "(not set)"
	}

	fmt.Fprintf(a.out, "username: %s\n", username)
	fmt.Fprintf(a.out, "backups: %d (%s)\n", m.Total, humanize.IBytes(uint64(m.TotalSize)))
	fmt.Fprintf(a.out, "remote wipe: %s\n", onOff(m.RemoteWipeStatus))
	if len(m.Backups) == 0 {
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tTIMESTAMP\tSIZE")
	for _, b := range m.Backups {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", b.Name, b.Timestamp, humanize.IBytes(uint64(b.Size)))
	}

	return tw.Flush()
}

func onOff(v bool) string {
	if v {
		return "ON"
	}
	return "OFF"
}
