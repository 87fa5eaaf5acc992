package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface. An empty Host means "all
// interfaces".
type NetAddress struct {
	Host string
	Port int
	set  bool
}

// parseFlags parses the server command-line flags from args.
//
// Flags:
//
//	-a server address in format [host]:port
//	-m metrics address in format [host]:port
//	-d account data directory
//	-lock-accounts serialize manifest updates per account
//	-max-upload-bytes maximum accepted blob size (0 = unlimited)
//	-read-header-timeout request header timeout (e.g. "10s")
//	-shutdown-timeout graceful shutdown timeout (e.g. "10s")
//	-log-level zerolog level name
//	-c/-config JSON or YAML config file path
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, metricsAddress NetAddress
	cfg := &StructuredConfig{}

	fs := flag.NewFlagSet("go-backup-vault", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address [host]:port")
	fs.Var(&metricsAddress, "m", "Metrics net address [host]:port")
	fs.StringVar(&cfg.Storage.Files.DataDir, "d", "", "Account data directory")
	fs.BoolVar(&cfg.Storage.Files.LockAccounts, "lock-accounts", false, "Serialize manifest updates per account")
	fs.Int64Var(&cfg.Server.MaxUploadBytes, "max-upload-bytes", 0, "Maximum blob size in bytes (0 = unlimited)")
	fs.DurationVar(&cfg.Server.ReadHeaderTimeout, "read-header-timeout", 0, "Request header timeout (e.g. 10s)")
	fs.DurationVar(&cfg.Server.ShutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout (e.g. 10s)")
	fs.StringVar(&cfg.Log.Level, "log-level", "", "Log level (trace, debug, info, warn, error)")
	fs.StringVar(&cfg.FilePath, "c", "", "Config file path (JSON or YAML)")
	fs.StringVar(&cfg.FilePath, "config", "", "Config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, errors.Join(ErrInvalidFlags, err)
	}

	cfg.Server.HTTPAddress = serverAddress.String()
	cfg.Server.MetricsAddress = metricsAddress.String()

	return cfg, nil
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when the flag was never set.
func (a *NetAddress) String() string {
	if !a.set {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form [host]:port and populates the
// NetAddress. It validates the port range and checks IP correctness unless
// host is empty or "localhost".
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(strings.TrimSpace(s))
	if err != nil {
		return errors.New("need address in a form `[host]:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	a.set = true
	return nil
}
