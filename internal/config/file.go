package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors [StructuredConfig] with the snake_case keys used in
// config files. The same struct serves JSON and YAML.
type fileConfig struct {
	App struct {
		Version string `json:"version" yaml:"version"`
	} `json:"app" yaml:"app"`

	Storage struct {
		Files struct {
			DataDir      string `json:"data_dir" yaml:"data_dir"`
			LockAccounts bool   `json:"lock_accounts" yaml:"lock_accounts"`
		} `json:"files" yaml:"files"`

		Mirror struct {
			S3 struct {
				Bucket          string `json:"bucket" yaml:"bucket"`
				Region          string `json:"region" yaml:"region"`
				Endpoint        string `json:"endpoint" yaml:"endpoint"`
				AccessKeyID     string `json:"access_key_id" yaml:"access_key_id"`
				SecretAccessKey string `json:"secret_access_key" yaml:"secret_access_key"`
				Prefix          string `json:"prefix" yaml:"prefix"`
				UsePathStyle    bool   `json:"use_path_style" yaml:"use_path_style"`
			} `json:"s3" yaml:"s3"`
		} `json:"mirror" yaml:"mirror"`
	} `json:"storage" yaml:"storage"`

	Server struct {
		HTTPAddress       string   `json:"http_address" yaml:"http_address"`
		MetricsAddress    string   `json:"metrics_address" yaml:"metrics_address"`
		ReadHeaderTimeout Duration `json:"read_header_timeout" yaml:"read_header_timeout"`
		ShutdownTimeout   Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
		MaxUploadBytes    int64    `json:"max_upload_bytes" yaml:"max_upload_bytes"`
	} `json:"server" yaml:"server"`

	Log struct {
		Level string `json:"level" yaml:"level"`
	} `json:"log" yaml:"log"`
}

// parseFile reads a config file. Files ending in .yaml or .yml are decoded as
// YAML, everything else as JSON.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	s3 := fc.Storage.Mirror.S3
	return &StructuredConfig{
		App: App{Version: fc.App.Version},
		Storage: Storage{
			Files: Files{
				DataDir:      fc.Storage.Files.DataDir,
				LockAccounts: fc.Storage.Files.LockAccounts,
			},
			Mirror: Mirror{S3: S3{
				Bucket:          s3.Bucket,
				Region:          s3.Region,
				Endpoint:        s3.Endpoint,
				AccessKeyID:     s3.AccessKeyID,
				SecretAccessKey: s3.SecretAccessKey,
				Prefix:          s3.Prefix,
				UsePathStyle:    s3.UsePathStyle,
			}},
		},
		Server: Server{
			HTTPAddress:       fc.Server.HTTPAddress,
			MetricsAddress:    fc.Server.MetricsAddress,
			ReadHeaderTimeout: time.Duration(fc.Server.ReadHeaderTimeout),
			ShutdownTimeout:   time.Duration(fc.Server.ShutdownTimeout),
			MaxUploadBytes:    fc.Server.MaxUploadBytes,
		},
		Log: Log{Level: fc.Log.Level},
	}, nil
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h" or "30s" as well as from plain nanosecond numbers, in JSON and YAML.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	return d.set(v)
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var v any
	if err := node.Decode(&v); err != nil {
		return err
	}

	return d.set(v)
}

func (d *Duration) set(v any) error {
	switch value := v.(type) {
	case nil:
		*d = 0
	case float64:
		*d = Duration(time.Duration(value))
	case int:
		*d = Duration(time.Duration(value))
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
	default:
		return fmt.Errorf("invalid duration value %v", v)
	}

	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
