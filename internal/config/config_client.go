package config

import (
	"fmt"
	"time"
)

// ClientConfig holds the settings of the vaultctl command-line client.
// Values come from the environment and may be overridden by flags.
type ClientConfig struct {
	// Address is the base URL of the vault server.
	// Env: VAULT_ADDRESS
	Address string `env:"VAULT_ADDRESS" envDefault:"http://localhost:8080"`

	// RequestTimeout is the default timeout for outbound requests. Uploads
	// may take longer and are not bounded by it.
	// Env: VAULT_TIMEOUT
	RequestTimeout time.Duration `env:"VAULT_TIMEOUT" envDefault:"30s"`

	// PollInterval controls how often the wipe watcher polls the manifest.
	// Env: VAULT_POLL_INTERVAL
	PollInterval time.Duration `env:"VAULT_POLL_INTERVAL" envDefault:"1m"`
}

// GetClientConfig loads the client configuration from the environment.
func GetClientConfig() (*ClientConfig, error) {
	cfg := &ClientConfig{}
	if err := parseEnv(cfg); err != nil {
		return nil, fmt.Errorf("error get client config: %w", err)
	}

	return cfg, nil
}

// Validate checks the client configuration after flags have been applied.
func (cfg *ClientConfig) Validate() error {
	return cfg.validate()
}
