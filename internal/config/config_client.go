package config

import (
	"fmt"
	"time"
)

// ClientConfig is the narrowed configuration view used by the terminal
// client binary.
type ClientConfig struct {
	// ServerURL is the base URL of the backend HTTP API.
	ServerURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// GetClientConfig builds and validates a client-specific config view from
// the merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		ServerURL:      cfg.Client.ServerURL,
		RequestTimeout: cfg.Client.RequestTimeout,
	}

	return clientCfg, clientCfg.validate()
}
