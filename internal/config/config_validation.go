// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants shared by both binaries. Role-specific requirements are
// enforced by [ClientConfig.validate] and by the server at startup, because
// a field required by one binary may be legitimately absent for the other.
func (cfg *StructuredConfig) validate() error {
	return nil
}

// ValidateServer checks the fields the server cannot start without.
func (cfg *StructuredConfig) ValidateServer() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration == 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.ServerURL == "" {
		return ErrInvalidClientConfigs
	}

	return nil
}
