// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks the merged server configuration.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}
	if err := validateAdapter(cfg.Adapter); err != nil {
		return err
	}
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}
	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 || cfg.App.HashKey == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *ConsoleConfig) validate() error {
	if err := validateAdapter(cfg.Adapter); err != nil {
		return err
	}
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}

func validateAdapter(a Adapter) error {
	if a.ClientsAPIAddress == "" || a.PriceAPIAddress == "" || a.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}
	return nil
}
