// Package config provides configuration management for the sync tool.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file. Defaults come from `default` struct tags on the
// partial configuration structs owned by each package.
//
// # Configuration Structure
//
// The Config struct is the central repository for all settings, divided into
// subsections:
//   - Marketplace: seller API base URL, credentials, page size, timeout
//   - Supplier: feed URL and spreadsheet layout
//   - Sync: batch sizes and the catalog pagination cap
//   - Log: logging level and format
//
// Environment variables map onto nested keys with underscores, e.g.
// MARKETPLACE_CLIENT_ID -> marketplace.client_id.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Marketplace.BaseURL)
package config
