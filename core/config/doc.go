// Package config provides configuration management for the WASM player server.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Server: HTTP server settings (port window, document root, asset
//     directory, live reload)
//   - Log: Logging level and format
//
// Defaults are declared as struct tags and registered through reflection,
// so running the binary with no environment at all serves the current
// directory on the first free port starting at 8000.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
