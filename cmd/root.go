package cmd

import (
	"fmt"
	"os"

	"wasm-player-server/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands.
// Running the binary with no arguments starts the server, so a plain
// `wasm-player-server` in the demo directory just works.
var RootCmd = &cobra.Command{
	Use:   "wasm-player-server",
	Short: "Cavalry WASM Player Server",
	Long: `A local development server for the Cavalry web player.
It serves demo assets and the WASM runtime bundle with the cross-origin
isolation headers browsers require for SharedArrayBuffer threading.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run:           runServe,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Use the application's standard logger for error reporting
		// We default to console format to match user expectations (CLI tool)
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
