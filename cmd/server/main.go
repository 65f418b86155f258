// Package main is the entry point for the control tower web shell.
//
// Usage:
//
//	control-tower               # Serve the shell (same as serve)
//	control-tower serve         # Serve the shell
//	control-tower check-asset   # Verify the dashboard file exists
//	control-tower version       # Show version info
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"control_tower_echo/internal/config"
	"control_tower_echo/internal/server"
	"control_tower_echo/internal/services"
)

// Set at build time via -ldflags "-X main.version=..."
var (
	version = "dev"
	commit  = "none"
)

var (
	portFlag      string
	staticDirFlag string
)

var rootCmd = &cobra.Command{
	Use:   "control-tower",
	Short: "Serve the Logistics Control Tower web shell",
	Long: `Serves the document shell of the Logistics Control Tower.

The landing page hands the browser off to the static dashboard file
(default /logistics-app.html) served from the static directory. Any
other path that matches no page or file renders the 404 page.

Configuration is read from the environment and an optional .env file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

var checkAssetCmd = &cobra.Command{
	Use:   "check-asset",
	Short: "Verify the dashboard file exists in the static directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		file, err := services.CheckDashboardAsset(cfg.StaticDir, cfg.DashboardIntent())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "dashboard asset OK: %s\n", file)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "control-tower %s (commit %s)\n", version, commit)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&portFlag, "port", "p", "", "HTTP port (overrides PORT)")
	rootCmd.PersistentFlags().StringVar(&staticDirFlag, "static-dir", "", "directory holding the dashboard file (overrides STATIC_DIR)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(checkAssetCmd)
	rootCmd.AddCommand(versionCmd)
}

func loadConfig() (config.Config, error) {
	return config.Load(config.Overrides{Port: portFlag, StaticDir: staticDirFlag})
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.Run(ctx, cfg)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}
