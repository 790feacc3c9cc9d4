// pragent: PR preparation MCP server
//
// An MCP server that integrates with any AI coding tool (Claude Code,
// OpenCode, Gemini CLI, Codex, Cursor, VS Code Copilot) to analyze git
// working-tree changes and recommend pull-request templates.
//
// Usage:
//
//	pragent serve     # Start MCP server (stdio transport)
//	pragent update    # Update to the latest version
//	pragent version   # Print the version
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	prserver "github.com/medhakimbedhief/pragent/internal/server"
	"github.com/medhakimbedhief/pragent/internal/updater"
)

var debug bool

func main() {
	root := &cobra.Command{
		Use:          "pragent",
		Short:        "MCP server that analyzes branch changes and recommends PR templates",
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging on stderr")

	root.AddCommand(serveCmd(), updateCmd(), versionCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server (stdio transport)",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger()
			if err != nil {
				return fmt.Errorf("creating logger: %w", err)
			}
			defer func() { _ = log.Sync() }()

			s, err := prserver.New(log)
			if err != nil {
				return fmt.Errorf("creating server: %w", err)
			}

			// Background version check — prints to stderr so it doesn't
			// interfere with MCP's stdio transport on stdout.
			go checkForUpdates()

			log.Debug("serving MCP over stdio", zap.String("version", prserver.Version))
			return server.ServeStdio(s)
		},
	}
}

func updateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "Update pragent to the latest version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(os.Stderr, "Checking for updates...")

			result := updater.CheckVersion(prserver.Version)
			if !result.UpdateAvailable {
				color.New(color.FgGreen).Fprintf(os.Stderr, "Already at the latest version (v%s)\n", result.CurrentVersion)
				return nil
			}

			fmt.Fprintf(os.Stderr, "New version available: v%s -> v%s\n", result.CurrentVersion, result.LatestVersion)
			fmt.Fprintln(os.Stderr, "Downloading...")

			if err := updater.SelfUpdate(prserver.Version); err != nil {
				color.New(color.FgRed).Fprintf(os.Stderr, "Update failed: %v\n", err)
				fmt.Fprintf(os.Stderr, "\n   You can download manually from:\n   %s\n", result.ReleaseURL)
				return err
			}

			color.New(color.FgGreen).Fprintf(os.Stderr, "Updated to v%s!\n", result.LatestVersion)
			fmt.Fprintln(os.Stderr, "   Restart pragent to use the new version.")
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the pragent version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("pragent v%s\n", prserver.Version)
		},
	}
}

// newLogger builds the process logger. Everything goes to stderr —
// stdout belongs to the MCP transport.
func newLogger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

// checkForUpdates runs a non-blocking version check and prints a notice
// to stderr if an update is available. This runs in a goroutine during
// "serve" and is best-effort — network failures are silently ignored.
func checkForUpdates() {
	result := updater.CheckVersion(prserver.Version)
	if result.UpdateAvailable {
		color.New(color.FgYellow).Fprintf(os.Stderr,
			"\n  Update available: v%s -> v%s\n"+
				"     Run: pragent update\n"+
				"     Release: %s\n\n",
			result.CurrentVersion, result.LatestVersion, result.ReleaseURL,
		)
	}
}
