// Network-status shows first-boot access information on the console.
//
// It draws the root password, the network addresses, the Tor onion address,
// the mDNS name and a QR code carrying the same login details onto the
// Linux framebuffer. Without a usable framebuffer it prints the details as
// text and switches to the framebuffer as soon as one appears.
//
// Usage:
//
//	network-status [flags]
//	network-status --diagnose
//	network-status --output-image [path]
//
// See 'network-status --help' for available options.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/muurk/netstatus/internal/config"
	"github.com/muurk/netstatus/internal/display"
	"github.com/muurk/netstatus/internal/fbdev"
	"github.com/muurk/netstatus/internal/logging"
	"github.com/muurk/netstatus/internal/terminal"
	"github.com/muurk/netstatus/internal/version"
)

// DefaultImagePath is written by --output-image when no path is given.
const DefaultImagePath = "network-status.png"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var (
	configPath  string
	logLevel    string
	diagnose    bool
	outputImage string
)

var rootCmd = &cobra.Command{
	Use:   "network-status",
	Short: "First-boot access dashboard",
	Long: `Shows how to reach this machine: root password, network addresses,
Tor hidden service, multicast DNS name and a QR code with the same login
details.

The dashboard is drawn on the Linux framebuffer when one can be mapped and
printed on the terminal otherwise. It refreshes only when something changes
and runs until interrupted.`,
	Example: `  # Run the dashboard
  network-status

  # Inspect the framebuffer geometry without drawing anything
  network-status --diagnose

  # Render one frame to a PNG (requires a build with -tags imageoutput)
  network-status --output-image /tmp/status.png`,
	Version:       version.Version,
	Args:          cobra.MaximumNArgs(1),
	SilenceErrors: true,
	RunE:          runRoot,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "Path to the configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides the config file and "+logging.LogLevelEnvVar)

	rootCmd.Flags().BoolVar(&diagnose, "diagnose", false, "Print the framebuffer geometry report and exit")
	rootCmd.Flags().StringVar(&outputImage, "output-image", "", "Render one frame to a PNG file and exit")
	rootCmd.Flags().Lookup("output-image").NoOptDefVal = DefaultImagePath

	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// imagePath resolves --output-image. The path may be given as the flag
// value or as the single positional argument.
func imagePath(cmd *cobra.Command, args []string) (string, bool, error) {
	set := cmd.Flags().Changed("output-image")
	if !set {
		if len(args) > 0 {
			return "", false, fmt.Errorf("unexpected argument %q", args[0])
		}
		return "", false, nil
	}
	if diagnose {
		return "", false, errors.New("--diagnose and --output-image cannot be used together")
	}
	if len(args) == 1 {
		if outputImage != DefaultImagePath {
			return "", false, fmt.Errorf("output path given twice: %q and %q", outputImage, args[0])
		}
		return args[0], true, nil
	}
	return outputImage, true, nil
}

func setup() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	level := logLevel
	if level == "" {
		level = cfg.Logging.Level
	}
	if err := logging.Initialize(level, cfg.Logging.File); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	path, export, err := imagePath(cmd, args)
	if err != nil {
		return err
	}

	cfg, err := setup()
	if err != nil {
		return err
	}
	defer logging.Sync()

	switch {
	case export:
		if err := exportImage(cmd.Context(), cfg, path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Image saved to: %s\n", path)
		return nil
	case diagnose:
		return runDiagnose(cmd, cfg)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return display.New(cfg, terminal.New(os.Stdout)).Run(ctx)
}

func runDiagnose(cmd *cobra.Command, cfg *config.Config) error {
	rep, err := fbdev.Diagnose(cfg.Display.Framebuffer)
	if err != nil {
		return fmt.Errorf("cannot diagnose framebuffer: %w", err)
	}
	return terminal.New(cmd.OutOrStdout()).Report(rep)
}
