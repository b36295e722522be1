package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"nexusfile/internal/app"
	"nexusfile/internal/client"
	"nexusfile/internal/config"
	"nexusfile/internal/logging"
	"nexusfile/internal/resolver"
	"nexusfile/internal/setup"
	"nexusfile/internal/ui"
)

var (
	version  = "0.1.0"
	cfgFile  string
	model    string
	backend  string
	runSetup bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "nexusfile [request]",
		Short: "Natural-language file management with confirmation",
		Long: `Nexusfile translates a plain-language request into file operations:
it can search for files and move them in batches. Every mutating
operation is shown first and only runs after you confirm it.`,
		Args: cobra.ArbitraryArgs,
		RunE: runApp,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/nexusfile/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&model, "model", "", "model to use (default is gemini-2.0-flash)")
	rootCmd.PersistentFlags().StringVar(&backend, "backend", "", "backend to use: gemini or ollama")
	rootCmd.PersistentFlags().BoolVar(&runSetup, "setup", false, "run the setup wizard")

	// Version command
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("nexusfile version %s\n", version)
		},
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runApp(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if runSetup {
		return setup.RunWizard(cfg)
	}

	if len(args) == 0 {
		return cmd.Help()
	}
	request := strings.Join(args, " ")

	if model != "" {
		cfg.Model.Name = model
	}
	if backend != "" {
		cfg.API.Backend = backend
	}

	// No API key configured - run setup wizard, then reload
	if err := cfg.Validate(); err != nil {
		if !errors.Is(err, config.ErrMissingAuth) {
			return err
		}
		if err := setup.RunWizard(cfg); err != nil {
			return err
		}
		cfg, err = loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if model != "" {
			cfg.Model.Name = model
		}
		if backend != "" {
			cfg.API.Backend = backend
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	if cfg.Logging.File {
		if err := logging.EnableFileLogging(config.ConfigDir(), logging.Level(cfg.Logging.Level)); err != nil {
			ui.Warnf("file logging disabled: %v", err)
		}
		defer logging.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c, err := client.NewClient(ctx, cfg)
	if err != nil {
		return err
	}
	defer c.Close()

	application := app.New(cfg, resolver.New(c, cfg.API.Timeout))
	if err := application.Run(ctx, request); err != nil {
		if errors.Is(err, context.Canceled) {
			ui.Warnf("interrupted, nothing further was changed")
			return nil
		}
		ui.Errorf("%v", err)
		// Report-and-stop: a failed run already explained itself.
		return nil
	}

	return nil
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.LoadFrom(cfgFile)
	}
	return config.Load()
}
