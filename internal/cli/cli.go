// Package cli wires configuration, logging and the cobra command tree
// for the easyfin binary.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"easyfin/internal/client"
	"easyfin/internal/config"
	applog "easyfin/internal/log"
	"easyfin/internal/transport"
)

// Execute loads the environment, validates configuration and runs the
// command tree. It exits nonzero on any failure.
func Execute() {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	// .env is optional; production deployments set real env vars.
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	logger := setupLogger(cfg)

	rootCmd := newRootCmd(cfg, logger)
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	if err := rootCmd.Execute(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

func setupLogger(cfg *config.Config) *applog.Logger {
	level, _ := config.ParseLevel(cfg.LogLevel) // validated in Execute
	logger := applog.New(applog.Config{Level: level, Component: applog.ComponentCLI})
	applog.SetDefault(logger)
	return logger
}

func newRootCmd(cfg *config.Config, logger *applog.Logger) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "easyfin",
		Short: "easyfin is a CLI for the EasyFinance personal finance service",
		Long: `easyfin logs in to the EasyFinance service with the configured
credentials and lists accounts, categories and transactions.`,
	}

	rootCmd.AddCommand(newAccountsCmd(cfg, logger))
	rootCmd.AddCommand(newCategoriesCmd(cfg, logger))
	rootCmd.AddCommand(newTransactionsCmd(cfg, logger))
	rootCmd.AddCommand(newSummaryCmd(cfg, logger))

	return rootCmd
}

// newSession builds a client and performs the login gate once. The
// password is prompted for interactively when not configured.
func newSession(ctx context.Context, cfg *config.Config, logger *applog.Logger) (*client.Client, error) {
	if cfg.Username == "" {
		return nil, errors.New("EASYFIN_USERNAME is not set")
	}

	password := cfg.Password
	if password == "" {
		prompt := &survey.Password{
			Message: fmt.Sprintf("Password for %s:", cfg.Username),
		}
		if err := survey.AskOne(prompt, &password); err != nil {
			return nil, fmt.Errorf("read password: %w", err)
		}
	}

	transportOpts := []transport.Option{
		transport.WithLogger(logger.WithComponent(applog.ComponentTransport)),
	}
	if cfg.LogBodies {
		transportOpts = append(transportOpts, transport.WithBodyLogging())
	}

	c := client.New(cfg.ServiceURI,
		client.WithTransport(transport.New(cfg.ServiceURI, transportOpts...)),
		client.WithLogger(logger.WithComponent(applog.ComponentClient)),
	)

	if !c.Login(ctx, cfg.Username, password, cfg.ClientID, cfg.ClientSecret) {
		return nil, errors.New("login failed: check credentials and EASYFIN_SERVICE_URI")
	}

	return c, nil
}
