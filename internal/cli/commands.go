package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"easyfin/internal/api"
	"easyfin/internal/config"
	applog "easyfin/internal/log"
)

func newAccountsCmd(cfg *config.Config, logger *applog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "accounts",
		Short: "List accounts across all groups",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newSession(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}

			accounts, err := c.Accounts(cmd.Context())
			if err != nil {
				return err
			}

			displayAccounts(accounts)
			return nil
		},
	}
}

func newCategoriesCmd(cfg *config.Config, logger *applog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List expense and income categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newSession(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}

			env, err := c.Categories(cmd.Context())
			if err != nil {
				return err
			}
			if err := envelopeError(env.Error); err != nil {
				return err
			}

			displayCategories(env.Categories)
			return nil
		},
	}
}

func newTransactionsCmd(cfg *config.Config, logger *applog.Logger) *cobra.Command {
	var top int

	cmd := &cobra.Command{
		Use:   "transactions",
		Short: "List transactions, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newSession(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}

			// TopCount is only sent when --top was given; the server
			// owns the semantics of zero and negative values.
			var topCount *int
			if cmd.Flags().Changed("top") {
				topCount = &top
			}

			env, err := c.Transactions(cmd.Context(), topCount)
			if err != nil {
				return err
			}
			if err := envelopeError(env.Error); err != nil {
				return err
			}

			displayTransactions(env.Transactions)
			return nil
		},
	}

	cmd.Flags().IntVarP(&top, "top", "n", 0, "Maximum number of transactions to request")

	return cmd
}

func newSummaryCmd(cfg *config.Config, logger *applog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show accounts, categories and recent transactions in one view",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newSession(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}

			// The three list calls share only the already-set token,
			// so they can run concurrently over one session.
			var (
				balance      *api.BalanceEnvelope
				categories   *api.CategoryEnvelope
				transactions *api.TransactionEnvelope
			)

			recent := 10
			g, ctx := errgroup.WithContext(cmd.Context())
			g.Go(func() error {
				var err error
				balance, err = c.AccountGroups(ctx)
				return err
			})
			g.Go(func() error {
				var err error
				categories, err = c.Categories(ctx)
				return err
			})
			g.Go(func() error {
				var err error
				transactions, err = c.Transactions(ctx, &recent)
				return err
			})
			if err := g.Wait(); err != nil {
				return err
			}

			for _, e := range []api.ErrorType{balance.Error, categories.Error, transactions.Error} {
				if err := envelopeError(e); err != nil {
					return err
				}
			}

			displaySummary(balance, categories.Categories, transactions.Transactions)
			return nil
		},
	}
}

// envelopeError turns a nonzero service error code into a Go error.
// The client facade deliberately passes envelopes through untouched;
// the CLI is the caller that decides nonzero means failure.
func envelopeError(e api.ErrorType) error {
	if e.Code == 0 {
		return nil
	}
	return fmt.Errorf("service error %d: %s", e.Code, e.Message)
}
