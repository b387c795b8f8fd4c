// Package cli wires the pizza manager commands: the console server, the
// development stub backend and terminal access to both catalogs.
package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/franciscosanchezn/pizza-manager/internal/config"
	"github.com/franciscosanchezn/pizza-manager/internal/gateway"
)

var log = config.NewLogger()

var (
	success = color.New(color.FgGreen)
	failure = color.New(color.FgRed)
	muted   = color.New(color.FgHiBlack)
	idColor = color.New(color.FgCyan)
)

// options carries the loaded configuration and the flags shared by every command
type options struct {
	conf    *config.Config
	apiURL  string
	timeout time.Duration
}

// gateway builds the backend client from the effective --api-url and --timeout
func (o *options) gateway() (*gateway.Client, error) {
	if o.timeout <= 0 {
		return nil, fmt.Errorf("--timeout must be positive, got %s", o.timeout)
	}
	return gateway.NewClient(strings.TrimRight(o.apiURL, "/"), o.timeout)
}

// NewRootCmd builds the pizza-manager command tree on top of conf
func NewRootCmd(conf *config.Config) *cobra.Command {
	o := &options{conf: conf}

	rootCmd := &cobra.Command{
		Use:   "pizza-manager",
		Short: "Pizza Manager - topping catalog and pizza workbench",
		Long: `Pizza Manager lets a store owner maintain the topping catalog and a
pizza chef compose pizzas from it, against a remote pizza backend.

  pizza-manager serve              # Console screens for a browser front-end
  pizza-manager stub               # Local backend for development
  pizza-manager toppings list      # Terminal access to the catalogs
  pizza-manager pizzas add NAME --topping 1 --topping 2`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&o.apiURL, "api-url", conf.APIBaseURL, "Base URL of the pizza backend")
	rootCmd.PersistentFlags().DurationVar(&o.timeout, "timeout", conf.RequestTimeout, "Timeout of every backend request")

	rootCmd.AddCommand(ServeCmd(o))
	rootCmd.AddCommand(StubCmd(o))
	rootCmd.AddCommand(ToppingsCmd(o))
	rootCmd.AddCommand(PizzasCmd(o))

	return rootCmd
}

// Execute runs the command tree and returns the process exit code
func Execute(ctx context.Context, conf *config.Config) int {
	rootCmd := NewRootCmd(conf)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), failure.Sprint("✗ "+err.Error()))
		return 1
	}
	return 0
}
