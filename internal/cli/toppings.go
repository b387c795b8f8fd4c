package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/franciscosanchezn/pizza-manager/internal/catalog"
	"github.com/franciscosanchezn/pizza-manager/internal/models"
)

// ToppingsCmd returns the store owner commands
func ToppingsCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toppings",
		Short: "Manage the topping catalog (store owner)",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all toppings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := mountToppings(cmd.Context(), o)
			if err != nil {
				return err
			}
			defer c.Unmount()

			printToppings(cmd.OutOrStdout(), c.Toppings())
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add [name]",
		Short: "Add a topping",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := mountToppings(cmd.Context(), o)
			if err != nil {
				return err
			}
			defer c.Unmount()

			topping, err := c.Add(cmd.Context(), args[0])
			if err != nil {
				return screenError(c.LastError(), err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Added topping %s: %s\n", success.Sprint("✓"), idColor.Sprint(topping.ID), topping.Name)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "rename [id] [name]",
		Short: "Rename a topping",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}
			c, err := mountToppings(cmd.Context(), o)
			if err != nil {
				return err
			}
			defer c.Unmount()

			if err := c.BeginEdit(id); err != nil {
				return fmt.Errorf("topping %d: %w", id, err)
			}
			if err := c.SetDraft(id, args[1]); err != nil {
				return err
			}
			if err := c.SaveEdit(cmd.Context(), id); err != nil {
				return screenError(c.LastError(), err)
			}
			topping, _ := c.Lookup(id)
			fmt.Fprintf(cmd.OutOrStdout(), "%s Renamed topping %s: %s\n", success.Sprint("✓"), idColor.Sprint(id), topping.Name)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "remove [id]",
		Short: "Remove a topping",
		Long: `Remove a topping from the catalog.

Pizzas using the topping lose it on the backend; screens already showing
those pizzas keep the old copy until they refresh.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}
			c, err := mountToppings(cmd.Context(), o)
			if err != nil {
				return err
			}
			defer c.Unmount()

			if err := c.Remove(cmd.Context(), id); err != nil {
				return screenError(c.LastError(), err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Removed topping %s\n", success.Sprint("✓"), idColor.Sprint(id))
			return nil
		},
	})

	return cmd
}

func mountToppings(ctx context.Context, o *options) (*catalog.ToppingCatalog, error) {
	gw, err := o.gateway()
	if err != nil {
		return nil, err
	}
	c := catalog.NewToppingCatalog(gw)
	if err := c.Mount(ctx); err != nil {
		return nil, screenError(c.LastError(), err)
	}
	return c, nil
}

func printToppings(w io.Writer, toppings []models.Topping) {
	if len(toppings) == 0 {
		fmt.Fprintln(w, muted.Sprint("No toppings found"))
		return
	}
	fmt.Fprintf(w, "Found %d topping(s):\n\n", len(toppings))
	for _, t := range toppings {
		fmt.Fprintf(w, "  %s  %s\n", idColor.Sprintf("%4d", t.ID), t.Name)
	}
}

// lastError reports the line a screen would show while keeping the underlying error
type lastError struct {
	message string
	err     error
}

func (e *lastError) Error() string { return e.message }
func (e *lastError) Unwrap() error { return e.err }

func screenError(message string, err error) error {
	if message == "" {
		return err
	}
	return &lastError{message: message, err: err}
}

func parseIDArg(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q: must be a positive integer", raw)
	}
	return id, nil
}
