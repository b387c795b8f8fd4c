package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/franciscosanchezn/pizza-manager/internal/catalog"
	"github.com/franciscosanchezn/pizza-manager/internal/models"
)

// PizzasCmd returns the pizza chef commands
func PizzasCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pizzas",
		Short: "Compose pizzas from the topping catalog (pizza chef)",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all pizzas with their toppings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := mountPizzas(cmd.Context(), o)
			if err != nil {
				return err
			}
			defer c.Unmount()

			printPizzas(cmd.OutOrStdout(), c.Pizzas())
			return nil
		},
	})

	addCmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Add a pizza",
		Long: `Add a pizza made of existing toppings.

Usage:
  pizza-manager pizzas add Margherita --topping 1 --topping 2 --topping 3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			toppingIDs, _ := cmd.Flags().GetInt64Slice("topping")

			c, err := mountPizzas(cmd.Context(), o)
			if err != nil {
				return err
			}
			defer c.Unmount()

			c.SetFormName(args[0])
			for _, id := range toppingIDs {
				if err := c.SelectFormTopping(id); err != nil {
					return fmt.Errorf("topping %d: %w", id, err)
				}
			}
			pizza, err := c.SubmitForm(cmd.Context())
			if err != nil {
				return screenError(c.LastError(), err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Added pizza %s: %s\n", success.Sprint("✓"), idColor.Sprint(pizza.ID), pizza.Name)
			return nil
		},
	}
	addCmd.Flags().Int64Slice("topping", nil, "Topping id to put on the pizza (repeatable)")
	cmd.AddCommand(addCmd)

	updateCmd := &cobra.Command{
		Use:   "update [id]",
		Short: "Change the name or toppings of a pizza",
		Long: `Change the name or toppings of a pizza.

Without --topping the pizza keeps its current toppings that still exist in
the catalog. With --topping the given ids replace them.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}

			c, err := mountPizzas(cmd.Context(), o)
			if err != nil {
				return err
			}
			defer c.Unmount()

			if err := c.BeginEdit(id); err != nil {
				return fmt.Errorf("pizza %d: %w", id, err)
			}
			if cmd.Flags().Changed("name") {
				name, _ := cmd.Flags().GetString("name")
				if err := c.SetEditName(name); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("topping") {
				toppingIDs, _ := cmd.Flags().GetInt64Slice("topping")
				if err := replaceEditToppings(c, toppingIDs); err != nil {
					return err
				}
			}
			if err := c.CommitDraft(cmd.Context()); err != nil {
				return screenError(c.LastError(), err)
			}
			pizza, _ := models.FindPizza(c.Pizzas(), id)
			fmt.Fprintf(cmd.OutOrStdout(), "%s Updated pizza %s: %s\n", success.Sprint("✓"), idColor.Sprint(id), pizza.Name)
			return nil
		},
	}
	updateCmd.Flags().String("name", "", "New pizza name")
	updateCmd.Flags().Int64Slice("topping", nil, "Topping id replacing the current toppings (repeatable)")
	cmd.AddCommand(updateCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "remove [id]",
		Short: "Remove a pizza",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}
			c, err := mountPizzas(cmd.Context(), o)
			if err != nil {
				return err
			}
			defer c.Unmount()

			if err := c.Remove(cmd.Context(), id); err != nil {
				return screenError(c.LastError(), err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Removed pizza %s\n", success.Sprint("✓"), idColor.Sprint(id))
			return nil
		},
	})

	return cmd
}

func mountPizzas(ctx context.Context, o *options) (*catalog.PizzaCatalog, error) {
	gw, err := o.gateway()
	if err != nil {
		return nil, err
	}
	c := catalog.NewPizzaCatalog(gw, catalog.NewToppingCatalog(gw))
	if err := c.Mount(ctx); err != nil {
		return nil, screenError(c.LastError(), err)
	}
	return c, nil
}

// replaceEditToppings swaps the draft selection of the pizza being edited for ids
func replaceEditToppings(c *catalog.PizzaCatalog, ids []int64) error {
	draft, _ := c.Editing()
	for _, t := range draft.Toppings {
		if err := c.DeselectEditTopping(t.ID); err != nil {
			return err
		}
	}
	for _, id := range ids {
		if err := c.SelectEditTopping(id); err != nil {
			return fmt.Errorf("topping %d: %w", id, err)
		}
	}
	return nil
}

func printPizzas(w io.Writer, pizzas []models.Pizza) {
	if len(pizzas) == 0 {
		fmt.Fprintln(w, muted.Sprint("No pizzas found"))
		return
	}
	fmt.Fprintf(w, "Found %d pizza(s):\n\n", len(pizzas))
	for _, p := range pizzas {
		names := make([]string, 0, len(p.Toppings))
		for _, t := range p.Toppings {
			names = append(names, t.Name)
		}
		fmt.Fprintf(w, "  %s  %s %s\n", idColor.Sprintf("%4d", p.ID), p.Name, muted.Sprintf("(%s)", strings.Join(names, ", ")))
	}
}
