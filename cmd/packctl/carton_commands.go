package main

import (
	"fmt"
	"io"
	"strconv"

	"packing/internal/core/application/usecases/queries"

	"github.com/spf13/cobra"
)

func newCartonsCommand(ctx *commandContext) *cobra.Command {
	cartonsCmd := &cobra.Command{
		Use:   "cartons",
		Short: "Inspect the carton catalog",
	}

	cartonsCmd.AddCommand(newCartonsListCommand(ctx))
	cartonsCmd.AddCommand(newCartonsLowStockCommand(ctx))

	return cartonsCmd
}

func newCartonsListCommand(ctx *commandContext) *cobra.Command {
	var all bool

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List carton types by name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := ctx.database()
			if err != nil {
				return err
			}
			views, err := queries.NewListCartonTypesQueryHandler(db).
				Handle(cmd.Context(), queries.NewListCartonTypesQuery(!all))
			if err != nil {
				return err
			}
			printCartons(cmd.OutOrStdout(), views)
			return nil
		},
	}

	listCmd.Flags().BoolVar(&all, "all", false, "Include inactive carton types")
	return listCmd
}

func newCartonsLowStockCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "low-stock",
		Short: "List active carton types below minimum stock",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := ctx.database()
			if err != nil {
				return err
			}
			views, err := queries.NewGetLowStockCartonsQueryHandler(db).
				Handle(cmd.Context(), queries.NewGetLowStockCartonsQuery())
			if err != nil {
				return err
			}
			if len(views) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "All carton types are stocked")
				return nil
			}
			printCartons(cmd.OutOrStdout(), views)
			return nil
		},
	}
}

func printCartons(out io.Writer, views []queries.CartonTypeView) {
	if len(views) == 0 {
		fmt.Fprintln(out, "No carton types")
		return
	}

	rows := make([][]string, 0, len(views))
	for _, v := range views {
		maxWeight := "-"
		if v.MaxWeightLb > 0 {
			maxWeight = strconv.Itoa(v.MaxWeightLb)
		}
		active := "yes"
		if !v.Active {
			active = "no"
		}
		rows = append(rows, []string{
			v.Name,
			fmt.Sprintf("%dx%dx%d", v.LengthIn, v.WidthIn, v.HeightIn),
			maxWeight,
			strconv.Itoa(v.QuantityOnHand),
			strconv.Itoa(v.MinimumStock),
			strconv.Itoa(v.Shortfall()),
			active,
		})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"Name", "Size", "Max lb", "On hand", "Minimum", "Short", "Active"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight, alignLeft},
	))
}
