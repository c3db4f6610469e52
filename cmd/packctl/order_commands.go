package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"packing/cmd"
	"packing/internal/adapters/out/postgres"
	"packing/internal/core/application/usecases/commands"
	"packing/internal/core/application/usecases/queries"
	"packing/internal/pkg/errs"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func newOrdersCommand(ctx *commandContext) *cobra.Command {
	ordersCmd := &cobra.Command{
		Use:   "orders",
		Short: "Search, inspect and import orders",
	}

	ordersCmd.AddCommand(newOrdersListCommand(ctx))
	ordersCmd.AddCommand(newOrdersShowCommand(ctx))
	ordersCmd.AddCommand(newOrdersSyncCommand(ctx))

	return ordersCmd
}

func parseDateFlag(name, raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	d, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("--"+name, err)
	}
	return &d, nil
}

func newOrdersListCommand(ctx *commandContext) *cobra.Command {
	var (
		filter   queries.OrderFilter
		due, end string
	)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List stored orders with their latest pack status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if filter.DueFrom, err = parseDateFlag("due-from", due); err != nil {
				return err
			}
			if filter.DueTo, err = parseDateFlag("due-to", end); err != nil {
				return err
			}
			query, err := queries.NewListOrdersQuery(filter)
			if err != nil {
				return err
			}

			db, err := ctx.database()
			if err != nil {
				return err
			}
			views, err := queries.NewListOrdersQueryHandler(db).Handle(cmd.Context(), query)
			if err != nil {
				return err
			}
			printOrders(cmd.OutOrStdout(), views)
			return nil
		},
	}

	flags := listCmd.Flags()
	flags.StringVarP(&filter.Search, "query", "q", "", "Match order number, customer or ship-to")
	flags.StringVar(&filter.PackStatus, "status", "", "Latest pack status: in_progress, complete or none")
	flags.StringVar(&due, "due-from", "", "Earliest due date (YYYY-MM-DD)")
	flags.StringVar(&end, "due-to", "", "Latest due date (YYYY-MM-DD)")
	flags.StringVar(&filter.Sort, "sort", "", "Sort keys, e.g. due_date,-order_no (default -created_at)")
	flags.IntVar(&filter.Limit, "limit", 0, fmt.Sprintf("Maximum rows (default %d)", queries.DefaultOrderListLimit))
	return listCmd
}

func newOrdersShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <order-no>",
		Short: "Show a stored order and its lines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			orderQuery, err := queries.NewGetOrderQuery(args[0])
			if err != nil {
				return err
			}
			linesQuery, err := queries.NewGetOrderLinesQuery(args[0])
			if err != nil {
				return err
			}

			db, err := ctx.database()
			if err != nil {
				return err
			}
			view, err := queries.NewGetOrderQueryHandler(db).Handle(cmd.Context(), orderQuery)
			if err != nil {
				return err
			}
			lines, err := queries.NewGetOrderLinesQueryHandler(db).Handle(cmd.Context(), linesQuery)
			if err != nil {
				return err
			}
			printOrder(cmd.OutOrStdout(), view, lines)
			return nil
		},
	}
}

func newOrdersSyncCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "sync <order-no>",
		Short: "Import an order from the order-entry system without starting a pack",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			syncCmd, err := commands.NewSyncOrderCommand(args[0])
			if err != nil {
				return err
			}

			db, err := ctx.database()
			if err != nil {
				return err
			}
			provider, err := ctx.orderProvider()
			if err != nil {
				return err
			}

			synced, err := commands.NewSyncOrderCommandHandler(orderUoWFactory(db), provider).
				Handle(cmd.Context(), syncCmd)
			if err != nil {
				return err
			}
			printSyncedOrder(cmd.OutOrStdout(), synced)
			return nil
		},
	}
}

func orderUoWFactory(db *gorm.DB) commands.OrderUoWFactory {
	factory := postgres.NewGormUnitOfWorkFactory(db)
	return cmd.FuncOrderUoWFactory(func() commands.OrderUoW {
		return factory.CreateGorm()
	})
}

func printOrders(out io.Writer, views []queries.OrderView) {
	if len(views) == 0 {
		fmt.Fprintln(out, "No orders")
		return
	}

	rows := make([][]string, 0, len(views))
	for _, v := range views {
		rows = append(rows, []string{
			v.OrderNo,
			v.CustomerName,
			orDash(v.DueDate),
			strconv.Itoa(v.TotalLines),
			strconv.Itoa(v.TotalQty),
			orDash(v.PackStatus),
		})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"Order", "Customer", "Due", "Lines", "Qty", "Pack"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignLeft},
	))
}

func printOrder(out io.Writer, v queries.OrderView, lines []queries.OrderLineView) {
	fmt.Fprintf(out, "Order:    %s\n", v.OrderNo)
	if v.CustomerName != "" {
		fmt.Fprintf(out, "Customer: %s\n", v.CustomerName)
	}
	if v.ShipTo != "" {
		fmt.Fprintf(out, "Ship to:  %s\n", v.ShipTo)
	}
	fmt.Fprintf(out, "Due:      %s\n", orDash(v.DueDate))
	fmt.Fprintf(out, "Pack:     %s\n", orDash(v.PackStatus))
	fmt.Fprintf(out, "Lines:    %d (%d pcs)\n\n", v.TotalLines, v.TotalQty)

	if len(lines) == 0 {
		return
	}
	rows := make([][]string, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, []string{
			l.ProductCode,
			fmt.Sprintf("%dx%d", l.LengthIn, l.HeightIn),
			l.Finish,
			strconv.Itoa(l.QtyOrdered),
			orDash(l.ProductTag),
		})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"Product", "Size", "Finish", "Qty", "Tag"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignLeft},
	))
}

func printSyncedOrder(out io.Writer, s commands.SyncedOrder) {
	verb := "already stored"
	if s.Imported {
		verb = "imported"
	}
	fmt.Fprintf(out, "Order %s %s: %d lines, %d pcs\n", s.OrderNo, verb, s.TotalLines, s.TotalQty)
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}
