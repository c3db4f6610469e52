package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"packing/internal/adapters/out/report"
	"packing/internal/core/application/usecases/queries"
	"packing/internal/core/domain/model/kernel"
	"packing/internal/pkg/errs"

	"github.com/spf13/cobra"
)

func parsePackID(raw string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("pack-id", err)
	}
	return id, nil
}

func newSnapshotCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "snapshot <pack-id>",
		Short: "Show lines and boxes of a pack",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			packID, err := parsePackID(args[0])
			if err != nil {
				return err
			}
			query, err := queries.NewGetPackSnapshotQuery(packID)
			if err != nil {
				return err
			}
			db, err := ctx.database()
			if err != nil {
				return err
			}

			snapshot, err := queries.NewGetPackSnapshotQueryHandler(db).Handle(cmd.Context(), query)
			if err != nil {
				return err
			}
			printSnapshot(cmd.OutOrStdout(), snapshot)
			return nil
		},
	}
}

func newSlipCommand(ctx *commandContext) *cobra.Command {
	var out string

	slipCmd := &cobra.Command{
		Use:   "slip <pack-id>",
		Short: "Write the packing slip of a pack as an XLSX workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			packID, err := parsePackID(args[0])
			if err != nil {
				return err
			}
			query, err := queries.NewGetPackingSlipQuery(packID)
			if err != nil {
				return err
			}
			db, err := ctx.database()
			if err != nil {
				return err
			}

			slip, err := queries.NewGetPackingSlipQueryHandler(db).Handle(cmd.Context(), query)
			if err != nil {
				return err
			}

			path := out
			if path == "" {
				path = fmt.Sprintf("packing-slip-%s.xlsx", slip.Header.OrderNo)
			}
			if err = writeSlip(path, slip); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d boxes)\n", path, len(slip.Boxes))
			return nil
		},
	}

	slipCmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default packing-slip-<order>.xlsx)")
	return slipCmd
}

func writeSlip(path string, slip queries.PackingSlip) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return report.NewPackingSlipWriter().Write(f, slip)
}

func newStaleCommand(ctx *commandContext) *cobra.Command {
	var olderThan time.Duration

	staleCmd := &cobra.Command{
		Use:   "stale",
		Short: "List in-progress packs open longer than a threshold",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if olderThan <= 0 {
				return fmt.Errorf("--older-than must be positive, got %s", olderThan)
			}
			query, err := queries.NewListStalePacksQuery(time.Now().Add(-olderThan))
			if err != nil {
				return err
			}
			db, err := ctx.database()
			if err != nil {
				return err
			}

			stale, err := queries.NewListStalePacksQueryHandler(db).Handle(cmd.Context(), query)
			if err != nil {
				return err
			}
			printStalePacks(cmd.OutOrStdout(), stale)
			return nil
		},
	}

	staleCmd.Flags().DurationVar(&olderThan, "older-than", 48*time.Hour, "Minimum time since the pack was started")
	return staleCmd
}

func printSnapshot(out io.Writer, s queries.PackSnapshot) {
	h := s.Header
	fmt.Fprintf(out, "Order:    %s (%s)\n", h.OrderNo, h.Status)
	fmt.Fprintf(out, "Customer: %s\n", h.CustomerName)
	if h.ShipTo != "" {
		fmt.Fprintf(out, "Ship to:  %s\n", h.ShipTo)
	}
	if h.DueDate != nil {
		fmt.Fprintf(out, "Due:      %s\n", *h.DueDate)
	}

	lineRows := make([][]string, 0, len(s.Lines))
	for _, l := range s.Lines {
		lineRows = append(lineRows, []string{
			l.ProductCode,
			fmt.Sprintf("%dx%d", l.LengthIn, l.HeightIn),
			l.Finish,
			strconv.Itoa(l.QtyOrdered),
			strconv.Itoa(l.PackedQty),
			strconv.Itoa(l.Remaining),
		})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"Product", "Size", "Finish", "Ordered", "Packed", "Remaining"},
		lineRows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight},
	))

	if len(s.Boxes) == 0 {
		fmt.Fprintln(out, "Boxes: none")
		return
	}
	boxRows := make([][]string, 0, len(s.Boxes))
	for _, b := range s.Boxes {
		boxRows = append(boxRows, []string{
			b.Label,
			deref(b.CartonTypeName),
			weight(b.WeightLbs, b.MaxWeightLb),
			strconv.Itoa(len(b.Items)),
		})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"Box", "Carton", "Weight", "Items"},
		boxRows,
		[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight},
	))
}

func printStalePacks(out io.Writer, packs []queries.StalePack) {
	if len(packs) == 0 {
		fmt.Fprintln(out, "No stale packs")
		return
	}
	const stampLayout = "2006-01-02 15:04"
	rows := make([][]string, 0, len(packs))
	for _, p := range packs {
		startedBy := ""
		if p.StartedBy != nil {
			startedBy = strconv.FormatInt(*p.StartedBy, 10)
		}
		rows = append(rows, []string{
			p.OrderNo,
			p.PackID.String(),
			p.StartedAt.Local().Format(stampLayout),
			startedBy,
			strconv.Itoa(p.BoxCount),
		})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"Order", "Pack", "Started", "By", "Boxes"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight},
	))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// weight renders "12 / 40 lb", or "- / 40 lb" before the box is weighed.
func weight(lbs *int, maxLb int) string {
	if lbs == nil {
		return fmt.Sprintf("- / %d lb", maxLb)
	}
	return fmt.Sprintf("%d / %d lb", *lbs, maxLb)
}
