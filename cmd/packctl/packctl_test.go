package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"packing/internal/core/application/usecases/commands"
	"packing/internal/core/application/usecases/queries"
	"packing/internal/core/domain/model/kernel"
	"packing/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestRenderTable_PadsShortRows(t *testing.T) {
	out := renderTable([]string{"A", "B"}, [][]string{{"x"}}, nil)
	assert.Contains(t, out, "A")
	assert.Contains(t, out, "x")
	assert.Empty(t, renderTable(nil, nil, nil))
}

func TestPrintSnapshot(t *testing.T) {
	var buf bytes.Buffer
	printSnapshot(&buf, queries.PackSnapshot{
		Header: queries.PackHeader{
			OrderNo:      "10452",
			CustomerName: "Acme Cabinets",
			DueDate:      ptr("2026-10-20"),
			Status:       "in_progress",
		},
		Lines: []queries.LineSnapshot{
			{ProductCode: "DR-01", LengthIn: 30, HeightIn: 18, Finish: "White", QtyOrdered: 4, PackedQty: 1, Remaining: 3},
		},
		Boxes: []queries.BoxSnapshot{
			{Label: "Box 1 (24x18x6 in)", WeightLbs: ptr(12), MaxWeightLb: 40, Items: make([]queries.BoxItemSnapshot, 1)},
			{Label: "Box 2", MaxWeightLb: 40},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "10452 (in_progress)")
	assert.Contains(t, out, "2026-10-20")
	assert.Contains(t, out, "DR-01")
	assert.Contains(t, out, "30x18")
	assert.Contains(t, out, "12 / 40 lb")
	assert.Contains(t, out, "- / 40 lb")
	assert.NotContains(t, out, "Ship to")
}

func TestPrintSnapshot_NoBoxes(t *testing.T) {
	var buf bytes.Buffer
	printSnapshot(&buf, queries.PackSnapshot{Header: queries.PackHeader{OrderNo: "1", Status: "complete"}})
	assert.Contains(t, buf.String(), "Boxes: none")
}

func TestPrintCartons(t *testing.T) {
	var buf bytes.Buffer
	printCartons(&buf, []queries.CartonTypeView{
		{Name: "Large", LengthIn: 24, WidthIn: 18, HeightIn: 6, MaxWeightLb: 60, QuantityOnHand: 2, MinimumStock: 10, Active: true},
		{Name: "Retired", LengthIn: 10, WidthIn: 10, HeightIn: 10, Active: false},
	})

	lines := strings.Split(buf.String(), "\n")
	var large, retired string
	for _, l := range lines {
		switch {
		case strings.Contains(l, "Large"):
			large = l
		case strings.Contains(l, "Retired"):
			retired = l
		}
	}
	require.NotEmpty(t, large)
	require.NotEmpty(t, retired)
	assert.Contains(t, large, "24x18x6")
	assert.Contains(t, large, " 8 ")
	assert.Contains(t, retired, " - ")
	assert.Contains(t, retired, "no")
}

func TestPrintCartons_Empty(t *testing.T) {
	var buf bytes.Buffer
	printCartons(&buf, nil)
	assert.Equal(t, "No carton types\n", buf.String())
}

func TestPrintStalePacks(t *testing.T) {
	var buf bytes.Buffer
	printStalePacks(&buf, nil)
	assert.Equal(t, "No stale packs\n", buf.String())

	buf.Reset()
	id := kernel.NewUUID()
	printStalePacks(&buf, []queries.StalePack{
		{PackID: id, OrderNo: "10452", StartedAt: time.Date(2026, 10, 1, 8, 0, 0, 0, time.Local), StartedBy: ptr(int64(7)), BoxCount: 3},
	})
	out := buf.String()
	assert.Contains(t, out, id.String())
	assert.Contains(t, out, "2026-10-01 08:00")
}

func TestSnapshotCommand_RejectsMalformedPackID(t *testing.T) {
	root := newRootCommand()
	root.SetArgs([]string{"snapshot", "not-a-uuid"})
	root.SetOut(&bytes.Buffer{})

	err := root.Execute()

	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrValueIsInvalid))
}

func TestStaleCommand_RejectsNonPositiveThreshold(t *testing.T) {
	root := newRootCommand()
	root.SetArgs([]string{"stale", "--older-than", "0s"})
	root.SetOut(&bytes.Buffer{})

	err := root.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "--older-than")
}

func TestPrintOrders(t *testing.T) {
	var buf bytes.Buffer
	printOrders(&buf, []queries.OrderView{
		{OrderNo: "100234", CustomerName: "Acme Cabinets", DueDate: ptr("2026-11-01"), TotalLines: 2, TotalQty: 7, PackStatus: ptr("in_progress")},
		{OrderNo: "100240", CustomerName: "Birch Works", TotalLines: 1, TotalQty: 3},
	})

	out := buf.String()
	assert.Contains(t, out, "100234")
	assert.Contains(t, out, "2026-11-01")
	assert.Contains(t, out, "in_progress")
	assert.Contains(t, out, "Birch Works")
	assert.Less(t, strings.Index(out, "100234"), strings.Index(out, "100240"))
}

func TestPrintOrders_Empty(t *testing.T) {
	var buf bytes.Buffer
	printOrders(&buf, nil)
	assert.Equal(t, "No orders\n", buf.String())
}

func TestPrintOrder(t *testing.T) {
	var buf bytes.Buffer
	printOrder(&buf,
		queries.OrderView{OrderNo: "100234", CustomerName: "Acme Cabinets", TotalLines: 1, TotalQty: 4},
		[]queries.OrderLineView{
			{ProductCode: "DR-01", LengthIn: 30, HeightIn: 18, Finish: "White", QtyOrdered: 4, ProductTag: ptr("K-12")},
		},
	)

	out := buf.String()
	assert.Contains(t, out, "Order:    100234")
	assert.Contains(t, out, "Pack:     -")
	assert.Contains(t, out, "1 (4 pcs)")
	assert.Contains(t, out, "30x18")
	assert.Contains(t, out, "K-12")
	assert.NotContains(t, out, "Ship to")
}

func TestPrintSyncedOrder(t *testing.T) {
	var buf bytes.Buffer
	printSyncedOrder(&buf, commands.SyncedOrder{OrderNo: "100234", Imported: true, TotalLines: 2, TotalQty: 7})
	printSyncedOrder(&buf, commands.SyncedOrder{OrderNo: "100240", TotalLines: 1, TotalQty: 3})

	assert.Equal(t,
		"Order 100234 imported: 2 lines, 7 pcs\nOrder 100240 already stored: 1 lines, 3 pcs\n",
		buf.String(),
	)
}

func TestOrdersListCommand_RejectsBadFilters(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown status", args: []string{"--status", "shipped"}},
		{name: "malformed date", args: []string{"--due-from", "11/01/2026"}},
		{name: "inverted range", args: []string{"--due-from", "2026-11-02", "--due-to", "2026-11-01"}},
		{name: "unsortable field", args: []string{"--sort", "ship_to"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := newRootCommand()
			root.SetArgs(append([]string{"orders", "list"}, tt.args...))
			root.SetOut(&bytes.Buffer{})

			err := root.Execute()

			require.Error(t, err)
			assert.True(t, errors.Is(err, errs.ErrValueIsInvalid), err.Error())
		})
	}
}
