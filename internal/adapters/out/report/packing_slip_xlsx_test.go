package report

import (
	"bytes"
	"testing"
	"time"

	"packing/internal/core/application/usecases/queries"
	"packing/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func readRows(t *testing.T, buf *bytes.Buffer) [][]string {
	t.Helper()

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	assert.Equal(t, []string{slipSheet}, f.GetSheetList())

	rows, err := f.GetRows(slipSheet)
	require.NoError(t, err)
	return rows
}

func rowStartingWith(rows [][]string, first string) int {
	for i, r := range rows {
		if len(r) > 0 && r[0] == first {
			return i
		}
	}
	return -1
}

func TestPackingSlipWriter_Write(t *testing.T) {
	completed := time.Date(2026, 3, 4, 15, 30, 0, 0, time.UTC)
	slip := queries.PackingSlip{
		Header: queries.PackingSlipHeader{
			PackID:       kernel.NewUUID(),
			OrderNo:      "48213",
			CustomerName: "Northwind Millwork",
			ShipTo:       "Northwind Receiving",
			DueDate:      strPtr("2026-03-06"),
			LeadTimePlan: "Standard",
			Status:       "complete",
			CompletedAt:  &completed,
		},
		Boxes: []queries.PackingSlipBox{
			{
				BoxNo: intPtr(1), Label: "Box 1 (24x18x6 in)", CartonTypeName: strPtr("Medium"),
				LengthIn: intPtr(24), WidthIn: intPtr(18), HeightIn: intPtr(6), WeightLbs: intPtr(13),
			},
			{BoxNo: intPtr(2), Label: "Box 2"},
		},
		Items: []queries.PackingSlipItemGroup{
			{
				BoxDisplay: "1-2", ProductCode: "GRL-100", LengthIn: 30, HeightIn: 12,
				Finish: "White", QtyOrdered: 4, QtyShipped: 4, ProductTag: "A",
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, NewPackingSlipWriter().Write(&buf, slip))

	rows := readRows(t, &buf)

	assert.Equal(t, []string{"Packing Slip"}, rows[0])
	assert.Equal(t, []string{"Order", "48213"}, rows[1])
	assert.Equal(t, []string{"Due Date", "2026-03-06"}, rows[rowStartingWith(rows, "Due Date")])
	assert.Equal(t, []string{"Completed", "2026-03-04 15:30"}, rows[rowStartingWith(rows, "Completed")])

	boxHeader := rowStartingWith(rows, "Box")
	require.NotEqual(t, -1, boxHeader)
	assert.Equal(t, []string{"1", "Box 1 (24x18x6 in)", "Medium", "24x18x6", "13"}, rows[boxHeader+1])
	assert.Equal(t, []string{"2", "Box 2"}, rows[boxHeader+2])

	itemHeader := rowStartingWith(rows, "Boxes")
	require.NotEqual(t, -1, itemHeader)
	assert.Equal(t,
		[]string{"1-2", "GRL-100", "30", "12", "White", "4", "4", "A"},
		rows[itemHeader+1])
}

func TestPackingSlipWriter_Write_InProgressWithoutBoxes(t *testing.T) {
	slip := queries.PackingSlip{
		Header: queries.PackingSlipHeader{
			PackID:  kernel.NewUUID(),
			OrderNo: "50001",
			Status:  "in_progress",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, NewPackingSlipWriter().Write(&buf, slip))

	rows := readRows(t, &buf)

	assert.Equal(t, -1, rowStartingWith(rows, "Completed"))
	assert.Equal(t, []string{"Due Date"}, rows[rowStartingWith(rows, "Due Date")])

	boxHeader := rowStartingWith(rows, "Box")
	itemHeader := rowStartingWith(rows, "Boxes")
	require.NotEqual(t, -1, boxHeader)
	assert.Equal(t, boxHeader+2, itemHeader)
	assert.Len(t, rows, itemHeader+1)
}
