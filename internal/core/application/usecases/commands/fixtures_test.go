package commands_test

import (
	"fmt"
	"testing"
	"time"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/order"
	"packing/internal/core/domain/model/pack"

	"github.com/stretchr/testify/require"
)

func newOrderWithLines(t *testing.T, qtys ...int) (*order.Order, []*order.Line) {
	t.Helper()

	o, err := order.NewOrder(kernel.NewUUID(), order.Header{Number: "100234", Source: order.SourceOES})
	require.NoError(t, err)

	lines := make([]*order.Line, 0, len(qtys))
	for i, qty := range qtys {
		l, err := o.AddLine(kernel.NewUUID(), order.LineDetails{ProductCode: fmt.Sprintf("LG-%d", i+1), QtyOrdered: qty})
		require.NoError(t, err)
		lines = append(lines, l)
	}
	return o, lines
}

func newPackFor(t *testing.T, o *order.Order) *pack.Pack {
	t.Helper()
	p, err := pack.NewPack(kernel.NewUUID(), o.ID(), nil, time.Now().UTC())
	require.NoError(t, err)
	return p
}

func customSpec(t *testing.T) pack.BoxSpec {
	t.Helper()
	dims, err := kernel.NewDimensions(24, 18, 6)
	require.NoError(t, err)
	spec, err := pack.NewCustomSpec(dims)
	require.NoError(t, err)
	return spec
}

func addBox(t *testing.T, p *pack.Pack) *pack.Box {
	t.Helper()
	box, err := p.AddBox(customSpec(t), pack.DefaultCustomMaxWeightLb)
	require.NoError(t, err)
	return box
}

func newIDs3() (kernel.UUID, kernel.UUID, kernel.UUID) {
	return kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
}
