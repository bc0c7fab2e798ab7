package inventory_test

import (
	"testing"

	"github.com/invmate/stocktake/internal/domain/inventory"
	"github.com/stretchr/testify/require"
)

func TestParseBaseline_BasicTable(t *testing.T) {
	raw := "Name,Code,Qty\nWidget,W1,10\nGadget,G1,5\n"

	items := inventory.ParseBaseline(raw)
	require.Len(t, items, 2)

	require.Equal(t, "Widget", items[0].Name)
	require.Equal(t, "W1", items[0].Code)
	require.Equal(t, 10, items[0].ScripticQty)
	require.Equal(t, 0, items[0].ActualQty)
	require.Nil(t, items[0].LastScannedAt)

	require.Equal(t, "Gadget", items[1].Name)
	require.Equal(t, "G1", items[1].Code)
	require.Equal(t, 5, items[1].ScripticQty)
}

func TestParseBaseline_WindowsLineEndings(t *testing.T) {
	raw := "Name,Code,Qty\r\nWidget,W1,10\r\nGadget,G1,5"

	items := inventory.ParseBaseline(raw)
	require.Len(t, items, 2)
	require.Equal(t, "W1", items[0].Code)
	require.Equal(t, "G1", items[1].Code)
}

func TestParseBaseline_BlankLinesDropped(t *testing.T) {
	raw := "Name,Code,Qty\n\nWidget,W1,10\n   \nGadget,G1,5\n\n"

	items := inventory.ParseBaseline(raw)
	require.Len(t, items, 2)
}

func TestParseBaseline_HeaderOnly(t *testing.T) {
	require.Empty(t, inventory.ParseBaseline("Name,Code,Qty\n"))
	require.Empty(t, inventory.ParseBaseline(""))
}

func TestParseBaseline_MissingFieldsDegradeToDefaults(t *testing.T) {
	// Missing name keeps the row; a missing code discards it.
	raw := "Name,Code,Qty\n,W1,3\nOrphan\nWidget,W2\nGadget,G1,many\n"

	items := inventory.ParseBaseline(raw)
	require.Len(t, items, 3)

	require.Equal(t, inventory.UnknownField, items[0].Name)
	require.Equal(t, "W1", items[0].Code)
	require.Equal(t, 3, items[0].ScripticQty)

	require.Equal(t, "Widget", items[1].Name)
	require.Equal(t, "W2", items[1].Code)
	require.Equal(t, 0, items[1].ScripticQty)

	require.Equal(t, "G1", items[2].Code)
	require.Equal(t, 0, items[2].ScripticQty, "unparseable quantity defaults to 0")
}

func TestParseBaseline_OneBadRowDoesNotBlockTheRest(t *testing.T) {
	raw := "Name,Code,Qty\ngarbage\nWidget,W1,10\n"

	items := inventory.ParseBaseline(raw)
	require.Len(t, items, 1)
	require.Equal(t, "W1", items[0].Code)
}

func TestParseBaseline_DuplicateCodesKeptInOrder(t *testing.T) {
	raw := "Name,Code,Qty\nFirst,DUP,1\nSecond,DUP,2\n"

	items := inventory.ParseBaseline(raw)
	require.Len(t, items, 2)
	require.Equal(t, "First", items[0].Name)
	require.Equal(t, "Second", items[1].Name)
	require.Equal(t, items[0].Code, items[1].Code)
}

func TestParseBaseline_QuotedFields(t *testing.T) {
	raw := "Name,Code,Qty\n\"Widget, large\",W1,10\n"

	items := inventory.ParseBaseline(raw)
	require.Len(t, items, 1)
	require.Equal(t, "Widget, large", items[0].Name)
	require.Equal(t, "W1", items[0].Code)
}

func TestParseBaseline_WhitespaceTrimmed(t *testing.T) {
	raw := "Name,Code,Qty\n  Widget , W1 , 10 \n"

	items := inventory.ParseBaseline(raw)
	require.Len(t, items, 1)
	require.Equal(t, "Widget", items[0].Name)
	require.Equal(t, "W1", items[0].Code)
	require.Equal(t, 10, items[0].ScripticQty)
}
