package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/permuta-go/pkg/permuta/models"
)

// tbl builds a test table; "" marks a blank cell.
func tbl(name string, headers []string, rows ...[]string) models.Table {
	t := models.Table{Name: name, Headers: headers}
	for _, r := range rows {
		cells := make([]models.Cell, len(r))
		for i, v := range r {
			if v != "" {
				cells[i] = models.String(v)
			}
		}
		t.Rows = append(t.Rows, cells)
	}
	return t
}

func TestClassifyMissingAxisTable(t *testing.T) {
	_, err := Classify([]models.Table{
		tbl("GENERAL", []string{"Manufacturer"}, []string{"Acme"}),
	})
	assert.ErrorIs(t, err, ErrMissingAxisTable)

	// Case-sensitive, exact match only.
	_, err = Classify([]models.Table{
		tbl("id", []string{"Size"}, []string{"S"}),
	})
	assert.ErrorIs(t, err, ErrMissingAxisTable)
}

func TestClassifyAxes(t *testing.T) {
	spec, err := Classify([]models.Table{
		tbl("ID",
			[]string{"Size", "Color", "Trim"},
			[]string{"S", "RED", ""},
			[]string{"M", "", ""},
			[]string{"", "BLUE", ""},
		),
	})
	require.NoError(t, err)

	require.Len(t, spec.Axes, 3)
	assert.Equal(t, Axis{Name: "Size", Values: []string{"S", "M"}}, spec.Axes[0])
	assert.Equal(t, Axis{Name: "Color", Values: []string{"RED", "BLUE"}}, spec.Axes[1])
	// Blanks are dropped, not preserved as empty strings; an axis may
	// end up with no values at all.
	assert.Equal(t, Axis{Name: "Trim", Values: []string(nil)}, spec.Axes[2])
}

func TestClassifyDefaultsFirstRowOnly(t *testing.T) {
	spec, err := Classify([]models.Table{
		tbl("ID", []string{"Size"}, []string{"S"}),
		tbl("GENERAL",
			[]string{"Manufacturer", "Type", "Notes"},
			[]string{"Acme", "", "first"},
			[]string{"Other", "City", "second"},
		),
	})
	require.NoError(t, err)

	assert.Equal(t, []Field{
		{Name: "Manufacturer", Value: "Acme"},
		{Name: "Notes", Value: "first"},
	}, spec.Defaults)
}

func TestClassifyDefaultsNoDataRows(t *testing.T) {
	spec, err := Classify([]models.Table{
		tbl("ID", []string{"Size"}, []string{"S"}),
		tbl("GENERAL", []string{"Manufacturer"}),
	})
	require.NoError(t, err)
	assert.Empty(t, spec.Defaults)
}

func TestClassifyOverrides(t *testing.T) {
	spec, err := Classify([]models.Table{
		tbl("ID", []string{"Color"}, []string{"RED"}),
		tbl("Colors",
			[]string{"Color", "Hex", "Finish"},
			[]string{"RED", "#FF0000", ""},
			[]string{"RED", "", "matte"},
		),
	})
	require.NoError(t, err)

	require.Len(t, spec.Overrides, 1)
	ot := spec.Overrides[0]
	assert.Equal(t, "Color", ot.KeyColumn)
	// Duplicate keys stay as separate rows; the merge engine applies
	// them in row order.
	require.Len(t, ot.Rows, 2)
	assert.Equal(t, OverrideRow{Key: "RED", Fields: []Field{{Name: "Hex", Value: "#FF0000"}}}, ot.Rows[0])
	assert.Equal(t, OverrideRow{Key: "RED", Fields: []Field{{Name: "Finish", Value: "matte"}}}, ot.Rows[1])
}

func TestClassifyZeroColumnTableSkipped(t *testing.T) {
	spec, err := Classify([]models.Table{
		tbl("ID", []string{"Size"}, []string{"S"}),
		{Name: "Empty"},
	})
	require.NoError(t, err)
	assert.Empty(t, spec.Overrides)
}

func TestClassifyDuplicateKeyColumnLastWins(t *testing.T) {
	spec, err := Classify([]models.Table{
		tbl("ID", []string{"Color", "Size"}, []string{"RED", "S"}),
		tbl("SheetA",
			[]string{"Color", "Hex"},
			[]string{"RED", "#AA0000"},
		),
		tbl("Sizes",
			[]string{"Size", "Label"},
			[]string{"S", "Small"},
		),
		tbl("SheetB",
			[]string{"Color", "Hex"},
			[]string{"RED", "#FF0000"},
		),
	})
	require.NoError(t, err)

	// The later same-keyed table replaces the earlier one wholly (no
	// row merge across tables) but keeps its discovery position.
	require.Len(t, spec.Overrides, 2)
	assert.Equal(t, "Color", spec.Overrides[0].KeyColumn)
	assert.Equal(t, "Size", spec.Overrides[1].KeyColumn)
	require.Len(t, spec.Overrides[0].Rows, 1)
	assert.Equal(t, []Field{{Name: "Hex", Value: "#FF0000"}}, spec.Overrides[0].Rows[0].Fields)
}

func TestAxisIndexAndOverrideFor(t *testing.T) {
	spec, err := Classify([]models.Table{
		tbl("ID", []string{"Size", "Color"}, []string{"S", "RED"}),
		tbl("Colors", []string{"Color", "Hex"}, []string{"RED", "#FF0000"}),
	})
	require.NoError(t, err)

	assert.Equal(t, 0, spec.AxisIndex("Size"))
	assert.Equal(t, 1, spec.AxisIndex("Color"))
	assert.Equal(t, -1, spec.AxisIndex("Weight"))

	require.NotNil(t, spec.OverrideFor("Color"))
	assert.Nil(t, spec.OverrideFor("Size"))
}
