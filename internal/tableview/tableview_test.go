package tableview

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testColumns = []Column{
	{Key: "name", Label: "Name"},
	{Key: "category", Label: "Category"},
	{Key: "price", Label: "Price"},
}

// twentyRows builds 20 products, exactly three of which mention "gadget".
func twentyRows() []map[string]any {
	rows := make([]map[string]any, 0, 20)
	for i := 1; i <= 20; i++ {
		category := "Accessories"
		if i%7 == 0 {
			category = "Gadgets"
		}
		rows = append(rows, map[string]any{
			"id":       int64(i),
			"name":     fmt.Sprintf("Item %02d", i),
			"category": category,
			"price":    float64(i) * 3.50,
		})
	}
	// rows 7 and 14 are Gadgets; one more by name
	rows[2]["name"] = "Pocket Gadget"
	return rows
}

func TestSearchFiltersAndPaginates(t *testing.T) {
	v := New(testColumns)
	v.SetRows(twentyRows())

	require.Equal(t, 20, v.FilteredCount())
	require.Equal(t, 3, v.TotalPages(), "20 rows at page size 8")

	v.SetPage(3)
	require.Equal(t, 3, v.Page())

	v.SetQuery("gadget")
	assert.Equal(t, 1, v.Page(), "query change resets to the first page")
	assert.Equal(t, 3, v.FilteredCount())
	assert.Equal(t, 1, v.TotalPages())
	assert.Len(t, v.Rows(), 3)

	v.SetQuery("")
	assert.Equal(t, 1, v.Page())
	assert.Equal(t, 20, v.FilteredCount())
}

func TestSearchIsCaseInsensitiveSubstring(t *testing.T) {
	v := New(testColumns)
	v.SetRows([]map[string]any{
		{"name": "Mechanical Keyboard", "category": "Peripherals", "price": 89.99},
		{"name": "Webcam HD", "category": "Peripherals", "price": 69.99},
		{"name": "Standing Desk", "category": "Furniture", "price": 599.99},
	})

	v.SetQuery("PERIPH")
	assert.Equal(t, 2, v.FilteredCount())

	// numeric values are searched through their string form
	v.SetQuery("599.99")
	assert.Equal(t, 1, v.FilteredCount())

	v.SetQuery("no such thing")
	assert.Equal(t, 0, v.FilteredCount())
}

func TestNumericSortToggle(t *testing.T) {
	v := New(testColumns)
	v.SetRows([]map[string]any{
		{"name": "SSD", "price": 109.99},
		{"name": "Mouse", "price": 29.99},
		{"name": "Cable", "price": 9.99},
	})

	v.ToggleSort("price")
	rows := v.Rows()
	require.Len(t, rows, 3)
	// numeric, not lexicographic: "109.99" would sort before "29.99" as a string
	assert.Equal(t, 9.99, rows[0]["price"])
	assert.Equal(t, 29.99, rows[1]["price"])
	assert.Equal(t, 109.99, rows[2]["price"])

	v.ToggleSort("price")
	rows = v.Rows()
	assert.Equal(t, 109.99, rows[0]["price"], "second click reverses to descending")

	v.ToggleSort("name")
	key, dir := v.Sort()
	assert.Equal(t, "name", key)
	assert.Equal(t, Ascending, dir, "new column starts ascending")
	rows = v.Rows()
	assert.Equal(t, "Cable", rows[0]["name"])
}

func TestSortOperatesOnFilteredRows(t *testing.T) {
	v := New(testColumns)
	v.SetRows(twentyRows())

	v.SetQuery("gadget")
	v.ToggleSort("price")

	rows := v.Rows()
	require.Len(t, rows, 3)
	for i := 1; i < len(rows); i++ {
		assert.LessOrEqual(t, rows[i-1]["price"].(float64), rows[i]["price"].(float64))
	}
}

func TestPageClamping(t *testing.T) {
	v := New(testColumns)
	v.SetRows(twentyRows())

	v.SetPage(99)
	assert.Equal(t, 3, v.Page())
	assert.Len(t, v.Rows(), 4, "last page holds the remainder")

	v.SetPage(0)
	assert.Equal(t, 1, v.Page())
	assert.Len(t, v.Rows(), 8)
}

func TestPageWindow(t *testing.T) {
	rows := make([]map[string]any, 77)
	for i := range rows {
		rows[i] = map[string]any{"name": fmt.Sprintf("Row %d", i), "price": float64(i)}
	}

	v := New(testColumns)
	v.SetRows(rows)
	require.Equal(t, 10, v.TotalPages())

	assert.Equal(t, []int{1, 2, 3, 4, 5}, v.PageWindow(), "anchored to the start")

	v.SetPage(7)
	assert.Equal(t, []int{5, 6, 7, 8, 9}, v.PageWindow(), "centered mid-range")

	v.SetPage(10)
	assert.Equal(t, []int{6, 7, 8, 9, 10}, v.PageWindow(), "anchored to the end")

	v.SetRows(rows[:30])
	require.Equal(t, 4, v.TotalPages())
	v.SetPage(1)
	assert.Equal(t, []int{1, 2, 3, 4}, v.PageWindow(), "fewer pages than buttons")
}

func TestEmptyStates(t *testing.T) {
	v := New(testColumns)
	assert.Equal(t, NoRows, v.Empty())

	v.SetRows(twentyRows())
	assert.Equal(t, NotEmpty, v.Empty())

	v.SetQuery("zzz-no-match")
	assert.Equal(t, NoMatches, v.Empty())
}

func TestColumnFormatter(t *testing.T) {
	col := Column{
		Key:   "price",
		Label: "Price",
		Format: func(v any) string {
			return fmt.Sprintf("$%.2f", v)
		},
	}
	assert.Equal(t, "$29.99", col.Cell(map[string]any{"price": 29.99}))

	plain := Column{Key: "name", Label: "Name"}
	assert.Equal(t, "Mouse", plain.Cell(map[string]any{"name": "Mouse"}))
}

func TestCustomPageSize(t *testing.T) {
	v := New(testColumns, WithPageSize(5))
	v.SetRows(twentyRows())
	assert.Equal(t, 4, v.TotalPages())
	assert.Len(t, v.Rows(), 5)
}
