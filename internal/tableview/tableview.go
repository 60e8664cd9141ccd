// Package tableview implements the generic list presentation pipeline of the
// admin console: free-text filtering, column sorting, and fixed-size
// pagination over an arbitrary slice of flat records. The three stages
// derive strictly from one another (filter, then sort, then paginate) and
// are memoized, so sorting only ever sees search-matched rows and a page is
// always a slice of the sorted, filtered result.
package tableview

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DefaultPageSize is the fixed number of rows per page.
const DefaultPageSize = 8

// maxPageButtons caps the compact page-number window.
const maxPageButtons = 5

// Column declares one displayed column: the record key it reads, its header
// label, and an optional display formatter. Search and sort always use the
// raw value, not the formatted one.
type Column struct {
	Key    string
	Label  string
	Format func(v any) string
}

// Cell renders the row's value for this column, applying the formatter when
// one is declared.
func (c Column) Cell(row map[string]any) string {
	val := row[c.Key]
	if c.Format != nil {
		return c.Format(val)
	}
	return stringify(val)
}

// Direction is a sort direction.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// EmptyState distinguishes a table with no rows at all from one where the
// search query matched nothing.
type EmptyState int

const (
	NotEmpty EmptyState = iota
	NoRows
	NoMatches
)

// Option customizes a View.
type Option func(*View)

// WithPageSize overrides the fixed page size.
func WithPageSize(n int) Option {
	return func(v *View) {
		if n > 0 {
			v.pageSize = n
		}
	}
}

// WithLanguage sets the collation language for string comparison.
func WithLanguage(tag language.Tag) Option {
	return func(v *View) {
		v.collator = collate.New(tag)
	}
}

// View holds the pipeline inputs (source rows, query, sort column and
// direction, current page) and the memoized derived stages.
type View struct {
	columns  []Column
	pageSize int
	collator *collate.Collator

	source  []map[string]any
	query   string
	sortKey string
	dir     Direction
	page    int

	dirty    bool
	filtered []map[string]any
	sorted   []map[string]any
}

// New builds a view over the given column specification.
func New(columns []Column, opts ...Option) *View {
	v := &View{
		columns:  columns,
		pageSize: DefaultPageSize,
		collator: collate.New(language.English),
		page:     1,
		dirty:    true,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// SetRows replaces the source array. The current page is clamped on read,
// not reset.
func (v *View) SetRows(rows []map[string]any) {
	v.source = rows
	v.dirty = true
}

// SetQuery updates the search query and resets to the first page.
func (v *View) SetQuery(q string) {
	if q == v.query {
		return
	}
	v.query = q
	v.page = 1
	v.dirty = true
}

// Query returns the active search query.
func (v *View) Query() string {
	return v.query
}

// ToggleSort selects the column ascending, or flips the direction when it is
// already the active sort column.
func (v *View) ToggleSort(key string) {
	if v.sortKey == key {
		if v.dir == Ascending {
			v.dir = Descending
		} else {
			v.dir = Ascending
		}
	} else {
		v.sortKey = key
		v.dir = Ascending
	}
	v.dirty = true
}

// Sort returns the active sort column and direction.
func (v *View) Sort() (string, Direction) {
	return v.sortKey, v.dir
}

// SetPage moves to the given page, clamped to the valid range.
func (v *View) SetPage(p int) {
	v.page = p
}

// Page returns the current page, clamped to [1, TotalPages].
func (v *View) Page() int {
	total := v.TotalPages()
	page := v.page
	if page < 1 {
		page = 1
	}
	if total > 0 && page > total {
		page = total
	}
	return page
}

// FilteredCount reports how many rows survive the search filter.
func (v *View) FilteredCount() int {
	v.recompute()
	return len(v.sorted)
}

// TotalPages is ceil(filtered row count / page size).
func (v *View) TotalPages() int {
	v.recompute()
	return int(math.Ceil(float64(len(v.sorted)) / float64(v.pageSize)))
}

// Rows returns the current page of the filtered, sorted result.
func (v *View) Rows() []map[string]any {
	v.recompute()
	start := (v.Page() - 1) * v.pageSize
	if start >= len(v.sorted) {
		return nil
	}
	end := start + v.pageSize
	if end > len(v.sorted) {
		end = len(v.sorted)
	}
	return v.sorted[start:end]
}

// Empty reports whether the view has nothing to show and why.
func (v *View) Empty() EmptyState {
	v.recompute()
	if len(v.sorted) > 0 {
		return NotEmpty
	}
	if v.query != "" {
		return NoMatches
	}
	return NoRows
}

// PageWindow computes the compact page-number buttons: at most five,
// centered on the current page and anchored to the start or end of the range
// near the boundaries.
func (v *View) PageWindow() []int {
	total := v.TotalPages()
	if total == 0 {
		return nil
	}
	count := total
	if count > maxPageButtons {
		count = maxPageButtons
	}

	page := v.Page()
	window := make([]int, count)
	for i := 0; i < count; i++ {
		switch {
		case total <= maxPageButtons:
			window[i] = i + 1
		case page <= 3:
			window[i] = i + 1
		case page >= total-2:
			window[i] = total - 4 + i
		default:
			window[i] = page - 2 + i
		}
	}
	return window
}

func (v *View) recompute() {
	if !v.dirty {
		return
	}
	v.filtered = v.filter()
	v.sorted = v.sortRows(v.filtered)
	v.dirty = false
}

// filter retains rows where any declared column's stringified value contains
// the query, case-insensitively.
func (v *View) filter() []map[string]any {
	if v.query == "" {
		return v.source
	}
	q := strings.ToLower(v.query)
	matched := make([]map[string]any, 0, len(v.source))
	for _, row := range v.source {
		for _, col := range v.columns {
			val, ok := row[col.Key]
			if !ok || val == nil {
				continue
			}
			if strings.Contains(strings.ToLower(stringify(val)), q) {
				matched = append(matched, row)
				break
			}
		}
	}
	return matched
}

// sortRows orders a copy of the rows by the active column: numerically when
// both values are numbers, otherwise by locale-aware string comparison.
// Equal keys keep their original relative order.
func (v *View) sortRows(rows []map[string]any) []map[string]any {
	if v.sortKey == "" {
		return rows
	}
	sorted := make([]map[string]any, len(rows))
	copy(sorted, rows)

	sort.SliceStable(sorted, func(i, j int) bool {
		cmp := v.compare(sorted[i][v.sortKey], sorted[j][v.sortKey])
		if v.dir == Descending {
			return cmp > 0
		}
		return cmp < 0
	})
	return sorted
}

func (v *View) compare(a, b any) int {
	af, aNum := toFloat(a)
	bf, bNum := toFloat(b)
	if aNum && bNum {
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		default:
			return 0
		}
	}
	return v.collator.CompareString(stringify(a), stringify(b))
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case float32:
		return float64(n), true
	}
	return 0, false
}

func stringify(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%v", v)
}
