package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Resource describes one entity kind exposed as a REST collection: its URL
// segment, backing table, and the ordered allow-list of columns callers may
// set through create and update. Fields outside the list are silently
// dropped, never rejected. The list is a static contract kept in sync with
// the table schema by hand, not inferred from it.
type Resource struct {
	Name   string
	Table  string
	Fields []string
}

var (
	Departments = Resource{
		Name:   "departments",
		Table:  "departments",
		Fields: []string{"name", "manager", "budget", "description", "status"},
	}

	Employees = Resource{
		Name:   "employees",
		Table:  "employees",
		Fields: []string{"name", "email", "phone", "department", "position", "salary", "hire_date", "status"},
	}

	Products = Resource{
		Name:   "products",
		Table:  "products",
		Fields: []string{"name", "sku", "category", "quantity", "price", "reorder_level", "status"},
	}

	Orders = Resource{
		Name:   "orders",
		Table:  "orders",
		Fields: []string{"customer", "items", "total", "status", "order_date"},
	}

	Invoices = Resource{
		Name:   "invoices",
		Table:  "invoices",
		Fields: []string{"invoice_number", "customer", "amount", "due_date", "status"},
	}
)

// All lists every resource in registration order.
func All() []Resource {
	return []Resource{Departments, Employees, Products, Orders, Invoices}
}

// Columns returns the full column set of the resource's table: the
// server-assigned id first, the mutable fields, then created_at.
func (r Resource) Columns() []string {
	cols := make([]string, 0, len(r.Fields)+2)
	cols = append(cols, "id")
	cols = append(cols, r.Fields...)
	cols = append(cols, "created_at")
	return cols
}

// ColumnLabels returns human-readable export headers for Columns.
func (r Resource) ColumnLabels() []string {
	cols := r.Columns()
	labels := make([]string, len(cols))
	for i, col := range cols {
		labels[i] = labelFor(col)
	}
	return labels
}

var titler = cases.Title(language.English)

func labelFor(column string) string {
	switch column {
	case "id":
		return "ID"
	case "sku":
		return "SKU"
	}
	return titler.String(strings.ReplaceAll(column, "_", " "))
}
