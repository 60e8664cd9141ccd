package repository

import (
	"context"

	"github.com/spec-kit/erp-console/internal/domain"
	"github.com/spec-kit/erp-console/internal/persistence"
)

// DashboardRepository aggregates cross-table statistics.
type DashboardRepository interface {
	Snapshot(ctx context.Context) (*domain.DashboardSnapshot, error)
}

type dashboardRepository struct {
	store *persistence.Store
}

// NewDashboardRepository builds the repository.
func NewDashboardRepository(store *persistence.Store) DashboardRepository {
	return &dashboardRepository{store: store}
}

// Snapshot runs each aggregate as an independent point-in-time query; there
// is no transaction spanning them.
func (r *dashboardRepository) Snapshot(ctx context.Context) (*domain.DashboardSnapshot, error) {
	db := r.store.DB()
	snap := &domain.DashboardSnapshot{}

	counts := []struct {
		query string
		dest  *int64
	}{
		{"SELECT COUNT(*) FROM employees", &snap.Employees},
		{"SELECT COUNT(*) FROM departments", &snap.Departments},
		{"SELECT COUNT(*) FROM products", &snap.Products},
		{"SELECT COUNT(*) FROM orders", &snap.Orders},
		{"SELECT COUNT(*) FROM invoices", &snap.Invoices},
		{"SELECT COUNT(*) FROM invoices WHERE status = 'Unpaid' OR status = 'Overdue'", &snap.UnpaidInvoices},
	}
	for _, c := range counts {
		if err := db.QueryRowContext(ctx, c.query).Scan(c.dest); err != nil {
			return nil, err
		}
	}

	if err := db.QueryRowContext(ctx,
		"SELECT COALESCE(SUM(total), 0) FROM orders").Scan(&snap.Revenue); err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx,
		"SELECT * FROM orders ORDER BY created_at DESC, id DESC LIMIT 5")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	snap.RecentOrders, err = scanRecords(rows)
	if err != nil {
		return nil, err
	}
	return snap, nil
}
