package domain

// DashboardSnapshot combines the cross-table counts, the order revenue sum,
// and the most recent orders into one point-in-time object. The underlying
// queries run independently, so under concurrent writes the numbers may
// reflect slightly different instants.
type DashboardSnapshot struct {
	Employees      int64    `json:"employees"`
	Departments    int64    `json:"departments"`
	Products       int64    `json:"products"`
	Orders         int64    `json:"orders"`
	Revenue        float64  `json:"revenue"`
	Invoices       int64    `json:"invoices"`
	UnpaidInvoices int64    `json:"unpaidInvoices"`
	RecentOrders   []Record `json:"recentOrders"`
}
