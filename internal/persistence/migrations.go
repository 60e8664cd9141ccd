package persistence

// The five entity tables are independent flat records: no foreign keys, no
// cascades. id and created_at are server-assigned; status columns carry
// plain strings with UI-level conventions only.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS departments (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		manager TEXT,
		budget REAL DEFAULT 0,
		description TEXT,
		status TEXT DEFAULT 'Active',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS employees (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		email TEXT UNIQUE,
		phone TEXT,
		department TEXT,
		position TEXT,
		salary REAL DEFAULT 0,
		hire_date TEXT,
		status TEXT DEFAULT 'Active',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		sku TEXT UNIQUE,
		category TEXT,
		quantity INTEGER DEFAULT 0,
		price REAL DEFAULT 0,
		reorder_level INTEGER DEFAULT 10,
		status TEXT DEFAULT 'In Stock',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		customer TEXT NOT NULL,
		items TEXT,
		total REAL DEFAULT 0,
		status TEXT DEFAULT 'Pending',
		order_date TEXT DEFAULT CURRENT_TIMESTAMP,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS invoices (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		invoice_number TEXT UNIQUE,
		customer TEXT NOT NULL,
		amount REAL DEFAULT 0,
		due_date TEXT,
		status TEXT DEFAULT 'Unpaid',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
}

func (s *Store) migrate() error {
	for _, stmt := range schema {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
