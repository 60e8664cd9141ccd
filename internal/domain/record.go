package domain

// Record is one flat row of a resource table as it travels over the wire.
// Keys are column names; values are whatever the store or the JSON decoder
// produced (int64, float64, string, nil).
type Record map[string]any

// ID returns the record's integer id, or 0 when absent.
func (r Record) ID() int64 {
	switch v := r["id"].(type) {
	case int64:
		return v
	case float64:
		return int64(v)
	default:
		return 0
	}
}
