package slots

import "strings"

// Record is one persisted row as the backend returns it. Callers must supply
// records in ascending insertion order: the backend's row identifier is
// monotonically increasing, so insertion order is recency order.
type Record struct {
	Day  string
	Time string
	Name string
}

// FoldRecords reconciles duplicate rows for the same (day, time) into one
// effective value. Later records overwrite earlier ones, except that a blank
// name never erases a previously observed non-blank name. A later non-blank
// write still replaces an earlier non-blank one.
//
// This is a read-side step only; it does not delete duplicate rows.
func FoldRecords(records []Record) Store {
	store := make(Store)
	for _, record := range records {
		name := strings.TrimSpace(record.Name)
		if name == "" {
			// blank never overwrites: whatever is running (including
			// nothing) stays as-is
			continue
		}
		store.Set(record.Day, record.Time, name)
	}
	return store
}
