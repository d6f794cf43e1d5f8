package types

// Collection names in the backing store.
const (
	CollectionUsers      = "users"
	CollectionSchedules  = "conference_schedules"
	CollectionBusinesses = "ib_businesses"
)

// Record is one row returned by the store, keyed by column name. Nested
// JSON columns (such as the users "details" bag) decode to map[string]any.
type Record = map[string]any

// OrderBy is one ordering directive; directives apply in listed sequence.
type OrderBy struct {
	Column    string
	Ascending bool
}

// Asc returns an ascending ordering directive.
func Asc(column string) OrderBy {
	return OrderBy{Column: column, Ascending: true}
}

// QueryOptions describes one filtered query against a collection.
type QueryOptions struct {
	// Select lists the columns to fetch; empty means "*".
	Select string

	// Filters maps field paths to required values, combined with AND. A key
	// containing a JSON accessor ("->" or "->>") filters the nested path
	// rather than a literal column.
	Filters map[string]string

	// Order lists ordering directives, primary first.
	Order []OrderBy

	// Limit caps the number of rows returned; zero means no cap.
	Limit int
}

// StringField returns the named field as a trimmed-safe string; missing or
// non-string values yield "".
func StringField(r Record, key string) string {
	if v, ok := r[key].(string); ok {
		return v
	}
	return ""
}

// DetailsBag returns the nested "details" object of a row, or an empty map
// when absent or malformed.
func DetailsBag(r Record) map[string]any {
	if d, ok := r["details"].(map[string]any); ok {
		return d
	}
	return map[string]any{}
}

// DetailString returns a string field from a row's nested details bag.
func DetailString(r Record, key string) string {
	if v, ok := DetailsBag(r)[key].(string); ok {
		return v
	}
	return ""
}
