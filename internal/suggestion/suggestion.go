package suggestion

// Suggestion is one row of the `search_suggestions` table.
type Suggestion struct {
	ID   int
	Type string
	Name string
}
