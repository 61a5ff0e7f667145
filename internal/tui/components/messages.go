package components

// SearchClosedMsg reports that the dismiss control of a search input was used.
type SearchClosedMsg struct {
	Query string
}

// SearchConfirmedMsg reports that a query was submitted.
type SearchConfirmedMsg struct {
	Query   string
	Results int
}
