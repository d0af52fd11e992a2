package shared

// Page is an offset/limit window over an ordered listing
type Page struct {
	Offset int
	Limit  int
}

// NewPage creates a page, falling back to defaultLimit for a non-positive limit
// and clamping it to maxLimit when maxLimit is positive.
func NewPage(offset, limit, defaultLimit, maxLimit int) Page {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}
	return Page{Offset: offset, Limit: limit}
}

// Listing is a slice of entities plus the total number of rows in the store
type Listing[T any] struct {
	Items []T
	Total int64
}

// PageLimits holds the default and maximum page size of one listing
type PageLimits struct {
	Default int
	Max     int
}

// Page builds a page from caller-supplied offset and limit
func (l PageLimits) Page(offset, limit int) Page {
	return NewPage(offset, limit, l.Default, l.Max)
}
