package pagination

import (
	"maps"
	"net/url"
	"strconv"
)

// Result holds one page and its navigation metadata.
type Result[T any] struct {
	Items      []T
	Total      int
	LinkHeader string
	NextCursor string
	PrevCursor string
}

// Paginate slices items after the cursor position and builds the RFC 8288
// Link header for the neighbouring pages. items must be in a stable order;
// a cursor whose id is no longer present restarts at the first page.
func Paginate[T any](
	items []T,
	cursor Cursor,
	limit int,
	cursorType string,
	getID func(T) string,
	baseURL string,
	query url.Values,
) Result[T] {
	total := len(items)

	start := 0
	if cursor.Value != "" {
		for i, item := range items {
			if getID(item) == cursor.Value {
				start = i + 1
				break
			}
		}
	}
	end := min(start+limit, total)
	page := items[start:end]

	var next, prev string
	if end < total && len(page) > 0 {
		next = Cursor{Type: cursorType, Value: getID(page[len(page)-1])}.Encode()
	}
	if start > 0 {
		// The previous page starts limit items back; its cursor is the item before it.
		prevValue := ""
		if start > limit {
			prevValue = getID(items[start-limit-1])
		}
		prev = Cursor{Type: cursorType, Value: prevValue}.Encode()
	}

	q := maps.Clone(query)
	if q == nil {
		q = url.Values{}
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	var links []Link
	if next != "" {
		links = append(links, Link{Rel: "next", Cursor: next})
	}
	if prev != "" {
		links = append(links, Link{Rel: "prev", Cursor: prev}, Link{Rel: "first"})
	}

	return Result[T]{
		Items:      page,
		Total:      total,
		LinkHeader: BuildLinkHeader(baseURL, q, links...),
		NextCursor: next,
		PrevCursor: prev,
	}
}
