package pagination

import (
	"maps"
	"net/url"
	"strings"
)

// Link is one RFC 8288 link relation. An empty Cursor addresses the first
// page and drops the cursor parameter.
type Link struct {
	Rel    string
	Cursor string
}

// BuildLinkHeader renders links against path, keeping the other query
// parameters of the current request.
func BuildLinkHeader(path string, query url.Values, links ...Link) string {
	parts := make([]string, 0, len(links))
	for _, l := range links {
		q := maps.Clone(query)
		if q == nil {
			q = url.Values{}
		}
		if l.Cursor == "" {
			q.Del("cursor")
		} else {
			q.Set("cursor", l.Cursor)
		}
		target := path
		if enc := q.Encode(); enc != "" {
			target += "?" + enc
		}
		parts = append(parts, "<"+target+">; rel=\""+l.Rel+"\"")
	}
	return strings.Join(parts, ", ")
}
