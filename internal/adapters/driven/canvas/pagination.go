package canvas

import (
	"net/url"
	"regexp"
	"strings"
)

// DefaultPerPage is the page size requested from list endpoints.
const DefaultPerPage = 100

// linkRegex matches Link header entries: <url>; rel="type".
var linkRegex = regexp.MustCompile(`<([^>]+)>;\s*rel="([^"]+)"`)

// ParseLinks extracts the URLs of a Link header keyed by relation
// (current, next, prev, first, last).
func ParseLinks(linkHeader string) map[string]string {
	links := make(map[string]string)
	if linkHeader == "" {
		return links
	}

	for _, part := range strings.Split(linkHeader, ",") {
		matches := linkRegex.FindStringSubmatch(strings.TrimSpace(part))
		if len(matches) == 3 {
			links[matches[2]] = matches[1]
		}
	}
	return links
}

// NextPage returns the absolute URL of the next page, or nil on the last page.
// Relative links are resolved against the URL of the current page.
func NextPage(current *url.URL, linkHeader string) (*url.URL, error) {
	next, ok := ParseLinks(linkHeader)["next"]
	if !ok || next == "" {
		return nil, nil
	}
	u, err := url.Parse(next)
	if err != nil {
		return nil, err
	}
	if current != nil {
		u = current.ResolveReference(u)
	}
	return u, nil
}
