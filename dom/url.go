package dom

import (
	"errors"
	"strings"
)

// URL is the minimal parsed form of an http:// URL the rendering pipeline
// needs: host, port, path and query, per spec.md §6.
type URL struct {
	Host       string
	Port       string
	Path       string
	SearchPart string
}

// ErrUnsupportedScheme is returned by ParseURL for any non-http scheme.
var ErrUnsupportedScheme = errors.New("Only HTTP scheme is supported.")

// ParseURL parses "http://host[:port][/path[?query]]". Any scheme other
// than http yields ErrUnsupportedScheme. Missing port defaults to "80";
// missing path and query default to "".
func ParseURL(raw string) (URL, error) {
	if !strings.Contains(raw, "http://") {
		return URL{}, ErrUnsupportedScheme
	}

	rest := strings.TrimPrefix(raw, "http://")
	authority, pathAndQuery, hasPath := strings.Cut(rest, "/")

	host := authority
	port := "80"
	if idx := strings.Index(authority, ":"); idx != -1 {
		host = authority[:idx]
		port = authority[idx+1:]
	}

	url := URL{Host: host, Port: port}
	if !hasPath {
		return url, nil
	}

	path, query, _ := strings.Cut(pathAndQuery, "?")
	url.Path = path
	url.SearchPart = query
	return url, nil
}
