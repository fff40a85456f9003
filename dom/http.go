package dom

import (
	"strconv"
	"strings"

	"github.com/ufoo68/rust-browser/errs"
)

// Header is a single HTTP response header.
type Header struct {
	Name  string
	Value string
}

// HTTPResponse is the collaborator input described in spec.md §6: an
// HTTP response already read off the wire, split into its parts.
type HTTPResponse struct {
	Version    string
	StatusCode int
	Reason     string
	Headers    []Header
	Body       string
}

// HeaderValue returns the value of the named header, or an error if absent.
func (r HTTPResponse) HeaderValue(name string) (string, error) {
	for _, h := range r.Headers {
		if h.Name == name {
			return h.Value, nil
		}
	}
	return "", errs.NewNetworkError("header not found: %s", name)
}

// ParseHTTPResponse parses a raw HTTP response into its status line,
// headers, and body, per spec.md §6 and §8 invariant 4.
//
// \r\n is normalized to \n first. A response lacking a blank line yields
// empty headers and treats everything after the status line as the body.
// A response lacking even a status line is a NetworkError.
func ParseHTTPResponse(raw string) (HTTPResponse, error) {
	normalized := strings.ReplaceAll(raw, "\r\n", "\n")

	statusLine, remaining, ok := strings.Cut(normalized, "\n")
	if !ok {
		return HTTPResponse{}, errs.NewNetworkError("invalid http response: %s", normalized)
	}

	var headers []Header
	body := remaining
	if h, b, found := strings.Cut(remaining, "\n\n"); found {
		body = b
		for _, line := range strings.Split(h, "\n") {
			name, value, _ := strings.Cut(line, ":")
			headers = append(headers, Header{
				Name:  strings.TrimSpace(name),
				Value: strings.TrimSpace(value),
			})
		}
	}

	parts := strings.SplitN(statusLine, " ", 3)
	resp := HTTPResponse{Headers: headers, Body: body}
	if len(parts) > 0 {
		resp.Version = parts[0]
	}
	if len(parts) > 1 {
		code, err := strconv.Atoi(parts[1])
		if err != nil {
			code = 404
		}
		resp.StatusCode = code
	}
	if len(parts) > 2 {
		resp.Reason = parts[2]
	}

	return resp, nil
}
