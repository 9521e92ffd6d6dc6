// Package routepath normalizes URL paths before they reach the route table.
//
// Every path that drives rendering (an HTTP request path, a navigate request
// over the live socket, a CLI argument) goes through Canonicalize first, so
// "/dashboard/", "//dashboard", and "/x/../dashboard" all resolve the same.
package routepath

import (
	"errors"
	"net/url"
	"strings"
)

// Result contains the result of path canonicalization.
type Result struct {
	// Path is the canonicalized path (without query string or fragment).
	Path string

	// Query is the query string (without leading "?").
	Query string

	// Changed indicates if the path was modified during canonicalization.
	Changed bool
}

// Canonicalization errors.
var (
	ErrInvalidPath          = errors.New("invalid path")
	ErrBackslashInPath      = errors.New("path contains backslash")
	ErrNullByteInPath       = errors.New("path contains null byte")
	ErrInvalidPercentEscape = errors.New("invalid percent escape sequence")
	ErrPathEscapesRoot      = errors.New("path escapes root via ..")
)

// Canonicalize normalizes a URL path:
//   - Remove trailing slash (except for root "/")
//   - Collapse multiple slashes (/about//me → /about/me)
//   - Remove "." segments
//   - Resolve ".." segments
//   - Decode escaped unreserved characters (/d%61shboard → /dashboard)
//   - Drop any "#fragment"
//
// Backslashes, NUL bytes, malformed percent-escapes, and ".." that would
// escape root are rejected. The query string is preserved but not normalized.
func Canonicalize(input string) (Result, error) {
	input, _, _ = strings.Cut(input, "#")
	if input == "" {
		return Result{Path: "/", Changed: true}, nil
	}

	path, query, _ := strings.Cut(input, "?")

	if strings.Contains(path, "\\") {
		return Result{}, ErrBackslashInPath
	}
	if strings.Contains(path, "\x00") || strings.Contains(strings.ToUpper(path), "%00") {
		return Result{}, ErrNullByteInPath
	}
	if strings.Contains(path, "%") {
		if _, err := url.PathUnescape(path); err != nil {
			return Result{}, ErrInvalidPercentEscape
		}
	}

	original := path

	var segments []string
	for _, seg := range strings.Split(path, "/") {
		seg = decodeUnreserved(seg)
		switch seg {
		case "", ".":
			continue
		case "..":
			if len(segments) == 0 {
				return Result{}, ErrPathEscapesRoot
			}
			segments = segments[:len(segments)-1]
		default:
			segments = append(segments, seg)
		}
	}

	path = "/" + strings.Join(segments, "/")

	return Result{
		Path:    path,
		Query:   query,
		Changed: path != original,
	}, nil
}

// decodeUnreserved replaces percent-escapes of ALPHA, DIGIT, "-", ".", "_"
// and "~" with the character itself. Other escapes are left alone, so an
// escaped "/" never splits a segment. seg must hold only valid escapes.
func decodeUnreserved(seg string) string {
	if !strings.Contains(seg, "%") {
		return seg
	}
	var b strings.Builder
	b.Grow(len(seg))
	for i := 0; i < len(seg); i++ {
		if seg[i] == '%' && i+2 < len(seg) {
			c := unhex(seg[i+1])<<4 | unhex(seg[i+2])
			if isUnreserved(c) {
				b.WriteByte(c)
				i += 2
				continue
			}
		}
		b.WriteByte(seg[i])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return c == '-' || c == '.' || c == '_' || c == '~'
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}

// NavTarget validates and canonicalizes a client-supplied navigation target.
// Targets must be site-relative: absolute URLs and protocol-relative "//host"
// forms are rejected. The returned value carries the query string, if any.
func NavTarget(target string) (string, error) {
	if strings.HasPrefix(target, "//") || !strings.HasPrefix(target, "/") {
		return "", ErrInvalidPath
	}
	if strings.Contains(target, "://") {
		return "", ErrInvalidPath
	}

	result, err := Canonicalize(target)
	if err != nil {
		return "", err
	}
	if result.Query != "" {
		return result.Path + "?" + result.Query, nil
	}
	return result.Path, nil
}

// StripQuery returns path without its query string.
func StripQuery(input string) string {
	path, _, _ := strings.Cut(input, "?")
	return path
}
