package download

import (
	"net/url"
	"regexp"
	"strings"
)

var unsafeIDChars = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// Path prefixes that carry a video ID as the next segment
var videoPathPrefixes = []string{"/shorts/", "/embed/", "/live/", "/v/"}

// VideoID derives the stable file stem for a video URL. The YouTube ID is
// taken from watch?v=, youtu.be/, /shorts/ or /embed/; other URLs fall back
// to their sanitized last path segment.
func VideoID(rawURL string) string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return sanitizeID(rawURL)
	}

	if v := u.Query().Get("v"); v != "" {
		return sanitizeID(v)
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	if host == "youtu.be" {
		if id := firstSegment(u.Path); id != "" {
			return sanitizeID(id)
		}
	}

	for _, prefix := range videoPathPrefixes {
		if rest, ok := strings.CutPrefix(u.Path, prefix); ok {
			if id := firstSegment(rest); id != "" {
				return sanitizeID(id)
			}
		}
	}

	segments := strings.FieldsFunc(u.Path, func(r rune) bool { return r == '/' })
	if len(segments) > 0 {
		if id := sanitizeID(segments[len(segments)-1]); id != "" {
			return id
		}
	}
	return sanitizeID(u.Host + u.Path)
}

func firstSegment(path string) string {
	path = strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(path, '/'); i >= 0 {
		path = path[:i]
	}
	return path
}

func sanitizeID(s string) string {
	return strings.Trim(unsafeIDChars.ReplaceAllString(s, "_"), "_")
}
