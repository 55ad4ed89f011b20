package platform

import (
	"testing"
	"time"
)

func TestExtractPlaylistID(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected string
	}{
		{
			name:     "Playlist page URL",
			url:      "https://www.youtube.com/playlist?list=PLrAXtmRdnEQy4Qy9RMp-YYbYUPIZHVUOb",
			expected: "PLrAXtmRdnEQy4Qy9RMp-YYbYUPIZHVUOb",
		},
		{
			name:     "Watch URL with playlist and extra params",
			url:      "https://www.youtube.com/watch?v=dQw4w9WgXcQ&list=PLtest123&start_radio=1",
			expected: "PLtest123",
		},
		{
			name:     "Playlist param first",
			url:      "https://www.youtube.com/watch?list=PLfirst&v=dQw4w9WgXcQ",
			expected: "PLfirst",
		},
		{
			name:     "Single video URL",
			url:      "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			expected: "",
		},
		{
			name:     "Empty list value",
			url:      "https://www.youtube.com/playlist?list=",
			expected: "",
		},
		{
			name:     "Empty URL",
			url:      "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ExtractPlaylistID(tt.url)
			if result != tt.expected {
				t.Errorf("ExtractPlaylistID(%q) = %q, expected %q", tt.url, result, tt.expected)
			}
		})
	}
}

func TestIsPlaylistURL(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected bool
	}{
		{"Playlist", "https://www.youtube.com/playlist?list=PL123", true},
		{"Watch in playlist", "https://www.youtube.com/watch?v=abc&list=PL123", true},
		{"Video", "https://www.youtube.com/watch?v=abc", false},
		{"Short link", "https://youtu.be/abc", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsPlaylistURL(tt.url); got != tt.expected {
				t.Errorf("IsPlaylistURL(%q) = %v, expected %v", tt.url, got, tt.expected)
			}
		})
	}
}

func TestPlaylistLister_SetTimeout(t *testing.T) {
	lister := NewPlaylistLister()
	if lister.timeout != DefaultParseTimeout {
		t.Errorf("Expected default timeout %v, got %v", DefaultParseTimeout, lister.timeout)
	}

	lister.SetTimeout(5 * time.Second)
	if lister.timeout != 5*time.Second {
		t.Errorf("Expected timeout 5s, got %v", lister.timeout)
	}
}

func TestPlaylistLister_InvalidURL(t *testing.T) {
	lister := NewPlaylistLister()
	if _, err := lister.ListVideoURLs(t.Context(), "https://www.youtube.com/watch?v=abc"); err == nil {
		t.Error("Expected error for URL without playlist ID")
	}
}
