package transcript

import (
	"net/url"
	"regexp"
	"strings"
)

var reVideoID = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)

// ExtractVideoID extracts the 11-character video ID from a YouTube URL
// or returns the input unchanged if it already looks like an ID.
//
// Supported forms:
//   - https://www.youtube.com/watch?v=VIDEO_ID
//   - https://youtu.be/VIDEO_ID
//   - https://www.youtube.com/embed/VIDEO_ID
//   - https://www.youtube.com/v/VIDEO_ID
//   - https://www.youtube.com/shorts/VIDEO_ID
func ExtractVideoID(input string) string {
	if reVideoID.MatchString(input) {
		return input
	}

	u, err := url.Parse(input)
	if err != nil {
		return ""
	}

	host := strings.TrimPrefix(u.Hostname(), "www.")
	switch host {
	case "youtube.com", "m.youtube.com", "music.youtube.com":
		if u.Path == "/watch" {
			if id := u.Query().Get("v"); reVideoID.MatchString(id) {
				return id
			}
			return ""
		}
		for _, prefix := range []string{"/embed/", "/v/", "/shorts/", "/live/"} {
			if strings.HasPrefix(u.Path, prefix) {
				id := strings.SplitN(strings.TrimPrefix(u.Path, prefix), "/", 2)[0]
				if reVideoID.MatchString(id) {
					return id
				}
				return ""
			}
		}
	case "youtu.be":
		id := strings.SplitN(strings.TrimPrefix(u.Path, "/"), "/", 2)[0]
		if reVideoID.MatchString(id) {
			return id
		}
	}

	return ""
}

// WatchURL returns the canonical watch URL for a video ID.
func WatchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}
