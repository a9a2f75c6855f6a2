package sections

import "regexp"

// youtubeIDPattern matches the three URL shapes the CMS stores: full watch
// URLs, short youtu.be links, and embed URLs.
var youtubeIDPattern = regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/)([^&?/]+)`)

// VideoID extracts the YouTube video ID from a URL, returning "" when the
// URL matches none of the known shapes. An empty ID renders the invalid-URL
// placeholder instead of a broken embed.
func VideoID(url string) string {
	m := youtubeIDPattern.FindStringSubmatch(url)
	if m == nil {
		return ""
	}
	return m[1]
}
