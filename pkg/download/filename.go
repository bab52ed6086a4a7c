package download

import (
	"fmt"
	"strings"

	"github.com/poddl/poddl/pkg/model"
)

// Sanitize makes an episode title safe to use as a file name. Characters
// not allowed in file names are replaced with "-" and surrounding whitespace
// is trimmed. Applying Sanitize to an already sanitized name is a no-op.
func Sanitize(name string) string {
	name = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '-'
		default:
			return r
		}
	}, name)

	return strings.TrimSpace(name)
}

// Extension returns the lowercased text after the last dot of the URL, with
// query parameters stripped. The whole URL is considered, not just the path,
// so "https://example.com/file" yields "com/file", and a URL without any
// dot is returned whole.
func Extension(mediaURL string) string {
	if i := strings.IndexByte(mediaURL, '?'); i >= 0 {
		mediaURL = mediaURL[:i]
	}

	if i := strings.LastIndexByte(mediaURL, '.'); i >= 0 {
		mediaURL = mediaURL[i+1:]
	}

	return strings.ToLower(mediaURL)
}

// EpisodeName returns the file name to save an episode to.
func EpisodeName(episode *model.Episode) string {
	return fmt.Sprintf("%s.%s", Sanitize(episode.Title), Extension(episode.MediaURL))
}
