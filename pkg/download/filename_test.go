package download

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/poddl/poddl/pkg/model"
)

func TestSanitize(t *testing.T) {
	assert.Equal(t, "hello-world", Sanitize("hello/world"))
	assert.Equal(t, "test-file-", Sanitize("test*file?"))
	assert.Equal(t, "a-b-c-d-e-f-g-h-i", Sanitize(`a/b\c:d*e?f"g<h>i`))
	assert.Equal(t, "spaces", Sanitize("  spaces  "))
	assert.Equal(t, "test", Sanitize("\ttest\n"))
	assert.Equal(t, "한글 제목", Sanitize("한글 제목"))
	assert.Equal(t, "CON", Sanitize("CON"))
	assert.Equal(t, "", Sanitize(""))
}

func TestSanitize_Idempotent(t *testing.T) {
	for _, name := range []string{"hello/world", "test*file?", "  spaces  ", "plain title"} {
		once := Sanitize(name)
		assert.Equal(t, once, Sanitize(once))
	}
}

func TestExtension(t *testing.T) {
	assert.Equal(t, "mp3", Extension("https://example.com/audio.mp3"))
	assert.Equal(t, "mp3", Extension("https://example.com/audio.mp3?key=value"))
	assert.Equal(t, "mp3", Extension("https://example.com/file.name.mp3"))
	assert.Equal(t, "mp3", Extension("file.MP3"))
	assert.Equal(t, "m4a", Extension("https://example.com/episode.M4A?session=1&token=2"))

	// The whole URL is considered, not just the path.
	assert.Equal(t, "com/file", Extension("https://example.com/file"))
	assert.Equal(t, "http://example/podcast", Extension("http://example/podcast"))
}

func TestEpisodeName(t *testing.T) {
	episode := &model.Episode{
		Title:    "Episode: The First?",
		MediaURL: "https://cdn.example.com/audio/ep1.MP3?source=rss",
	}

	assert.Equal(t, "Episode- The First-.mp3", EpisodeName(episode))
}
