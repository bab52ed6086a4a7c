package model

const (
	// DefaultFeedURL is the feed to download from when no feed is configured.
	DefaultFeedURL = "https://omny.fm/shows/cozy-up/playlists/doctor.rss"
	// DefaultPageSize is the number of feed items to list for selection.
	DefaultPageSize = 10
	// DefaultDownloadDir is the directory to save downloaded episodes to.
	DefaultDownloadDir = "podcast-downloads"
)
