package feed

// Config is a configuration for the feed loaded from TOML
type Config struct {
	// URL is a full URL of the RSS feed
	URL string `toml:"url"`
	// PageSize is the number of feed items to list for selection.
	// The limit applies to raw feed items, not valid episodes, so the
	// listing may contain fewer entries than PageSize.
	PageSize int `toml:"page_size"`
}
