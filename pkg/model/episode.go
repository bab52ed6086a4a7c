package model

// Episode is a single playable item from a podcast RSS feed.
// Feed items without a title or an enclosure URL never become episodes.
type Episode struct {
	// Title of the episode as published in the feed
	Title string
	// MediaURL is the URL of the audio enclosure
	MediaURL string
}
