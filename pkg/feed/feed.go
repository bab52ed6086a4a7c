package feed

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/mmcdole/gofeed"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/poddl/poddl/pkg/model"
)

// Client fetches RSS feeds over HTTP and extracts downloadable episodes.
type Client struct {
	client *http.Client
	parser *gofeed.Parser
}

func NewClient(client *http.Client) *Client {
	if client == nil {
		client = &http.Client{}
	}

	return &Client{
		client: client,
		parser: gofeed.NewParser(),
	}
}

// Fetch returns the episodes found among the first limit items of the feed,
// in feed order. Items without a title or an enclosure URL are skipped, so
// fewer than limit episodes may be returned. An empty feed is not an error.
func (c *Client) Fetch(ctx context.Context, url string, limit int) ([]*model.Episode, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create request for %s", url)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch feed %s", url)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("failed to fetch feed %s: invalid response status %q", url, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read feed %s", url)
	}

	parsed, err := c.parser.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse feed")
	}

	log.Debugf("fetched feed %q with %d item(s)", parsed.Title, len(parsed.Items))

	items := parsed.Items
	if limit >= 0 && len(items) > limit {
		items = items[:limit]
	}

	episodes := make([]*model.Episode, 0, len(items))
	for _, item := range items {
		if item.Title == "" {
			log.Debug("skipping feed item without title")
			continue
		}

		if len(item.Enclosures) == 0 || item.Enclosures[0].URL == "" {
			log.Debugf("skipping feed item %q without enclosure", item.Title)
			continue
		}

		episodes = append(episodes, &model.Episode{
			Title:    item.Title,
			MediaURL: item.Enclosures[0].URL,
		})
	}

	return episodes, nil
}
