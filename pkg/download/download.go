package download

import (
	"context"
	"net/http"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/poddl/poddl/pkg/fs"
	"github.com/poddl/poddl/pkg/model"
)

// chunkSize is the number of bytes copied between progress updates.
const chunkSize = 8192

// Config is a downloader configuration loaded from TOML
type Config struct {
	// CleanPartial removes the partially written file when a download
	// fails. By default partial files are left on disk.
	CleanPartial bool `toml:"clean_partial"`
}

// Progress is called after every downloaded chunk. The downloaded counter
// never decreases and reaches total once the download completes.
type Progress func(downloaded int64, total int64)

// Downloader saves episode enclosures to storage.
type Downloader struct {
	client       *http.Client
	storage      fs.Storage
	cleanPartial bool
	onProgress   Progress
}

func New(client *http.Client, storage fs.Storage, cfg Config, onProgress Progress) *Downloader {
	if client == nil {
		client = &http.Client{}
	}

	return &Downloader{
		client:       client,
		storage:      storage,
		cleanPartial: cfg.CleanPartial,
		onProgress:   onProgress,
	}
}

// Download fetches the episode enclosure and saves it to storage, overwriting
// any existing file with the same name. The server must report the episode
// size via Content-Length, otherwise the download fails. Returns the name of
// the file the episode was saved to.
func (d *Downloader) Download(ctx context.Context, episode *model.Episode) (string, error) {
	name := EpisodeName(episode)
	logger := log.WithFields(log.Fields{
		"url":  episode.MediaURL,
		"file": name,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, episode.MediaURL, nil)
	if err != nil {
		return "", errors.Wrapf(err, "failed to create request for %s", episode.MediaURL)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return "", errors.Wrapf(err, "failed to download %s", episode.MediaURL)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("failed to download %s: invalid response status %q", episode.MediaURL, resp.Status)
	}

	if resp.ContentLength < 0 {
		return "", errors.Wrapf(model.ErrUnknownContentLength, "failed to download %s", episode.MediaURL)
	}

	logger.Debugf("downloading %d bytes", resp.ContentLength)

	reader := newProgressReader(resp.Body, resp.ContentLength, d.onProgress)

	written, err := d.storage.Create(ctx, name, reader)
	if err != nil {
		if d.cleanPartial {
			logger.Debug("removing partial file")
			if delErr := d.storage.Delete(ctx, name); delErr != nil && !os.IsNotExist(delErr) {
				logger.WithError(delErr).Error("failed to remove partial file")
			}
		}

		return "", err
	}

	logger.Debugf("downloaded %d bytes", written)
	return name, nil
}
