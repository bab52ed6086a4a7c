package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/poddl/poddl/pkg/model"
)

// Fetcher returns the episodes found among the first limit items of a feed.
type Fetcher interface {
	Fetch(ctx context.Context, url string, limit int) ([]*model.Episode, error)
}

// Downloader saves an episode and returns the name of the file it was saved to.
type Downloader interface {
	Download(ctx context.Context, episode *model.Episode) (string, error)
}

// Selector asks the user to pick one of the options and returns the chosen
// option string.
type Selector func(options []string) (string, error)

type App struct {
	config     *Config
	fetcher    Fetcher
	downloader Downloader
	choose     Selector
}

func NewApp(config *Config, fetcher Fetcher, downloader Downloader, choose Selector) (*App, error) {
	return &App{
		config:     config,
		fetcher:    fetcher,
		downloader: downloader,
		choose:     choose,
	}, nil
}

// Run fetches the feed, asks the user to pick an episode and downloads it.
// A feed with no downloadable episodes is not an error.
func (a *App) Run(ctx context.Context) error {
	log.WithFields(log.Fields{
		"url":   a.config.Feed.URL,
		"limit": a.config.Feed.PageSize,
	}).Info("fetching rss feed")

	episodes, err := a.fetcher.Fetch(ctx, a.config.Feed.URL, a.config.Feed.PageSize)
	if err != nil {
		return err
	}

	log.Debugf("received %d episode(s)", len(episodes))

	if len(episodes) == 0 {
		log.Info("no episodes found in the feed")
		return nil
	}

	options := make([]string, len(episodes))
	for i, episode := range episodes {
		options[i] = fmt.Sprintf("%d. %s", i+1, episode.Title)
	}

	selection, err := a.choose(options)
	if err != nil {
		return errors.Wrap(err, "failed to select episode")
	}

	episode := matchEpisode(episodes, selection)
	if episode == nil {
		return errors.Errorf("no episode matches selection %q", selection)
	}

	log.Infof("! downloading episode %s", episode.MediaURL)
	started := time.Now()

	name, err := a.downloader.Download(ctx, episode)
	if err != nil {
		return err
	}

	elapsed := time.Since(started)
	path := filepath.Join(a.config.Storage.Dir, name)
	log.Infof("successfully downloaded episode in %s, saved to %s", elapsed, path)
	return nil
}

// matchEpisode returns the first episode whose title occurs in the selected
// option string.
func matchEpisode(episodes []*model.Episode, selection string) *model.Episode {
	for _, episode := range episodes {
		if strings.Contains(selection, episode.Title) {
			return episode
		}
	}

	return nil
}
