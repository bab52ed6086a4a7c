package main

import (
	"net/url"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"

	"github.com/poddl/poddl/pkg/download"
	"github.com/poddl/poddl/pkg/feed"
	"github.com/poddl/poddl/pkg/model"
)

type Config struct {
	// Feed is the RSS feed to download episodes from
	Feed feed.Config `toml:"feed"`
	// Storage is the download directory configuration
	Storage Storage `toml:"storage"`
	// Downloader configuration
	Downloader download.Config `toml:"downloader"`
}

type Storage struct {
	// Dir is the directory to save downloaded episodes to
	Dir string `toml:"dir"`
}

// LoadConfig loads TOML configuration from a file path. An empty path gives
// the default configuration.
func LoadConfig(path string) (*Config, error) {
	config := Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read config file: %s", path)
		}

		if err := toml.Unmarshal(data, &config); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal toml")
		}
	}

	config.applyDefaults()

	if err := config.validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) validate() error {
	var result *multierror.Error

	if u, err := url.Parse(c.Feed.URL); err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		result = multierror.Append(result, errors.Errorf("invalid feed URL %q", c.Feed.URL))
	}

	if c.Feed.PageSize < 0 {
		result = multierror.Append(result, errors.Errorf("page size must not be negative, got %d", c.Feed.PageSize))
	}

	return result.ErrorOrNil()
}

func (c *Config) applyDefaults() {
	if c.Feed.URL == "" {
		c.Feed.URL = model.DefaultFeedURL
	}

	if c.Feed.PageSize == 0 {
		c.Feed.PageSize = model.DefaultPageSize
	}

	if c.Storage.Dir == "" {
		c.Storage.Dir = model.DefaultDownloadDir
	}
}
