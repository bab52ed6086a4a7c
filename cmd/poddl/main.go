package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/jessevdk/go-flags"
	log "github.com/sirupsen/logrus"

	"github.com/poddl/poddl/pkg/download"
	"github.com/poddl/poddl/pkg/feed"
	"github.com/poddl/poddl/pkg/fs"
)

type Opts struct {
	ConfigPath string `long:"config" short:"c" env:"PODDL_CONFIG_PATH"`
	Limit      *int   `long:"limit" short:"n"`
	Debug      bool   `long:"debug"`
	NoBanner   bool   `long:"no-banner"`
	Version    bool   `long:"version" short:"v"`
}

const banner = `
 _______  _______  ______   ______   _       
(  ____ )(  ___  )(  __  \ (  __  \ ( \      
| (    )|| (   ) || (  \  )| (  \  )| (      
| (____)|| |   | || |   ) || |   ) || |      
|  _____)| |   | || |   | || |   | || |      
| (      | |   | || |   ) || |   ) || |      
| )      | (___) || (__/  )| (__/  )| (____/\
|/       (_______)(______/ (______/ (_______/
`

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	log.SetFormatter(&log.TextFormatter{
		TimestampFormat: time.RFC3339,
		FullTimestamp:   true,
	})

	// Parse args
	opts := Opts{}
	_, err := flags.Parse(&opts)
	if err != nil {
		if flags.WroteHelp(err) {
			return
		}

		log.WithError(err).Fatal("failed to parse command line arguments")
	}

	if opts.Version {
		fmt.Printf("poddl %s (commit %s, built %s)\n", version, commit, date)
		return
	}

	if opts.Debug {
		log.SetLevel(log.DebugLevel)
	}

	if !opts.NoBanner {
		log.Info(banner)
	}

	log.WithFields(log.Fields{
		"version": version,
		"commit":  commit,
		"date":    date,
	}).Info("running poddl")

	// Load TOML file
	log.Debugf("loading configuration %q", opts.ConfigPath)
	cfg, err := LoadConfig(opts.ConfigPath)
	if err != nil {
		log.WithError(err).Fatal("failed to load configuration file")
	}

	if opts.Limit != nil {
		if *opts.Limit < 0 {
			log.Fatalf("limit must not be negative, got %d", *opts.Limit)
		}

		cfg.Feed.PageSize = *opts.Limit
	}

	storage, err := fs.NewLocal(cfg.Storage.Dir)
	if err != nil {
		log.WithError(err).Fatal("failed to create storage")
	}

	var (
		ctx        = context.Background()
		httpClient = &http.Client{}
		progress   = newProgressBar(os.Stdout)
	)

	downloader := download.New(httpClient, storage, cfg.Downloader, progress.Update)
	fetcher := feed.NewClient(httpClient)
	selector := newPrompt(os.Stdin, os.Stdout)

	log.Debug("creating app")
	app, err := NewApp(cfg, fetcher, downloader, selector.ChooseOne)
	if err != nil {
		log.WithError(err).Fatal("failed to create app")
	}

	if err := app.Run(ctx); err != nil {
		log.WithError(err).Fatal("download failed")
	}
}
