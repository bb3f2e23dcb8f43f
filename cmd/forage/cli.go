package main

import (
	"context"
	"io"
	"log/slog"
)

// Dependencies holds shared context and output streams for command
// execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Wiki    WikiCmd    `cmd:"" help:"Extract wiki page artifacts from a saved page archive"`
	Forum   ForumCmd   `cmd:"" help:"Extract forum topic records and a CSV index from saved pages"`
	Images  ImagesCmd  `cmd:"" help:"Collect unique image references from a wiki archive into a CSV"`
	Fetch   FetchCmd   `cmd:"" help:"Download the images listed in a reference CSV"`
	Crawl   CrawlCmd   `cmd:"" help:"Crawl a site and save its pages locally"`
	Sync    SyncCmd    `cmd:"" help:"Fetch new topics from a forum listing, or move topic files between directories"`
	Dataset DatasetCmd `cmd:"" help:"Assemble extracted artifacts into a SQLite dataset"`
}

// WikiCmd is the "wiki" subcommand.
type WikiCmd struct {
	Zip         string `help:"Wiki page archive (zip)" type:"path"`
	Dir         string `help:"Directory of saved wiki pages" type:"path"`
	Out         string `help:"Output directory for text artifacts" type:"path" required:""`
	TableFormat string `help:"Table rendering format" enum:"markdown,text" default:"markdown"`
}

// ForumCmd is the "forum" subcommand.
type ForumCmd struct {
	Dir        string `help:"Directory of saved topic pages" type:"path" required:""`
	Out        string `help:"Output directory for topic JSON records" type:"path" required:""`
	CSV        string `help:"Topic index CSV path" type:"path" required:""`
	SiteSuffix string `help:"Site name suffix stripped from page titles"`
	SkipEmpty  bool   `help:"Drop topics with no recognizable posts"`
	Markdown   bool   `help:"Convert post bodies to Markdown"`
}

// ImagesCmd is the "images" subcommand.
type ImagesCmd struct {
	Zip     string `help:"Wiki page archive (zip)" type:"path" required:""`
	CSV     string `help:"Image reference CSV path" type:"path" required:""`
	BaseURL string `help:"Canonical image download URL prefix" default:"https://wiki.factorio.com/images/"`
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	CSV     string  `help:"Image reference CSV path" type:"path" required:""`
	Out     string  `help:"Directory to store downloaded images" type:"path" required:""`
	Workers int     `help:"Parallel download workers" default:"5"`
	RPS     float64 `help:"Requests per second per domain" default:"2"`
}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	Site     string  `arg:"" help:"Site profile: wiki or forum" enum:"wiki,forum"`
	URL      string  `help:"Start URL" required:""`
	Out      string  `help:"Directory to save fetched pages" type:"path" required:""`
	Depth    int     `help:"Maximum link depth" default:"5"`
	MaxPages int     `help:"Stop after this many pages (0 = unlimited)"`
	Workers  int     `help:"Concurrent fetches" default:"4"`
	RPS      float64 `help:"Requests per second per domain" default:"2"`
	Sitemap  bool    `help:"Seed the crawl from the site's sitemap"`
}

// SyncCmd is the "sync" subcommand.
type SyncCmd struct {
	URL  string `help:"Forum listing URL to fetch new topics from"`
	Move string `help:"Move saved topic files from this directory instead of fetching" type:"path"`
	Dir  string `help:"Topic page directory" type:"path" required:""`
}

// DatasetCmd is the "dataset" subcommand.
type DatasetCmd struct {
	Forum  string `help:"Directory of topic JSON records" type:"path"`
	Wiki   string `help:"Directory of wiki text artifacts" type:"path"`
	Images string `help:"Image reference CSV to load" type:"path"`
	DB     string `help:"SQLite dataset path" type:"path" required:""`
	Readme bool   `help:"Write a README.md next to the dataset"`
}
