// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/SalmaOuardi/arxiv-research-copilot/chunker"
	"github.com/SalmaOuardi/arxiv-research-copilot/config"
	"github.com/SalmaOuardi/arxiv-research-copilot/download"
	"github.com/SalmaOuardi/arxiv-research-copilot/extract"
	"github.com/SalmaOuardi/arxiv-research-copilot/ingestion"
	"github.com/SalmaOuardi/arxiv-research-copilot/search"
	"github.com/SalmaOuardi/arxiv-research-copilot/search/arxiv"
	badgerstore "github.com/SalmaOuardi/arxiv-research-copilot/storage/badger"
)

func main() {
	app := &cli.App{
		Name:  "copilot",
		Usage: "Build a local research corpus from arXiv papers",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to YAML config file",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "search",
				Usage:     "Search arXiv for papers matching a query",
				ArgsUsage: "<query>",
				Action:    searchCommand,
				Flags: append(searchFlags(),
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Print results as JSON",
					},
				),
			},
			{
				Name:      "download",
				Usage:     "Search for papers and download their PDFs",
				ArgsUsage: "<query>",
				Action:    downloadCommand,
				Flags:     searchFlags(),
			},
			{
				Name:      "process",
				Usage:     "Extract and chunk already-downloaded PDFs",
				ArgsUsage: "[pdf paths...]",
				Action:    processCommand,
			},
			{
				Name:      "run",
				Usage:     "Run the full pipeline: search, download, process",
				ArgsUsage: "<query>",
				Action:    runCommand,
				Flags:     searchFlags(),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func searchFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:    "max-results",
			Aliases: []string{"n"},
			Usage:   "Maximum number of results (0 uses the configured default)",
		},
		&cli.StringSliceFlag{
			Name:    "category",
			Aliases: []string{"C"},
			Usage:   "Restrict results to an arXiv category (repeatable, e.g. cs.CL)",
		},
		&cli.IntFlag{
			Name:  "offset",
			Usage: "Number of leading results to skip",
		},
	}
}

func searchCommand(c *cli.Context) error {
	query, err := queryArg(c)
	if err != nil {
		return err
	}

	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}

	searcher, backend, err := newSearcher(cfg)
	if err != nil {
		return err
	}
	defer backend.Close()

	papers, err := searcher.Search(context.Background(), query, searchOptions(c))
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if c.Bool("json") {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(papers)
	}

	for _, paper := range papers {
		fmt.Printf("%s  %s\n", paper.ArxivID, paper.Title)
	}
	fmt.Fprintf(os.Stderr, "\n%d result(s)\n", len(papers))
	return nil
}

func downloadCommand(c *cli.Context) error {
	query, err := queryArg(c)
	if err != nil {
		return err
	}

	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}

	searcher, backend, err := newSearcher(cfg)
	if err != nil {
		return err
	}
	defer backend.Close()

	ctx := context.Background()
	papers, err := searcher.Search(ctx, query, searchOptions(c))
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	if len(papers) == 0 {
		fmt.Fprintln(os.Stderr, "no papers found")
		return nil
	}

	downloader, err := newDownloader(cfg)
	if err != nil {
		return err
	}

	result, err := downloader.DownloadAll(ctx, papers, nil)
	if err != nil {
		return fmt.Errorf("download failed: %w", err)
	}

	for _, path := range result.Paths {
		fmt.Println(path)
	}
	reportFailures(result.Failures)
	return nil
}

func processCommand(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}

	paths := c.Args().Slice()
	if len(paths) == 0 {
		paths, err = filepath.Glob(filepath.Join(cfg.RawDir, "*.pdf"))
		if err != nil {
			return err
		}
	}
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "no PDFs to process")
		return nil
	}

	pipeline, cleanup, err := newPipeline(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	processed, failures := pipeline.ProcessFiles(context.Background(), paths)
	for _, path := range processed {
		fmt.Println(path)
	}
	for _, failure := range failures {
		fmt.Fprintf(os.Stderr, "failed: %s: %v\n", failure.Path, failure.Err)
	}
	if len(failures) > 0 {
		return fmt.Errorf("%d file(s) failed to process", len(failures))
	}
	return nil
}

func runCommand(c *cli.Context) error {
	query, err := queryArg(c)
	if err != nil {
		return err
	}

	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}

	pipeline, cleanup, err := newPipeline(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	opts := searchOptions(c)
	report, err := pipeline.Run(context.Background(), query, &ingestion.RunOptions{
		MaxResults: opts.MaxResults,
		Categories: opts.Categories,
		Offset:     opts.Offset,
	})
	if err != nil {
		return fmt.Errorf("pipeline run failed: %w", err)
	}

	for _, path := range report.Processed {
		fmt.Println(path)
	}
	reportFailures(report.FetchFailures)
	for _, failure := range report.ProcessFailures {
		fmt.Fprintf(os.Stderr, "failed: %s: %v\n", failure.Path, failure.Err)
	}
	fmt.Fprintf(os.Stderr, "\n%d paper(s), %d downloaded, %d processed\n",
		len(report.Papers), len(report.Downloaded), len(report.Processed))
	return nil
}

func queryArg(c *cli.Context) (string, error) {
	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return "", fmt.Errorf("a search query is required")
	}
	return query, nil
}

func searchOptions(c *cli.Context) *search.SearchOptions {
	return &search.SearchOptions{
		MaxResults: c.Int("max-results"),
		Categories: c.StringSlice("category"),
		Offset:     c.Int("offset"),
	}
}

func reportFailures(failures []download.FetchFailure) {
	for _, failure := range failures {
		fmt.Fprintf(os.Stderr, "failed: %s: %v\n", failure.ArxivID, failure.Err)
	}
}

func newSearcher(cfg *config.Config) (*search.Searcher, *badgerstore.Backend, error) {
	backend, err := badgerstore.OpenBackend(cfg.CacheDir, false)
	if err != nil {
		return nil, nil, fmt.Errorf("opening cache: %w", err)
	}

	cache, err := badgerstore.NewSearchCache(backend, badgerstore.WithTTL(cfg.CacheTTL.Std()))
	if err != nil {
		backend.Close()
		return nil, nil, err
	}

	client := arxiv.NewClient(arxiv.WithBaseURL(cfg.ArxivBaseURL))

	searcher, err := search.NewSearcher(client, cache, search.WithMaxResults(cfg.MaxResults))
	if err != nil {
		backend.Close()
		return nil, nil, err
	}
	return searcher, backend, nil
}

func newDownloader(cfg *config.Config) (*download.Downloader, error) {
	return download.NewDownloader(cfg.RawDir,
		download.WithPacer(download.NewIntervalPacer(cfg.RateInterval.Std())))
}

func newPipeline(cfg *config.Config) (*ingestion.Pipeline, func(), error) {
	searcher, backend, err := newSearcher(cfg)
	if err != nil {
		return nil, nil, err
	}

	downloader, err := newDownloader(cfg)
	if err != nil {
		backend.Close()
		return nil, nil, err
	}

	splitter, err := chunker.NewSplitter(cfg.ChunkSize, cfg.ChunkOverlap)
	if err != nil {
		backend.Close()
		return nil, nil, err
	}

	var opts []ingestion.Option
	if cfg.PoolSize > 0 {
		opts = append(opts, ingestion.WithPoolSize(cfg.PoolSize))
	}

	pipeline, err := ingestion.NewPipeline(
		searcher,
		downloader,
		extract.NewExtractor(),
		splitter,
		cfg.ProcessedDir,
		opts...,
	)
	if err != nil {
		backend.Close()
		return nil, nil, err
	}

	cleanup := func() {
		pipeline.Release()
		backend.Close()
	}
	return pipeline, cleanup, nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
