// Copyright 2026 Lodgekit Labs
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


// refbase is a diagnostic tool for inspecting a YAML knowledge file
// through the retrieval engine: run queries, print stats, and probe
// for content gaps. The engine itself is a library; this command only
// wraps it for debugging knowledge files from a shell.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/lodgekit/refbase"
	"github.com/lodgekit/refbase/core"
	"github.com/lodgekit/refbase/loader"
	"github.com/lodgekit/refbase/search"
)

func main() {
	app := &cli.App{
		Name:  "refbase",
		Usage: "Keyword retrieval over a YAML knowledge file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "source",
				Aliases: []string{"s"},
				Usage:   "Path to the knowledge YAML file",
			},
			&cli.StringFlag{
				Name:    "base-dir",
				Usage:   "Directory to resolve the knowledge filename against",
				EnvVars: []string{refbase.EnvBaseDir},
			},
			&cli.StringFlag{
				Name:  "filename",
				Usage: "Knowledge file name",
				Value: loader.DefaultFilename,
			},
			&cli.IntFlag{
				Name:    "top-k",
				Aliases: []string{"k"},
				Usage:   "Default number of results",
				Value:   refbase.DefaultTopK,
				EnvVars: []string{refbase.EnvTopK},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "warn",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Trace the ranking stages of each query",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "query",
				Usage:     "Retrieve the sections most relevant to a query",
				ArgsUsage: "<terms...>",
				Action:    queryCommand,
			},
			{
				Name:   "stats",
				Usage:  "Print document set statistics",
				Action: statsCommand,
			},
			{
				Name:      "gaps",
				Usage:     "Report which of the given queries the knowledge file cannot answer",
				ArgsUsage: "<query> [<query>...]",
				Action:    gapsCommand,
			},
			{
				Name:   "watch",
				Usage:  "Auto-refresh on source changes until interrupted",
				Action: watchCommand,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func setupLogger(c *cli.Context) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.String("log-level"))); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.String("log-level"), err)
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
	return nil
}

func newRetriever(c *cli.Context) (*refbase.Retriever, error) {
	cfg := refbase.NewConfig(
		refbase.WithTopK(c.Int("top-k")),
		refbase.WithBaseDir(c.String("base-dir")),
		refbase.WithFilename(c.String("filename")),
		refbase.WithSourcePath(c.String("source")),
	)

	opts := []refbase.Option{}
	if c.Bool("verbose") {
		opts = append(opts, refbase.WithMonitor(&traceMonitor{}))
	}
	return refbase.New(cfg, opts...)
}

func queryCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.Exit("query: at least one search term is required", 1)
	}

	r, err := newRetriever(c)
	if err != nil {
		return err
	}
	defer r.Close()

	results := r.Retrieve(context.Background(), strings.Join(c.Args().Slice(), " "))
	fmt.Printf("Found %d hits\n", len(results))
	for i, hit := range results {
		fmt.Printf("%d: %s [%0.1f]\n", i, hit.Metadata[core.MetaPath], hit.Score)
		fmt.Printf("   %s\n", strings.ReplaceAll(hit.Content, "\n", "\n   "))
	}
	return nil
}

func statsCommand(c *cli.Context) error {
	r, err := newRetriever(c)
	if err != nil {
		return err
	}
	defer r.Close()

	stats := r.Stats()
	fmt.Printf("source: %s\n", stats.Source)
	fmt.Printf("sections: %d\n", stats.TotalSections)
	return nil
}

func gapsCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.Exit("gaps: at least one query is required", 1)
	}

	r, err := newRetriever(c)
	if err != nil {
		return err
	}
	defer r.Close()

	analysis := r.IdentifyGaps(context.Background(), c.Args().Slice())
	fmt.Printf("analyzed %d queries, %d gaps\n", analysis.TotalQueriesAnalyzed, analysis.GapCount)
	for _, gap := range analysis.PotentialGaps {
		fmt.Printf("gap: %q (%d fallback results)\n", gap.Query, gap.ResultCount)
	}
	return nil
}

func watchCommand(c *cli.Context) error {
	r, err := newRetriever(c)
	if err != nil {
		return err
	}
	defer r.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := r.Watch(ctx); err != nil {
		return err
	}
	fmt.Println("watching knowledge source, ctrl-c to stop")
	<-ctx.Done()
	return nil
}

// traceMonitor prints each ranking stage to stderr.
type traceMonitor struct{}

var _ search.Monitor = (*traceMonitor)(nil)

func (t *traceMonitor) Start(query string) {
	fmt.Fprintf(os.Stderr, "query: %q\n", query)
}

func (t *traceMonitor) AfterTokenize(tokens []string) {
	fmt.Fprintf(os.Stderr, "tokens: %v\n", tokens)
}

func (t *traceMonitor) AfterScoring(scored []core.ScoredDocument) {
	fmt.Fprintf(os.Stderr, "scored: %d documents above zero\n", len(scored))
}

func (t *traceMonitor) Fallback(results []core.ScoredDocument) {
	fmt.Fprintf(os.Stderr, "fallback: returning %d documents in set order\n", len(results))
}

func (t *traceMonitor) Finish(results []core.ScoredDocument) {
	fmt.Fprintf(os.Stderr, "finish: %d results\n", len(results))
}
