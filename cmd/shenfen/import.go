// CLAUDE:SUMMARY CLI subcommand that downloads and builds division datasets from public sources via import adapters.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fixturelab/shenfen/pkg/importer"
)

func cmdImport(args []string) {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	source := fs.String("source", "", "adapter ID to import (e.g. stats-divisions-cn)")
	all := fs.Bool("all", false, "import all available sources")
	check := fs.Bool("check", false, "check source availability instead of importing")
	outputDir := fs.String("output-dir", "datasets", "output directory for datasets")
	fs.Parse(args)

	// Open source DB and seed defaults.
	sourcesDBPath := filepath.Join(*outputDir, "sources.db")
	sdb, err := importer.OpenSourceDB(sourcesDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open sources.db: %v\n", err)
		os.Exit(1)
	}
	defer sdb.Close()

	if err := sdb.Seed(importer.All()); err != nil {
		fmt.Fprintf(os.Stderr, "seed sources: %v\n", err)
		os.Exit(1)
	}

	if *check {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		importer.NewChecker(sdb, newLogger(), time.Hour).CheckAll(ctx)
		return
	}

	if !*all && *source == "" {
		fmt.Println("Available sources:")
		fmt.Println()
		sources, _ := sdb.ListSources()
		for _, src := range sources {
			status := ""
			if src.LastStatus != nil {
				status = fmt.Sprintf("  [%d]", *src.LastStatus)
			}
			fmt.Printf("  %-22s  %s  (-> %s)%s\n", src.AdapterID, src.Description, src.DatasetID, status)
		}
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  shenfen import --source <id> [--output-dir <dir>]")
		fmt.Println("  shenfen import --all [--output-dir <dir>]")
		fmt.Println("  shenfen import --check")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Hour)
	defer cancel()

	if *all {
		for _, a := range importer.All() {
			url, err := sdb.GetURL(a.ID())
			if err != nil {
				fmt.Fprintf(os.Stderr, "[%s] URL error: %v\n", a.ID(), err)
				continue
			}
			fmt.Printf("[%s] importing...\n", a.ID())
			if err := a.Import(ctx, url, *outputDir); err != nil {
				fmt.Fprintf(os.Stderr, "[%s] FAILED: %v\n", a.ID(), err)
				continue
			}
			fmt.Printf("[%s] OK\n", a.ID())
		}
		return
	}

	a, err := importer.Get(*source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		fmt.Println("\nAvailable sources:")
		for _, a := range importer.All() {
			fmt.Printf("  %s\n", a.ID())
		}
		os.Exit(1)
	}

	url, err := sdb.GetURL(a.ID())
	if err != nil {
		fmt.Fprintf(os.Stderr, "[%s] URL error: %v\n", a.ID(), err)
		os.Exit(1)
	}

	fmt.Printf("[%s] importing...\n", a.ID())
	if err := a.Import(ctx, url, *outputDir); err != nil {
		fmt.Fprintf(os.Stderr, "[%s] FAILED: %v\n", a.ID(), err)
		os.Exit(1)
	}
	fmt.Printf("[%s] OK -> %s/%s/\n", a.ID(), *outputDir, a.DatasetID())
}
