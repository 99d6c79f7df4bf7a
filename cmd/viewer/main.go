package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"biograph/domain"
	"biograph/repositories"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

type Config struct {
	BadgerFilepath string `envconfig:"BADGER_FILEPATH" required:"true"`
	BlugeFilepath  string `envconfig:"BLUGE_FILEPATH" required:"true"`
	Limit          int    `envconfig:"VIEWER_LIMIT" default:"50"`
	Colours        bool   `envconfig:"VIEWER_COLOURS" default:"true"`
}

// Read-only console over the findings store. Without arguments it lists
// the most recent entries; with -query it runs a full-text search.
func main() {
	query := flag.String("query", "", "Full-text search across findings")
	flag.Parse()

	_ = godotenv.Load()
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		log.Fatalf("Config error: %v", err)
	}
	log2 := logs.GetLoggerFromString("warn")

	// BypassLockGuard allows opening while the assistant holds the lock.
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	writer, err := bluge.OpenWriter(bluge.DefaultConfig(config.BlugeFilepath))
	if err != nil {
		log.Fatalf("Failed to open index: %v", err)
	}
	defer writer.Close()

	findings := repositories.NewFindingRepository(db, writer, log2)

	var results []domain.Finding
	if *query != "" {
		results, err = findings.Search(context.Background(), *query, config.Limit)
	} else {
		results, err = findings.List(config.Limit)
	}
	if err != nil {
		log.Fatalf("Lookup failed: %v", err)
	}

	header := fmt.Sprintf("%d finding(s)", len(results))
	if config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	fmt.Println(header)

	table := newTable()
	for _, finding := range results {
		table.Append([]string{
			shortID(finding.ID.String()),
			finding.DrugName,
			finding.ClinicalPhase,
			finding.Indication,
			lo.Elipse(finding.Description, 80),
			fmt.Sprintf("%d", len(finding.SideEffects)),
			finding.SubmittedAt.Format("2006-01-02 15:04"),
		})
	}
	table.Render()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func newTable() *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Drug", "Phase", "Indication", "Description", "Side Effects", "Submitted"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}
