package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/foodlens/labelscan/pkg/labelscan"
	"github.com/foodlens/labelscan/pkg/labelscan/config"
	"github.com/foodlens/labelscan/pkg/labelscan/history"
	"github.com/foodlens/labelscan/pkg/labelscan/history/sqlite"
	"github.com/foodlens/labelscan/pkg/labelscan/ingest"
	"github.com/foodlens/labelscan/pkg/labelscan/internalerr"
	"github.com/foodlens/labelscan/pkg/labelscan/rules"
)

func main() {
	app := &cli.App{
		Name:  "labelscan",
		Usage: "analyze food label prediction responses",
		Commands: []*cli.Command{
			{
				Name:  "analyze",
				Usage: "run the analysis pipeline over a prediction response",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "input", Aliases: []string{"i"}, Usage: "prediction JSON file ('-' for stdin)", Value: "-"},
					&cli.StringFlag{Name: "rules", Usage: "YAML rule-table overrides"},
					&cli.StringFlag{Name: "db", Usage: "SQLite scan history to append to"},
					&cli.Float64Flag{Name: "threshold", Usage: "display confidence threshold"},
				},
				Action: analyzeAction,
			},
			{
				Name:  "history",
				Usage: "list recent scans from a history database",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "db", Usage: "SQLite scan history", Required: true},
					&cli.IntFlag{Name: "limit", Usage: "maximum scans to list", Value: 10},
				},
				Action: historyAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func analyzeAction(c *cli.Context) error {
	payload, err := readPayload(c.String("input"))
	if err != nil {
		return err
	}

	tables := rules.Default()
	if path := c.String("rules"); path != "" {
		tables, err = config.LoadTables(path)
		if err != nil {
			return err
		}
	}

	analyzer := labelscan.New(labelscan.Options{
		Tables:    &tables,
		Threshold: c.Float64("threshold"),
	})
	report := analyzer.Analyze(payload)

	if report.NoResults {
		log.Println("no ingredient lines detected in payload")
	}

	if path := c.String("db"); path != "" {
		store, err := sqlite.Open(c.Context, path)
		if err != nil {
			return fmt.Errorf("open history: %w", err)
		}
		defer store.Close()

		entry := history.NewIDSource().NewEntry(time.Now(), report.Summary)
		if err := store.Append(c.Context, entry); err != nil {
			return fmt.Errorf("append history: %w", err)
		}
		log.Printf("recorded scan %s", entry.ID)
	}

	return printJSON(report)
}

func historyAction(c *cli.Context) error {
	store, err := sqlite.Open(c.Context, c.String("db"))
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer store.Close()

	entries, err := store.Recent(c.Context, c.Int("limit"))
	if err != nil {
		return fmt.Errorf("read history: %w", err)
	}
	return printJSON(entries)
}

// readPayload decodes the prediction response. A payload that is not a
// JSON object at all is the one fatal condition, rejected here before it
// reaches the pipeline.
func readPayload(path string) (ingest.Payload, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read payload: %w", err)
	}

	var payload ingest.Payload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("%w: payload is not a JSON object: %v", internalerr.ErrInvalidInput, err)
	}
	return payload, nil
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
