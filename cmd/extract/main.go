package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"schedule-calendar/config"
	"schedule-calendar/internal/schedule"
	"schedule-calendar/internal/schedule/usecase"
	"schedule-calendar/pkg/calendar"
	"schedule-calendar/pkg/llmprovider"
	"schedule-calendar/pkg/log"
)

// main reads a schedule text file, extracts its events and writes the
// calendar document plus both spreadsheet exports into an output directory.
func main() {
	in := flag.String("in", "", "path of the schedule text file")
	out := flag.String("out", ".", "output directory")
	configFile := flag.String("config", "", "config file (default: search ./config, ., /etc/app/)")
	flag.Parse()

	if *in == "" {
		fmt.Fprintln(os.Stderr, "usage: extract -in schedule.txt [-out dir] [-config config.yaml]")
		os.Exit(2)
	}

	if err := run(*in, *out, *configFile); err != nil {
		fmt.Fprintln(os.Stderr, "extract:", err)
		os.Exit(1)
	}
}

func run(inPath, outDir, configFile string) error {
	cfg, err := config.LoadFrom(configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	content, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM, logger)
	if err != nil {
		return fmt.Errorf("initialize providers: %w", err)
	}
	managerCfg, err := llmprovider.NewManagerConfig(&cfg.LLM)
	if err != nil {
		return fmt.Errorf("manager config: %w", err)
	}

	uc := usecase.New(logger, llmprovider.NewManager(providers, managerCfg, logger), usecase.Config{
		Location:        cfg.Schedule.Location(),
		Temperature:     cfg.Schedule.Temperature,
		MaxTokens:       cfg.Schedule.MaxTokens,
		MaxContentBytes: cfg.Schedule.MaxContentBytes,
		ProductID:       cfg.Schedule.ProductID,
		UIDDomain:       cfg.Schedule.UIDDomain,
	})

	extracted, err := uc.Extract(ctx, schedule.ExtractInput{Content: string(content)})
	if err != nil {
		return fmt.Errorf("extract (%s): %w", schedule.Kind(err), err)
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	doc, err := uc.ExportCalendar(ctx, schedule.ExportCalendarInput{Events: extracted.Events})
	if err != nil {
		return fmt.Errorf("export calendar: %w", err)
	}
	if err := writeFile(outDir, doc.Filename, doc.Document); err != nil {
		return err
	}

	for _, variant := range calendar.SpreadsheetVariants {
		sheet, err := uc.ExportSpreadsheet(ctx, schedule.ExportSpreadsheetInput{Events: extracted.Events, Variant: variant})
		if err != nil {
			return fmt.Errorf("export %s spreadsheet: %w", variant, err)
		}
		if err := writeFile(outDir, sheet.Filename, sheet.Content); err != nil {
			return err
		}
	}

	fmt.Printf("extracted %d events: %d written to %s, %d skipped\n",
		len(extracted.Events), doc.Written, doc.Filename, len(doc.Skipped))
	for _, s := range doc.Skipped {
		fmt.Printf("  skipped #%d %q: %v\n", s.Index, s.Title, s.Err)
	}
	return nil
}

func writeFile(dir, name, body string) error {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
