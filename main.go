package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"rando-scraper/config"
	"rando-scraper/fetcher"
	"rando-scraper/notify"
	"rando-scraper/scrape"
	"rando-scraper/server"
	"rando-scraper/sheets"
	"rando-scraper/store"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	baseURL := flag.String("base", "", "Blog base URL")
	pages := flag.Int("max-pages", 0, "Maximum number of listing pages to walk")
	hikes := flag.Int("max-hikes", 0, "Stop after storing this many hikes (0 = no limit)")
	delay := flag.Duration("delay", 0, "Delay between requests, e.g. 800ms")
	fetcherName := flag.String("fetcher", "", "Fetch engine: http, colly or browser")
	driver := flag.String("driver", "", "Storage driver: sqlite or postgres")
	dbPath := flag.String("o", "", "SQLite database path")
	serve := flag.Bool("serve", false, "Serve the browse API instead of scraping")
	spreadsheetURL := flag.String("spreadsheet", "", "Google Sheets URL to export the catalogue to after scraping")
	credentialsPath := flag.String("credentials", "", "Path to Google service account credentials JSON file (or use GOOGLE_SHEETS_CREDENTIALS env var)")
	flag.Parse()

	cfg := loadConfig(*configPath)

	// Flags set on the command line win over the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "base":
			cfg.Scraper.BaseURL = *baseURL
		case "max-pages":
			cfg.Scraper.MaxPages = *pages
		case "max-hikes":
			cfg.Scraper.MaxHikes = *hikes
		case "delay":
			cfg.Scraper.Delay = config.DurationFrom(*delay)
		case "fetcher":
			cfg.Scraper.Fetcher = *fetcherName
		case "driver":
			cfg.Store.Driver = *driver
		case "o":
			cfg.Store.Path = *dbPath
		}
	})

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Error: Invalid configuration: %v\n", err)
	}

	st, err := store.Open(cfg.Store.Driver, cfg.Store.Path)
	if err != nil {
		log.Fatalf("Error: Failed to initialize database: %v\n", err)
	}
	defer st.Close()
	log.Println("Database initialized successfully")

	if *serve {
		handler := server.NewHandler(st)
		if err := handler.Run(cfg.Server.Addr); err != nil {
			log.Fatalf("Error: API server failed: %v\n", err)
		}
		return
	}

	runScrape(cfg, st, *spreadsheetURL, *credentialsPath)
}

// runScrape performs one scrape run and optionally exports the catalogue.
func runScrape(cfg *config.Config, st store.Store, spreadsheetURL, credentialsPath string) {
	f, err := newFetcher(cfg.Scraper)
	if err != nil {
		log.Fatalf("Error: Failed to create fetcher: %v\n", err)
	}
	defer func() {
		if closer, ok := f.(io.Closer); ok {
			if err := closer.Close(); err != nil {
				log.Printf("Warning: Failed to close browser: %v\n", err)
			}
		}
	}()

	var gate *fetcher.RobotsGate
	if cfg.Scraper.RespectRobots {
		gate = fetcher.NewRobotsGate(f, cfg.Scraper.BaseURL, cfg.Scraper.UserAgent)
	}

	summary, runErr := scrape.NewOrchestrator(f, gate, st, cfg.Scraper).Run()

	notifier, err := notify.NewTelegramNotifier()
	if err != nil {
		log.Printf("Warning: Telegram notifications disabled: %v\n", err)
	}
	notifier.NotifyRun(summary)

	if runErr != nil {
		log.Fatalf("Error: Scrape run failed: %v\n", runErr)
	}
	if summary.Stored == 0 {
		log.Fatalf("Error: No hikes were stored\n")
	}

	fmt.Printf("Stored %d hikes (%d pages visited, %d links found, %d skipped)\n",
		summary.Stored, summary.PagesVisited, summary.URLsFound, summary.Skipped())

	if spreadsheetURL != "" {
		exportToSheets(st, spreadsheetURL, credentialsPath, cfg.Scraper.BaseURL)
	}
}

// newFetcher builds the configured fetch engine.
func newFetcher(cfg config.ScraperConfig) (fetcher.Fetcher, error) {
	opts := fetcher.Options{
		UserAgent: cfg.UserAgent,
		Delay:     cfg.Delay.Duration,
		Timeout:   cfg.Timeout.Duration,
	}

	switch cfg.Fetcher {
	case config.FetcherColly:
		return fetcher.NewCollyFetcher(opts), nil
	case config.FetcherBrowser:
		return fetcher.NewRodFetcher(opts)
	default:
		return fetcher.NewHTTPFetcher(opts), nil
	}
}

// exportToSheets writes the whole stored catalogue to a new sheet.
func exportToSheets(st store.Store, spreadsheetURL, credentialsPath, sourceURL string) {
	spreadsheetID := sheets.ExtractSpreadsheetID(spreadsheetURL)
	if spreadsheetID == "" {
		log.Printf("Warning: Could not extract spreadsheet ID from URL: %s\n", spreadsheetURL)
		return
	}

	writer, err := sheets.NewWriter(spreadsheetID, credentialsPath)
	if err != nil {
		log.Printf("Warning: Failed to initialize Google Sheets writer: %v\n", err)
		return
	}

	records, err := st.LoadAll()
	if err != nil {
		log.Printf("Warning: Failed to load hikes for export: %v\n", err)
		return
	}

	sheetName := fmt.Sprintf("Randos_%s", time.Now().Format("20060102_150405"))
	if _, _, err := writer.CreateSheetAndWriteHikes(sheetName, records, sourceURL); err != nil {
		log.Printf("Warning: Failed to write to Google Sheets: %v\n", err)
		return
	}
	fmt.Printf("Exported %d hikes to Google Sheets\n", len(records))
}

// loadConfig loads configuration from file or returns defaults
func loadConfig(configPath string) *config.Config {
	if _, err := os.Stat(configPath); err != nil {
		log.Println("Config file not found. Using default configuration.")
		return config.GetDefaultConfig()
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Printf("Warning: Failed to load config file: %v. Using defaults.\n", err)
		return config.GetDefaultConfig()
	}
	return cfg
}
