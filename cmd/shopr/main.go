package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/mmcdole/shopr/internal/adapter"
	"github.com/mmcdole/shopr/internal/catalog"
	"github.com/mmcdole/shopr/internal/domain"
	"github.com/mmcdole/shopr/internal/search"
	"github.com/mmcdole/shopr/internal/service"
	"github.com/mmcdole/shopr/internal/tui"
	"github.com/mmcdole/shopr/internal/tui/styles"
)

// Version is set at build time via -ldflags
var Version = "dev"

// clearSpinnerLine clears the spinner line from the terminal
const clearSpinnerLine = "\r                                              \r"

// cliFlags holds the parsed command line
type cliFlags struct {
	showVersion bool
	printMode   bool
	check       bool
	page        int

	query        string
	category     string
	minPrice     string
	maxPrice     string
	availability string
}

func main() {
	var f cliFlags
	flag.BoolVar(&f.showVersion, "v", false, "print version")
	flag.BoolVar(&f.showVersion, "version", false, "print version")
	flag.BoolVar(&f.printMode, "print", false, "print one page of results instead of starting the TUI")
	flag.BoolVar(&f.check, "check", false, "check that the catalog service is reachable")
	flag.IntVar(&f.page, "page", 1, "page to print (with --print)")
	flag.StringVar(&f.query, "q", "", "search text")
	flag.StringVar(&f.category, "category", "", "category filter")
	flag.StringVar(&f.minPrice, "min-price", "", "minimum price")
	flag.StringVar(&f.maxPrice, "max-price", "", "maximum price")
	flag.StringVar(&f.availability, "availability", "", "availability filter")
	flag.Parse()

	if f.showVersion {
		fmt.Printf("shopr %s\n", Version)
		return
	}

	if err := run(f); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(f cliFlags) error {
	// Load configuration
	cfg, err := adapter.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger, closer, err := adapter.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = adapter.NullLogger()
	} else {
		defer closer.Close()
	}
	slog.SetDefault(logger)

	logger.Info("starting shopr", "version", Version, "catalog", cfg.Catalog.URL)

	criteria, err := criteriaFromFlags(f)
	if err != nil {
		return err
	}

	interactive := term.IsTerminal(int(os.Stdout.Fd())) && !f.printMode

	// First run: ask where the catalog lives
	if interactive && !f.check && !adapter.ConfigFileExists() && term.IsTerminal(int(os.Stdin.Fd())) {
		if err := runSetupFlow(cfg, os.Stdin, logger); err != nil {
			return err
		}
	}

	client := catalog.NewClient(cfg.Catalog.URL, cfg.Catalog.Timeout, logger)

	if f.check {
		return checkCatalog(client)
	}

	searchSvc := service.NewSearchService(client, cfg.Catalog.Timeout, logger)

	if !interactive {
		view := search.NewView(cfg.Catalog.PageSize)
		view.SetOptions(domain.FieldCategory, cfg.Search.Categories)
		view.SetOptions(domain.FieldAvailability, cfg.Search.Availability)
		for _, field := range domain.Fields {
			_ = view.UpdateCriteria(field, criteria.Value(field))
		}
		return tui.RunPlain(context.Background(), os.Stdout, searchSvc, view, max(f.page, 1), cfg.UI.Currency)
	}

	launcher := adapter.NewLauncher(cfg.UI.Browser, nil, logger)
	productSvc := service.NewProductService(launcher, logger)

	// Create TUI model
	model := tui.NewModel(searchSvc, productSvc, tui.Options{
		PageSize:      cfg.Catalog.PageSize,
		Columns:       cfg.UI.GridColumns,
		Currency:      cfg.UI.Currency,
		ShowInspector: cfg.UI.ShowInspector,
		Categories:    cfg.Search.Categories,
		Availability:  cfg.Search.Availability,
		Criteria:      criteria,
	})

	// Run the TUI
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}

// criteriaFromFlags builds the initial search from the command line
func criteriaFromFlags(f cliFlags) (domain.SearchCriteria, error) {
	minPrice, err := domain.ParsePrice(f.minPrice)
	if err != nil {
		return domain.SearchCriteria{}, fmt.Errorf("--min-price %q: %w", f.minPrice, err)
	}
	maxPrice, err := domain.ParsePrice(f.maxPrice)
	if err != nil {
		return domain.SearchCriteria{}, fmt.Errorf("--max-price %q: %w", f.maxPrice, err)
	}
	return domain.SearchCriteria{
		Text:         f.query,
		Category:     f.category,
		MinPrice:     minPrice,
		MaxPrice:     maxPrice,
		Availability: f.availability,
	}, nil
}

// checkCatalog pings the catalog service and reports the result
func checkCatalog(client *catalog.Client) error {
	if err := pingWithSpinner(client, client.BaseURL()); err != nil {
		return fmt.Errorf("catalog at %s: %w", client.BaseURL(), err)
	}
	return nil
}

// runSetupFlow asks for the catalog URL and saves it
func runSetupFlow(cfg *adapter.Config, in io.Reader, logger *slog.Logger) error {
	fmt.Println()
	fmt.Println("Welcome to shopr!")
	fmt.Println()

	reader := bufio.NewReader(in)

	// Loop until we reach a catalog service
	for {
		fmt.Printf("Enter your catalog service URL [%s]: ", cfg.Catalog.URL)
		input, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		catalogURL := strings.TrimSpace(input)
		if catalogURL == "" {
			catalogURL = cfg.Catalog.URL
		}

		fmt.Println()
		client := catalog.NewClient(catalogURL, cfg.Catalog.Timeout, logger)
		if err := pingWithSpinner(client, client.BaseURL()); err != nil {
			fmt.Printf("\n✗ Could not reach the catalog: %v\n", err)
			fmt.Println("Please check the URL and try again.")
			fmt.Println()
			continue
		}

		cfg.Catalog.URL = client.BaseURL()
		break
	}

	if err := adapter.SaveConfig(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Println()
	fmt.Println("✓ Configuration saved!")
	fmt.Println()

	return nil
}

// pingWithSpinner probes the catalog with a visual spinner
func pingWithSpinner(client domain.HealthChecker, baseURL string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	resultCh := make(chan error, 1)

	// Start probe in background
	go func() {
		resultCh <- client.Ping(ctx)
	}()

	// Spinner animation
	frame := 0
	fmt.Printf("\r%s Contacting catalog service...", styles.SpinnerFrames[frame])

	ticker := time.NewTicker(80 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case err := <-resultCh:
			fmt.Print(clearSpinnerLine)
			if err != nil {
				return err
			}
			fmt.Printf("✓ Connected to %s\n", baseURL)
			return nil

		case <-ticker.C:
			frame++
			fmt.Printf("\r%s Contacting catalog service...", styles.SpinnerFrames[frame%len(styles.SpinnerFrames)])

		case <-ctx.Done():
			fmt.Print(clearSpinnerLine)
			return fmt.Errorf("timed out")
		}
	}
}
