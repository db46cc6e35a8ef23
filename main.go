package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/thaisring/ticket-show-world/auth"
	"github.com/thaisring/ticket-show-world/catalog"
	"github.com/thaisring/ticket-show-world/config"
	"github.com/thaisring/ticket-show-world/payment"
	"github.com/thaisring/ticket-show-world/store"
	"github.com/thaisring/ticket-show-world/tui"
)

const appName = "ticket-show-world"

var (
	version = "dev"
	commit  = "none"
)

func printUsage(out *os.File) {
	fmt.Fprintf(out, "Usage: %s [--version]\n", appName)
}

func printVersion() {
	fmt.Printf("%s %s", appName, version)
	if commit != "none" && commit != "" {
		fmt.Printf(" (%s)", commit)
	}
	fmt.Println()
}

func handleArgs(args []string) bool {
	if len(args) == 0 {
		return true
	}

	for _, arg := range args {
		switch arg {
		case "-h", "--help", "help":
			printUsage(os.Stdout)
			return false
		case "-v", "--version", "version":
			printVersion()
			return false
		default:
			fmt.Fprintf(os.Stderr, "Unknown argument: %s\n", arg)
			printUsage(os.Stderr)
			os.Exit(2)
		}
	}

	return false
}

// loadCatalog uses the built-in sample catalog unless a catalog service URL
// is configured, in which case it fetches with a short on-disk cache.
func loadCatalog(cfg config.Config) (*catalog.Store, error) {
	if cfg.CatalogURL == "" {
		return catalog.Sample(), nil
	}

	if cached, fresh, err := store.LoadCatalogCache(); err == nil && fresh {
		if cat, err := catalog.New(cached.Events, cached.Shows, cached.Premieres, cached.Categories); err == nil {
			return cat, nil
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	client := catalog.NewClient(cfg.CatalogURL, nil)
	cat, err := client.FetchStore(ctx)
	if err != nil {
		return nil, err
	}
	_ = store.SaveCatalogCache(store.CatalogSnapshot{
		Events:     cat.Events(),
		Shows:      cat.ApprovedShows(),
		Premieres:  cat.Premieres(),
		Categories: cat.LiveCategories(),
	})
	return cat, nil
}

func newAuthenticator(cfg config.Config) tui.Authenticator {
	if cfg.DemoUser != "" {
		return &auth.Static{SignedIn: true, Name: cfg.DemoUser}
	}
	return auth.FileSession{}
}

func newProcessor(cfg config.Config) payment.Processor {
	sim := payment.NewSimulator()
	sim.SuccessRate = cfg.SuccessRate
	sim.Timeout = cfg.PaymentTimeout
	return sim
}

func main() {
	if !handleArgs(os.Args[1:]) {
		return
	}

	cfg := config.Load()
	cat, err := loadCatalog(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	app := tui.New(cat, newAuthenticator(cfg), newProcessor(cfg), cfg)
	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
