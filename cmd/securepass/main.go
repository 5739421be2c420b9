// Package main is the securepass popup: an interactive terminal password
// generator that can fill the generated password into a page.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/securepass/securepass-go/internal/filler"
	"github.com/securepass/securepass-go/internal/messaging"
	"github.com/securepass/securepass-go/internal/repository"
	"github.com/securepass/securepass-go/internal/service"
	"github.com/securepass/securepass-go/internal/tui"
)

const (
	version = "0.1.0"

	// localProfile is the settings profile used by the terminal popup.
	localProfile = 0

	messageTimeout = 10 * time.Second
)

// Config holds the command line configuration.
type Config struct {
	SettingsPath string
	Print        bool
	Count        int
	Length       int
	PageURL      string
	Headed       bool
	ContentURL   string
	HTMLFile     string
	ShowVersion  bool
}

func main() {
	cfg := parseFlags()

	if cfg.ShowVersion {
		fmt.Printf("securepass v%s\n", version)
		return
	}

	if err := cfg.validate(); err != nil {
		fmt.Fprintf(os.Stderr, "securepass: %v\n", err)
		os.Exit(2)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "securepass: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() Config {
	var cfg Config
	flag.StringVar(&cfg.SettingsPath, "settings", "", "settings file (default ~/.securepass/settings.yaml)")
	flag.BoolVar(&cfg.Print, "print", false, "print passwords and exit instead of opening the popup")
	flag.IntVar(&cfg.Count, "count", 1, "number of passwords to print with -print")
	flag.IntVar(&cfg.Length, "length", 0, "password length for -print (default: stored setting)")
	flag.StringVar(&cfg.PageURL, "page", "", "open this URL in a browser and fill passwords into it")
	flag.BoolVar(&cfg.Headed, "headed", false, "show the browser opened by -page")
	flag.StringVar(&cfg.ContentURL, "content-url", "", "send fill messages to a content agent at this URL")
	flag.StringVar(&cfg.HTMLFile, "html", "", "HTML file to fill, updated in place")
	flag.BoolVar(&cfg.ShowVersion, "version", false, "show version")
	flag.Parse()
	return cfg
}

func (c Config) validate() error {
	if c.Count < 1 {
		return fmt.Errorf("-count must be at least 1")
	}
	if c.PageURL != "" && (c.ContentURL != "" || c.HTMLFile != "") {
		return fmt.Errorf("-page cannot be combined with -content-url or -html")
	}
	return nil
}

func run(cfg Config) error {
	store, err := repository.NewFileSettingsStore(cfg.SettingsPath)
	if err != nil {
		return err
	}
	settings := service.NewSettingsService(store)

	if cfg.Print {
		return printPasswords(context.Background(), os.Stdout, settings, cfg.Count, cfg.Length)
	}

	closeLog, err := setupLogging(filepath.Join(filepath.Dir(store.Path()), "securepass.log"))
	if err != nil {
		return err
	}
	defer closeLog()

	sender, finish, err := connect(cfg)
	if err != nil {
		return err
	}
	defer finish()

	popup := service.NewPopup(settings, localProfile, sender)
	if _, err := tea.NewProgram(tui.New(popup)).Run(); err != nil {
		return fmt.Errorf("running popup: %w", err)
	}
	return nil
}

// setupLogging sends slog output to a file so it does not draw over the popup.
func setupLogging(path string) (func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(f, nil)))
	return func() { f.Close() }, nil
}

// connect picks the page the popup fills. finish releases it and writes any
// filled HTML file back.
func connect(cfg Config) (messaging.Sender, func(), error) {
	switch {
	case cfg.PageURL != "":
		session, err := filler.OpenPage(cfg.PageURL, !cfg.Headed)
		if err != nil {
			return nil, nil, err
		}
		agent := service.NewContentAgent(service.AttachedSource{Doc: session.Document()})
		return messaging.NewLocal(agent), func() {
			if err := session.Close(); err != nil {
				slog.Warn("closing browser", "error", err)
			}
		}, nil

	case cfg.ContentURL != "":
		client := messaging.NewClient(cfg.ContentURL, messageTimeout)
		if cfg.HTMLFile == "" {
			return client, func() {}, nil
		}
		raw, err := os.ReadFile(cfg.HTMLFile)
		if err != nil {
			return nil, nil, err
		}
		client.SetDocument(string(raw))
		return client, func() {
			if doc := client.Document(); doc != string(raw) {
				writeHTML(cfg.HTMLFile, doc)
			}
		}, nil

	case cfg.HTMLFile != "":
		doc, err := readHTML(cfg.HTMLFile)
		if err != nil {
			return nil, nil, err
		}
		agent := service.NewContentAgent(service.AttachedSource{Doc: doc})
		return messaging.NewLocal(agent), func() {
			writeHTML(cfg.HTMLFile, doc.String())
		}, nil
	}

	return nil, func() {}, nil
}

func readHTML(path string) (*filler.HTMLDocument, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return filler.ParseHTML(f)
}

func writeHTML(path, doc string) {
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		slog.Error("writing filled page", "path", path, "error", err)
	}
}
