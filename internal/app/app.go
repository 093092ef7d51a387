// package app is the main entrypoint into the application, responsible for
// configuring and starting the application, services, dependency injection,
// etc.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hbrook/galerie/internal/exhibit"
	"github.com/hbrook/galerie/internal/logging"
	"github.com/hbrook/galerie/internal/tui/top"
	"github.com/hbrook/galerie/internal/version"
	"github.com/peterbourgon/ff/v4"
)

// Start parses configuration, starts the TUI, and blocks until the user
// exits.
func Start(stdout, stderr io.Writer, args []string) error {
	cfg, err := parse(stderr, args)
	if err != nil {
		if errors.Is(err, ff.ErrHelp) {
			return nil
		}
		return fmt.Errorf("parsing config: %w", err)
	}

	if cfg.Version {
		fmt.Fprintln(stdout, "galerie", version.Version)
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a, m, err := newApp(cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m,
		// use the full size of the terminal with its "alternate screen buffer"
		tea.WithAltScreen(),
		// the carousel scrolls with the mouse wheel
		tea.WithMouseCellMotion(),
	)

	cleanup := a.start(ctx, p)
	defer cleanup()

	// Blocks until user quits
	_, err = p.Run()
	return err
}

type app struct {
	cfg      config
	logger   *logging.Logger
	exhibits *exhibit.Service
}

// newApp builds the services and the top-level model from config.
func newApp(cfg config) (*app, tea.Model, error) {
	logger := logging.NewLogger(cfg.loggingOptions)

	exhibits := exhibit.NewService(exhibit.ServiceOptions{
		Client:   exhibit.NewClient(cfg.APIURL, cfg.Mirrors, logger),
		CacheTTL: cfg.CacheTTL,
		Logger:   logger,
	})

	m, err := top.New(top.Options{
		Exhibits: exhibits,
		Logger:   logger,
		Link:     cfg.Link,
		Debug:    cfg.Debug,
	})
	if err != nil {
		return nil, nil, err
	}

	return &app{cfg: cfg, logger: logger, exhibits: exhibits}, m, nil
}

// sender is the part of tea.Program (and teatest.TestModel) the relay needs.
type sender interface {
	Send(tea.Msg)
}

// start relays log events to the program in the background. The returned
// cleanup function stops the relay and waits for it to drain.
func (a *app) start(ctx context.Context, p sender) func() {
	ctx, cancel := context.WithCancel(ctx)

	// Deliberately subscribe *before* anything logs, so the TUI receives all
	// messages.
	sub := a.logger.Subscribe(ctx)
	done := make(chan struct{})
	go func() {
		for ev := range sub {
			p.Send(ev)
		}
		close(done)
	}()

	a.logger.Info("started galerie", "version", version.Version, "api_url", a.cfg.APIURL)

	return func() {
		cancel()
		<-done
	}
}
