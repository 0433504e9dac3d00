package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/assignd/internal/config"
	"github.com/sandeepkv93/assignd/internal/model"
	"github.com/sandeepkv93/assignd/internal/notify"
	"github.com/sandeepkv93/assignd/internal/reminder"
	"github.com/sandeepkv93/assignd/internal/store"
	"github.com/sandeepkv93/assignd/internal/update"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "assignd failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.FromEnv(loadConfig())

	blobs, err := store.OpenSQLite(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer blobs.Close()

	ctx := context.Background()
	s := store.New(blobs)
	if err := s.Load(ctx); err != nil {
		return fmt.Errorf("load tasks: %w", err)
	}
	if cfg.SeedSamples && s.Len() == 0 {
		seedSamples(ctx, s)
	}

	feed, feedNotifier := update.NewReminderFeed(8)
	sink := notify.Fanout{
		feedNotifier,
		notify.Desktop{Enabled: cfg.DesktopNotifications, Title: "Assignment Tracker"},
	}
	sweeper := reminder.NewSweeper(
		s,
		sink,
		time.Duration(cfg.ReminderIntervalSeconds)*time.Second,
		reminder.Policy(cfg.ReminderPolicy),
	)
	sweeper.Start()
	defer sweeper.Stop()

	program := tea.NewProgram(update.NewModelWithFeed(s, feed))
	if _, err := program.Run(); err != nil {
		return err
	}
	return nil
}

func loadConfig() config.Config {
	path := config.DefaultConfigFileName
	if dir, err := os.UserConfigDir(); err == nil {
		appDir := filepath.Join(dir, "assignd")
		if err := os.MkdirAll(appDir, 0o755); err == nil {
			path = filepath.Join(appDir, config.DefaultConfigFileName)
		}
	}
	cfg, err := config.LoadOrCreate(path)
	if err != nil {
		return config.Default()
	}
	return cfg
}

// seedSamples fills a fresh store with a few assignments so the first launch
// has something to show.
func seedSamples(ctx context.Context, s *store.Store) {
	now := time.Now()
	samples := []model.Draft{
		{
			Title:       "Research Paper on Climate Change",
			Subject:     "Environmental Science",
			Description: "Write a 10-page research paper on the impact of climate change on biodiversity",
			Deadline:    now.AddDate(0, 0, 7),
			Priority:    model.PriorityHigh,
		},
		{
			Title:       "Calculus Problem Set",
			Subject:     "Mathematics",
			Description: "Complete problems 1-15 in Chapter 3",
			Deadline:    now.AddDate(0, 0, 2),
			Priority:    model.PriorityMedium,
		},
		{
			Title:       "Literature Review",
			Subject:     "English",
			Description: "Review and analyze three academic papers on modern literature",
			Deadline:    now.AddDate(0, 0, 5),
			Priority:    model.PriorityLow,
		},
	}
	for _, draft := range samples {
		if _, err := s.Create(ctx, draft); err != nil {
			return
		}
	}
}
