package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/shiren23/focusflow/internal/brainclock"
	"github.com/shiren23/focusflow/internal/storage"
	"github.com/shiren23/focusflow/internal/taskstore"
	"github.com/shiren23/focusflow/internal/update"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "focusflow failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := update.RuntimeConfigFromEnv(update.DefaultRuntimeConfig())

	kv, err := openKV(cfg)
	if err != nil {
		return err
	}
	defer kv.Close()

	gw := storage.NewGateway(kv)
	store := taskstore.New(gw)
	loadErr := store.Load()

	settings, _ := gw.Settings()
	monitor := brainclock.NewMonitor(store.Tasks, time.Duration(settings.BrainClockInterval)*time.Minute)
	monitor.Start()
	defer monitor.Stop()

	var notifier update.DesktopNotifier = update.NoopDesktopNotifier{}
	if cfg.DesktopNotifications {
		notifier = update.ExecDesktopNotifier{}
	}

	m := update.NewModelWithConfig(store, gw, monitor, notifier, cfg)
	if loadErr != nil {
		m.Status = update.StatusBar{
			Text:    fmt.Sprintf("stored tasks unreadable, using sample data: %v", loadErr),
			IsError: true,
		}
	}

	program := tea.NewProgram(m)
	if _, err := program.Run(); err != nil {
		return err
	}
	return nil
}

func openKV(cfg update.RuntimeConfig) (storage.KV, error) {
	if cfg.StorageBackend == "sqlite" {
		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			return nil, err
		}
		return storage.OpenSQLiteKV(filepath.Join(cfg.DataDir, "focusflow.db"))
	}
	return storage.NewFileKV(cfg.DataDir)
}
