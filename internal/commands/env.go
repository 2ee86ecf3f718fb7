package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/taniakun/taniakun/internal/books"
	"github.com/taniakun/taniakun/internal/chart"
	"github.com/taniakun/taniakun/internal/config"
	"github.com/taniakun/taniakun/internal/gitops"
	"github.com/taniakun/taniakun/internal/store"
	"github.com/taniakun/taniakun/internal/users"
)

// env is everything a data-touching command needs: the loaded config, the
// chart, and a books service over the project's file store.
type env struct {
	root    string
	cfg     *config.Config
	chart   *chart.Chart
	service *books.Service
	users   *users.Registry
}

// loadEnv opens the taniakun project at dir.
func loadEnv(dir string) (*env, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.Load(filepath.Join(root, config.FileName))
	if err != nil {
		return nil, fmt.Errorf("loading project (run `taniakun init` first?): %w", err)
	}

	ch, err := chart.Load(filepath.Join(root, cfg.Storage.ChartFile))
	if err != nil {
		return nil, err
	}

	dataDir := filepath.Join(root, cfg.Storage.DataDir)
	return &env{
		root:    root,
		cfg:     cfg,
		chart:   ch,
		service: books.NewService(store.NewFileStore(dataDir), ch),
		users:   users.NewRegistry(dataDir),
	}, nil
}

// requireUser fails when --user names nobody in akun.csv.
func (e *env) requireUser(username string) error {
	if username == "" {
		return fmt.Errorf("--user is required")
	}
	ok, err := e.users.Exists(username)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("unknown user %q (register with `taniakun user register`)", username)
	}
	return nil
}

// snapshot commits the project after a mutation when auto-commit is on.
// A failed snapshot is a warning, not an error; the books were written.
func (e *env) snapshot(message string) {
	if !e.cfg.Git.AutoCommit {
		return
	}
	if _, err := gitops.Snapshot(e.root, message, e.cfg.Git.AuthorName, e.cfg.Git.AuthorEmail); err != nil {
		fmt.Fprintf(os.Stderr, "warning: git snapshot failed: %v\n", err)
	}
}

// parseEntryDate combines a "YYYY-MM-DD" flag with the current wall-clock
// time, so same-day entries keep their recording order in the journal. An
// empty value means now.
func parseEntryDate(s string) (time.Time, error) {
	now := time.Now()
	if s == "" {
		return now, nil
	}
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	return time.Date(d.Year(), d.Month(), d.Day(), now.Hour(), now.Minute(), now.Second(), 0, now.Location()), nil
}
