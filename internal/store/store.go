package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/taniakun/taniakun/internal/model"
)

// FileStore persists per-user record sets as CSV files in a data
// directory, one file per user and record type: pemasukan_<user>.csv,
// pengeluaran_<user>.csv and jurnal_<user>.csv. Transaction files are
// rewritten whole; journal files are append-only.
type FileStore struct {
	dataDir string
}

// NewFileStore creates a FileStore rooted at dataDir.
func NewFileStore(dataDir string) *FileStore {
	return &FileStore{dataDir: dataDir}
}

// LoadTransactions returns a user's transactions of a kind in stored
// order. A missing file is an empty set, not an error.
func (s *FileStore) LoadTransactions(kind model.Kind, username string) ([]model.Transaction, error) {
	path := s.transactionPath(kind, username)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	txns, err := ReadTransactions(f, kind)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return txns, nil
}

// SaveTransactions overwrites a user's transaction set, preserving order.
func (s *FileStore) SaveTransactions(kind model.Kind, username string, txns []model.Transaction) error {
	if err := os.MkdirAll(s.dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	path := s.transactionPath(kind, username)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := WriteTransactions(f, kind, txns); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// AppendJournal appends a posting pair's lines to the user's journal in
// one call; existing lines are never reordered or rewritten.
func (s *FileStore) AppendJournal(username string, lines []model.Line) error {
	if err := os.MkdirAll(s.dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	path := s.journalPath(username)
	isNew := false
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		isNew = true
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening journal: %w", err)
	}
	defer f.Close()

	if isNew {
		if _, err := fmt.Fprintln(f, JournalHeader); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	if err := AppendLines(f, lines); err != nil {
		return fmt.Errorf("appending lines: %w", err)
	}
	return nil
}

// LoadJournal returns a user's journal lines in stored (posting) order.
// A missing file is an empty journal.
func (s *FileStore) LoadJournal(username string) ([]model.Line, error) {
	path := s.journalPath(username)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening journal: %w", err)
	}
	defer f.Close()

	lines, err := ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return lines, nil
}

func (s *FileStore) transactionPath(kind model.Kind, username string) string {
	return filepath.Join(s.dataDir, fmt.Sprintf("%s_%s.csv", kind, username))
}

func (s *FileStore) journalPath(username string) string {
	return filepath.Join(s.dataDir, fmt.Sprintf("jurnal_%s.csv", username))
}
