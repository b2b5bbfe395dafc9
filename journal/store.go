package journal

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"
)

// Store persists a Book as one JSON document, rewritten wholesale on
// every save. The file is the sole durable copy; there is no locking or
// multi-process coordination (single-user, single-instance tool).
type Store struct {
	Path            string
	StartingBalance float64
}

// NewStore returns a store for path. startingBalance seeds a journal
// that does not exist yet.
func NewStore(path string, startingBalance float64) *Store {
	return &Store{Path: path, StartingBalance: startingBalance}
}

// CorruptError reports a journal file that exists but cannot be
// decoded. Recovery is user-directed: BackupCorrupt renames the file
// aside so a fresh journal can be started.
type CorruptError struct {
	Path string
	Err  error
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("journal file %s is corrupted: %v", e.Path, e.Err)
}

func (e *CorruptError) Unwrap() error { return e.Err }

// Load reads and normalizes the journal. A missing file yields an empty
// book with the starting balance; a malformed file yields a
// *CorruptError.
func (s *Store) Load() (*Book, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Book{Balance: s.StartingBalance}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read journal: %w", err)
	}

	var raw rawBook
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &CorruptError{Path: s.Path, Err: err}
	}

	b := &Book{Balance: s.StartingBalance}
	if raw.AccountBalance != nil {
		b.Balance = *raw.AccountBalance
	}
	for _, rt := range raw.Trades {
		b.Trades = append(b.Trades, normalizeTrade(rt))
	}
	return b, nil
}

// Save writes the full book, replacing the file.
func (s *Store) Save(b *Book) error {
	doc := struct {
		Trades         []*Trade `json:"trades"`
		AccountBalance float64  `json:"account_balance"`
	}{
		Trades:         b.Trades,
		AccountBalance: b.Balance,
	}
	if doc.Trades == nil {
		doc.Trades = []*Trade{}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal journal: %w", err)
	}
	if err := os.WriteFile(s.Path, data, 0644); err != nil {
		return fmt.Errorf("write journal: %w", err)
	}
	return nil
}

// BackupCorrupt moves the journal file aside to a timestamped backup
// and returns the backup path. The next Load starts an empty journal.
func (s *Store) BackupCorrupt() (string, error) {
	backup := fmt.Sprintf("%s.bak_%s", s.Path, time.Now().Format("20060102_150405"))
	if err := os.Rename(s.Path, backup); err != nil {
		return "", fmt.Errorf("back up journal: %w", err)
	}
	return backup, nil
}
