package job

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// processedRetention bounds the ledger size: entries older than this are
// dropped on load.
const processedRetention = 30 * 24 * time.Hour

// ProcessedLedger tracks which job ids have already been handled so repeated
// runs do not reprocess them. It is a plain JSON file of id to timestamp.
type ProcessedLedger struct {
	path    string
	entries map[string]time.Time
}

// LoadProcessedLedger reads the ledger file, pruning stale entries. A missing
// file starts an empty ledger.
func LoadProcessedLedger(path string, now time.Time) (*ProcessedLedger, error) {
	ledger := &ProcessedLedger{
		path:    path,
		entries: make(map[string]time.Time),
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return ledger, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading processed ledger %q: %w", path, err)
	}

	if len(data) == 0 {
		return ledger, nil
	}

	raw := make(map[string]string)
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding processed ledger %q: %w", path, err)
	}

	cutoff := now.Add(-processedRetention)
	for id, stamp := range raw {
		at, err := time.Parse(time.RFC3339, stamp)
		if err != nil || at.Before(cutoff) {
			continue
		}
		ledger.entries[id] = at
	}

	return ledger, nil
}

func (l *ProcessedLedger) Len() int {
	return len(l.entries)
}

func (l *ProcessedLedger) Contains(id string) bool {
	_, ok := l.entries[id]
	return ok
}

// IDs returns every id currently in the ledger.
func (l *ProcessedLedger) IDs() []string {
	ids := make([]string, 0, len(l.entries))
	for id := range l.entries {
		ids = append(ids, id)
	}
	return ids
}

// Mark records ids as processed at the given time.
func (l *ProcessedLedger) Mark(now time.Time, ids ...string) {
	for _, id := range ids {
		if id == "" {
			continue
		}
		l.entries[id] = now
	}
}

// Save writes the ledger back to its file.
func (l *ProcessedLedger) Save() error {
	raw := make(map[string]string, len(l.entries))
	for id, at := range l.entries {
		raw[id] = at.UTC().Format(time.RFC3339)
	}

	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(l.path, data, 0o644); err != nil {
		return fmt.Errorf("writing processed ledger %q: %w", l.path, err)
	}
	return nil
}
