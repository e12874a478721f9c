package engine

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"pokedex/internal/models"
)

// Delimiter separates fields. There is no quoting or escaping.
const Delimiter = ','

var ErrEmptySource = errors.New("pokedex source is empty")

// --- 1. LINE SPLITTING ---

// splitLine cuts a line on every delimiter. A value that itself contains the
// delimiter yields a record with too many fields; that is not checked.
func splitLine(line []byte) models.Record {
	rec := make(models.Record, 0, NumColumns)
	sep := []byte{Delimiter}
	rest := line
	for {
		field, tail, found := bytes.Cut(rest, sep)
		rec = append(rec, string(field))
		if !found {
			return rec
		}
		rest = tail
	}
}

// --- 2. MAIN LOADER ---

// Load reads the pokedex file at path into a Store.
func Load(path string) (*Store, error) {
	start := time.Now()
	log.Printf("Loading pokedex from %s...", path)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pokedex: %w", err)
	}
	defer func() { _ = f.Close() }()

	store, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	log.Printf("Load Complete. Rows: %d. Time: %v", store.DataLen(), time.Since(start))
	return store, nil
}

// Parse splits r into records, one per non-blank line. The first record is
// the header. Field counts are not validated.
func Parse(r io.Reader) (*Store, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read pokedex: %w", err)
	}

	rows := make([]models.Record, 0, bytes.Count(content, []byte{'\n'})+1)
	pos := 0
	for pos < len(content) {
		next := len(content)
		if i := bytes.IndexByte(content[pos:], '\n'); i != -1 {
			next = pos + i
		}
		line := bytes.TrimSpace(content[pos:next])
		pos = next + 1

		if len(line) == 0 {
			continue
		}
		rows = append(rows, splitLine(line))
	}

	if len(rows) == 0 {
		return nil, ErrEmptySource
	}
	return NewStore(rows), nil
}
