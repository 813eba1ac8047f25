package store

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/mmr-tortoise/vocab/internal/model"
)

// FileStore is an append-only JSON-lines card store. Each card is one
// JSON object per line; appends are O(1) writes to the end of the file
// and never rewrite existing lines.
type FileStore struct {
	path string
	file *os.File
}

// OpenFile opens (creating if needed) the card store at path. Parent
// directories are created. The returned store holds the file open in
// append mode until Close.
func OpenFile(path string) (*FileStore, error) {
	if path == "" {
		return nil, model.NewCLIError(model.ExitStoreError, "store path must not be empty")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, model.WrapCLIError(model.ExitStoreError, "failed to create store directory", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, model.WrapCLIError(model.ExitStoreError, "failed to open card store", err)
	}

	return &FileStore{path: path, file: f}, nil
}

// Append validates the card, assigns its identity, and writes it as a
// single JSON line. The persisted card (with ID and CreatedAt set) is
// returned.
func (s *FileStore) Append(card model.Card) (model.Card, error) {
	if err := card.Validate(); err != nil {
		return model.Card{}, model.WrapCLIError(model.ExitStoreError, "cannot save card", err)
	}

	card.ID = uuid.NewString()
	card.CreatedAt = time.Now().UTC()

	line, err := json.Marshal(card)
	if err != nil {
		return model.Card{}, model.WrapCLIError(model.ExitStoreError, "failed to encode card", err)
	}
	line = append(line, '\n')

	if _, err := s.file.Write(line); err != nil {
		return model.Card{}, model.WrapCLIError(model.ExitStoreError, "failed to append card", err)
	}

	return card, nil
}

// List reads the whole store back in append order. A malformed line is
// a data error identifying the line number; cards written by Append are
// always well-formed, so this only fires on external edits.
func (s *FileStore) List() ([]model.Card, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, model.WrapCLIError(model.ExitStoreError, "failed to read card store", err)
	}
	defer func() { _ = f.Close() }()

	var cards []model.Card
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var card model.Card
		if err := json.Unmarshal(line, &card); err != nil {
			return nil, model.WrapCLIError(
				model.ExitStoreError,
				fmt.Sprintf("malformed card store entry at %s:%d", s.path, lineNo),
				err,
			)
		}
		cards = append(cards, card)
	}
	if err := scanner.Err(); err != nil {
		return nil, model.WrapCLIError(model.ExitStoreError, "failed to scan card store", err)
	}

	return cards, nil
}

// Close releases the underlying file handle.
func (s *FileStore) Close() error {
	return s.file.Close()
}

// Path returns the store's file path, used in debug logging.
func (s *FileStore) Path() string {
	return s.path
}
