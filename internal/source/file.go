// Package source retrieves input collections from their external stores:
// local JSON/JSONL files and HTTP(S) endpoints serving a JSON collection.
// A retrieval failure is fatal to the run; processing never starts on a
// partial collection.
package source

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/textsieve/textsieve/internal/model"
)

// LoadFile reads a collection from disk. A leading '[' selects JSON-array
// parsing; anything else is treated as JSONL, one object per line, blank
// lines ignored. maxItems > 0 truncates the collection after parsing.
func LoadFile(path string, maxItems int) ([]model.InputItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read collection: %w", err)
	}
	items, err := ParseCollection(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return Truncate(items, maxItems), nil
}

// ParseCollection decodes a JSON array or JSONL document into input items
func ParseCollection(data []byte) ([]model.InputItem, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return []model.InputItem{}, nil
	}

	if trimmed[0] == '[' {
		var items []model.InputItem
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, fmt.Errorf("decode JSON array: %w", err)
		}
		return items, nil
	}

	var items []model.InputItem
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		raw := bytes.TrimSpace(scanner.Bytes())
		if len(raw) == 0 {
			continue
		}
		var item model.InputItem
		if err := json.Unmarshal(raw, &item); err != nil {
			return nil, fmt.Errorf("decode JSONL line %d: %w", line, err)
		}
		items = append(items, item)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan JSONL: %w", err)
	}
	return items, nil
}

// Truncate caps the collection at maxItems when maxItems > 0
func Truncate(items []model.InputItem, maxItems int) []model.InputItem {
	if maxItems > 0 && len(items) > maxItems {
		return items[:maxItems]
	}
	return items
}
