// Package dataset loads HumanEval-style completion benchmarks from JSON
// Lines files, optionally gzip compressed.
package dataset

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// maxDatasetSize is a safety limit to prevent memory exhaustion (100 MB).
const maxDatasetSize = 100 * 1024 * 1024

// maxLineSize bounds a single JSONL record (4 MB); HumanEval records are a
// few KB.
const maxLineSize = 4 * 1024 * 1024

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Example is one benchmark task: a prompt to complete and the canonical
// solution to score completions against.
type Example struct {
	TaskID            string `json:"task_id"`
	Prompt            string `json:"prompt"`
	CanonicalSolution string `json:"canonical_solution"`
	EntryPoint        string `json:"entry_point,omitempty"`
	Test              string `json:"test,omitempty"`
}

// Load reads examples from path. Files ending in .gz are decompressed on the
// fly. limit > 0 caps the number of examples; limit <= 0 loads everything.
// Blank lines are skipped; a malformed record fails the whole load with its
// line number.
func Load(path string, limit int) ([]Example, error) {
	fi, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("dataset not found: %s", path)
		}
		return nil, fmt.Errorf("reading dataset: %w", err)
	}
	if fi.IsDir() {
		return nil, fmt.Errorf("dataset is a directory, not a file: %s", path)
	}
	if fi.Size() > maxDatasetSize {
		return nil, fmt.Errorf("dataset too large (%d bytes, max %d)", fi.Size(), maxDatasetSize)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(strings.ToLower(path), ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("opening gzip dataset: %w", err)
		}
		defer gz.Close()
		r = gz
	}
	return Read(r, limit)
}

// Read parses JSONL examples from r, honoring the same limit semantics as
// Load.
func Read(r io.Reader, limit int) ([]Example, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)

	var examples []Example
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Bytes()
		if lineNo == 1 {
			line = bytes.TrimPrefix(line, utf8BOM)
		}
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		if !utf8.Valid(line) {
			return nil, fmt.Errorf("line %d: not valid UTF-8", lineNo)
		}
		var ex Example
		if err := json.Unmarshal(line, &ex); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if ex.TaskID == "" {
			ex.TaskID = fmt.Sprintf("task/%d", len(examples))
		}
		examples = append(examples, ex)
		if limit > 0 && len(examples) >= limit {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("line %d: %w", lineNo+1, err)
	}
	return examples, nil
}

// Prompts extracts the prompt of every example, in order.
func Prompts(examples []Example) []string {
	out := make([]string, len(examples))
	for i, ex := range examples {
		out[i] = ex.Prompt
	}
	return out
}
