package cli

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"
)

// maxSourceSize is a safety limit to prevent memory exhaustion (100 MB).
const maxSourceSize = 100 * 1024 * 1024

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// readSource loads a Python source from path, or from stdin when path is
// empty or "-". The UTF-8 BOM is stripped so it cannot end up glued to the
// first identifier.
func readSource(path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(io.LimitReader(bufio.NewReader(os.Stdin), maxSourceSize+1))
		if err != nil {
			return "", fmt.Errorf("stdin: %w", err)
		}
		if len(data) > maxSourceSize {
			return "", fmt.Errorf("input too large (>%d bytes, safety limit)", maxSourceSize)
		}
		return decodeSource(data)
	}
	fi, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("file not found: %s", path)
		}
		return "", fmt.Errorf("reading input: %w", err)
	}
	if fi.IsDir() {
		return "", fmt.Errorf("input is a directory, not a file: %s", path)
	}
	if fi.Size() > maxSourceSize {
		return "", fmt.Errorf("file too large (%d bytes, max %d)", fi.Size(), maxSourceSize)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading file: %w", err)
	}
	return decodeSource(data)
}

func decodeSource(data []byte) (string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return "", errors.New("input is not valid UTF-8")
	}
	return string(data), nil
}

// writeOutput stores content at path, or prints it to stdout when path is
// empty or "-".
func writeOutput(path, content string) error {
	if path == "" || path == "-" {
		_, err := io.WriteString(os.Stdout, content)
		return err
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
