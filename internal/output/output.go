// Package output renders derived corpus structures to JSON files. Encoding
// happens fully in memory and files are written through a temp-and-rename
// step, so a failed invocation never leaves a truncated output behind.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// PrettyFile is the human-readable output written by every mode.
	PrettyFile = "content_optimized.json"
	// MinifiedFile is the compact companion written by grouping modes.
	MinifiedFile = "content_optimized_minified.json"
)

// MarshalPretty encodes v with 2-space indentation and a trailing newline.
// HTML escaping is off; documentation content is full of angle brackets and
// the breadcrumb separator itself contains one.
func MarshalPretty(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalMinified encodes v with no insignificant whitespace.
func MarshalMinified(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Reindent re-spaces raw JSON into the same pretty form MarshalPretty
// produces, preserving the original escaping. Used to size the input against
// the output on equal footing.
func Reindent(raw []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// Compact strips all insignificant whitespace from raw JSON.
func Compact(raw []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile writes data to path atomically. The temp file lives in the target
// directory so the final rename stays on one filesystem.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

// WritePretty encodes v and writes it to path, returning the encoded size.
func WritePretty(path string, v any) (int, error) {
	data, err := MarshalPretty(v)
	if err != nil {
		return 0, fmt.Errorf("encode %s: %w", path, err)
	}
	if err := WriteFile(path, data); err != nil {
		return 0, fmt.Errorf("write %s: %w", path, err)
	}
	return len(data), nil
}

// Pair reports the encoded sizes of the two files WritePair produced.
type Pair struct {
	PrettyBytes   int
	MinifiedBytes int
}

type writeResult struct {
	path string
	err  error
}

// WritePair writes the pretty and minified encodings of v to the two paths.
// Both encodings are pure functions of v and the targets are disjoint files,
// so the writes run concurrently.
func WritePair(prettyPath, minifiedPath string, v any) (Pair, error) {
	pretty, err := MarshalPretty(v)
	if err != nil {
		return Pair{}, fmt.Errorf("encode %s: %w", prettyPath, err)
	}
	minified, err := MarshalMinified(v)
	if err != nil {
		return Pair{}, fmt.Errorf("encode %s: %w", minifiedPath, err)
	}

	jobs := []struct {
		path string
		data []byte
	}{
		{prettyPath, pretty},
		{minifiedPath, minified},
	}

	results := make(chan writeResult, len(jobs))
	for _, j := range jobs {
		go func(path string, data []byte) {
			results <- writeResult{path: path, err: WriteFile(path, data)}
		}(j.path, j.data)
	}

	var firstErr error
	for range jobs {
		r := <-results
		if r.err != nil && firstErr == nil {
			firstErr = fmt.Errorf("write %s: %w", r.path, r.err)
		}
	}
	if firstErr != nil {
		return Pair{}, firstErr
	}
	return Pair{PrettyBytes: len(pretty), MinifiedBytes: len(minified)}, nil
}
