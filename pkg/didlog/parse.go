package didlog

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// maxLineBytes bounds a single log line; remote logs are untrusted input.
const maxLineBytes = 4 << 20

// ParseLog reads a newline-delimited DID Log, one JSON entry per line.
// Blank lines are skipped. No verification happens here.
func ParseLog(r io.Reader) ([]Entry, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)

	var entries []Entry
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		var entry Entry
		if err := json.Unmarshal([]byte(text), &entry); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedEntry, line, err)
		}
		if entry.VersionID == "" {
			return nil, fmt.Errorf("%w: line %d: missing versionId", ErrMalformedEntry, line)
		}
		if entry.VersionTime.IsZero() {
			return nil, fmt.Errorf("%w: line %d: missing versionTime", ErrMalformedEntry, line)
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEntry, err)
	}
	return entries, nil
}
