package batch

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// WordEntry is one word to accentuate.
type WordEntry struct {
	Word string
	// Case is the English or Lithuanian case name; empty means the caller's default.
	Case string
}

// ReadBatchFile reads words from a file and returns WordEntry slice
// Supports formats:
// - Word only: "žodį" (uses the default case)
// - With case: "žodį = accusative" or "žodį = Galininkas"
// Lines starting with '#' are comments.
func ReadBatchFile(filename string) ([]WordEntry, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}
	defer f.Close()

	var entries []WordEntry
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		word, grammaticalCase, found := strings.Cut(line, "=")
		if !found {
			entries = append(entries, WordEntry{Word: line})
			continue
		}

		word = strings.TrimSpace(word)
		if word == "" {
			return nil, fmt.Errorf("line %d: missing word before '='", lineNo)
		}
		entries = append(entries, WordEntry{
			Word: word,
			Case: strings.TrimSpace(grammaticalCase),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	return entries, nil
}
