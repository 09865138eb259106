package store

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/heysubinoy/notedb/pkg/kv"
)

// ReadEntries parses the line-oriented format of a backing file.
// Lines without a delimiter or with an empty key are skipped, never reported.
// The only errors are those returned by r.
func ReadEntries(r io.Reader, logger *zap.Logger) ([]kv.Entry, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	// bufio.Reader rather than bufio.Scanner: values have no length limit
	br := bufio.NewReader(r)
	var entries []kv.Entry
	lineNo := 0
	for {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to read line %d: %w", lineNo+1, err)
		}
		if line == "" && err != nil {
			break
		}
		lineNo++
		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		e, ok := kv.ParseLine(line)
		if ok {
			entries = append(entries, e)
		} else if line != "" {
			logger.Debug("skipping malformed line", zap.Int("line", lineNo))
		}
		if err != nil {
			break
		}
	}
	return entries, nil
}

// WriteEntries writes entries one per line as key:value.
func WriteEntries(w io.Writer, entries []kv.Entry) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		if _, err := bw.WriteString(kv.FormatLine(e)); err != nil {
			return err
		}
	}
	return bw.Flush()
}
