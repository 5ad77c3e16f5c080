package importer

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Row is one CSV record keyed by header.
type Row map[string]string

// Get returns the trimmed value of the first named column that is non-empty,
// or "" when none of them is present.
func (r Row) Get(columns ...string) string {
	for _, col := range columns {
		if v := strings.TrimSpace(r[col]); v != "" {
			return v
		}
	}
	return ""
}

// ReadCSVFile parses the CSV file at path into rows.
func ReadCSVFile(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	rows, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return rows, nil
}

// ReadCSV parses a header-first CSV stream. LinkedIn prefixes Connections.csv
// with a "Notes:" block; when the first record opens one, single-field records
// are skipped until the real header.
func ReadCSV(r io.Reader) ([]Row, error) {
	br := bufio.NewReader(r)
	if bom, _ := br.Peek(3); bytes.Equal(bom, utf8BOM) {
		br.Discard(len(utf8BOM))
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var header []string
	var rows []Row
	inNotes := false
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		if header == nil {
			if !inNotes && len(rec) == 1 && strings.EqualFold(strings.TrimSpace(rec[0]), "Notes:") {
				inNotes = true
				continue
			}
			if inNotes && len(rec) <= 1 {
				continue
			}
			header = make([]string, len(rec))
			for i, h := range rec {
				header[i] = strings.TrimSpace(h)
			}
			continue
		}

		if isBlank(rec) {
			continue
		}
		row := make(Row, len(header))
		for i, h := range header {
			if i < len(rec) {
				row[h] = rec[i]
			} else {
				row[h] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func isBlank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
