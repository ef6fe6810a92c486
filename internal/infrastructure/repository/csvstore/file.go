// Package csvstore keeps the pipeline tables as CSV files under one data
// directory. Every write replaces the whole file through a temp file and a
// rename, so readers never see a partial table.
package csvstore

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/valyala/bytebufferpool"
)

// Default locations relative to the data directory.
const (
	TransfersFile = "processed/transfer_base_table.csv"
	HistoryFile   = "raw/club_league_history.csv"
	AliasFile     = "config/club_name_mapping.csv"
	ReviewFile    = "processed/manual_review_needed.csv"
)

// table is a parsed CSV file addressed by column name.
type table struct {
	columns map[string]int
	rows    [][]string
}

func (t table) get(row []string, column string) string {
	i, ok := t.columns[column]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// project reorders row into columns, keeping cell text as read. Columns the
// file lacks come out empty.
func (t table) project(row []string, columns []string) []string {
	out := make([]string, len(columns))
	for j, column := range columns {
		if i, ok := t.columns[column]; ok && i < len(row) {
			out[j] = row[i]
		}
	}
	return out
}

// readTable loads path. A missing file is an empty table.
func readTable(path string) (table, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return table{columns: map[string]int{}}, nil
	}
	if err != nil {
		return table{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return table{columns: map[string]int{}}, nil
	}
	if err != nil {
		return table{}, fmt.Errorf("read header of %s: %w", path, err)
	}
	t := table{columns: make(map[string]int, len(header))}
	for i, col := range header {
		t.columns[strings.TrimSpace(strings.TrimPrefix(col, "\ufeff"))] = i
	}
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return table{}, fmt.Errorf("read %s: %w", path, err)
		}
		t.rows = append(t.rows, row)
	}
	return t, nil
}

// writeTable renders header and rows into a pooled buffer and swaps the
// result into place.
func writeTable(path string, header []string, rows [][]string) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	w := csv.NewWriter(buf)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("encode header: %w", err)
	}
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("encode rows: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(buf.B); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}

func formatID(id *int64) string {
	if id == nil {
		return ""
	}
	return strconv.FormatInt(*id, 10)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatOptionalFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return formatFloat(*v)
}

func formatOptionalString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

// parseOptionalFloat treats blank, "nan" and "None" cells as missing.
func parseOptionalFloat(raw string) (*float64, error) {
	if isMissing(raw) {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func parseOptionalString(raw string) *string {
	if isMissing(raw) {
		return nil
	}
	return &raw
}

func isMissing(raw string) bool {
	switch strings.TrimSpace(raw) {
	case "", "nan", "None", "NaN":
		return true
	}
	return false
}
