// Package csvsource reads CSV files into tabular.Source values.
package csvsource

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var ErrUnreadable = errors.New("csv source is unreadable")

const byteOrderMark = "\ufeff"

// Source is a fully buffered CSV file. The header row names the columns.
type Source struct {
	name    string
	columns []string
	index   map[string]int
	rows    [][]string
}

// Open reads path completely. Unreadable files and malformed CSV wrap ErrUnreadable.
func Open(path string) (*Source, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	defer file.Close()

	return NewReader(filepath.Base(path), file)
}

// NewReader reads r completely; name is used in summaries and logs.
func NewReader(name string, r io.Reader) (*Source, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %s has no header row", ErrUnreadable, name)
		}
		return nil, fmt.Errorf("%w: read header of %s: %v", ErrUnreadable, name, err)
	}

	src := &Source{
		name:    name,
		columns: make([]string, 0, len(header)),
		index:   make(map[string]int, len(header)),
	}
	for i, column := range header {
		column = strings.TrimSpace(column)
		if i == 0 {
			column = strings.TrimPrefix(column, byteOrderMark)
		}
		src.columns = append(src.columns, column)
		if _, dup := src.index[column]; !dup && column != "" {
			src.index[column] = i
		}
	}

	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: read %s line %d: %v", ErrUnreadable, name, line, err)
		}
		if isBlankRecord(record) {
			continue
		}
		src.rows = append(src.rows, record)
	}

	return src, nil
}

func (s *Source) Name() string {
	return s.name
}

func (s *Source) Columns() []string {
	return append([]string(nil), s.columns...)
}

func (s *Source) Len() int {
	return len(s.rows)
}

func (s *Source) Has(column string) bool {
	_, ok := s.index[column]
	return ok
}

func (s *Source) Cell(row int, column string) (string, bool) {
	idx, ok := s.index[column]
	if !ok || row < 0 || row >= len(s.rows) {
		return "", false
	}
	record := s.rows[row]
	if idx >= len(record) {
		return "", true
	}
	return strings.TrimSpace(record[idx]), true
}

func isBlankRecord(record []string) bool {
	for _, value := range record {
		if strings.TrimSpace(value) != "" {
			return false
		}
	}
	return true
}
