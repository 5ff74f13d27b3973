package inventory

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/hyp3rd/ewrap"
	"github.com/rs/zerolog/log"
)

var (
	// ErrNotFound is returned when the inventory file does not exist.
	ErrNotFound = errors.New("inventory file not found")

	// ErrMalformedRow is returned when a row lacks a required column
	// or its Length is not a non-negative integer.
	ErrMalformedRow = errors.New("malformed inventory row")
)

const utf8BOM = "\ufeff"

var osOpen = os.Open

// Load reads all records from the inventory file at filePath.
func Load(filePath string) (records []Record, err error) {
	var file *os.File
	if file, err = osOpen(filePath); err != nil {
		if os.IsNotExist(err) {
			return nil, ewrap.Wrapf(ErrNotFound, "%s: %v", filePath, err)
		}
		return nil, ewrap.Wrapf(err, "open %s", filePath)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Str("file", filePath).Msg("failed to close inventory file")
		}
	}()
	records, err = Read(file)
	if err != nil {
		return nil, ewrap.Wrapf(err, "read %s", filePath)
	}
	return records, nil
}

// Read parses a delimited inventory with a header row from r.
// Records are returned in input order. A header without data rows yields no records.
// Rows may be shorter or longer than the header as long as the required columns are present;
// a repeated header name refers to its last occurrence.
func Read(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)
	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, ewrap.Wrapf(ErrMalformedRow, "header: %v", err)
	}
	reader.FieldsPerRecord = -1
	header[0] = strings.TrimPrefix(header[0], utf8BOM)

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[name] = i
	}

	var records []Record
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, ewrap.Wrapf(ErrMalformedRow, "%v", err)
		}
		line, _ := reader.FieldPos(0)
		record, err := parseRow(row, columns, line)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

func parseRow(row []string, columns map[string]int, line int) (record Record, err error) {
	for _, name := range requiredColumns {
		i, ok := columns[name]
		if !ok || i >= len(row) {
			return record, ewrap.Wrapf(ErrMalformedRow, "line %d: missing column %q", line, name)
		}
	}
	lengthText := row[columns[ColumnLength]]
	length, err := strconv.ParseInt(strings.TrimSpace(lengthText), 10, 64)
	if err != nil || length < 0 {
		return record, ewrap.Wrapf(ErrMalformedRow, "line %d: invalid %s %q", line, ColumnLength, lengthText)
	}
	record = Record{
		FullName:     row[columns[ColumnFullName]],
		Length:       length,
		CreationTime: row[columns[ColumnCreationTime]],
		Extension:    row[columns[ColumnExtension]],
	}
	return record, nil
}
