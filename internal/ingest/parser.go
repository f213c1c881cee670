package ingest

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/baramlab/aqlens/internal/contracts"
)

// Dataset is parsed CSV content with the original column order preserved for
// previews and round-trip export.
type Dataset struct {
	Header  []string
	Records []contracts.Record
}

// Head returns up to n records for preview display.
func (d *Dataset) Head(n int) []contracts.Record {
	if n > len(d.Records) {
		n = len(d.Records)
	}
	return d.Records[:n]
}

// Parse converts raw CSV text into records. See ParseDataset for the parsing
// contract.
func Parse(text string) ([]contracts.Record, error) {
	ds, err := ParseDataset(text)
	if err != nil {
		return nil, err
	}
	return ds.Records, nil
}

// ParseDataset converts raw CSV text into a Dataset. The first line is the
// header; values align to it by position.
//
// Parsing is deliberately non-strict and never fails on content: a trimmed
// value that parses as a number is stored numeric, anything else (including
// empty and malformed fields) is kept as its raw string for the imputation
// stage to deal with. Short lines simply leave the trailing columns absent.
// Only a dataset with no data rows at all is an error.
func ParseDataset(text string) (*Dataset, error) {
	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1 // short and long lines are fine
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	var header []string
	var records []contracts.Record

	for {
		line, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Skip unreadable lines rather than failing the upload.
			continue
		}

		if header == nil {
			header = make([]string, len(line))
			for i, name := range line {
				header[i] = strings.TrimSpace(name)
			}
			continue
		}

		records = append(records, parseRow(header, line))
	}

	if len(records) == 0 {
		return nil, contracts.ErrEmptyInput
	}

	return &Dataset{Header: header, Records: records}, nil
}

// parseRow aligns values to the header by position. Positions past the end of
// a short line stay absent from the record.
func parseRow(header, line []string) contracts.Record {
	rec := make(contracts.Record, len(header))

	for i, col := range header {
		if i >= len(line) {
			break
		}

		value := strings.TrimSpace(line[i])

		// The Date column is always kept as text.
		if col == contracts.DateColumn {
			rec[col] = contracts.Raw(value)
			continue
		}

		if num, err := strconv.ParseFloat(value, 64); err == nil {
			rec[col] = contracts.Num(num)
		} else {
			rec[col] = contracts.Raw(value)
		}
	}

	return rec
}
