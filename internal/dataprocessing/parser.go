package dataprocessing

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"iplcli/internal/errors"
)

// ParseCSVFile reads a delimited text file into a Table. The first record is
// taken as the header; data rows may be ragged (short rows read back as
// missing cells). Column types are inferred after the full read.
func ParseCSVFile(path, name string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError(path)
		}
		return nil, errors.NewStorageError(fmt.Sprintf("failed to open %s", path), err)
	}
	defer f.Close()

	return ParseCSV(f, name)
}

// ParseCSV reads delimited data from a reader into a Table.
func ParseCSV(r io.Reader, name string) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // tolerate ragged rows; missing cells read as ""
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.NewParsingError(fmt.Sprintf("%s is empty", name), nil)
	}
	if err != nil {
		return nil, errors.NewParsingError(fmt.Sprintf("failed to read %s header", name), err)
	}

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.NewParsingError(fmt.Sprintf("failed to read %s row %d", name, len(rows)+2), err)
		}
		rows = append(rows, record)
	}

	return NewTable(name, header, rows), nil
}
