package parser

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Table is a raw sheet: a header row plus string-typed data rows. Rows
// are padded to the header width so every cell can be addressed, which
// mirrors reading the sheet with all blanks filled as empty strings.
type Table struct {
	Headers []string
	Rows    [][]string
}

// LoadWorkbook parses the first sheet of an Excel workbook into a Table.
// The first row is the header; a workbook without at least a header row
// is a parse error.
func LoadWorkbook(reader io.Reader) (*Table, error) {
	file, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to open excel: %w", err)
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}

	rows, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q has no header row", sheets[0])
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	table := &Table{
		Headers: headers,
		Rows:    make([][]string, 0, len(rows)-1),
	}
	for _, row := range rows[1:] {
		padded := make([]string, len(headers))
		copy(padded, row)
		table.Rows = append(table.Rows, padded)
	}
	return table, nil
}

// headerIndex maps each column name to its position. On duplicate
// headers the first occurrence wins.
func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		if _, ok := idx[h]; !ok {
			idx[h] = i
		}
	}
	return idx
}
