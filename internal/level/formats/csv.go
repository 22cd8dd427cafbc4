package formats

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// ParseCSV parses a delimited grid: one row per line, one token per column.
// The record length is checked by ParseGrid so the offending row can be
// reported. A blank line between rows is a row with no cells; blank lines
// after the last row are ignored.
func ParseCSV(data []byte) (Level, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var rows [][]string
	next := 1
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Level{}, fmt.Errorf("csv read: %w", err)
		}
		// encoding/csv drops empty lines; put them back as empty rows.
		line, _ := r.FieldPos(0)
		for ; next < line; next++ {
			rows = append(rows, []string{})
		}
		rows = append(rows, record)
		next = line + 1
	}

	w, h, cells, err := ParseGrid(rows)
	if err != nil {
		return Level{}, err
	}

	return Level{
		Width:  w,
		Height: h,
		Cells:  cells,
	}, nil
}
