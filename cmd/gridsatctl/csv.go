package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jacksonloper/gridsat/grid"
)

// loadGrid reads the color-matrix interchange format described in
// SPEC_FULL.md section 8: rows are grid rows, an empty cell is blank, and
// every other cell is an integer decoded by grid.ColorFromSentinel — a
// non-negative value is a regular color, a negative value is one of the
// three reserved markers with its base color folded in.
func loadGrid(r io.Reader) (*grid.ColorGrid, error) {
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("gridsatctl: reading csv: %w", err)
	}

	cells := make([][]grid.Color, len(rows))
	for i, row := range rows {
		cells[i] = make([]grid.Color, len(row))
		for j, field := range row {
			c, err := parseCell(field)
			if err != nil {
				return nil, fmt.Errorf("gridsatctl: cell (%d,%d): %w", i, j, err)
			}
			cells[i][j] = c
		}
	}

	return grid.NewColorGrid(cells)
}

func parseCell(field string) (grid.Color, error) {
	field = strings.TrimSpace(field)
	if field == "" {
		return grid.Blank(), nil
	}

	v, err := strconv.Atoi(field)
	if err != nil {
		return grid.Color{}, fmt.Errorf("bad color value %q: %w", field, err)
	}

	return grid.ColorFromSentinel(v)
}
