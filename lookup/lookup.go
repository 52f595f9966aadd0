/*
Copyright © 2019 the SOC authors.
This file is part of SOC.

SOC is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

SOC is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with SOC.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package lookup holds reference tables keyed by IPCC eco-climate zone,
// such as reference soil organic carbon stocks and stock change factors.
package lookup

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cast"
	"github.com/tealeg/xlsx"
)

// ZoneColumn is the name of the column holding the eco-climate zone
// number in table files.
const ZoneColumn = "ecoClimateZone"

// Table is an in-memory reference table. It implements soc.Lookup.
// A Table must not be modified after it is shared between goroutines.
type Table struct {
	values map[int]map[string]float64
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{values: make(map[int]map[string]float64)}
}

// Set sets the value of a cell.
func (t *Table) Set(zone int, column string, v float64) {
	if t.values[zone] == nil {
		t.values[zone] = make(map[string]float64)
	}
	t.values[zone][column] = v
}

// EcoClimateZoneValue returns the value of a cell, and false if the cell
// is empty.
func (t *Table) EcoClimateZoneValue(zone int, column string) (float64, bool) {
	v, ok := t.values[zone][column]
	return v, ok
}

// ReadCSV reads a table from comma-separated text. The first row holds the
// column names, one of which must be ZoneColumn. Empty cells and cells
// holding "-" are left unset.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("lookup: reading csv: %v", err)
	}
	return fromRows(rows)
}

// ReadXLSX reads a table from a sheet of an Excel file, laid out as for
// ReadCSV. If sheet is empty, the first sheet in the file is used.
func ReadXLSX(filename, sheet string) (*Table, error) {
	f, err := xlsx.OpenFile(filename)
	if err != nil {
		return nil, fmt.Errorf("lookup: opening %s: %v", filename, err)
	}
	var s *xlsx.Sheet
	if sheet == "" {
		if len(f.Sheets) == 0 {
			return nil, fmt.Errorf("lookup: %s has no sheets", filename)
		}
		s = f.Sheets[0]
	} else {
		var ok bool
		if s, ok = f.Sheet[sheet]; !ok {
			return nil, fmt.Errorf("lookup: %s has no sheet %s", filename, sheet)
		}
	}
	rows := make([][]string, len(s.Rows))
	for i, row := range s.Rows {
		rows[i] = make([]string, len(row.Cells))
		for j, cell := range row.Cells {
			rows[i][j] = cell.Value
		}
	}
	return fromRows(rows)
}

func fromRows(rows [][]string) (*Table, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("lookup: table is empty")
	}
	header := rows[0]
	zoneCol := -1
	for i, h := range header {
		header[i] = strings.TrimSpace(h)
		if header[i] == ZoneColumn {
			zoneCol = i
		}
	}
	if zoneCol < 0 {
		return nil, fmt.Errorf("lookup: missing %s column", ZoneColumn)
	}
	t := NewTable()
	for i, row := range rows[1:] {
		if zoneCol >= len(row) || strings.TrimSpace(row[zoneCol]) == "" {
			continue
		}
		zone, err := cast.ToIntE(strings.TrimSpace(row[zoneCol]))
		if err != nil {
			return nil, fmt.Errorf("lookup: row %d: invalid %s %q", i+2, ZoneColumn, row[zoneCol])
		}
		for j, cell := range row {
			cell = strings.TrimSpace(cell)
			if j == zoneCol || j >= len(header) || cell == "" || cell == "-" {
				continue
			}
			v, err := cast.ToFloat64E(cell)
			if err != nil {
				return nil, fmt.Errorf("lookup: row %d, column %s: %v", i+2, header[j], err)
			}
			t.Set(zone, header[j], v)
		}
	}
	return t, nil
}
