package infra

// sheet.go — the stock-take master sheet, persisted as an .xlsx workbook via
// excelize. Column A carries the stable row identity and is kept hidden so
// editors opening the file directly never see (or touch) it. Saves rewrite
// the whole sheet; there is no partial write. Single-writer by contract.

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/WynandSouthAfrica/oppworks-procurement/internal/stocktake"
)

const sheetName = "Stock"

// sheetHeader declares the columns, in file order. Column 0 is reserved.
var sheetHeader = []string{
	"__row_id",
	"Item Code",
	"Description",
	"Category",
	"Unit",
	"Location",
	"Qty On Hand",
	"Min Level",
	"Max Level",
	"Unit Cost",
	"Last Updated",
	"External ID",
}

// SheetStore reads and writes the master stock sheet.
type SheetStore struct {
	path string
}

func NewSheetStore(path string) *SheetStore { return &SheetStore{path: path} }

// Path returns the workbook location (used by backups).
func (s *SheetStore) Path() string { return s.path }

// ReadAll loads every row from the workbook. A missing file is an empty
// sheet, not an error. Numeric cells that fail to parse coerce to zero —
// a bad cell must never block an edit pass.
func (s *SheetStore) ReadAll() ([]stocktake.Row, error) {
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("sheet: open %s: %w", s.path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("sheet: read rows: %w", err)
	}
	if len(rows) <= 1 {
		return nil, nil
	}

	out := make([]stocktake.Row, 0, len(rows)-1)
	for _, cells := range rows[1:] {
		r := decodeRow(cells)
		if r.ID == "" && !r.HasKeyField() {
			continue // stray blank line in the workbook
		}
		out = append(out, r)
	}
	return out, nil
}

// WriteAll rewrites the workbook wholesale with a header row and the hidden
// identity column.
func (s *SheetStore) WriteAll(rows []stocktake.Row) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("sheet: create dir: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName("Sheet1", sheetName)

	for i, h := range sheetHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return fmt.Errorf("sheet: write header: %w", err)
		}
	}

	for i, r := range rows {
		values := []interface{}{
			r.ID,
			r.ItemCode,
			r.Description,
			r.Category,
			r.Unit,
			r.Location,
			r.Qty,
			r.MinLevel,
			r.MaxLevel,
			r.UnitCost.StringFixed(2),
			r.LastUpdated,
			r.ExternalID,
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return fmt.Errorf("sheet: write row %d: %w", i+1, err)
			}
		}
	}

	if err := f.SetColVisible(sheetName, "A", false); err != nil {
		return fmt.Errorf("sheet: hide identity column: %w", err)
	}

	if err := f.SaveAs(s.path); err != nil {
		return fmt.Errorf("sheet: save %s: %w", s.path, err)
	}
	return nil
}

func decodeRow(cells []string) stocktake.Row {
	get := func(i int) string {
		if i < len(cells) {
			return strings.TrimSpace(cells[i])
		}
		return ""
	}
	return stocktake.Row{
		ID:          get(0),
		ItemCode:    get(1),
		Description: get(2),
		Category:    get(3),
		Unit:        get(4),
		Location:    get(5),
		Qty:         coerceInt(get(6)),
		MinLevel:    coerceInt(get(7)),
		MaxLevel:    coerceInt(get(8)),
		UnitCost:    coerceDecimal(get(9)),
		LastUpdated: get(10),
		ExternalID:  get(11),
	}
}

func coerceInt(s string) int {
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		// Excel often hands back "3.0" for integer cells
		if fv, ferr := strconv.ParseFloat(s, 64); ferr == nil {
			return int(fv)
		}
		return 0
	}
	return n
}

func coerceDecimal(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
