// Package ingest parses an uploaded bill workbook into the positional tables
// the computation core consumes. It owns every spreadsheet-format concern so
// the core never sees excelize types.
package ingest

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"bill-generator/internal/core"
)

// Required and optional sheet names. Matching is case-insensitive and ignores
// surrounding whitespace because uploaded workbooks are hand-maintained.
const (
	sheetWorkOrder    = "Work Order"
	sheetBillQuantity = "Bill Quantity"
	sheetExtraItems   = "Extra Items"
)

// ReadWorkbook parses an xlsx stream into the three input tables. The Work
// Order and Bill Quantity sheets are mandatory; a missing Extra Items sheet
// yields an empty table, matching the no-extra-work case.
func ReadWorkbook(r io.Reader) (core.Tables, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return core.Tables{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := make(map[string]string, len(f.GetSheetList()))
	for _, name := range f.GetSheetList() {
		sheets[normalizeSheetName(name)] = name
	}

	wo, err := sheetRows(f, sheets, sheetWorkOrder)
	if err != nil {
		return core.Tables{}, err
	}
	bq, err := sheetRows(f, sheets, sheetBillQuantity)
	if err != nil {
		return core.Tables{}, err
	}

	var extra core.Table
	if name, ok := sheets[normalizeSheetName(sheetExtraItems)]; ok {
		rows, err := f.GetRows(name)
		if err != nil {
			return core.Tables{}, fmt.Errorf("read sheet %q: %w", name, err)
		}
		extra = rows
	}

	return core.Tables{WorkOrder: wo, BillQuantity: bq, ExtraItems: extra}, nil
}

func sheetRows(f *excelize.File, sheets map[string]string, want string) (core.Table, error) {
	name, ok := sheets[normalizeSheetName(want)]
	if !ok {
		return nil, fmt.Errorf("workbook has no %q sheet", want)
	}
	rows, err := f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", name, err)
	}
	return rows, nil
}

func normalizeSheetName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
