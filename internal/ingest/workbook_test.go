package ingest_test

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"bill-generator/internal/ingest"
)

// buildWorkbook writes a small three-sheet workbook to memory.
func buildWorkbook(t *testing.T, sheets map[string][][]any) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	first := true
	for name, rows := range sheets {
		if first {
			if err := f.SetSheetName("Sheet1", name); err != nil {
				t.Fatalf("rename sheet: %v", err)
			}
			first = false
		} else {
			if _, err := f.NewSheet(name); err != nil {
				t.Fatalf("new sheet: %v", err)
			}
		}
		for i, row := range rows {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			if err := f.SetSheetRow(name, cell, &row); err != nil {
				t.Fatalf("set row: %v", err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return &buf
}

func TestReadWorkbook(t *testing.T) {
	buf := buildWorkbook(t, map[string][][]any{
		"Work Order":    {{"Agreement No.", "48/2024-25"}, {"Name of Work", "Repair"}},
		"Bill Quantity": {{"1", "Item", "No", "5"}},
		"Extra Items":   {{"E1", "BSR", "Extra", "2", "Mtr", "50"}},
	})

	tables, err := ingest.ReadWorkbook(buf)
	if err != nil {
		t.Fatalf("ReadWorkbook: %v", err)
	}

	if got := tables.WorkOrder.Cell(0, 1); got != "48/2024-25" {
		t.Errorf("work order cell(0,1) = %q, want 48/2024-25", got)
	}
	if got := tables.BillQuantity.Cell(0, 3); got != "5" {
		t.Errorf("bill quantity cell(0,3) = %q, want 5", got)
	}
	if got := tables.ExtraItems.Cell(0, 2); got != "Extra" {
		t.Errorf("extra items cell(0,2) = %q, want Extra", got)
	}
}

func TestReadWorkbook_SheetNameMatchingIsCaseInsensitive(t *testing.T) {
	buf := buildWorkbook(t, map[string][][]any{
		"work order":    {{"a"}},
		"BILL QUANTITY": {{"b"}},
	})

	tables, err := ingest.ReadWorkbook(buf)
	if err != nil {
		t.Fatalf("ReadWorkbook: %v", err)
	}
	if tables.WorkOrder.Rows() == 0 || tables.BillQuantity.Rows() == 0 {
		t.Error("case/whitespace variant sheet names were not matched")
	}
}

func TestReadWorkbook_MissingExtraItemsSheet(t *testing.T) {
	buf := buildWorkbook(t, map[string][][]any{
		"Work Order":    {{"a"}},
		"Bill Quantity": {{"b"}},
	})

	tables, err := ingest.ReadWorkbook(buf)
	if err != nil {
		t.Fatalf("ReadWorkbook: %v", err)
	}
	if tables.ExtraItems.Rows() != 0 {
		t.Errorf("missing Extra Items sheet should yield empty table, got %d rows", tables.ExtraItems.Rows())
	}
}

func TestReadWorkbook_MissingMandatorySheet(t *testing.T) {
	buf := buildWorkbook(t, map[string][][]any{
		"Work Order": {{"a"}},
	})

	if _, err := ingest.ReadWorkbook(buf); err == nil {
		t.Error("expected error for missing Bill Quantity sheet")
	}
}

func TestReadWorkbook_NotASpreadsheet(t *testing.T) {
	if _, err := ingest.ReadWorkbook(bytes.NewBufferString("not a workbook")); err == nil {
		t.Error("expected error for non-xlsx input")
	}
}
