package app_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/xuri/excelize/v2"

	"bill-generator/internal/app"
)

// workbookFixture builds an in-memory workbook with one work-order row
// (ordered 10, executed 12 at rate 100) and one extra item (2 × 50).
func workbookFixture(t *testing.T) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "Work Order"); err != nil {
		t.Fatalf("rename sheet: %v", err)
	}
	for _, name := range []string{"Bill Quantity", "Extra Items"} {
		if _, err := f.NewSheet(name); err != nil {
			t.Fatalf("new sheet: %v", err)
		}
	}

	set := func(sheet, cell string, row []any) {
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("set row %s!%s: %v", sheet, cell, err)
		}
	}
	set("Work Order", "A1", []any{"Agreement No.", "48/2024-25"})
	set("Work Order", "A2", []any{"Name of Work", "Electric repair work"})
	set("Work Order", "A3", []any{"Name of Firm", "M/s Seema Electrical"})
	set("Work Order", "A22", []any{"1", "Supply of cable", "Mtr", "10", "100"})
	set("Bill Quantity", "A22", []any{"1", "Supply of cable", "Mtr", "12"})
	set("Extra Items", "A7", []any{"E1", "BSR 4.1", "Extra cabling", "2", "Mtr", "50"})

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return &buf
}

func TestGenerateBill_WithoutHistory(t *testing.T) {
	svc := app.NewAppService(nil)

	result, err := svc.GenerateBill(context.Background(), app.GenerateBillRequest{
		FileName:         "bill.xlsx",
		Workbook:         workbookFixture(t),
		PremiumPercent:   "10",
		PremiumDirection: "add",
	})
	if err != nil {
		t.Fatalf("GenerateBill: %v", err)
	}

	// Executed 1200 + 10% = 1320; extras 100 + 10% = 110.
	if got := result.Bill.Totals.GrandTotal.String(); got != "1430" {
		t.Errorf("grand total = %s, want 1430", got)
	}
	if result.RunID != 0 {
		t.Errorf("run id = %d, want 0 when history is disabled", result.RunID)
	}
}

func TestGenerateBill_RequestValidation(t *testing.T) {
	svc := app.NewAppService(nil)

	tests := []struct {
		name string
		req  app.GenerateBillRequest
	}{
		{"bad percent", app.GenerateBillRequest{PremiumPercent: "ten", PremiumDirection: "add"}},
		{"bad direction", app.GenerateBillRequest{PremiumPercent: "10", PremiumDirection: "sideways"}},
		{"negative prior bill", app.GenerateBillRequest{PremiumPercent: "10", PremiumDirection: "add", PriorBillAmount: "-5"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.req.Workbook = workbookFixture(t)
			if _, err := svc.GenerateBill(context.Background(), tc.req); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestGenerateBill_DirectionIsCaseInsensitive(t *testing.T) {
	svc := app.NewAppService(nil)

	result, err := svc.GenerateBill(context.Background(), app.GenerateBillRequest{
		Workbook:         workbookFixture(t),
		PremiumPercent:   "10",
		PremiumDirection: "Deduct",
	})
	if err != nil {
		t.Fatalf("GenerateBill: %v", err)
	}
	if !result.Bill.Totals.PremiumAmount.IsNegative() {
		t.Errorf("premium = %s, want negative for deduction", result.Bill.Totals.PremiumAmount)
	}
}

func TestGenerateDocuments(t *testing.T) {
	svc := app.NewAppService(nil)

	result, err := svc.GenerateDocuments(context.Background(), app.GenerateBillRequest{
		FileName:         "bill_48_2024.xlsx",
		Workbook:         workbookFixture(t),
		PremiumPercent:   "10",
		PremiumDirection: "add",
	})
	if err != nil {
		t.Fatalf("GenerateDocuments: %v", err)
	}
	if result.ArchiveName != "bill_48_2024_documents.zip" {
		t.Errorf("archive name = %q", result.ArchiveName)
	}
	if len(result.Archive) == 0 {
		t.Error("empty archive")
	}
}

func TestListRuns_HistoryDisabled(t *testing.T) {
	svc := app.NewAppService(nil)

	_, err := svc.ListRuns(context.Background(), 10)
	if !errors.Is(err, app.ErrHistoryDisabled) {
		t.Errorf("expected ErrHistoryDisabled, got %v", err)
	}
}
