package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path"
	"strings"

	"bill-generator/internal/core"
	"bill-generator/internal/history"
	"bill-generator/internal/ingest"
	"bill-generator/internal/render"
)

// ErrHistoryDisabled is returned by history queries when no database is
// configured.
var ErrHistoryDisabled = errors.New("run history is disabled: no database configured")

type appService struct {
	history history.Service // nil when no database is configured
}

// NewAppService constructs an appService that satisfies ApplicationService.
// hist may be nil; bill generation then runs without recording history.
func NewAppService(hist history.Service) ApplicationService {
	return &appService{history: hist}
}

// GenerateBill parses, computes and optionally records one bill run.
func (s *appService) GenerateBill(ctx context.Context, req GenerateBillRequest) (*BillGenerationResult, error) {
	policy, err := req.Policy()
	if err != nil {
		return nil, err
	}
	priorBill, err := req.PriorBill()
	if err != nil {
		return nil, err
	}

	tables, err := ingest.ReadWorkbook(req.Workbook)
	if err != nil {
		return nil, err
	}

	bill, err := core.ComputeBill(tables, policy, priorBill)
	if err != nil {
		return nil, err
	}

	for _, d := range bill.Diagnostics {
		log.Printf("diagnostic: %s row %d col %d: %s (%q)", d.Sheet, d.Row, d.Col, d.Message, d.Raw)
	}

	result := &BillGenerationResult{Bill: bill}
	if s.history != nil {
		id, err := s.history.RecordRun(ctx, req.FileName, policy, bill)
		if err != nil {
			// The computed bill is still good; losing the audit row should
			// not lose the user's output.
			log.Printf("record bill run: %v", err)
		} else {
			result.RunID = id
		}
	}
	return result, nil
}

// GenerateDocuments renders the full document set for one computed bill.
func (s *appService) GenerateDocuments(ctx context.Context, req GenerateBillRequest) (*DocumentsResult, error) {
	gen, err := s.GenerateBill(ctx, req)
	if err != nil {
		return nil, err
	}

	docs, err := render.AllDocuments(gen.Bill)
	if err != nil {
		return nil, fmt.Errorf("render documents: %w", err)
	}
	archive, err := render.BundleZip(docs)
	if err != nil {
		return nil, err
	}

	return &DocumentsResult{
		Bill:        gen.Bill,
		RunID:       gen.RunID,
		ArchiveName: archiveName(req.FileName),
		Archive:     archive,
	}, nil
}

// ListRuns returns recorded bill runs, newest first.
func (s *appService) ListRuns(ctx context.Context, limit int) (*RunListResult, error) {
	if s.history == nil {
		return nil, ErrHistoryDisabled
	}
	runs, err := s.history.ListRuns(ctx, limit)
	if err != nil {
		return nil, err
	}
	return &RunListResult{Runs: runs}, nil
}

// archiveName derives the download name from the uploaded file name.
func archiveName(fileName string) string {
	base := strings.TrimSuffix(path.Base(fileName), path.Ext(fileName))
	if base == "" || base == "." {
		base = "bill"
	}
	return base + "_documents.zip"
}
