package app

import (
	"bill-generator/internal/core"
	"bill-generator/internal/history"
)

// BillGenerationResult is returned by GenerateBill. RunID is zero when run
// history is disabled.
type BillGenerationResult struct {
	Bill  *core.BillResult
	RunID int
}

// DocumentsResult is returned by GenerateDocuments.
type DocumentsResult struct {
	Bill        *core.BillResult
	RunID       int
	ArchiveName string
	Archive     []byte
}

// RunListResult is returned by ListRuns.
type RunListResult struct {
	Runs []history.Run
}
