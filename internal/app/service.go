package app

import "context"

// ApplicationService is the single interface all UI adapters (CLI, Web) call.
// It decouples presentation from business logic. Implementations must contain
// no fmt.Println, no ANSI codes, and no display logic of any kind.
type ApplicationService interface {
	// GenerateBill parses the uploaded workbook, runs the bill computation
	// under the requested premium policy and, when history is configured,
	// records the run.
	GenerateBill(ctx context.Context, req GenerateBillRequest) (*BillGenerationResult, error)

	// GenerateDocuments runs GenerateBill and renders the complete output
	// document set packaged as a single ZIP archive.
	GenerateDocuments(ctx context.Context, req GenerateBillRequest) (*DocumentsResult, error)

	// ListRuns returns recorded bill runs, newest first. It fails with
	// ErrHistoryDisabled when no database is configured.
	ListRuns(ctx context.Context, limit int) (*RunListResult, error)
}
