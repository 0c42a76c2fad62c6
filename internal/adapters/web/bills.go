package web

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"bill-generator/internal/app"
)

// maxUploadBytes bounds the multipart form size. Billing workbooks are a few
// hundred KB; 20MB leaves generous headroom.
const maxUploadBytes = 20 << 20

func (s *Server) handleGenerateBill(w http.ResponseWriter, r *http.Request) {
	req, cleanup, ok := s.billRequestFromForm(w, r)
	if !ok {
		return
	}
	defer cleanup()

	result, err := s.app.GenerateBill(r.Context(), req)
	if err != nil {
		writeError(w, r, err.Error(), "BILL_GENERATION_FAILED", http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"run_id": result.RunID,
		"bill":   result.Bill,
	})
}

func (s *Server) handleGenerateDocuments(w http.ResponseWriter, r *http.Request) {
	req, cleanup, ok := s.billRequestFromForm(w, r)
	if !ok {
		return
	}
	defer cleanup()

	result, err := s.app.GenerateDocuments(r.Context(), req)
	if err != nil {
		writeError(w, r, err.Error(), "DOCUMENT_GENERATION_FAILED", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.ArchiveName))
	w.Header().Set("Content-Length", strconv.Itoa(len(result.Archive)))
	if _, err := w.Write(result.Archive); err != nil {
		// Response already started; nothing left to do but note it.
		return
	}
}

func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 500 {
			writeError(w, r, "limit must be an integer between 1 and 500", "INVALID_LIMIT", http.StatusBadRequest)
			return
		}
		limit = n
	}

	result, err := s.app.ListRuns(r.Context(), limit)
	if err != nil {
		if errors.Is(err, app.ErrHistoryDisabled) {
			writeError(w, r, err.Error(), "HISTORY_DISABLED", http.StatusServiceUnavailable)
			return
		}
		writeError(w, r, "failed to list runs", "INTERNAL_ERROR", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"runs": result.Runs})
}

// billRequestFromForm parses the multipart upload shared by the bill and
// document endpoints. On failure it writes the error response and returns
// ok=false. The cleanup func closes the uploaded file.
func (s *Server) billRequestFromForm(w http.ResponseWriter, r *http.Request) (app.GenerateBillRequest, func(), bool) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, r, "invalid multipart form", "INVALID_FORM", http.StatusBadRequest)
		return app.GenerateBillRequest{}, nil, false
	}

	file, header, err := r.FormFile("workbook")
	if err != nil {
		writeError(w, r, "missing workbook file field", "MISSING_WORKBOOK", http.StatusBadRequest)
		return app.GenerateBillRequest{}, nil, false
	}

	req := app.GenerateBillRequest{
		FileName:         header.Filename,
		Workbook:         file,
		PremiumPercent:   r.FormValue("premium_percent"),
		PremiumDirection: r.FormValue("premium_direction"),
		PriorBillAmount:  r.FormValue("prior_bill_amount"),
	}
	return req, func() { file.Close() }, true
}
