package http

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/jezdibolt/backend-go/internal/domain/importer"
	"github.com/jezdibolt/backend-go/internal/handler/http/response"
)

// maxImportSize caps one upload request at 64 MiB.
const maxImportSize = 64 << 20

type ImportHandler interface {
	Upload(w http.ResponseWriter, r *http.Request)
	ListBatches(w http.ResponseWriter, r *http.Request)
}

type ImportHandlerImpl struct {
	importService importer.Service
}

func NewImportHandler(importService importer.Service) ImportHandler {
	return &ImportHandlerImpl{importService: importService}
}

// Upload implements ImportHandler. Accepts one or more files under the
// multipart field "files".
func (h *ImportHandlerImpl) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImportSize); err != nil {
		slog.Error("Upload parse error", "error", err)
		response.BadRequest(w, "Invalid multipart request", nil)
		return
	}

	fileHeaders := r.MultipartForm.File["files"]
	if len(fileHeaders) == 0 {
		response.BadRequest(w, "No files uploaded", nil)
		return
	}

	payloads := make([]importer.FilePayload, 0, len(fileHeaders))
	for _, fh := range fileHeaders {
		f, err := fh.Open()
		if err != nil {
			slog.Error("Upload open error", "filename", fh.Filename, "error", err)
			response.BadRequest(w, "Failed to read uploaded file", nil)
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			slog.Error("Upload read error", "filename", fh.Filename, "error", err)
			response.BadRequest(w, "Failed to read uploaded file", nil)
			return
		}
		payloads = append(payloads, importer.FilePayload{Filename: fh.Filename, Data: data})
	}

	result, err := h.importService.ImportFiles(r.Context(), payloads)
	if err != nil {
		slog.Error("Upload service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Import finished", "files", len(payloads), "imported", result.TotalImported, "skipped", result.TotalSkipped)
	response.Success(w, result)
}

// ListBatches implements ImportHandler.
func (h *ImportHandlerImpl) ListBatches(w http.ResponseWriter, r *http.Request) {
	batches, err := h.importService.ListBatches(r.Context())
	if err != nil {
		slog.Error("ListBatches service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, batches)
}
