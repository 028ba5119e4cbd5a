// backend/src/handlers/analyze_handler.go
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/PSGMeena/FinTech/src/config"
	"github.com/PSGMeena/FinTech/src/logger"
	"github.com/PSGMeena/FinTech/src/parsers"
	"github.com/PSGMeena/FinTech/src/processors"
	"github.com/PSGMeena/FinTech/src/security/validation"
	"github.com/PSGMeena/FinTech/src/services"
	"github.com/PSGMeena/FinTech/src/utils"
)

const (
	defaultBusinessType = "Retail"
	defaultLanguage     = "English"
)

type AnalyzeHandler struct {
	analysisService services.AnalysisService
}

func NewAnalyzeHandler(service services.AnalysisService) *AnalyzeHandler {
	return &AnalyzeHandler{
		analysisService: service,
	}
}

// HandleAnalyzeFile accepts a multipart upload ("file" field plus optional
// "business_type" and "language" form values), runs the analysis pipeline
// and returns {"metrics": ..., "insights": ...}.
func (h *AnalyzeHandler) HandleAnalyzeFile(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(config.Cfg.MaxUploadSizeBytes); err != nil {
		logger.L.Warn("Failed to parse multipart form or request too large", "error", err, "limit", config.Cfg.MaxUploadSizeBytes)
		utils.SendJSONError(w, fmt.Sprintf("Failed to parse form or request too large (max %d MB)", config.Cfg.MaxUploadSizeBytes/(1024*1024)), http.StatusBadRequest)
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		logger.L.Warn("Failed to retrieve file from request", "error", err)
		utils.SendJSONError(w, "Failed to retrieve file from request. Ensure 'file' field is used.", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if fileHeader.Size > config.Cfg.MaxUploadSizeBytes {
		logger.L.Warn("Uploaded file too large", "fileSize", fileHeader.Size, "limit", config.Cfg.MaxUploadSizeBytes)
		utils.SendJSONError(w, fmt.Sprintf("File too large, max %d MB", config.Cfg.MaxUploadSizeBytes/(1024*1024)), http.StatusBadRequest)
		return
	}

	clientContentType := fileHeader.Header.Get("Content-Type")
	if err := validation.ValidateClientContentType(clientContentType); err != nil {
		logger.L.Warn("Invalid client-declared file type", "contentType", clientContentType, "error", err)
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	detectedContentType, err := validation.ValidateFileContentByMagicBytes(file)
	if err != nil {
		logger.L.Warn("Server-side file content validation failed", "filename", fileHeader.Filename, "error", err)
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	logger.L.Debug("File content validated", "filename", fileHeader.Filename, "clientType", clientContentType, "detectedType", detectedContentType)

	businessType := validation.StripUnprintable(r.FormValue("business_type"))
	if businessType == "" {
		businessType = defaultBusinessType
	}
	language := r.FormValue("language")
	if language == "" {
		language = defaultLanguage
	}

	logger.L.Info("Processing analyze request", "filename", fileHeader.Filename, "businessType", businessType, "language", language)
	result, err := h.analysisService.Analyze(r.Context(), file, fileHeader.Filename, businessType, language)
	if err != nil {
		switch {
		case errors.Is(err, parsers.ErrUnsupportedFormat):
			logger.L.Warn("Unsupported upload format", "filename", fileHeader.Filename, "error", err)
			utils.SendJSONError(w, fmt.Sprintf("Unsupported file format: %v", err), http.StatusBadRequest)
		case errors.Is(err, services.ErrParsingFailed):
			logger.L.Warn("Analysis failed during file parsing", "filename", fileHeader.Filename, "error", err)
			utils.SendJSONError(w, fmt.Sprintf("Error parsing file: %v", err), http.StatusBadRequest)
		case errors.Is(err, processors.ErrEmptyDataset):
			logger.L.Warn("Analysis failed on empty dataset", "filename", fileHeader.Filename, "error", err)
			utils.SendJSONError(w, "No rows with a valid date were found in the file.", http.StatusUnprocessableEntity)
		case errors.Is(err, services.ErrAnalysisFailed):
			logger.L.Warn("Analysis failed", "filename", fileHeader.Filename, "error", err)
			utils.SendJSONError(w, fmt.Sprintf("Analysis failed: %v", err), http.StatusUnprocessableEntity)
		default:
			logger.L.Error("Internal error processing upload", "filename", fileHeader.Filename, "error", err)
			utils.SendJSONError(w, "An internal error occurred while processing the file. Please try again later.", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		logger.L.Error("Error encoding JSON response for analysis result", "error", err)
	}
}
