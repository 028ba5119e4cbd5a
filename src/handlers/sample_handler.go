// backend/src/handlers/sample_handler.go
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/PSGMeena/FinTech/src/config"
	"github.com/PSGMeena/FinTech/src/logger"
)

// HandleGetSampleData points the frontend at a downloadable example
// statement so users can try the analyzer without their own export.
func HandleGetSampleData(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]string{"download_url": config.Cfg.SampleDataURL}); err != nil {
		logger.L.Error("Error encoding sample-data response", "error", err)
	}
}
