package http

import (
	"log/slog"
	"net/http"
	"strings"
)

type predictRequest struct {
	Description *string `json:"description"`
}

type predictResponse struct {
	Description   string             `json:"description"`
	Category      string             `json:"category"`
	Confidence    map[string]float64 `json:"confidence"`
	TopConfidence float64            `json:"top_confidence"`
}

type retrainResponse struct {
	Message  string  `json:"message"`
	Accuracy float64 `json:"accuracy"`
}

func (s *Server) handlePredict(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req predictRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if req.Description == nil {
		respondError(w, http.StatusBadRequest, "Missing 'description' field")
		return
	}

	description := strings.TrimSpace(*req.Description)
	if description == "" {
		respondError(w, http.StatusBadRequest, "Description cannot be empty")
		return
	}

	pred, err := s.model.Predict(description)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to predict category",
			"error", err, "description", description)
		respondError(w, http.StatusServiceUnavailable, "Model not ready")
		return
	}

	confidence := make(map[string]float64, len(pred.Confidence))
	for label, p := range pred.Confidence {
		confidence[label] = roundTo(p, 3)
	}

	respondJSON(w, http.StatusOK, predictResponse{
		Description:   description,
		Category:      pred.Category,
		Confidence:    confidence,
		TopConfidence: roundTo(pred.TopConfidence, 3),
	})
}

func (s *Server) handleRetrain(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	pipeline, err := s.model.Retrain(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to retrain model", "error", err)
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	slog.InfoContext(r.Context(), "Model retrained via API",
		"model_id", pipeline.ID,
		"accuracy", pipeline.Accuracy,
	)
	respondJSON(w, http.StatusOK, retrainResponse{
		Message:  "Model retrained successfully",
		Accuracy: roundTo(pipeline.Accuracy*100, 1),
	})
}
