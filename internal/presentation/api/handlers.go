package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mshogin/aibackend/internal/application/services"
	"github.com/mshogin/aibackend/internal/domain/models"
	domainServices "github.com/mshogin/aibackend/internal/domain/services"
	"github.com/mshogin/aibackend/internal/infrastructure/config"
	"github.com/mshogin/aibackend/internal/infrastructure/logging"
)

// Handler handles HTTP requests for the backend API.
type Handler struct {
	engine       domainServices.Engine
	orchestrator *services.Orchestrator
	config       *config.Config
}

// NewHandler creates a new Handler instance.
func NewHandler(engine domainServices.Engine, orchestrator *services.Orchestrator, cfg *config.Config) *Handler {
	return &Handler{
		engine:       engine,
		orchestrator: orchestrator,
		config:       cfg,
	}
}

// Generate handles POST /generate.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		h.sendErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	response, err := h.engine.GenerateText(r.Context(), req.Prompt, req.Context)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.sendJSON(w, http.StatusOK, response)
}

// ExecuteCode handles POST /execute-code.
func (h *Handler) ExecuteCode(w http.ResponseWriter, r *http.Request) {
	var req models.ExecuteCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		h.sendErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.engine.ExecuteCode(r.Context(), req.Code, req.GetLanguage())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.sendJSON(w, http.StatusOK, result)
}

// AnalyzeSentiment handles POST /analyze-sentiment.
func (h *Handler) AnalyzeSentiment(w http.ResponseWriter, r *http.Request) {
	var req models.SentimentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		h.sendErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.engine.AnalyzeSentiment(r.Context(), req.Text)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.sendJSON(w, http.StatusOK, result)
}

// RunWorkflow handles POST /workflow.
func (h *Handler) RunWorkflow(w http.ResponseWriter, r *http.Request) {
	var req models.WorkflowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		h.sendErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.orchestrator.RunWorkflow(r.Context(), req.WorkflowType, req.Inputs)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.sendJSON(w, http.StatusOK, result)
}

// ListWorkflows handles GET /workflows.
func (h *Handler) ListWorkflows(w http.ResponseWriter, r *http.Request) {
	h.sendJSON(w, http.StatusOK, map[string]interface{}{
		"workflows": h.orchestrator.Workflows(),
	})
}

// TelegramWebhook handles POST /telegram-webhook. The endpoint only
// acknowledges receipt; updates are never fed into the engine.
func (h *Handler) TelegramWebhook(w http.ResponseWriter, r *http.Request) {
	var update map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		h.sendErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	h.sendJSON(w, http.StatusOK, map[string]string{
		"status":  "success",
		"message": "Update received",
	})
}

// Health handles GET /health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.sendJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"app_name":  h.config.App.Name,
		"version":   "1.0.0",
		"timestamp": models.Timestamp(),
	})
}

// handleError maps domain errors to HTTP status codes. Validation and
// unknown-workflow errors surface with their message; anything else is a
// generic 500 with no internal detail leaked.
func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	if models.IsValidationError(err) || errors.Is(err, models.ErrUnknownWorkflow) {
		h.sendErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	logging.Error("Request failed", err, map[string]interface{}{
		"path": r.URL.Path,
	})
	h.sendErrorResponse(w, http.StatusInternalServerError, "Internal server error")
}

// sendJSON writes a JSON response.
func (h *Handler) sendJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}

// sendErrorResponse sends an error response.
func (h *Handler) sendErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	})
}
