package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"citizenshipbridge/internal/delivery/http/helpers"
	"citizenshipbridge/internal/domain"
)

// MsgAssistantFailed is shown when the language model cannot be reached.
const MsgAssistantFailed = "Failed to get response from the assistant."

// QuestionRequest is the request body for POST /api/assistant/questions.
type QuestionRequest struct {
	Question string `json:"question"`
}

// Validate implements Validator.
func (q QuestionRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(q.Question) == "" {
		errs = append(errs, "question is required")
	}
	return errs
}

// SummaryRequest is the request body for POST /api/assistant/summaries.
// Document is a data URI: data:<mimetype>;base64,<payload>.
type SummaryRequest struct {
	Document string `json:"document"`
}

// Validate implements Validator.
func (s SummaryRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(s.Document) == "" {
		errs = append(errs, "document is required")
	}
	return errs
}

// SummaryView wraps a document summary.
// swagger:model SummaryView
type SummaryView struct {
	Summary string `json:"summary"`
}

// AnswerSuccessResponse is the success response envelope for POST /api/assistant/questions (200).
type AnswerSuccessResponse struct {
	Data  *domain.Answer    `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// SummarySuccessResponse is the success response envelope for POST /api/assistant/summaries (200).
type SummarySuccessResponse struct {
	Data  *SummaryView      `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type AssistantController struct {
	Logger  *slog.Logger
	Service domain.AssistantService
}

func NewAssistantController(logger *slog.Logger, svc domain.AssistantService) *AssistantController {
	return &AssistantController{
		Logger:  logger,
		Service: svc,
	}
}

// Ask godoc
// @Summary Ask the naturalization assistant
// @Description Sends one question to the language model. The answer is returned as Markdown and as rendered HTML. Failures are not retried.
// @Tags assistant
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body QuestionRequest true "Question (max 2000 characters)"
// @Success 200 {object} controllers.AnswerSuccessResponse "data contains the answer"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 502 {object} helpers.APIResponse "error.code: bad_gateway"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/assistant/questions [post]
func (c *AssistantController) Ask(w http.ResponseWriter, r *http.Request) {
	var req QuestionRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	answer, err := c.Service.Answer(r.Context(), req.Question)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, answer)
}

// Summarize godoc
// @Summary Summarize a naturalization document
// @Description Summarizes an attached PDF, image or plain-text document (max 10 MiB) sent as a base64 data URI.
// @Tags assistant
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body SummaryRequest true "Document as a data URI"
// @Success 200 {object} controllers.SummarySuccessResponse "data contains the summary"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 502 {object} helpers.APIResponse "error.code: bad_gateway"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/assistant/summaries [post]
func (c *AssistantController) Summarize(w http.ResponseWriter, r *http.Request) {
	var req SummaryRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	summary, err := c.Service.Summarize(r.Context(), req.Document)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, &SummaryView{Summary: summary})
}

func (c *AssistantController) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrAssistantUnavailable) {
		c.Logger.WarnContext(r.Context(), "assistant unavailable", "path", r.URL.Path, "err", err)
		helpers.WriteJSONError(w, http.StatusBadGateway, helpers.ErrCodeBadGateway, MsgAssistantFailed)
		return
	}
	helpers.WriteDomainError(w, r, c.Logger, err)
}
