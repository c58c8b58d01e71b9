package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"citizenshipbridge/internal/delivery/http/helpers"
	"citizenshipbridge/internal/domain"
)

// CalendarFilename is the attachment name of the eligibility calendar.
const CalendarFilename = "citizenship-eligibility.ics"

// EligibilityRequest is the request body for POST /api/eligibility.
type EligibilityRequest struct {
	GreenCardDate string `json:"greenCardDate"`
}

// Validate implements Validator.
func (e EligibilityRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(e.GreenCardDate) == "" {
		errs = append(errs, "greenCardDate is required")
	}
	return errs
}

// EligibilityView is the eligibility estimate as returned to clients.
// swagger:model EligibilityView
type EligibilityView struct {
	GreenCardDate       string `json:"green_card_date"`
	EligibilityDate     string `json:"eligibility_date"`
	EligibilityDateLong string `json:"eligibility_date_long"`
	DaysRemaining       int    `json:"days_remaining"`
	CanApplyNow         bool   `json:"can_apply_now"`
}

// NewEligibilityView formats an estimate for display. DaysRemaining keeps its sign.
func NewEligibilityView(in domain.EligibilityInput, res domain.EligibilityResult) EligibilityView {
	return EligibilityView{
		GreenCardDate:       domain.FormatDisplayDate(in.GreenCardDate),
		EligibilityDate:     domain.FormatDisplayDate(res.EligibilityDate),
		EligibilityDateLong: res.EligibilityDate.Format(domain.LongDateLayout),
		DaysRemaining:       res.DaysRemaining,
		CanApplyNow:         res.CanApplyNow,
	}
}

// EligibilitySuccessResponse is the success response envelope for POST /api/eligibility (200).
type EligibilitySuccessResponse struct {
	Data  *EligibilityView  `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type EligibilityController struct {
	Logger  *slog.Logger
	Service domain.EligibilityService
}

func NewEligibilityController(logger *slog.Logger, svc domain.EligibilityService) *EligibilityController {
	return &EligibilityController{
		Logger:  logger,
		Service: svc,
	}
}

// Calculate godoc
// @Summary Estimate naturalization eligibility
// @Description Computes the earliest N-400 filing date: green card date plus five years minus 90 days. The green card date must be MM/DD/YYYY between 01/01/1900 and today.
// @Tags eligibility
// @Accept json
// @Produce json
// @Param body body EligibilityRequest true "Green card issue date"
// @Success 200 {object} controllers.EligibilitySuccessResponse "data contains the estimate"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 422 {object} helpers.APIResponse "error.code: unprocessable"
// @Router /api/eligibility [post]
func (c *EligibilityController) Calculate(w http.ResponseWriter, r *http.Request) {
	var req EligibilityRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	in, ok := c.parse(w, r, req.GreenCardDate)
	if !ok {
		return
	}
	view := NewEligibilityView(in, c.Service.Calculate(r.Context(), in))
	helpers.WriteJSONSuccess(w, http.StatusOK, &view)
}

// Calendar godoc
// @Summary Download the eligibility date as a calendar event
// @Description Returns an iCalendar file with an all-day event on the estimated eligibility date and a reminder 30 days earlier.
// @Tags eligibility
// @Produce text/calendar
// @Param greenCardDate query string true "Green card issue date (MM/DD/YYYY)"
// @Success 200 {file} file "iCalendar document"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 422 {object} helpers.APIResponse "error.code: unprocessable"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/eligibility/calendar.ics [get]
func (c *EligibilityController) Calendar(w http.ResponseWriter, r *http.Request) {
	text := r.URL.Query().Get("greenCardDate")
	if strings.TrimSpace(text) == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "greenCardDate is required")
		return
	}
	in, ok := c.parse(w, r, text)
	if !ok {
		return
	}
	ics, err := c.Service.Calendar(r.Context(), in)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+CalendarFilename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(ics)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(ics)
}

// parse reports invalid dates with the form's validation message.
func (c *EligibilityController) parse(w http.ResponseWriter, r *http.Request, text string) (domain.EligibilityInput, bool) {
	in, err := c.Service.ParseGreenCardDate(text)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidDate) {
			helpers.WriteJSONError(w, http.StatusUnprocessableEntity, helpers.ErrCodeUnprocessable, domain.MsgDateFormat)
			return domain.EligibilityInput{}, false
		}
		helpers.WriteDomainError(w, r, c.Logger, err)
		return domain.EligibilityInput{}, false
	}
	return in, true
}
