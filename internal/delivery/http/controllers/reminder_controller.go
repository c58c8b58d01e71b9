package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"citizenshipbridge/internal/delivery/http/helpers"
	"citizenshipbridge/internal/delivery/http/middleware"
	"citizenshipbridge/internal/domain"
)

// User-facing reminder messages.
const (
	MsgReminderIncomplete = "Both name and email are required for reminders."
	MsgReminderEmail      = "Please enter a valid email address."
	MsgReminderFailed     = "Could not set the reminder. Please try again."
)

// CreateReminderRequest is the request body for POST /api/reminders.
type CreateReminderRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	GreenCardDate string `json:"greenCardDate"`
}

// Validate implements Validator.
func (c CreateReminderRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.GreenCardDate) == "" {
		errs = append(errs, "greenCardDate is required")
	}
	return errs
}

// ReminderView is the outcome of a reminder request.
// swagger:model ReminderView
type ReminderView struct {
	Sent            bool   `json:"sent"`
	MessageID       string `json:"message_id"`
	EligibilityDate string `json:"eligibility_date"`
}

// ReminderSuccessResponse is the success response envelope for POST /api/reminders (202).
type ReminderSuccessResponse struct {
	Data  *ReminderView     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type ReminderController struct {
	Logger      *slog.Logger
	Eligibility domain.EligibilityService
	Dispatcher  domain.ReminderDispatcher
}

func NewReminderController(logger *slog.Logger, eligibility domain.EligibilityService, dispatcher domain.ReminderDispatcher) *ReminderController {
	return &ReminderController{
		Logger:      logger,
		Eligibility: eligibility,
		Dispatcher:  dispatcher,
	}
}

// reminderErrorMessage maps reminder validation errors to form messages.
func reminderErrorMessage(err error) string {
	if errors.Is(err, domain.ErrInvalidEmail) {
		return MsgReminderEmail
	}
	return MsgReminderIncomplete
}

// CreateReminder godoc
// @Summary Request an eligibility reminder email
// @Description Computes the eligibility date and hands a one-off reminder to the mail provider. Name and email are both required. Delivery is not retried and nothing is stored.
// @Tags reminders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateReminderRequest true "Reminder recipient and green card date"
// @Success 202 {object} controllers.ReminderSuccessResponse "data contains the dispatch outcome"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 422 {object} helpers.APIResponse "error.code: unprocessable"
// @Failure 502 {object} helpers.APIResponse "error.code: bad_gateway"
// @Router /api/reminders [post]
func (c *ReminderController) CreateReminder(w http.ResponseWriter, r *http.Request) {
	var req CreateReminderRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if _, ok := middleware.VisitorIDFromContext(r.Context()); !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	in, err := c.Eligibility.ParseGreenCardDate(req.GreenCardDate)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusUnprocessableEntity, helpers.ErrCodeUnprocessable, domain.MsgDateFormat)
		return
	}
	res := c.Eligibility.Calculate(r.Context(), in)

	reminder, err := domain.NewReminderRequest(req.Name, req.Email, res.EligibilityDate)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, reminderErrorMessage(err))
		return
	}
	result := c.Dispatcher.Dispatch(r.Context(), reminder)
	if result.Err != nil {
		helpers.WriteJSONError(w, http.StatusBadGateway, helpers.ErrCodeBadGateway, MsgReminderFailed)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusAccepted, &ReminderView{
		Sent:            result.Sent,
		MessageID:       result.MessageID,
		EligibilityDate: domain.FormatDisplayDate(res.EligibilityDate),
	})
}
