package controllers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"citizenshipbridge/internal/delivery/http/helpers"
	"citizenshipbridge/internal/domain"
)

// Date field events accepted by POST /api/date-field/events.
const (
	FieldEventType   = "type"
	FieldEventBlur   = "blur"
	FieldEventSubmit = "submit"
	FieldEventSelect = "select"
	FieldEventClear  = "clear"
)

// PickerDateLayout is the format of dates sent by the calendar picker.
const PickerDateLayout = time.DateOnly

// DateFieldEventRequest is the request body for POST /api/date-field/events.
// Field is the current state; Text is used by "type" and Date by "select".
type DateFieldEventRequest struct {
	Field domain.DateField `json:"field"`
	Event string           `json:"event"`
	Text  string           `json:"text"`
	Date  string           `json:"date"`
}

// Validate implements Validator.
func (d DateFieldEventRequest) Validate() []string {
	var errs []string
	switch d.Event {
	case FieldEventType, FieldEventBlur, FieldEventSubmit, FieldEventClear:
	case FieldEventSelect:
		if _, err := time.Parse(PickerDateLayout, strings.TrimSpace(d.Date)); err != nil {
			errs = append(errs, "date must be YYYY-MM-DD for select")
		}
	case "":
		errs = append(errs, "event is required")
	default:
		errs = append(errs, "event must be one of type, blur, submit, select, clear")
	}
	return errs
}

// DateFieldSuccessResponse is the success response envelope for POST /api/date-field/events (200).
type DateFieldSuccessResponse struct {
	Data  *domain.DateField `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type DateFieldController struct {
	Logger  *slog.Logger
	Service domain.EligibilityService
}

func NewDateFieldController(logger *slog.Logger, svc domain.EligibilityService) *DateFieldController {
	return &DateFieldController{
		Logger:  logger,
		Service: svc,
	}
}

// ApplyEvent godoc
// @Summary Apply an input event to the green card date field
// @Description Runs one transition of the date field (type, blur, submit, select, clear) and returns the next state. Validation messages are returned in data.error, not as request errors.
// @Tags eligibility
// @Accept json
// @Produce json
// @Param body body DateFieldEventRequest true "Current field state and event"
// @Success 200 {object} controllers.DateFieldSuccessResponse "data contains the next field state"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /api/date-field/events [post]
func (c *DateFieldController) ApplyEvent(w http.ResponseWriter, r *http.Request) {
	var req DateFieldEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	today := c.Service.Today()
	field := req.Field.Restore(today)

	var next domain.DateField
	switch req.Event {
	case FieldEventType:
		next = field.Type(req.Text, today)
	case FieldEventBlur:
		next = field.Blur(today)
	case FieldEventSubmit:
		next = field.Submit(today)
	case FieldEventSelect:
		picked, _ := time.ParseInLocation(PickerDateLayout, strings.TrimSpace(req.Date), today.Location())
		next = field.Select(picked, today)
	case FieldEventClear:
		next = field.Clear()
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, &next)
}
