package controllers

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"citizenshipbridge/internal/domain"
)

//go:embed templates/*.html
var templatesFS embed.FS

const maxFormBytes = 64 << 10

// ContactCardFunc encodes the organization contact card.
type ContactCardFunc func(org domain.Organization) ([]byte, error)

// pageData is the view model shared by all page templates.
type pageData struct {
	Title        string
	Path         string
	Navigation   []domain.Link
	Organization domain.Organization
	Copyright    string
	Page         *domain.Page
	Timer        *timerData
}

// timerData is the view model of the citizenship timer form.
type timerData struct {
	Field          domain.DateField
	Result         *EligibilityView
	DaysMessage    string
	CalendarURL    string
	Name           string
	Email          string
	ReminderError  string
	ReminderNotice string
}

type PageController struct {
	Logger      *slog.Logger
	Content     domain.ContentRepository
	Labels      domain.Labels
	Eligibility domain.EligibilityService
	Reminders   domain.ReminderDispatcher
	ContactCard ContactCardFunc

	pages    *template.Template
	timer    *template.Template
	notFound *template.Template
}

func NewPageController(logger *slog.Logger, content domain.ContentRepository, labels domain.Labels, eligibility domain.EligibilityService, reminders domain.ReminderDispatcher, contactCard ContactCardFunc) (*PageController, error) {
	c := &PageController{
		Logger:      logger,
		Content:     content,
		Labels:      labels,
		Eligibility: eligibility,
		Reminders:   reminders,
		ContactCard: contactCard,
	}
	funcs := template.FuncMap{"label": labels.Label}
	parse := func(file string) (*template.Template, error) {
		t, err := template.New("layout").Funcs(funcs).ParseFS(templatesFS, "templates/layout.html", file)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", file, err)
		}
		return t, nil
	}
	var err error
	if c.pages, err = parse("templates/page.html"); err != nil {
		return nil, err
	}
	if c.timer, err = parse("templates/timer.html"); err != nil {
		return nil, err
	}
	if c.notFound, err = parse("templates/not_found.html"); err != nil {
		return nil, err
	}
	return c, nil
}

// Page returns a handler rendering the content page with the given slug.
func (c *PageController) Page(slug string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := c.Content.Page(slug)
		if err != nil {
			if errors.Is(err, domain.ErrPageNotFound) {
				c.NotFound(w, r)
				return
			}
			c.serverError(w, r, err)
			return
		}
		data := c.baseData(r, page.Title)
		data.Page = page
		c.render(w, r, c.pages, http.StatusOK, data)
	}
}

// NotFound renders the 404 page.
func (c *PageController) NotFound(w http.ResponseWriter, r *http.Request) {
	c.render(w, r, c.notFound, http.StatusNotFound, c.baseData(r, "Page not found"))
}

// Timer renders the empty citizenship timer form.
func (c *PageController) Timer(w http.ResponseWriter, r *http.Request) {
	data := c.baseData(r, c.Labels.Label("TimerTitle"))
	data.Timer = &timerData{Field: domain.NewDateField()}
	c.render(w, r, c.timer, http.StatusOK, data)
}

// SubmitTimer validates the submitted green card date, shows the estimate and
// optionally dispatches a reminder. A failed reminder keeps the estimate and
// the reminder fields on the page.
func (c *PageController) SubmitTimer(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	today := c.Eligibility.Today()
	timer := &timerData{
		Field: domain.NewDateField().Type(r.PostForm.Get("greenCardDate"), today).Submit(today),
		Name:  r.PostForm.Get("name"),
		Email: r.PostForm.Get("email"),
	}
	data := c.baseData(r, c.Labels.Label("TimerTitle"))
	data.Timer = timer
	if !timer.Field.Valid() {
		c.render(w, r, c.timer, http.StatusUnprocessableEntity, data)
		return
	}

	in := domain.EligibilityInput{GreenCardDate: *timer.Field.Value}
	res := c.Eligibility.Calculate(r.Context(), in)
	view := NewEligibilityView(in, res)
	timer.Result = &view
	timer.DaysMessage = c.Labels.Format("TimerDaysRemaining", map[string]any{"Days": max(0, res.DaysRemaining)})
	timer.CalendarURL = "/api/eligibility/calendar.ics?greenCardDate=" + url.QueryEscape(view.GreenCardDate)

	if domain.WantsReminder(timer.Name, timer.Email) {
		c.dispatchReminder(r, timer, res.EligibilityDate)
	}
	c.render(w, r, c.timer, http.StatusOK, data)
}

func (c *PageController) dispatchReminder(r *http.Request, timer *timerData, eligibilityDate time.Time) {
	req, err := domain.NewReminderRequest(timer.Name, timer.Email, eligibilityDate)
	if err != nil {
		timer.ReminderError = reminderErrorMessage(err)
		return
	}
	result := c.Reminders.Dispatch(r.Context(), req)
	if result.Err != nil {
		timer.ReminderError = c.Labels.Label("TimerReminderFailed")
		return
	}
	timer.ReminderNotice = c.Labels.Format("TimerReminderSet", map[string]any{"Email": req.Email})
	timer.Name, timer.Email = "", ""
}

// ContactVCard serves the organization contact card.
func (c *PageController) ContactVCard(w http.ResponseWriter, r *http.Request) {
	card, err := c.ContactCard(c.Content.Organization())
	if err != nil {
		c.serverError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/vcard; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="citizenship-bridge.vcf"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(card)))
	_, _ = w.Write(card)
}

func (c *PageController) baseData(r *http.Request, title string) *pageData {
	return &pageData{
		Title:        title,
		Path:         r.URL.Path,
		Navigation:   c.Content.Navigation(),
		Organization: c.Content.Organization(),
		Copyright:    c.Labels.Format("FooterRights", map[string]any{"Year": c.Eligibility.Today().Year()}),
	}
}

// render executes into a buffer so a template error never leaves a half-written page.
func (c *PageController) render(w http.ResponseWriter, r *http.Request, t *template.Template, status int, data *pageData) {
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		c.serverError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (c *PageController) serverError(w http.ResponseWriter, r *http.Request, err error) {
	c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
