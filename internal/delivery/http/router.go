package http

import (
	"log/slog"
	"net/http"

	"citizenshipbridge/internal/delivery/http/controllers"
	"citizenshipbridge/internal/delivery/http/middleware"
	"citizenshipbridge/internal/domain"

	httpSwagger "github.com/swaggo/http-swagger"
)

// ContentPages are the slugs served as informational pages at /<slug>.
var ContentPages = []string{"about", "contact", "donate", "partner", "volunteer", "privacy"}

// Controllers groups the handlers mounted by NewRouter.
type Controllers struct {
	Eligibility *controllers.EligibilityController
	DateField   *controllers.DateFieldController
	Session     *controllers.SessionController
	Reminder    *controllers.ReminderController
	Assistant   *controllers.AssistantController
	Pages       *controllers.PageController
}

// NewRouter initializes the HTTP router with all application routes
func NewRouter(c Controllers, verifier domain.TokenVerifier, logger *slog.Logger) *http.ServeMux {
	mux := http.NewServeMux()
	requireVisitor := middleware.RequireVisitor(verifier, logger)

	// Pages
	mux.HandleFunc("GET /{$}", c.Pages.Page("home"))
	for _, slug := range ContentPages {
		mux.HandleFunc("GET /"+slug, c.Pages.Page(slug))
	}
	mux.HandleFunc("GET /citizenship-timer", c.Pages.Timer)
	mux.HandleFunc("POST /citizenship-timer", c.Pages.SubmitTimer)
	mux.HandleFunc("GET /contact.vcf", c.Pages.ContactVCard)
	mux.HandleFunc("GET /healthz", controllers.Health)

	// API Routes
	mux.HandleFunc("POST /api/eligibility", c.Eligibility.Calculate)
	mux.HandleFunc("GET /api/eligibility/calendar.ics", c.Eligibility.Calendar)
	mux.HandleFunc("POST /api/date-field/events", c.DateField.ApplyEvent)
	mux.HandleFunc("POST /api/session", c.Session.CreateSession)

	// Visitor token required
	mux.HandleFunc("POST /api/reminders", requireVisitor(c.Reminder.CreateReminder))
	mux.HandleFunc("POST /api/assistant/questions", requireVisitor(c.Assistant.Ask))
	mux.HandleFunc("POST /api/assistant/summaries", requireVisitor(c.Assistant.Summarize))

	// Swagger
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	return mux
}

// NewHandler wraps the router with CORS and request logging.
func NewHandler(mux *http.ServeMux, allowedOrigins []string, logger *slog.Logger) http.Handler {
	return middleware.LoggingMiddleware(logger, middleware.CORS(allowedOrigins, mux))
}
