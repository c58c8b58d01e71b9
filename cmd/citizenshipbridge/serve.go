package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"citizenshipbridge/config"
	"citizenshipbridge/internal/adapters/auth"
	"citizenshipbridge/internal/adapters/calendar"
	"citizenshipbridge/internal/adapters/content"
	"citizenshipbridge/internal/adapters/email"
	"citizenshipbridge/internal/adapters/labels"
	"citizenshipbridge/internal/adapters/llm"
	"citizenshipbridge/internal/adapters/markdown"
	deliveryhttp "citizenshipbridge/internal/delivery/http"
	"citizenshipbridge/internal/delivery/http/controllers"
	"citizenshipbridge/internal/domain"
	"citizenshipbridge/internal/services"
)

func newServeCmd() *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server until SIGINT or SIGTERM",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if port != "" {
				cfg.Port = port
			}
			logger := config.NewLogger()
			handler, err := buildHandler(ctx, cfg, logger)
			if err != nil {
				return err
			}
			logger.Info("starting citizenshipbridge",
				"env", cfg.Environment,
				"timezone", cfg.Timezone,
				"email_provider", cfg.Email.Provider,
				"assistant_enabled", cfg.GeminiAPIKey != "",
			)
			return deliveryhttp.NewServer(":"+cfg.Port, handler, logger).Run(ctx)
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "listen port (overrides PORT)")
	return cmd
}

// buildHandler wires adapters, services and controllers into the HTTP handler.
func buildHandler(ctx context.Context, cfg *config.Config, logger *slog.Logger) (http.Handler, error) {
	eligibility := services.NewEligibilityService(domain.RealClock{}, cfg.Location, calendar.NewICSEncoder(), logger)

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:             cfg.Email.AWSRegion,
			AccessKeyID:        cfg.Email.AWSAccessKeyID,
			SecretAccessKey:    cfg.Email.AWSSecretAccessKey,
			InsecureSkipVerify: cfg.Email.SESInsecureSkipVerify,
		},
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("create mailer: %w", err)
	}
	renderer, err := email.NewTemplateRenderer()
	if err != nil {
		return nil, err
	}
	redactor := auth.NewRedactor(cfg.SessionSecret)
	emailService := services.NewEmailService(mailer, renderer, redactor, logger)
	dispatcher := services.NewReminderDispatcher(emailService, cfg.PublicBaseURL, redactor, logger, cfg.ReminderTimeout)

	var model domain.LanguageModel = llm.Disabled{}
	if cfg.GeminiAPIKey != "" {
		gemini, err := llm.NewGeminiModel(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, fmt.Errorf("create language model: %w", err)
		}
		model = gemini
		logger.Info("assistant enabled", "model", gemini.Name())
	} else {
		logger.Warn("GEMINI_API_KEY not set; assistant requests will fail")
	}
	assistant := services.NewAssistantService(model, markdown.NewRenderer(), logger, cfg.AssistantTimeout)

	repo, err := content.NewRepository()
	if err != nil {
		return nil, err
	}
	bundle, err := labels.New(logger)
	if err != nil {
		return nil, err
	}
	pages, err := controllers.NewPageController(logger, repo, bundle, eligibility, dispatcher, content.ContactCard)
	if err != nil {
		return nil, fmt.Errorf("load page templates: %w", err)
	}

	mux := deliveryhttp.NewRouter(deliveryhttp.Controllers{
		Eligibility: controllers.NewEligibilityController(logger, eligibility),
		DateField:   controllers.NewDateFieldController(logger, eligibility),
		Session:     controllers.NewSessionController(logger, auth.NewJWTIssuer(cfg.SessionSecret), cfg.SessionTTL),
		Reminder:    controllers.NewReminderController(logger, eligibility, dispatcher),
		Assistant:   controllers.NewAssistantController(logger, assistant),
		Pages:       pages,
	}, auth.NewJWTVerifier(cfg.SessionSecret), logger)
	return deliveryhttp.NewHandler(mux, cfg.AllowedOrigins, logger), nil
}
