package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"citizenshipbridge/internal/domain"
)

type eligibilityService struct {
	clock    domain.Clock
	loc      *time.Location
	calendar domain.CalendarEncoder
	logger   *slog.Logger
}

// NewEligibilityService returns an EligibilityService whose "today" is the
// clock's current day in loc. A nil loc means time.Local.
func NewEligibilityService(clock domain.Clock, loc *time.Location, calendar domain.CalendarEncoder, logger *slog.Logger) domain.EligibilityService {
	if loc == nil {
		loc = time.Local
	}
	return &eligibilityService{clock: clock, loc: loc, calendar: calendar, logger: logger}
}

// Today returns the start of the current day in the service location.
func (s *eligibilityService) Today() time.Time {
	return domain.StartOfDay(s.clock.Now().In(s.loc))
}

// ParseGreenCardDate validates MM/DD/YYYY text against [01/01/1900, today].
func (s *eligibilityService) ParseGreenCardDate(text string) (domain.EligibilityInput, error) {
	d, ok := domain.TryParseDisplayDate(strings.TrimSpace(text), s.Today())
	if !ok {
		return domain.EligibilityInput{}, fmt.Errorf("%w: %q", domain.ErrInvalidDate, text)
	}
	return domain.EligibilityInput{GreenCardDate: d}, nil
}

func (s *eligibilityService) Calculate(ctx context.Context, in domain.EligibilityInput) domain.EligibilityResult {
	res := domain.CalculateEligibility(in.GreenCardDate, s.Today())
	s.logger.DebugContext(ctx, "eligibility calculated",
		"eligibility_date", domain.FormatDisplayDate(res.EligibilityDate),
		"days_remaining", res.DaysRemaining,
	)
	return res
}

// Calendar returns an iCalendar document with the eligibility date as an all-day event.
func (s *eligibilityService) Calendar(ctx context.Context, in domain.EligibilityInput) ([]byte, error) {
	res := s.Calculate(ctx, in)
	ics, err := s.calendar.Encode(in.GreenCardDate, res, s.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("encode calendar: %w", err)
	}
	return ics, nil
}
