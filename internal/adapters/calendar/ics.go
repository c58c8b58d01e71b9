package calendar

import (
	"bytes"
	"fmt"
	"time"

	"github.com/emersion/go-ical"

	"citizenshipbridge/internal/domain"
)

const (
	icalVersion   = "2.0"
	icalProdID    = "-//Citizenship Bridge//Eligibility Timer//EN"
	icalScale     = "GREGORIAN"
	icalMethod    = "PUBLISH"
	uidDomain     = "citizenshipbridge.org"
	alarmTrigger  = "-P30D"
	alarmAction   = "DISPLAY"
	eventSummary  = "Eligible to file Form N-400"
	eventDescript = "Estimated date you may file Form N-400, based on the 5-year rule and the 90-day early filing provision. Other factors may affect your eligibility. Consult official USCIS resources or an immigration professional."
)

type icsEncoder struct{}

// NewICSEncoder returns a CalendarEncoder producing an iCalendar document with
// one all-day event on the eligibility date and a reminder 30 days before.
func NewICSEncoder() domain.CalendarEncoder {
	return icsEncoder{}
}

func (icsEncoder) Encode(greenCardDate time.Time, result domain.EligibilityResult, now time.Time) ([]byte, error) {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, icalVersion)
	cal.Props.SetText(ical.PropProductID, icalProdID)
	cal.Props.SetText(ical.PropCalendarScale, icalScale)
	cal.Props.SetText(ical.PropMethod, icalMethod)

	day := result.EligibilityDate
	event := ical.NewEvent()
	// Stable per green card date, so re-downloading replaces the old event.
	event.Props.SetText(ical.PropUID, fmt.Sprintf("n400-%s@%s", greenCardDate.Format("20060102"), uidDomain))
	event.Props.SetDateTime(ical.PropDateTimeStamp, now.UTC())
	event.Props.SetText(ical.PropSummary, eventSummary)
	event.Props.SetText(ical.PropDescription, eventDescript)

	start := ical.NewProp(ical.PropDateTimeStart)
	start.SetDate(day)
	event.Props.Set(start)
	end := ical.NewProp(ical.PropDateTimeEnd)
	end.SetDate(day.AddDate(0, 0, 1))
	event.Props.Set(end)

	if result.DaysRemaining > 0 {
		alarm := ical.NewComponent(ical.CompAlarm)
		alarm.Props.SetText(ical.PropAction, alarmAction)
		alarm.Props.SetText(ical.PropDescription, eventSummary)
		// Set the value directly to avoid a VALUE=TEXT parameter.
		trigger := ical.NewProp(ical.PropTrigger)
		trigger.Value = alarmTrigger
		alarm.Props.Set(trigger)
		event.Children = append(event.Children, alarm)
	}

	cal.Children = append(cal.Children, event.Component)

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("encode ics: %w", err)
	}
	return buf.Bytes(), nil
}
