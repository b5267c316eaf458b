// Package calendarevent looks up planned workouts in an iCal feed.
package calendarevent

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/apognu/gocal"
)

type Event struct {
	Summary     string
	Description string
	Start       time.Time
	End         time.Time
}

type CalendarEventGetter interface {
	GetCalendarEvent(ctx context.Context, day time.Time) (*Event, error)
}

type CalendarService struct {
	Client  HTTPClient
	FeedURL string
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

func NewCalendarService(client HTTPClient, feedURL string) *CalendarService {
	if client == nil {
		client = http.DefaultClient
	}
	return &CalendarService{
		Client:  client,
		FeedURL: feedURL,
	}
}

// GetCalendarEvent returns the first event on the calendar day of day, or
// nil if there is none.
func (cs CalendarService) GetCalendarEvent(ctx context.Context, day time.Time) (*Event, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, cs.FeedURL, http.NoBody)
	if err != nil {
		return nil, err
	}
	resp, err := cs.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching calendar: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching calendar: unexpected status %d", resp.StatusCode)
	}

	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1).Add(-time.Second)

	c := gocal.NewParser(resp.Body)
	c.Start, c.End = &start, &end

	err = c.Parse()
	if err != nil {
		return nil, fmt.Errorf("parsing calendar: %w", err)
	}

	var events []Event
	for i := 0; i < len(c.Events); i++ {
		component := c.Events[i]
		e := Event{
			Summary:     ParseSummary(component.Summary),
			Description: component.Description,
		}
		if component.Start != nil {
			e.Start = *component.Start
		}
		if component.End != nil {
			e.End = *component.End
		}
		events = append(events, e)
	}

	// We only want one entry for the date passed in.
	if len(events) > 0 {
		return &events[0], nil
	}

	return nil, nil
}

// ParseSummary drops a "<plan> - " prefix from an event summary so only the
// workout name is left.
func ParseSummary(summary string) string {
	summary = strings.TrimSpace(summary)
	if i := strings.Index(summary, " - "); i >= 0 {
		return strings.TrimSpace(summary[i+3:])
	}
	return summary
}
