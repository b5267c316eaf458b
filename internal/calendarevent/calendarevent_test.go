package calendarevent

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"
)

const feed = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//liftlog//test//EN
BEGIN:VEVENT
UID:push-1@liftlog
DTSTAMP:20231201T000000Z
DTSTART:20231206T170000Z
DTEND:20231206T180000Z
SUMMARY:5x5 Strength - Push Day
DESCRIPTION:Bench and overhead press
END:VEVENT
BEGIN:VEVENT
UID:legs-1@liftlog
DTSTAMP:20231201T000000Z
DTSTART:20231208T170000Z
DTEND:20231208T180000Z
SUMMARY:Leg Day
END:VEVENT
END:VCALENDAR
`

type MockClient struct {
	DoFunc func(req *http.Request) (*http.Response, error)
}

func (m *MockClient) Do(req *http.Request) (*http.Response, error) {
	return m.DoFunc(req)
}

func feedClient(status int) *MockClient {
	return &MockClient{
		DoFunc: func(*http.Request) (*http.Response, error) {
			return &http.Response{
				StatusCode: status,
				Body:       io.NopCloser(strings.NewReader(feed)),
			}, nil
		},
	}
}

func TestGetCalendarEvent(t *testing.T) {
	cs := NewCalendarService(feedClient(http.StatusOK), "https://calendar.example.com/plan.ics")
	ctx := context.Background()

	t.Run("should return the event of the day", func(t *testing.T) {
		event, err := cs.GetCalendarEvent(ctx, time.Date(2023, 12, 6, 9, 0, 0, 0, time.UTC))
		if err != nil {
			t.Fatalf("unexpected error = %v", err)
		}
		if event == nil {
			t.Fatal("expected an event but got nil")
		}
		if event.Summary != "Push Day" {
			t.Errorf("expected event.Summary to be Push Day but got %v", event.Summary)
		}
		if event.Description != "Bench and overhead press" {
			t.Errorf("unexpected description %q", event.Description)
		}
		if event.Start.Hour() != 17 {
			t.Errorf("expected the event to start at 17:00 but got %v", event.Start)
		}
	})

	t.Run("should keep a summary without a prefix", func(t *testing.T) {
		event, err := cs.GetCalendarEvent(ctx, time.Date(2023, 12, 8, 0, 0, 0, 0, time.UTC))
		if err != nil {
			t.Fatalf("unexpected error = %v", err)
		}
		if event == nil || event.Summary != "Leg Day" {
			t.Errorf("expected Leg Day but got %v", event)
		}
	})

	t.Run("should return nil if no events found", func(t *testing.T) {
		event, err := cs.GetCalendarEvent(ctx, time.Date(2025, 12, 6, 0, 0, 0, 0, time.UTC))
		if err != nil {
			t.Fatalf("unexpected error = %v", err)
		}
		if event != nil {
			t.Errorf("expected event to be nil but got %v", event)
		}
	})

	t.Run("should return an error if the request fails", func(t *testing.T) {
		cs := NewCalendarService(&MockClient{
			DoFunc: func(*http.Request) (*http.Response, error) {
				return nil, http.ErrHandlerTimeout
			},
		}, "https://calendar.example.com/plan.ics")

		if _, err := cs.GetCalendarEvent(ctx, time.Now()); err == nil {
			t.Error("expected an error but got nil")
		}
	})

	t.Run("should return an error on a non-200 response", func(t *testing.T) {
		cs := NewCalendarService(feedClient(http.StatusNotFound), "https://calendar.example.com/plan.ics")
		if _, err := cs.GetCalendarEvent(ctx, time.Now()); err == nil {
			t.Error("expected an error but got nil")
		}
	})
}

func TestParseSummary(t *testing.T) {
	tests := map[string]string{
		"TrainerRoad - Truchas -3": "Truchas -3",
		"Upper Body":               "Upper Body",
		"  Pull Day ":              "Pull Day",
	}
	for in, want := range tests {
		if got := ParseSummary(in); got != want {
			t.Errorf("ParseSummary(%q) = %q, want %q", in, got, want)
		}
	}
}
