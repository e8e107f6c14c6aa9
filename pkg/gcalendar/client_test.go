package gcalendar_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"medflow-insights/pkg/gcalendar"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *gcalendar.Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	tsClient := ts.Client()
	tsClient.Transport = &rewriteTransport{
		Transport: tsClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}

	client, err := gcalendar.NewClientFromHTTP(context.Background(), tsClient, "primary")
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	return client
}

func TestCalendarClient(t *testing.T) {
	t.Run("Initialize with broken credentials", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(`{"broken":true}`), "primary")
		if err == nil {
			t.Errorf("expected decoding failure")
		}
	})

	t.Run("Initialize from file", func(t *testing.T) {
		tmpFile, _ := os.CreateTemp("", "creds.json")
		defer os.Remove(tmpFile.Name())
		tmpFile.WriteString(`{"broken":true}`)
		tmpFile.Close()

		_, err := gcalendar.NewClientFromCredentialsFile(context.Background(), tmpFile.Name(), "primary")
		if err == nil {
			t.Errorf("expected failure loading broken file")
		}

		_, err = gcalendar.NewClientFromCredentialsFile(context.Background(), "non-existent-file-path-12345.json", "primary")
		if err == nil {
			t.Errorf("expected reading file error")
		}
	})

	t.Run("Sync creates when no match", func(t *testing.T) {
		var inserted int
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			switch {
			case r.Method == http.MethodGet && r.URL.Path == "/calendar/v3/calendars/primary/events":
				w.Write([]byte(`{"items": []}`))
			case r.Method == http.MethodPost && r.URL.Path == "/calendar/v3/calendars/primary/events":
				inserted++
				var body struct {
					Start struct {
						Date string `json:"date"`
					} `json:"start"`
				}
				json.NewDecoder(r.Body).Decode(&body)
				if body.Start.Date != "2026-03-10" {
					t.Errorf("unexpected start date: %s", body.Start.Date)
				}
				w.Write([]byte(`{"id": "event-123"}`))
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		})

		result, err := client.SyncDeadlines(context.Background(), []gcalendar.DeadlineEvent{{
			SourceKey: "task_t1",
			Summary:   "Firmware freeze",
			Due:       time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
		}})
		if err != nil {
			t.Fatalf("SyncDeadlines: %v", err)
		}
		if result.Created != 1 || result.Updated != 0 {
			t.Errorf("result = %+v, want 1 created", result)
		}
		if inserted != 1 {
			t.Errorf("inserted = %d, want 1", inserted)
		}
	})

	t.Run("Sync updates when source key matches", func(t *testing.T) {
		var updated int
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			switch {
			case r.Method == http.MethodGet && r.URL.Path == "/calendar/v3/calendars/primary/events":
				w.Write([]byte(`{"items": [{"id": "event-123", "summary": "Old title"}]}`))
			case r.Method == http.MethodPut && r.URL.Path == "/calendar/v3/calendars/primary/events/event-123":
				updated++
				w.Write([]byte(`{"id": "event-123"}`))
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		})

		result, err := client.SyncDeadlines(context.Background(), []gcalendar.DeadlineEvent{{
			SourceKey: "task_t1",
			Summary:   "Firmware freeze",
			Due:       time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		}})
		if err != nil {
			t.Fatalf("SyncDeadlines: %v", err)
		}
		if result.Updated != 1 || result.Created != 0 {
			t.Errorf("result = %+v, want 1 updated", result)
		}
		if updated != 1 {
			t.Errorf("updated = %d, want 1", updated)
		}
	})

	t.Run("Sync surfaces API errors", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, err := client.SyncDeadlines(context.Background(), []gcalendar.DeadlineEvent{{
			SourceKey: "task_t1",
			Due:       time.Now(),
		}})
		if err == nil {
			t.Fatalf("expected api error")
		}
	})

	t.Run("List filters to mirrored events", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"items": [
				{"id": "ours", "summary": "Firmware freeze", "start": {"date": "2026-03-10"}, "extendedProperties": {"private": {"medflowSourceKey": "task_t1"}}},
				{"id": "theirs", "summary": "Team lunch"}
			]}`))
		})

		events, err := client.ListDeadlineEvents(context.Background())
		if err != nil {
			t.Fatalf("ListDeadlineEvents: %v", err)
		}
		if len(events) != 1 {
			t.Fatalf("expected 1 event, got %d", len(events))
		}
		if events[0].SourceKey != "task_t1" {
			t.Errorf("unexpected source key: %s", events[0].SourceKey)
		}
		if want := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC); !events[0].Due.Equal(want) {
			t.Errorf("Due = %v, want %v", events[0].Due, want)
		}
	})
}
