package gcalendar

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

const sourceKeyProperty = "medflowSourceKey"

// Client wraps the Google Calendar API service.
type Client struct {
	service    *calendar.Service
	calendarID string
}

// NewClientFromCredentialsFile creates a Calendar client from a Service Account JSON file path.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath, calendarID string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data, calendarID)
}

// NewClientFromCredentialsJSON creates a Calendar client from raw Service Account JSON bytes.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte, calendarID string) (*Client, error) {
	config, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarScope)
	if err != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	svc, err := calendar.NewService(ctx, option.WithTokenSource(config.TokenSource(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return newClient(svc, calendarID), nil
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client, calendarID string) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return newClient(svc, calendarID), nil
}

func newClient(svc *calendar.Service, calendarID string) *Client {
	if calendarID == "" {
		calendarID = "primary"
	}
	return &Client{service: svc, calendarID: calendarID}
}

// SyncDeadlines mirrors the given deadlines into the calendar as all-day
// events. Events are matched by source key, so repeated calls update in
// place instead of duplicating.
func (c *Client) SyncDeadlines(ctx context.Context, deadlines []DeadlineEvent) (SyncResult, error) {
	var result SyncResult

	for _, d := range deadlines {
		existing, err := c.findBySourceKey(ctx, d.SourceKey)
		if err != nil {
			return result, err
		}

		event := &calendar.Event{
			Summary:     d.Summary,
			Description: d.Description,
			Start:       &calendar.EventDateTime{Date: d.Due.Format("2006-01-02")},
			End:         &calendar.EventDateTime{Date: d.Due.AddDate(0, 0, 1).Format("2006-01-02")},
			ExtendedProperties: &calendar.EventExtendedProperties{
				Private: map[string]string{sourceKeyProperty: d.SourceKey},
			},
		}

		if existing == nil {
			if _, err := c.service.Events.Insert(c.calendarID, event).Context(ctx).Do(); err != nil {
				return result, fmt.Errorf("failed to create calendar event for %s: %w", d.SourceKey, err)
			}
			result.Created++
			continue
		}

		if _, err := c.service.Events.Update(c.calendarID, existing.Id, event).Context(ctx).Do(); err != nil {
			return result, fmt.Errorf("failed to update calendar event for %s: %w", d.SourceKey, err)
		}
		result.Updated++
	}

	return result, nil
}

func (c *Client) findBySourceKey(ctx context.Context, key string) (*calendar.Event, error) {
	list, err := c.service.Events.List(c.calendarID).
		PrivateExtendedProperty(fmt.Sprintf("%s=%s", sourceKeyProperty, key)).
		MaxResults(1).
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to look up calendar event for %s: %w", key, err)
	}
	if len(list.Items) == 0 {
		return nil, nil
	}
	return list.Items[0], nil
}

// ListDeadlineEvents returns the mirrored deadline events currently in
// the calendar.
func (c *Client) ListDeadlineEvents(ctx context.Context) ([]Event, error) {
	list, err := c.service.Events.List(c.calendarID).
		MaxResults(250).
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}

	var events []Event
	for _, item := range list.Items {
		ev := Event{
			ID:       item.Id,
			Summary:  item.Summary,
			HtmlLink: item.HtmlLink,
		}
		if item.ExtendedProperties != nil {
			ev.SourceKey = item.ExtendedProperties.Private[sourceKeyProperty]
		}
		if ev.SourceKey == "" {
			continue
		}
		if item.Start != nil && item.Start.Date != "" {
			if due, err := time.Parse("2006-01-02", item.Start.Date); err == nil {
				ev.Due = due
			}
		}
		events = append(events, ev)
	}
	return events, nil
}
