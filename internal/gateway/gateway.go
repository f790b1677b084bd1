// Package gateway submits the panel's in-memory schedule to the remote
// admin API and turns its uneven response shapes (redirects, non-JSON
// bodies, "not found" messages) into plain outcomes.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"aztv-panel/internal/models"
	"aztv-panel/internal/schedule"
)

var (
	// ErrAuthRequired marks a redirect answer from the admin API, which
	// it sends instead of a 401 when the session is gone.
	ErrAuthRequired = errors.New("admin API requires authentication")

	// ErrNothingToSave means every day was filtered out locally; no
	// request was made.
	ErrNothingToSave = errors.New("no valid programs to save")
)

// Client talks to the program list/create endpoints, either through the
// relay or straight at the admin API.
type Client struct {
	listURL    string
	createURL  string
	httpClient *http.Client
}

// New builds a client. Redirect handling belongs to the relay; whatever
// 3xx still reaches this client is classified, never followed.
func New(listURL, createURL string, timeout time.Duration) *Client {
	return &Client{
		listURL:   listURL,
		createURL: createURL,
		httpClient: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// BuildCreateRequest filters the board into the wire payload: items
// without a name are dropped, days without a date or without surviving
// items are dropped, blank times default to "00:00", blank descriptions
// become null and missing day titles derive the weekday name. A board
// with no surviving days yields ErrNothingToSave.
func BuildCreateRequest(channelID int, channelName string, b *schedule.Board) (*models.CreateRequest, error) {
	cleaned := make([]models.Day, 0, len(b.Days))
	for _, day := range b.Days {
		if day.Date == "" {
			continue
		}
		items := make([]models.Item, 0, len(day.Items))
		for _, it := range day.Items {
			name := strings.TrimSpace(it.Name)
			if name == "" {
				continue
			}
			items = append(items, models.Item{
				StartTime:   orDefault(it.StartTime, "00:00"),
				EndTime:     orDefault(it.EndTime, "00:00"),
				Name:        name,
				Description: cleanDescription(it.Description),
			})
		}
		if len(items) == 0 {
			continue
		}
		title := day.Title
		if title == "" {
			title = schedule.DayName(day.Date)
		}
		cleaned = append(cleaned, models.Day{Date: day.Date, Title: title, Items: items})
	}
	if len(cleaned) == 0 {
		return nil, ErrNothingToSave
	}
	return &models.CreateRequest{
		Channels: map[string]models.Channel{
			strconv.Itoa(channelID): {Name: channelName, Programs: cleaned},
		},
	}, nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func cleanDescription(d *string) *string {
	if d == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*d)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// Save re-submits the entire board for one channel. There is no partial
// update upstream, so every local mutation ends up here. The response
// is interpreted in precedence order: redirect, non-2xx, success.
func (c *Client) Save(ctx context.Context, channelID int, channelName string, b *schedule.Board) error {
	payload, err := BuildCreateRequest(channelID, channelName, b)
	if err != nil {
		return err
	}
	status, header, raw, err := c.post(ctx, c.createURL, payload)
	if err != nil {
		return err
	}
	switch {
	case status >= 300 && status < 400 && header.Get("Location") != "":
		return ErrAuthRequired
	case status < 200 || status >= 300:
		return fmt.Errorf("HTTP %d: %s", status, errorMessage(raw))
	}
	// A 2xx is success as-is; the admin API does not echo the schedule
	// back, so there is nothing further to verify.
	return nil
}

// Load fetches the stored schedule for one channel. A "not found"
// message means the channel was never provisioned and comes back as an
// empty board. An unreadable programs payload also comes back empty,
// with a non-fatal warning for the UI.
func (c *Client) Load(ctx context.Context, channelID int) (*schedule.Board, string, error) {
	status, header, raw, err := c.post(ctx, c.listURL, models.ListRequest{ChannelID: channelID})
	if err != nil {
		return nil, "", err
	}
	if status >= 300 && status < 400 && header.Get("Location") != "" {
		return nil, "", ErrAuthRequired
	}
	if status < 200 || status >= 300 {
		return nil, "", fmt.Errorf("HTTP %d: %s", status, errorMessage(raw))
	}

	var outer struct {
		Message  string          `json:"message"`
		Programs json.RawMessage `json:"programs"`
	}
	if err := json.Unmarshal(raw, &outer); err != nil {
		return schedule.New(), "cavab oxunmadı", nil
	}
	if strings.Contains(outer.Message, "not found") {
		// Sentinel: the channel simply has no schedule yet.
		return schedule.New(), "", nil
	}
	days, warn := parsePrograms(outer.Programs)
	return schedule.FromDays(days), warn, nil
}

func (c *Client) post(ctx context.Context, url string, payload any) (int, http.Header, []byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0, nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, nil, err
	}
	return resp.StatusCode, resp.Header, raw, nil
}

// parsePrograms unwraps the nested programs payload. The admin API has
// been seen returning it as an object, as a JSON document encoded into
// a string, and either way with or without an inner {"programs": [...]}
// wrapper.
func parsePrograms(raw json.RawMessage) ([]models.Day, string) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, ""
	}
	var inner string
	if err := json.Unmarshal(raw, &inner); err == nil {
		raw = json.RawMessage(inner)
	}
	var wrapped struct {
		Programs []models.Day `json:"programs"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.Programs != nil {
		return wrapped.Programs, ""
	}
	var days []models.Day
	if err := json.Unmarshal(raw, &days); err == nil {
		return days, ""
	}
	return nil, "proqram siyahısı oxunmadı"
}

// errorMessage digs a message field out of a structured error body and
// falls back to the first 100 raw characters.
func errorMessage(raw []byte) string {
	var parsed struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &parsed); err == nil && parsed.Message != "" {
		return parsed.Message
	}
	msg := strings.TrimSpace(string(raw))
	if len(msg) > 100 {
		msg = msg[:100]
	}
	if msg == "" {
		msg = "unexpected response"
	}
	return msg
}
