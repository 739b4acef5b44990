package timely

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	defaultBaseURL = "https://api.timelyapp.com/1.1"
	pageSize       = 250
)

// Config carries the Timely account and OAuth credentials.
type Config struct {
	BaseURL      string
	AccountID    string
	ClientID     string
	ClientSecret string
	Email        string
	Password     string
}

// Client fetches events from the Timely API. Events are paginated; the
// client walks pages until an empty one comes back.
type Client struct {
	cfg   Config
	http  *http.Client
	token string
}

// Event is the subset of a Timely event the ingestor cares about.
type Event struct {
	Day     string `json:"day"`
	Note    string `json:"note"`
	Project struct {
		Name   string `json:"name"`
		Client struct {
			Name string `json:"name"`
		} `json:"client"`
	} `json:"project"`
}

func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) ensureAuth(ctx context.Context) error {
	if c.token != "" {
		return nil
	}
	return c.authenticate(ctx)
}

func (c *Client) authenticate(ctx context.Context) error {
	form := url.Values{
		"grant_type":    {"password"},
		"username":      {c.cfg.Email},
		"password":      {c.cfg.Password},
		"client_id":     {c.cfg.ClientID},
		"client_secret": {c.cfg.ClientSecret},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.BaseURL+"/oauth/token", strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("timely authentication request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("timely authentication failed with status %d", resp.StatusCode)
	}

	var body struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("failed to decode timely token response: %w", err)
	}

	c.token = body.AccessToken
	return nil
}

// Events fetches every event of [from, to], walking pages of 250.
func (c *Client) Events(ctx context.Context, from, to time.Time) ([]Event, error) {
	if err := c.ensureAuth(ctx); err != nil {
		return nil, err
	}
	logger := zerolog.Ctx(ctx)

	var all []Event
	for page := 1; ; page++ {
		events, err := c.fetchPage(ctx, from, to, page)
		if err != nil {
			return nil, err
		}
		if len(events) == 0 {
			break
		}
		all = append(all, events...)
	}

	logger.Debug().
		Int("events", len(all)).
		Str("from", from.Format("2006-01-02")).
		Str("to", to.Format("2006-01-02")).
		Msg("fetched timely events")

	return all, nil
}

func (c *Client) fetchPage(ctx context.Context, from, to time.Time, page int) ([]Event, error) {
	endpoint := fmt.Sprintf("%s/%s/events", c.cfg.BaseURL, c.cfg.AccountID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	q.Set("since", from.Format("2006-01-02"))
	q.Set("upto", to.Format("2006-01-02"))
	q.Set("page", strconv.Itoa(page))
	q.Set("per_page", strconv.Itoa(pageSize))
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("timely events request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("timely events request failed with status %d", resp.StatusCode)
	}

	var events []Event
	if err := json.NewDecoder(resp.Body).Decode(&events); err != nil {
		return nil, fmt.Errorf("failed to decode timely events: %w", err)
	}
	return events, nil
}
