package sms

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Gateway sends a single text message. Implementations must be safe for
// concurrent use.
type Gateway interface {
	Send(ctx context.Context, to, body string) error
}

const twilioBaseURL = "https://api.twilio.com/2010-04-01"

// TwilioGateway sends messages through the Twilio Messages REST API.
type TwilioGateway struct {
	accountSID string
	authToken  string
	from       string
	baseURL    string
	client     *http.Client
}

func NewTwilioGateway(accountSID, authToken, from string) *TwilioGateway {
	return &TwilioGateway{
		accountSID: accountSID,
		authToken:  authToken,
		from:       from,
		baseURL:    twilioBaseURL,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
}

func (g *TwilioGateway) Send(ctx context.Context, to, body string) error {
	form := url.Values{}
	form.Set("To", to)
	form.Set("From", g.from)
	form.Set("Body", body)

	endpoint := fmt.Sprintf("%s/Accounts/%s/Messages.json", g.baseURL, g.accountSID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build sms request: %w", err)
	}
	req.SetBasicAuth(g.accountSID, g.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("send sms: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var apiErr struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err := json.Unmarshal(raw, &apiErr); err == nil && apiErr.Message != "" {
		return fmt.Errorf("sms gateway error %d: %s", apiErr.Code, apiErr.Message)
	}
	return fmt.Errorf("sms gateway returned status %d", resp.StatusCode)
}

// NoopGateway is used when no SMS credentials are configured.
type NoopGateway struct{}

func (NoopGateway) Send(ctx context.Context, to, body string) error {
	return nil
}

const (
	quietHoursStart = 22
	quietHoursEnd   = 7
)

// WithinQuietHours reports whether t falls in the 22:00-07:00 window during
// which outbound texts are suppressed.
func WithinQuietHours(t time.Time) bool {
	hour := t.Hour()
	return hour >= quietHoursStart || hour < quietHoursEnd
}
