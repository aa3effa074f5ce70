package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/FlorinDG/coral-remodeling-pro/internal/models"
)

const defaultResendEndpoint = "https://api.resend.com/emails"

// ResendClient sends operator notifications through the Resend HTTP API.
// The constructor returns nil when no API key is configured; callers treat
// a nil client as "notifications disabled".
type ResendClient struct {
	apiKey      string
	fromEmail   string
	fromName    string
	notifyEmail string
	location    *time.Location
	endpoint    string
	httpClient  *http.Client
}

func NewResendClient(apiKey, fromEmail, fromName, notifyEmail string, loc *time.Location) *ResendClient {
	if strings.TrimSpace(apiKey) == "" || strings.TrimSpace(notifyEmail) == "" {
		return nil
	}
	if strings.TrimSpace(fromEmail) == "" {
		fromEmail = "onboarding@resend.dev"
	}
	if strings.TrimSpace(fromName) == "" {
		fromName = fromEmail
	}
	if loc == nil {
		loc = time.UTC
	}
	return &ResendClient{
		apiKey:      apiKey,
		fromEmail:   fromEmail,
		fromName:    fromName,
		notifyEmail: notifyEmail,
		location:    loc,
		endpoint:    defaultResendEndpoint,
		httpClient:  &http.Client{Timeout: 8 * time.Second},
	}
}

func (c *ResendClient) SendLeadNotification(ctx context.Context, lead models.Lead) (string, error) {
	if c == nil {
		return "", errors.New("resend client is nil")
	}
	subject := fmt.Sprintf("New Lead: %s - %s", lead.Name, lead.Service)
	htmlBody, err := buildLeadNotificationHTML(lead)
	if err != nil {
		return "", err
	}
	return c.sendHTML(ctx, subject, htmlBody)
}

func (c *ResendClient) SendBookingNotification(ctx context.Context, booking models.Booking) (string, error) {
	if c == nil {
		return "", errors.New("resend client is nil")
	}
	date := booking.Date.In(c.location).Format("02/01/2006")
	subject := fmt.Sprintf("Visit Confirmed: %s - %s", booking.ClientName, date)
	htmlBody, err := buildBookingNotificationHTML(booking, date)
	if err != nil {
		return "", err
	}
	return c.sendHTML(ctx, subject, htmlBody)
}

func (c *ResendClient) sendHTML(ctx context.Context, subject, htmlBody string) (string, error) {
	if c == nil {
		return "", errors.New("resend client is nil")
	}
	if strings.TrimSpace(subject) == "" {
		return "", errors.New("missing subject")
	}
	if strings.TrimSpace(htmlBody) == "" {
		return "", errors.New("missing html body")
	}

	payload := resendSendRequest{
		From:    fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail),
		To:      []string{c.notifyEmail},
		Subject: subject,
		HTML:    htmlBody,
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("resend marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("resend create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("resend request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("resend send failed: status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out resendSendResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("resend decode response: %w", err)
	}
	if strings.TrimSpace(out.ID) == "" {
		return "", errors.New("resend response missing id")
	}
	return out.ID, nil
}

type resendSendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type resendSendResponse struct {
	ID string `json:"id"`
}
