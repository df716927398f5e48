package delivery

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/jonathan/personality-quiz/internal/types"
)

const defaultEmailTimeout = 15 * time.Second

// EmailConfig holds the transactional-email service configuration. The
// credential is injected; nothing here reads the environment.
type EmailConfig struct {
	APIURL     string
	ServiceID  string
	TemplateID string
	PublicKey  string
	Timeout    time.Duration
}

// DeliveryError indicates a report could not be delivered. Sessions log it as
// a soft warning and carry on.
type DeliveryError struct {
	Stage  string
	Status int
	Cause  error
}

func (e *DeliveryError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("delivery failed during %s: status %d", e.Stage, e.Status)
	}
	return fmt.Sprintf("delivery failed during %s: %v", e.Stage, e.Cause)
}

func (e *DeliveryError) Unwrap() error {
	return e.Cause
}

// Sender sends report emails through an EmailJS-style REST endpoint
type Sender struct {
	config     EmailConfig
	httpClient *http.Client
}

// NewSender creates a sender from the given configuration.
func NewSender(config EmailConfig) *Sender {
	if config.Timeout == 0 {
		config.Timeout = defaultEmailTimeout
	}
	return &Sender{
		config:     config,
		httpClient: &http.Client{Timeout: config.Timeout},
	}
}

// emailRequest is the REST envelope for the email service
type emailRequest struct {
	ServiceID      string         `json:"service_id"`
	TemplateID     string         `json:"template_id"`
	UserID         string         `json:"user_id"`
	TemplateParams map[string]any `json:"template_params"`
}

var whitespacePattern = regexp.MustCompile(`\s+`)

// SendReport emails the results with the PDF attached as base64. The template
// surfaces the top three strengths and the first career path, which is why
// the analysis arity contract matters downstream of the gateway.
func (s *Sender) SendReport(ctx context.Context, profile types.UserProfile, analysis *types.PersonalityAnalysis, pdfBase64 string) error {
	params := map[string]any{
		"to_email":         profile.Email,
		"to_name":          profile.Name,
		"personality_type": analysis.PersonalityType,
		"description":      analysis.Description,
		"summary":          analysis.Summary,
		"top_strengths":    strings.Join(analysis.Strengths[:3], ", "),
		"top_career":       analysis.CareerPaths[0].Title,
		"pdf_attachment":   pdfBase64,
		"pdf_filename":     whitespacePattern.ReplaceAllString(profile.Name, "_") + "_Personality_Profile.pdf",
	}

	body, err := json.Marshal(emailRequest{
		ServiceID:      s.config.ServiceID,
		TemplateID:     s.config.TemplateID,
		UserID:         s.config.PublicKey,
		TemplateParams: params,
	})
	if err != nil {
		return &DeliveryError{Stage: "encode", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.config.APIURL, bytes.NewReader(body))
	if err != nil {
		return &DeliveryError{Stage: "request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return &DeliveryError{Stage: "send", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &DeliveryError{Stage: "send", Status: resp.StatusCode}
	}
	return nil
}
