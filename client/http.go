package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"matchify/models"
)

// HTTPClient implements API over the Matchify REST backend.
type HTTPClient struct {
	BaseURL string
	HTTP    *http.Client
}

func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: 15 * time.Second},
	}
}

type apiError struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// do sends a request and decodes a 2xx response body into out (when out
// is non-nil). Non-2xx responses come back as TransportError, except 503
// which is reported as ServiceUnavailableError.
func (c *HTTPClient) do(ctx context.Context, s Session, op, method, path string, body, out interface{}) error {
	if err := s.validate(); err != nil {
		return err
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &TransportError{Op: op, Err: err}
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+s.Token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusServiceUnavailable {
		return &ServiceUnavailableError{Op: op, Err: decodeErr(resp)}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &TransportError{Op: op, Status: resp.StatusCode, Err: decodeErr(resp)}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &TransportError{Op: op, Err: err}
		}
	}
	return nil
}

func decodeErr(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var e apiError
	if json.Unmarshal(raw, &e) == nil {
		if e.Message != "" {
			return fmt.Errorf("%s", e.Message)
		}
		if e.Error != "" {
			return fmt.Errorf("%s", e.Error)
		}
	}
	return fmt.Errorf("%s", bytes.TrimSpace(raw))
}

func (c *HTTPClient) GetMission(ctx context.Context, s Session, missionID string) (models.Mission, error) {
	var m models.Mission
	err := c.do(ctx, s, "get mission", http.MethodGet, "/api/missions/"+missionID, nil, &m)
	return m, err
}

func (c *HTTPClient) MarkAsCompleted(ctx context.Context, s Session, missionID string) (models.Mission, error) {
	var m models.Mission
	err := c.do(ctx, s, "mark completed", http.MethodPost, "/api/missions/"+missionID+"/complete", nil, &m)
	return m, err
}

func (c *HTTPClient) ApproveCompletion(ctx context.Context, s Session, missionID string) (ApprovalResult, error) {
	var res ApprovalResult
	err := c.do(ctx, s, "approve completion", http.MethodPost, "/api/missions/"+missionID+"/approve", nil, &res)
	return res, err
}

func (c *HTTPClient) CreatePaymentIntent(ctx context.Context, s Session, missionID string) (ApprovalResult, error) {
	var res ApprovalResult
	err := c.do(ctx, s, "create payment intent", http.MethodPost, "/api/payments/intent/"+missionID, nil, &res)
	return res, err
}

func (c *HTTPClient) ConfirmPayment(ctx context.Context, s Session, paymentIntentID, missionID string) error {
	body := map[string]string{
		"payment_intent_id": paymentIntentID,
		"missionid":         missionID,
	}
	return c.do(ctx, s, "confirm payment", http.MethodPost, "/api/payments/confirm", body, nil)
}

func (c *HTTPClient) CreateInterview(ctx context.Context, s Session, req InterviewRequest) (models.Interview, error) {
	body := map[string]interface{}{
		"proposalid":    req.ProposalID,
		"scheduled_at":  req.ScheduledAt.Format(time.RFC3339),
		"notes":         req.Notes,
		"meet_link":     req.MeetLink,
		"auto_generate": req.AutoGenerate,
	}
	var iv models.Interview
	err := c.do(ctx, s, "create interview", http.MethodPost, "/api/interviews", body, &iv)
	return iv, err
}

func (c *HTTPClient) UpdateProposalStatus(ctx context.Context, s Session, proposalID, status string) error {
	body := map[string]string{"status": status}
	return c.do(ctx, s, "update proposal status", http.MethodPut, "/api/proposals/"+proposalID+"/status", body, nil)
}

func (c *HTTPClient) ApproveDeliverable(ctx context.Context, s Session, deliverableID string) error {
	return c.do(ctx, s, "approve deliverable", http.MethodPost, "/api/deliverables/"+deliverableID+"/approve", nil, nil)
}

func (c *HTTPClient) RequestDeliverableRevision(ctx context.Context, s Session, deliverableID, reason string) error {
	body := map[string]string{"reason": reason}
	return c.do(ctx, s, "request revision", http.MethodPost, "/api/deliverables/"+deliverableID+"/revision", body, nil)
}
