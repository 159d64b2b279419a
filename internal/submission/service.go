package submission

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/nvquaan/con-bo-cham-chi/internal/attendance"
	"github.com/nvquaan/con-bo-cham-chi/internal/credential"
)

// SubmitPath is the attendance endpoint, relative to the proxy base URL.
const SubmitPath = "/apietms/api/ChechInData/MobileAddCheckInOut"

// Request bundles everything needed for one submission.
type Request struct {
	UserID      string
	Username    string
	Kind        attendance.EventKind
	Date        string
	Time        string
	Credentials credential.Credentials
}

// Service submits attendance events to the HR API.
//
// Each Submit is a single attempt with no retries. Concurrent calls are not
// deduplicated; callers serialize them.
type Service struct {
	baseURL string
	client  *http.Client
	logger  *log.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(s *Service) { s.client = c }
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// NewService creates a service posting to baseURL + SubmitPath.
func NewService(baseURL string, opts ...Option) *Service {
	s := &Service{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  http.DefaultClient,
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type submitResponse struct {
	ResultCode json.RawMessage `json:"resultCode"`
	Message    json.RawMessage `json:"message"`
}

// Submit validates req, sends it and interprets the response. Every failure
// is reported through the returned Outcome.
func (s *Service) Submit(ctx context.Context, req Request) Outcome {
	payload := attendance.NewPayload(req.UserID, req.Kind, req.Date, req.Time)
	out := Outcome{Payload: payload, Time: req.Time, EventKind: req.Kind}

	if err := attendance.ValidateTime(req.Time); err != nil {
		out.Kind = KindInvalidTime
		out.Message = err.Error()
		s.logger.Warn("submission refused", "reason", out.Kind)
		return out
	}
	if !req.Credentials.Complete() {
		out.Kind = KindMissingCredentials
		out.Message = msgMissingCredentials
		s.logger.Warn("submission refused", "reason", out.Kind)
		return out
	}

	target := s.baseURL + SubmitPath + "?" + payload.Query().Encode()
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, target, nil)
	if err != nil {
		return s.transportFailure(out, err)
	}
	httpReq.Header.Set("Authorization", "Basic "+req.Credentials.BasicAuth)
	httpReq.Header.Set("username", req.Username)
	httpReq.Header.Set("token", req.Credentials.AccessToken)
	httpReq.Header.Set("Accept", "application/json")

	s.logger.Debug("submitting attendance",
		"path", SubmitPath,
		"user", payload.UserID,
		"kind", payload.Kind,
		"at", payload.OccurredAt,
	)

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return s.transportFailure(out, err)
	}
	defer func() { _ = resp.Body.Close() }()

	out.StatusCode = resp.StatusCode
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		out.Kind = KindHTTP
		out.Message = fmt.Sprintf("HTTP %d: server rejected the submission", resp.StatusCode)
		s.logger.Warn("submission rejected", "status", resp.StatusCode)
		return out
	}

	var body submitResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return s.transportFailure(out, fmt.Errorf("decoding response: %w", err))
	}

	if !resultAccepted(body.ResultCode) {
		out.Kind = KindApplication
		out.Message = messageOr(body.Message, msgApplicationFailed)
		s.logger.Warn("submission not accepted", "message", out.Message)
		return out
	}

	out.Kind = KindSuccess
	s.logger.Info("attendance submitted", "kind", payload.Kind, "at", payload.OccurredAt)
	return out
}

func (s *Service) transportFailure(out Outcome, err error) Outcome {
	out.Kind = KindTransport
	out.Message = msgTransportFailed
	s.logger.Error("submission failed", "err", err)
	return out
}

// resultAccepted reports whether raw is the JSON number 1.
func resultAccepted(raw json.RawMessage) bool {
	var n float64
	if err := json.Unmarshal(raw, &n); err != nil {
		return false
	}
	return n == 1
}

func messageOr(raw json.RawMessage, fallback string) string {
	var msg string
	if err := json.Unmarshal(raw, &msg); err != nil || msg == "" {
		return fallback
	}
	return msg
}
