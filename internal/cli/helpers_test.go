package cli

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/nvquaan/con-bo-cham-chi/internal/config"
	"github.com/nvquaan/con-bo-cham-chi/internal/credential"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Date(2024, 3, 5, 9, 0, 0, 0, time.Local)
}

// fixedSource always draws the same offset, so check-in samples 08:20:15
// and check-out samples 17:40:15.
type fixedSource int

func (f fixedSource) IntN(n int) int { return int(f) % n }

const (
	sampledCheckIn  = "08:20:15"
	sampledCheckOut = "17:40:15"
)

var testSource = fixedSource(435)

func newTestApp(t *testing.T, baseURL string) *appContext {
	t.Helper()
	homeDir := t.TempDir()
	cfg := config.Default(homeDir)
	cfg.BaseURL = baseURL
	return &appContext{
		homeDir: homeDir,
		cfg:     cfg,
		store:   credential.NewStore(cfg.StorePath),
		logger:  log.New(io.Discard),
	}
}

func saveTestCredentials(t *testing.T, app *appContext) {
	t.Helper()
	require.NoError(t, app.store.Save(credential.Credentials{BasicAuth: "YmFzaWM6c2VjcmV0", AccessToken: "tok-123"}))
}

// attendanceServer answers every submission with status and body and keeps
// the query of each request it received.
type attendanceServer struct {
	*httptest.Server

	mu      sync.Mutex
	queries []url.Values
}

func newAttendanceServer(t *testing.T, status int, body string) *attendanceServer {
	t.Helper()
	s := &attendanceServer{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.queries = append(s.queries, r.URL.Query())
		s.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(s.Close)
	return s
}

func (s *attendanceServer) calls() []url.Values {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]url.Values(nil), s.queries...)
}

func testKit(sel SelectFunc, prompt PromptFunc, secret SecretFunc, confirm ConfirmFunc) PromptKit {
	return PromptKit{Prompt: prompt, Secret: secret, Confirm: confirm, Select: sel}
}

// mockSelectSequence returns a SelectFunc that picks the given indices in order.
func mockSelectSequence(indices ...int) SelectFunc {
	i := 0
	return func(_ string, options []string) (int, error) {
		if i >= len(indices) {
			return 0, fmt.Errorf("no more mock selections")
		}
		idx := indices[i]
		i++
		if idx >= len(options) {
			return 0, fmt.Errorf("mock selection %d out of range (%d options)", idx, len(options))
		}
		return idx, nil
	}
}

// mockPrompt returns a PromptFunc that feeds pre-determined responses.
func mockPrompt(responses ...string) PromptFunc {
	i := 0
	return func(_ string, _ func(string) error) (string, error) {
		if i >= len(responses) {
			return "", fmt.Errorf("no more mock responses")
		}
		resp := responses[i]
		i++
		return resp, nil
	}
}

// mockSecret returns a SecretFunc that feeds pre-determined responses.
func mockSecret(responses ...string) SecretFunc {
	i := 0
	return func(_, _ string) (string, error) {
		if i >= len(responses) {
			return "", fmt.Errorf("no more mock secrets")
		}
		resp := responses[i]
		i++
		return resp, nil
	}
}

// mockConfirm returns a ConfirmFunc that returns a pre-determined answer.
func mockConfirm(answer bool) ConfirmFunc {
	return func(_ string) (bool, error) {
		return answer, nil
	}
}

func newTestCmd(stdout *bytes.Buffer) *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	cmd.SetOut(stdout)
	return cmd
}
