package suggestion

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrNotConfigured is returned by TestConnection without an API key.
var ErrNotConfigured = errors.New("llm provider not configured")

// Status describes provider availability.
type Status struct {
	Configured bool
	Enabled    bool
	Model      string
	Connected  bool
	Error      string
}

// TestConnection sends a tiny request and checks the canned answer.
func (s *Service) TestConnection(ctx context.Context, model string) error {
	if s.cfg.APIKey == "" || s.client == nil {
		return ErrNotConfigured
	}

	text, err := s.complete(ctx, model, request{prompt: connectionPrompt, temperature: 0.1, maxTokens: 20})
	if err != nil {
		return err
	}
	if !strings.Contains(strings.ToLower(text), "connection successful") {
		return fmt.Errorf("unexpected connection test answer %q", text)
	}
	return nil
}

// Status reports configuration and, when configured, live connectivity.
func (s *Service) Status(ctx context.Context) Status {
	st := Status{Configured: s.cfg.APIKey != "", Model: s.cfg.Model}

	settings, err := s.settings.Get(ctx)
	if err == nil {
		st.Enabled = settings.AI.Enabled
		st.Model = s.model(settings.AI)
	}

	if !st.Configured {
		return st
	}
	if err := s.TestConnection(ctx, st.Model); err != nil {
		st.Error = err.Error()
		return st
	}
	st.Connected = true
	return st
}
