package ollama

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"

	"github.com/nuwan-labs/project-buddy/internal/config"
)

// Client is the surface the analysis pipeline consumes. Generate returns the
// raw model reply; connection failures and timeouts surface as errors and are
// the caller's problem. Health is diagnostic only and never errors.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Health(ctx context.Context) *HealthStatus
}

type HealthStatus struct {
	Available   bool     `json:"available"`
	Version     string   `json:"version,omitempty"`
	Model       string   `json:"model,omitempty"`
	ModelLoaded bool     `json:"model_loaded"`
	Models      []string `json:"models,omitempty"`
	Error       string   `json:"error,omitempty"`
}

type HTTPClient struct {
	baseURL string
	model   string
	client  *http.Client
}

func NewClient(cfg *config.AppConfig) *HTTPClient {
	return &HTTPClient{
		baseURL: cfg.OllamaBaseURL(),
		model:   cfg.OLLAMA.Model,
		client: &http.Client{
			Timeout: time.Duration(cfg.OLLAMA.TimeoutSeconds) * time.Second,
		},
	}
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type generateResponse struct {
	Response string `json:"response"`
}

func (c *HTTPClient) Generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Model:  c.model,
		Prompt: prompt,
		Stream: false,
	})
	if err != nil {
		return "", fmt.Errorf("marshal generate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build generate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	log.Info().Str("model", c.model).Msg("ollama: sending generate request")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("ollama unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ollama generate returned HTTP %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read generate response: %w", err)
	}

	var parsed generateResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("decode generate response: %w", err)
	}

	return parsed.Response, nil
}

// Health probes /api/version and /api/tags with a short timeout, independent
// of the generation timeout.
func (c *HTTPClient) Health(ctx context.Context) *HealthStatus {
	probe := &http.Client{Timeout: 5 * time.Second}

	version, err := c.getJSON(ctx, probe, "/api/version")
	if err != nil {
		return &HealthStatus{Available: false, Error: err.Error()}
	}

	status := &HealthStatus{
		Available: true,
		Model:     c.model,
	}
	if v, ok := version["version"].(string); ok {
		status.Version = v
	}

	tags, err := c.getJSON(ctx, probe, "/api/tags")
	if err != nil {
		status.Error = err.Error()
		return status
	}
	if models, ok := tags["models"].([]any); ok {
		for _, m := range models {
			entry, ok := m.(map[string]any)
			if !ok {
				continue
			}
			name, _ := entry["name"].(string)
			status.Models = append(status.Models, name)
			if strings.Contains(name, c.model) {
				status.ModelLoaded = true
			}
		}
	}

	return status
}

func (c *HTTPClient) getJSON(ctx context.Context, client *http.Client, path string) (map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cannot connect to ollama: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	var out map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}
