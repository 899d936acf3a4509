package plotting

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// regressionScatter is the plot type the sidecar uses for observed-vs-predicted charts.
const regressionScatter = "regression_scatter"

// ServiceConfig contains configuration for the plotting service client.
type ServiceConfig struct {
	BaseURL string        `json:"base_url"`
	Timeout time.Duration `json:"timeout"`
}

// DefaultServiceConfig returns default configuration for the plotting service.
func DefaultServiceConfig() ServiceConfig {
	return ServiceConfig{
		BaseURL: "http://localhost:8080",
		Timeout: 30 * time.Second,
	}
}

// ServiceRenderer renders plots by sending them to a sidecar plotting service.
type ServiceRenderer struct {
	baseURL    string
	httpClient *http.Client
}

// NewServiceRenderer creates a new plotting service client.
func NewServiceRenderer(config ServiceConfig) *ServiceRenderer {
	return &ServiceRenderer{
		baseURL: config.BaseURL,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

// serviceResponse represents the response from the plotting service.
type serviceResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	PlotID  string `json:"plot_id,omitempty"`
	ViewURL string `json:"view_url,omitempty"`
}

// Render sends the plot to the sidecar service and blocks until it responds.
// A plot without an ID is assigned a fresh one so renders are traceable.
func (r *ServiceRenderer) Render(plot *ScatterPlot) error {
	if plot == nil {
		return errors.New("plot must not be nil")
	}
	if plot.ID == "" {
		plot.ID = uuid.NewString()
	}
	if plot.Type == "" {
		plot.Type = regressionScatter
	}

	jsonData, err := json.Marshal(plot)
	if err != nil {
		return fmt.Errorf("failed to marshal plot data: %w", err)
	}

	url := fmt.Sprintf("%s/api/plot", r.baseURL)
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "easyols")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send HTTP request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	var plotResp serviceResponse
	if err := json.Unmarshal(respBody, &plotResp); err != nil {
		return fmt.Errorf("failed to parse response JSON: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("plotting service returned status %d: %s", resp.StatusCode, plotResp.Message)
	}
	if !plotResp.Success {
		return fmt.Errorf("plotting service rejected plot: %s", plotResp.Message)
	}

	return nil
}
