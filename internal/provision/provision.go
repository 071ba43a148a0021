package provision

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/abdullahosa/duo-list/internal/config"
)

// Provisioner requests a companion tab in the external planning spreadsheet
// when a new Vacation entry is created. Provisioning is best-effort: every
// failure degrades to a missing link and must never block record creation.
type Provisioner struct {
	webhookURL string
	client     *http.Client
}

type tabRequest struct {
	TabName string `json:"tabName"`
}

type tabResponse struct {
	URL string `json:"url"`
}

func New(cfg config.Config) *Provisioner {
	return &Provisioner{
		webhookURL: cfg.WebhookURL,
		client:     &http.Client{},
	}
}

// Enabled reports whether a webhook endpoint is configured.
func (p *Provisioner) Enabled() bool {
	return p.webhookURL != ""
}

// ProvisionTab asks the automation endpoint to create a tab with the given
// name and returns the reference link from the response. On any failure the
// returned link is empty and the error describes what went wrong; callers
// log it and create the record without a link.
func (p *Provisioner) ProvisionTab(ctx context.Context, name string) (string, error) {
	if !p.Enabled() {
		return "", fmt.Errorf("webhook URL is not configured")
	}

	payload, err := json.Marshal(tabRequest{TabName: name})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.webhookURL, bytes.NewBuffer(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to reach webhook: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(res.Body)
		return "", fmt.Errorf("provisioning failed with status %d: %s", res.StatusCode, string(body))
	}

	var tab tabResponse
	if err := json.NewDecoder(res.Body).Decode(&tab); err != nil {
		return "", fmt.Errorf("failed to decode webhook response: %w", err)
	}
	if tab.URL == "" {
		return "", fmt.Errorf("webhook response did not contain a url")
	}

	return tab.URL, nil
}
