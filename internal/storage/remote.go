package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/abdullahosa/duo-list/internal/config"
	"github.com/abdullahosa/duo-list/internal/models"
)

// RemoteStore reads and writes the shared document against a remote
// key-value JSON bin. Writes are full-document replacement, so concurrent
// sessions race: the later Persist wins and silently discards the earlier
// writer's unseen changes. There is no locking across users.
type RemoteStore struct {
	cfg        config.Config
	baseURL    string
	credential string
	client     *http.Client
}

func NewRemoteStore(cfg config.Config) *RemoteStore {
	return &RemoteStore{
		cfg:        cfg,
		baseURL:    cfg.DocumentURL,
		credential: cfg.Credential,
		client:     &http.Client{},
	}
}

// Init validates the remote configuration. The bin itself is provisioned out
// of band; there is nothing to create here.
func (s *RemoteStore) Init() error {
	return s.cfg.ValidateRemote()
}

func (s *RemoteStore) Close() error {
	return nil
}

func (s *RemoteStore) Fetch(ctx context.Context) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/latest", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Master-Key", s.credential)
	req.Header.Set("Content-Type", "application/json")

	res, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch document: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read document body: %w", err)
	}
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch failed with status %d: %s", res.StatusCode, string(body))
	}

	return json.RawMessage(body), nil
}

func (s *RemoteStore) Persist(ctx context.Context, recs []models.Record) error {
	if recs == nil {
		// A nil slice marshals to JSON null; the store expects an array.
		recs = []models.Record{}
	}
	data, err := json.Marshal(recs)
	if err != nil {
		return fmt.Errorf("failed to serialize records: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, s.baseURL, bytes.NewBuffer(data))
	if err != nil {
		return err
	}
	req.Header.Set("X-Master-Key", s.credential)
	req.Header.Set("Content-Type", "application/json")

	res, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to persist document: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusOK {
		return nil
	}

	body, _ := io.ReadAll(res.Body)
	return fmt.Errorf("persist failed with status %d: %s", res.StatusCode, string(body))
}

func (s *RemoteStore) Source() string {
	return s.baseURL
}
