package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"fundflow/internal/models"
)

const (
	accountPath = "/api/account"

	// DefaultTimeout bounds each ledger call when no timeout is configured.
	DefaultTimeout = 10 * time.Second
)

// client is the HTTP implementation of Client.
type client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a ledger client for the service at baseURL.
func NewClient(baseURL string, timeout time.Duration) Client {
	if baseURL == "" {
		panic("ledger base URL is required")
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *client) GetAccount(ctx context.Context, accountNumber string) (*models.Account, error) {
	url := fmt.Sprintf("%s%s/%s", c.baseURL, accountPath, accountNumber)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build account request: %w", err)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLedgerUnavailable, err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("invalid account number %s: %w", accountNumber, ErrAccountNotFound)
	}
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ledger returned status %d for account %s", res.StatusCode, accountNumber)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read account response: %w", err)
	}

	var account models.Account
	if err := json.Unmarshal(body, &account); err != nil {
		return nil, fmt.Errorf("failed to decode account %s: %w", accountNumber, err)
	}

	return &account, nil
}

func (c *client) AddEntry(ctx context.Context, entry models.Entry) error {
	payload, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to encode ledger entry: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+accountPath, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build entry request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrLedgerUnavailable, err)
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("ledger rejected %s entry for account %s: status %d",
			entry.Type, entry.AccountNumber, res.StatusCode)
	}

	return nil
}
