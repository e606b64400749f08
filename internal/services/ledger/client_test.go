package ledger

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fundflow/internal/models"
)

func TestClient_GetAccount(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		switch r.URL.Path {
		case "/api/account/1001":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id": 7, "accountNumber": "1001", "balance": 150.25}`))
		case "/api/account/9999":
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)

	t.Run("existing account", func(t *testing.T) {
		account, err := client.GetAccount(context.Background(), "1001")
		require.NoError(t, err)
		assert.Equal(t, 7, account.ID)
		assert.Equal(t, "1001", account.AccountNumber)
		assert.True(t, account.Balance.Equal(decimal.NewFromFloat(150.25)))
	})

	t.Run("unknown account", func(t *testing.T) {
		_, err := client.GetAccount(context.Background(), "9999")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrAccountNotFound)
		assert.Contains(t, err.Error(), "9999")
	})

	t.Run("ledger failure", func(t *testing.T) {
		_, err := client.GetAccount(context.Background(), "5000")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 500")
	})
}

func TestClient_AddEntry(t *testing.T) {
	var received models.Entry
	fail := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/account", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		if fail {
			w.WriteHeader(http.StatusUnprocessableEntity)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	entry := models.Entry{
		AccountNumber: "1001",
		Value:         decimal.NewFromInt(100),
		Type:          models.EntryTypeDebit,
	}

	t.Run("accepted", func(t *testing.T) {
		require.NoError(t, client.AddEntry(context.Background(), entry))
		assert.Equal(t, "1001", received.AccountNumber)
		assert.Equal(t, models.EntryTypeDebit, received.Type)
		assert.True(t, received.Value.Equal(decimal.NewFromInt(100)))
	})

	t.Run("rejected", func(t *testing.T) {
		fail = true
		err := client.AddEntry(context.Background(), entry)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 422")
	})
}

func TestClient_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, 500*time.Millisecond)

	_, err := client.GetAccount(context.Background(), "1001")
	assert.ErrorIs(t, err, ErrLedgerUnavailable)

	err = client.AddEntry(context.Background(), models.Entry{AccountNumber: "1001", Type: models.EntryTypeDebit})
	assert.ErrorIs(t, err, ErrLedgerUnavailable)
}

func TestClient_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.GetAccount(ctx, "1001")
	assert.Error(t, err)
}
