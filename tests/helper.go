package tests

import (
	"bytes"
	"encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yur1-dev/koka-backend/internal/dto"
	"net/http"
	"net/http/httptest"
	"testing"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, resp *http.Response, dest any) envelope {
	env := envelope{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	if dest != nil {
		require.NoError(t, json.Unmarshal(env.Data, dest))
	}
	return env
}

func registerAndLogin(t *testing.T, ts *httptest.Server, username, password string) string {
	body, err := json.Marshal(
		map[string]string{
			"username": username,
			"password": password,
		},
	)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, ts.URL+"/api/auth", bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	tokenRes := dto.TokenResponse{}
	decodeEnvelope(t, resp, &tokenRes)
	require.NotEmpty(t, tokenRes.Token)

	return tokenRes.Token
}

func doJSON(t *testing.T, ts *httptest.Server, method, uri, token string, body any) *http.Response {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, ts.URL+uri, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func getInventory(t *testing.T, ts *httptest.Server, token string) dto.InventoryResponse {
	resp := doJSON(t, ts, http.MethodGet, "/api/inventory", token, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	inv := dto.InventoryResponse{}
	decodeEnvelope(t, resp, &inv)
	return inv
}

func getMarketplace(t *testing.T, ts *httptest.Server, token string) dto.MarketplaceResponse {
	resp := doJSON(t, ts, http.MethodGet, "/api/marketplace", token, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	mp := dto.MarketplaceResponse{}
	decodeEnvelope(t, resp, &mp)
	return mp
}

func inventoryQuantity(inv dto.InventoryResponse, collectibleID string) int {
	for _, i := range inv.Items {
		if i.CollectibleID == collectibleID {
			return i.Quantity
		}
	}
	return 0
}

func totalQuantity(inv dto.InventoryResponse) int {
	total := 0
	for _, i := range inv.Items {
		total += i.Quantity
	}
	return total
}
