package transport

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nbx/pkg/core"
)

func newTestClient(baseURL string) *Client {
	return NewClient(&Config{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
		Headers: map[string]string{"Accept": "application/json"},
	}, zerolog.Nop())
}

func TestClient_Get_QueryParams(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/depth", r.URL.Path)
		assert.Equal(t, "HNSBTC", r.URL.Query().Get("symbol"))
		assert.Equal(t, "50", r.URL.Query().Get("limit"))
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"lastEventId":6828}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	defer client.Close()

	req := core.NewRequest(core.OpDepth).SetQueryParams(core.Params{
		"symbol": "HNSBTC",
		"limit":  50,
	})

	resp, err := client.Do(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, resp.IsSuccess())
	assert.False(t, resp.IsError())
}

func TestClient_Post_JSONBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "HNSBTC", body["symbol"])

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"orderId":174}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	defer client.Close()

	req := core.NewRequest(core.OpPlaceOrder).SetBody(core.Params{"symbol": "HNSBTC"})

	resp, err := client.Do(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestClient_Delete_TransmitsJSONBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)

		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NotEmpty(t, raw, "DELETE must carry a JSON body")

		var body map[string]any
		require.NoError(t, json.Unmarshal(raw, &body))
		assert.Equal(t, "HNSBTC", body["symbol"])
		assert.EqualValues(t, 174, body["orderId"])

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"orderId":174,"status":"CANCELED"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	defer client.Close()

	req := core.NewRequest(core.OpCancelOrder).SetBody(core.Params{
		"symbol":  "HNSBTC",
		"orderId": int64(174),
	})

	resp, err := client.Do(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestClient_DefaultHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Basic Zm9vOmJhcg==", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(&Config{
		BaseURL: server.URL,
		Timeout: 5 * time.Second,
		Headers: map[string]string{"Authorization": "Basic Zm9vOmJhcg=="},
	}, zerolog.Nop())
	defer client.Close()

	_, err := client.Do(context.Background(), core.NewRequest(core.OpExchangeInfo))
	require.NoError(t, err)
}

func TestClient_ErrorStatusIsNotTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"not found"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	defer client.Close()

	resp, err := client.Do(context.Background(), core.NewRequest(core.OpGetOrder))
	require.NoError(t, err)
	assert.True(t, resp.IsError())
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.JSONEq(t, `{"error":"not found"}`, string(resp.Body))
}

func TestClient_TransportFault(t *testing.T) {
	// Closed server: connection refused must surface as a wrapped error,
	// not a response.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := newTestClient(server.URL)
	defer client.Close()

	resp, err := client.Do(context.Background(), core.NewRequest(core.OpExchangeInfo))
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "http request")
}

func TestClient_UnsupportedMethod(t *testing.T) {
	client := newTestClient("http://localhost:1")
	defer client.Close()

	req := &core.Request{Method: "TRACE", Path: "/info"}
	_, err := client.Do(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported http method")
}

func TestClient_Closed(t *testing.T) {
	client := newTestClient("http://localhost:1")
	require.NoError(t, client.Close())
	require.NoError(t, client.Close())

	_, err := client.Do(context.Background(), core.NewRequest(core.OpExchangeInfo))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "closed")
}

func TestResponse_Unmarshal(t *testing.T) {
	resp := &Response{
		StatusCode: http.StatusOK,
		Body:       []byte(`{"price":"0.00002300"}`),
	}

	var result struct {
		Price string `json:"price"`
	}
	require.NoError(t, resp.Unmarshal(&result))
	assert.Equal(t, "0.00002300", result.Price)
}
