package whatsapp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"dealership-api/internal/common/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSend_Success(t *testing.T) {
	var got map[string]string
	gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		got = map[string]string{
			"apikey":      q.Get("apikey"),
			"senderid":    q.Get("senderid"),
			"destination": q.Get("destination"),
			"message":     q.Get("message"),
			"route":       q.Get("route"),
		}
		w.Write([]byte(`{"status":"success","data":{"message_id":"wp-1001"}}`))
	}))
	defer gateway.Close()

	client := NewClient(gateway.URL, "key-123", "DEALER", logger.NewTestLogger(t))

	err := client.Send(context.Background(), "9876543210", "Your booking BK-482913 is confirmed")

	require.NoError(t, err)
	assert.Equal(t, "key-123", got["apikey"])
	assert.Equal(t, "DEALER", got["senderid"])
	assert.Equal(t, "+919876543210", got["destination"])
	assert.Equal(t, "wp", got["route"])
	assert.Contains(t, got["message"], "BK-482913")
}

func TestSend_GatewayReportsFailure(t *testing.T) {
	gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"failed","message":"invalid destination"}`))
	}))
	defer gateway.Close()

	client := NewClient(gateway.URL, "key-123", "DEALER", logger.NewTestLogger(t))

	err := client.Send(context.Background(), "9876543210", "hello")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid destination")
}

func TestSend_NonJSONSuccessBody(t *testing.T) {
	gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Message sent successfully"))
	}))
	defer gateway.Close()

	client := NewClient(gateway.URL, "key-123", "DEALER", logger.NewTestLogger(t))

	assert.NoError(t, client.Send(context.Background(), "9876543210", "hello"))
}

func TestSend_HTTPError(t *testing.T) {
	gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer gateway.Close()

	client := NewClient(gateway.URL, "key-123", "DEALER", logger.NewTestLogger(t))

	assert.Error(t, client.Send(context.Background(), "9876543210", "hello"))
}

func TestNormalizeNumber(t *testing.T) {
	assert.Equal(t, "+919876543210", normalizeNumber("9876543210"))
	assert.Equal(t, "+919876543210", normalizeNumber("+919876543210"))
	assert.Equal(t, "+919876543210", normalizeNumber("919876543210"))
}
