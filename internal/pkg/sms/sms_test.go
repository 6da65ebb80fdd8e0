package sms

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithinQuietHours(t *testing.T) {
	cases := []struct {
		hour, minute int
		want         bool
	}{
		{21, 59, false},
		{22, 0, true},
		{23, 30, true},
		{0, 0, true},
		{6, 59, true},
		{7, 0, false},
		{12, 0, false},
	}

	for _, tc := range cases {
		at := time.Date(2026, 3, 3, tc.hour, tc.minute, 0, 0, time.UTC)
		assert.Equal(t, tc.want, WithinQuietHours(at), "%02d:%02d", tc.hour, tc.minute)
	}
}

func TestTwilioGatewaySend(t *testing.T) {
	var gotPath, gotTo, gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, r.ParseForm())
		gotTo = r.PostFormValue("To")
		gotBody = r.PostFormValue("Body")

		sid, token, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "AC123", sid)
		assert.Equal(t, "secret", token)

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"sid":"SM1"}`))
	}))
	defer server.Close()

	gateway := NewTwilioGateway("AC123", "secret", "+15550001111")
	gateway.baseURL = server.URL

	err := gateway.Send(context.Background(), "+15551234567", "Your shift starts soon.")
	require.NoError(t, err)
	assert.Equal(t, "/Accounts/AC123/Messages.json", gotPath)
	assert.Equal(t, "+15551234567", gotTo)
	assert.Equal(t, "Your shift starts soon.", gotBody)
}

func TestTwilioGatewayAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"code":21211,"message":"Invalid 'To' phone number"}`))
	}))
	defer server.Close()

	gateway := NewTwilioGateway("AC123", "secret", "+15550001111")
	gateway.baseURL = server.URL

	err := gateway.Send(context.Background(), "bogus", "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "21211")
	assert.Contains(t, err.Error(), "Invalid 'To' phone number")
}

func TestTwilioGatewayOpaqueError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	gateway := NewTwilioGateway("AC123", "secret", "+15550001111")
	gateway.baseURL = server.URL

	err := gateway.Send(context.Background(), "+15551234567", "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestNoopGateway(t *testing.T) {
	assert.NoError(t, NoopGateway{}.Send(context.Background(), "+15551234567", "hello"))
}
