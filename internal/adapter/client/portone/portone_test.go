package portone_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/refitlab/refitmarket/internal/adapter/client/portone"
	"github.com/refitlab/refitmarket/internal/adapter/config"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type gatewayPayment struct {
	ImpUID      string `json:"imp_uid"`
	MerchantUID string `json:"merchant_uid"`
	Status      string `json:"status"`
	Amount      int64  `json:"amount"`
}

// gatewayStub serves the token endpoint plus one canned payment.
func gatewayStub(t *testing.T, payment gatewayPayment, lookupStatus int) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/users/getToken", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		var creds map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "key", creds["imp_key"])
		assert.Equal(t, "secret", creds["imp_secret"])
		_ = json.NewEncoder(w).Encode(map[string]any{
			"response": map[string]string{"access_token": "token-1"},
		})
	})
	mux.HandleFunc("/payments/"+payment.ImpUID, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "token-1", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		if lookupStatus != http.StatusOK {
			w.WriteHeader(lookupStatus)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"response": payment})
	})
	return httptest.NewServer(mux)
}

func newTestClient(t *testing.T, host string) *portone.Client {
	t.Helper()
	logger, _ := zap.NewProduction()
	client, err := portone.NewClient(&config.Portone{
		Host:      host,
		APIKey:    "key",
		APISecret: "secret",
		Timeout:   time.Second,
	}, logger)
	assert.NoError(t, err)
	return client
}

func TestClient_Verify(t *testing.T) {
	paid := gatewayPayment{ImpUID: "imp_1", MerchantUID: "ord_1", Status: "paid", Amount: 17000}

	tests := []struct {
		name         string
		payment      gatewayPayment
		lookupStatus int
		externalRef  string
		merchantRef  string
		amount       int64
		expOK        bool
		expError     bool
	}{
		{
			name:         "verified",
			payment:      paid,
			lookupStatus: http.StatusOK,
			externalRef:  "imp_1", merchantRef: "ord_1", amount: 17000,
			expOK: true,
		},
		{
			name:         "amount mismatch",
			payment:      paid,
			lookupStatus: http.StatusOK,
			externalRef:  "imp_1", merchantRef: "ord_1", amount: 16000,
			expOK: false,
		},
		{
			name:         "merchant reference mismatch",
			payment:      paid,
			lookupStatus: http.StatusOK,
			externalRef:  "imp_1", merchantRef: "ord_2", amount: 17000,
			expOK: false,
		},
		{
			name:         "not in paid status",
			payment:      gatewayPayment{ImpUID: "imp_1", MerchantUID: "ord_1", Status: "ready", Amount: 17000},
			lookupStatus: http.StatusOK,
			externalRef:  "imp_1", merchantRef: "ord_1", amount: 17000,
			expOK: false,
		},
		{
			name:         "unknown payment",
			payment:      paid,
			lookupStatus: http.StatusNotFound,
			externalRef:  "imp_1", merchantRef: "ord_1", amount: 17000,
			expOK: false,
		},
		{
			name:         "empty references rejected locally",
			payment:      paid,
			lookupStatus: http.StatusOK,
			externalRef:  "", merchantRef: "ord_1", amount: 17000,
			expOK: false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			server := gatewayStub(t, test.payment, test.lookupStatus)
			defer server.Close()

			client := newTestClient(t, server.URL)
			ok, err := client.Verify(context.Background(), test.externalRef, test.merchantRef, test.amount)

			if test.expError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, test.expOK, ok)
		})
	}
}

func TestClient_VerifyGatewayUnreachable(t *testing.T) {
	server := gatewayStub(t, gatewayPayment{ImpUID: "imp_1"}, http.StatusOK)
	server.Close()

	client := newTestClient(t, server.URL)
	ok, err := client.Verify(context.Background(), "imp_1", "ord_1", 17000)

	assert.Error(t, err)
	assert.False(t, ok)
}

func TestClient_Cancel(t *testing.T) {
	tests := []struct {
		name         string
		cancelStatus int
		expOK        bool
	}{
		{name: "canceled", cancelStatus: http.StatusOK, expOK: true},
		{name: "gateway refuses", cancelStatus: http.StatusConflict, expOK: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			mux := http.NewServeMux()
			mux.HandleFunc("/users/getToken", func(w http.ResponseWriter, r *http.Request) {
				_ = json.NewEncoder(w).Encode(map[string]any{
					"response": map[string]string{"access_token": "token-1"},
				})
			})
			mux.HandleFunc("/payments/imp_1/cancel", func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "token-1", r.Header.Get("Authorization"))
				var body map[string]string
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				assert.Equal(t, "customer request", body["reason"])
				w.WriteHeader(test.cancelStatus)
			})
			server := httptest.NewServer(mux)
			defer server.Close()

			client := newTestClient(t, server.URL)
			ok, err := client.Cancel(context.Background(), "imp_1", "customer request")

			assert.NoError(t, err)
			assert.Equal(t, test.expOK, ok)
		})
	}
}
