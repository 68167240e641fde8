package portone

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/refitlab/refitmarket/internal/adapter/config"
	"github.com/refitlab/refitmarket/internal/core/domain"
	"go.uber.org/zap"
)

// Client talks to the Portone payment gateway. Gateway latency is
// unbounded from our point of view, so every call carries the request
// context plus a hard client timeout, and callers treat any error as a
// rejection.
type Client struct {
	host      string
	apiKey    string
	apiSecret string
	client    *http.Client
	logger    *zap.Logger
}

const defaultTimeout = 10 * time.Second

func NewClient(cfg *config.Portone, log *zap.Logger) (*Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		host:      cfg.Host,
		apiKey:    cfg.APIKey,
		apiSecret: cfg.APISecret,
		client:    &http.Client{Timeout: timeout},
		logger:    log,
	}, nil
}

type tokenResponse struct {
	Response struct {
		AccessToken string `json:"access_token"`
	} `json:"response"`
}

type paymentResponse struct {
	Response struct {
		ImpUID      string `json:"imp_uid"`
		MerchantUID string `json:"merchant_uid"`
		Status      string `json:"status"`
		Amount      int64  `json:"amount"`
	} `json:"response"`
}

// Verify asks the gateway for the payment behind externalRef and checks
// it is paid, for the expected merchant reference and for exactly the
// expected amount.
func (c *Client) Verify(ctx context.Context, externalRef string, merchantRef string, amount int64) (bool, error) {
	if externalRef == "" || merchantRef == "" {
		return false, nil
	}
	if amount <= 0 {
		return false, nil
	}

	token, err := c.accessToken(ctx)
	if err != nil {
		return false, fmt.Errorf("portone token: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.host+"/payments/"+externalRef, http.NoBody)
	if err != nil {
		return false, err
	}
	req.Header.Set("Authorization", token)
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("portone payment lookup: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("unexpected status for payment lookup",
			zap.String("external_ref", externalRef), zap.Int("status", resp.StatusCode))
		return false, nil
	}

	var result paymentResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return false, fmt.Errorf("portone response decode: %w", err)
	}

	payment := result.Response
	if payment.Status != string(domain.PaymentStatusPaid) {
		c.logger.Warn("payment not in paid status",
			zap.String("external_ref", externalRef), zap.String("status", payment.Status))
		return false, nil
	}
	if payment.MerchantUID != merchantRef {
		c.logger.Warn("merchant reference mismatch",
			zap.String("external_ref", externalRef),
			zap.String("expected", merchantRef), zap.String("got", payment.MerchantUID))
		return false, nil
	}
	if payment.Amount != amount {
		c.logger.Warn("payment amount mismatch",
			zap.String("external_ref", externalRef),
			zap.Int64("expected", amount), zap.Int64("got", payment.Amount))
		return false, nil
	}

	return true, nil
}

// Cancel voids the payment behind externalRef. Only a confirmed 200
// counts as canceled.
func (c *Client) Cancel(ctx context.Context, externalRef string, reason string) (bool, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return false, fmt.Errorf("portone token: %w", err)
	}

	body, err := json.Marshal(map[string]string{"reason": reason})
	if err != nil {
		return false, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.host+"/payments/"+externalRef+"/cancel", bytes.NewReader(body))
	if err != nil {
		return false, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", token)
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("portone cancel: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("unexpected status for payment cancel",
			zap.String("external_ref", externalRef), zap.Int("status", resp.StatusCode))
		return false, nil
	}

	return true, nil
}

func (c *Client) accessToken(ctx context.Context) (string, error) {
	body, err := json.Marshal(map[string]string{
		"imp_key":    c.apiKey,
		"imp_secret": c.apiSecret,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.host+"/users/getToken", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("bad response %v for token request", resp.StatusCode)
	}

	var result tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("error on token decode: %w", err)
	}
	if result.Response.AccessToken == "" {
		return "", fmt.Errorf("empty access token in response")
	}

	return result.Response.AccessToken, nil
}
