package payment

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Gateway endpoints
const (
	sandboxEndpoint = "https://sandbox.sslcommerz.com/gwprocess/v4/api.php"
	liveEndpoint    = "https://securepay.sslcommerz.com/gwprocess/v4/api.php"
)

// SessionRequest carries the fields needed to open a gateway payment session
type SessionRequest struct {
	Amount        float64
	Currency      string
	TransactionID string
	ProductName   string
	CustomerName  string
	CustomerEmail string
	SuccessURL    string
	FailURL       string
	CancelURL     string
	IPNURL        string
}

// Gateway is the narrow payment-gateway contract the order flow depends on
type Gateway interface {
	// InitiateSession opens a payment session and returns the page the
	// customer is redirected to
	InitiateSession(ctx context.Context, req SessionRequest) (string, error)
	// VerifySignature checks the verify_sign a gateway callback carries
	VerifySignature(params map[string]string) bool
}

// SSLCommerzConfig configures the SSLCommerz client
type SSLCommerzConfig struct {
	StoreID       string
	StorePassword string
	Sandbox       bool
	// Endpoint overrides the gateway URL, used in tests
	Endpoint string
	// HTTPClient overrides the default client
	HTTPClient *http.Client
}

// SSLCommerzGateway talks to the SSLCommerz session API over HTTP
type SSLCommerzGateway struct {
	storeID       string
	storePassword string
	endpoint      string
	client        *http.Client
}

// NewSSLCommerzGateway creates a gateway client for the configured store
func NewSSLCommerzGateway(cfg SSLCommerzConfig) *SSLCommerzGateway {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		if cfg.Sandbox {
			endpoint = sandboxEndpoint
		} else {
			endpoint = liveEndpoint
		}
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}

	return &SSLCommerzGateway{
		storeID:       cfg.StoreID,
		storePassword: cfg.StorePassword,
		endpoint:      endpoint,
		client:        client,
	}
}

// sessionResponse is the subset of the gateway response the flow needs
type sessionResponse struct {
	Status         string `json:"status"`
	FailedReason   string `json:"failedreason"`
	GatewayPageURL string `json:"GatewayPageURL"`
}

// InitiateSession posts the session form and returns the GatewayPageURL
func (g *SSLCommerzGateway) InitiateSession(ctx context.Context, req SessionRequest) (string, error) {
	form := url.Values{}
	form.Set("store_id", g.storeID)
	form.Set("store_passwd", g.storePassword)
	form.Set("total_amount", fmt.Sprintf("%.2f", req.Amount))
	form.Set("currency", req.Currency)
	form.Set("tran_id", req.TransactionID)
	form.Set("success_url", req.SuccessURL)
	form.Set("fail_url", req.FailURL)
	form.Set("cancel_url", req.CancelURL)
	form.Set("ipn_url", req.IPNURL)
	form.Set("product_name", req.ProductName)
	form.Set("product_category", "general")
	form.Set("product_profile", "general")
	form.Set("shipping_method", "NO")
	form.Set("cus_name", req.CustomerName)
	form.Set("cus_email", req.CustomerEmail)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to build gateway request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gateway returned status %d", resp.StatusCode)
	}

	var session sessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return "", fmt.Errorf("failed to decode gateway response: %w", err)
	}

	if session.Status != "SUCCESS" || session.GatewayPageURL == "" {
		if session.FailedReason != "" {
			return "", fmt.Errorf("gateway rejected session: %s", session.FailedReason)
		}
		return "", fmt.Errorf("gateway response missing GatewayPageURL")
	}

	return session.GatewayPageURL, nil
}

// VerifySignature checks the verify_sign posted by a gateway callback.
// The sign is the MD5 hex of the verify_key fields in their listed order,
// joined as key=value pairs, with the MD5 of the store password appended.
func (g *SSLCommerzGateway) VerifySignature(params map[string]string) bool {
	verifySign := params["verify_sign"]
	verifyKey := params["verify_key"]
	if verifySign == "" || verifyKey == "" {
		return false
	}

	keys := strings.Split(verifyKey, ",")
	pairs := make([]string, 0, len(keys)+1)
	for _, key := range keys {
		pairs = append(pairs, key+"="+params[key])
	}

	passwordHash := md5.Sum([]byte(g.storePassword))
	pairs = append(pairs, "store_passwd="+hex.EncodeToString(passwordHash[:]))

	signHash := md5.Sum([]byte(strings.Join(pairs, "&")))
	return hex.EncodeToString(signHash[:]) == strings.ToLower(verifySign)
}
