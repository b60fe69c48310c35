package payment

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestInitiateSessionSuccess(t *testing.T) {
	var gotForm map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parse form: %v", err)
		}
		gotForm = map[string]string{
			"store_id":     r.PostForm.Get("store_id"),
			"total_amount": r.PostForm.Get("total_amount"),
			"tran_id":      r.PostForm.Get("tran_id"),
			"currency":     r.PostForm.Get("currency"),
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"SUCCESS","GatewayPageURL":"https://pay.example/session/abc"}`))
	}))
	defer server.Close()

	gw := NewSSLCommerzGateway(SSLCommerzConfig{
		StoreID:       "store1",
		StorePassword: "pass1",
		Endpoint:      server.URL,
	})

	url, err := gw.InitiateSession(context.Background(), SessionRequest{
		Amount:        149.99,
		Currency:      "USD",
		TransactionID: "tran-1",
	})
	if err != nil {
		t.Fatalf("initiate error: %v", err)
	}
	if url != "https://pay.example/session/abc" {
		t.Fatalf("unexpected url: %q", url)
	}
	if gotForm["store_id"] != "store1" || gotForm["tran_id"] != "tran-1" {
		t.Fatalf("unexpected form: %+v", gotForm)
	}
	if gotForm["total_amount"] != "149.99" {
		t.Fatalf("unexpected amount: %q", gotForm["total_amount"])
	}
}

func TestInitiateSessionRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"FAILED","failedreason":"invalid store credentials"}`))
	}))
	defer server.Close()

	gw := NewSSLCommerzGateway(SSLCommerzConfig{Endpoint: server.URL})
	_, err := gw.InitiateSession(context.Background(), SessionRequest{Amount: 10, Currency: "USD", TransactionID: "t"})
	if err == nil {
		t.Fatalf("expected error for rejected session")
	}
	if !strings.Contains(err.Error(), "invalid store credentials") {
		t.Fatalf("expected failedreason in error, got %v", err)
	}
}

func TestInitiateSessionServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	gw := NewSSLCommerzGateway(SSLCommerzConfig{Endpoint: server.URL})
	if _, err := gw.InitiateSession(context.Background(), SessionRequest{Amount: 10, Currency: "USD", TransactionID: "t"}); err == nil {
		t.Fatalf("expected error for http 500")
	}
}

func signParams(t *testing.T, password string, keys []string, params map[string]string) string {
	t.Helper()
	pairs := make([]string, 0, len(keys)+1)
	for _, key := range keys {
		pairs = append(pairs, key+"="+params[key])
	}
	passwordHash := md5.Sum([]byte(password))
	pairs = append(pairs, "store_passwd="+hex.EncodeToString(passwordHash[:]))
	sign := md5.Sum([]byte(strings.Join(pairs, "&")))
	return hex.EncodeToString(sign[:])
}

func TestVerifySignatureValid(t *testing.T) {
	gw := NewSSLCommerzGateway(SSLCommerzConfig{StorePassword: "pass1"})

	params := map[string]string{
		"tran_id":    "tran-1",
		"amount":     "149.99",
		"status":     "VALID",
		"verify_key": "amount,status,tran_id",
	}
	params["verify_sign"] = signParams(t, "pass1", []string{"amount", "status", "tran_id"}, params)

	if !gw.VerifySignature(params) {
		t.Fatalf("expected valid signature")
	}
}

func TestVerifySignatureTampered(t *testing.T) {
	gw := NewSSLCommerzGateway(SSLCommerzConfig{StorePassword: "pass1"})

	params := map[string]string{
		"tran_id":    "tran-1",
		"amount":     "149.99",
		"status":     "VALID",
		"verify_key": "amount,status,tran_id",
	}
	params["verify_sign"] = signParams(t, "pass1", []string{"amount", "status", "tran_id"}, params)
	params["amount"] = "1.00"

	if gw.VerifySignature(params) {
		t.Fatalf("expected tampered signature to be rejected")
	}
}

func TestVerifySignatureMissing(t *testing.T) {
	gw := NewSSLCommerzGateway(SSLCommerzConfig{StorePassword: "pass1"})
	if gw.VerifySignature(map[string]string{"tran_id": "tran-1"}) {
		t.Fatalf("expected missing signature to be rejected")
	}
}
