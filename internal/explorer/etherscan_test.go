package explorer

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

const ethAddr = "0xde0B295669a9FD93d5F28D9Ec85E40f4cb697BAe"

func TestEthereumAdapter_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("apikey") != "testkey" {
			t.Fatalf("apikey=%s", q.Get("apikey"))
		}
		w.Header().Set("Content-Type", "application/json")
		switch q.Get("action") {
		case "balance":
			// 2.5 ETH в wei
			_, _ = w.Write([]byte(`{"status":"1","message":"OK","result":"2500000000000000000"}`))
		case "txlist":
			_, _ = w.Write([]byte(`{"status":"1","message":"OK","result":[{},{},{}]}`))
		default:
			t.Fatalf("action=%s", q.Get("action"))
		}
	}))
	defer srv.Close()

	a := &EthereumAdapter{APIKey: "testkey", BaseURL: srv.URL, HTTPClient: srv.Client()}
	rep, err := a.Fetch(context.Background(), ethAddr)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if rep.Balance.String() != "2.5" {
		t.Fatalf("balance=%s", rep.Balance)
	}
	if rep.TxCount != 3 || !rep.HasTxCount {
		t.Fatalf("tx_count=%d", rep.TxCount)
	}
}

func TestEthereumAdapter_Fetch_NoAPIKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("request must not be made without api key")
	}))
	defer srv.Close()

	a := &EthereumAdapter{BaseURL: srv.URL, HTTPClient: srv.Client()}
	_, err := a.Fetch(context.Background(), ethAddr)

	var le *LookupError
	if !errors.As(err, &le) || le.Kind != MissingCredential {
		t.Fatalf("err=%v", err)
	}
}

func TestEthereumAdapter_Fetch_TxListFailureDegradesToZero(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("action") {
		case "balance":
			_, _ = w.Write([]byte(`{"status":"1","message":"OK","result":"1000000000000000000"}`))
		case "txlist":
			http.Error(w, "tilt", http.StatusBadGateway)
		}
	}))
	defer srv.Close()

	a := &EthereumAdapter{APIKey: "testkey", BaseURL: srv.URL, HTTPClient: srv.Client()}
	rep, err := a.Fetch(context.Background(), ethAddr)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if rep.Balance.String() != "1" {
		t.Fatalf("balance=%s", rep.Balance)
	}
	// упавший txlist не должен ронять весь lookup
	if rep.TxCount != 0 {
		t.Fatalf("tx_count=%d", rep.TxCount)
	}
}

func TestEthereumAdapter_Fetch_ProviderPayloadError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"0","message":"NOTOK","result":"Max rate limit reached"}`))
	}))
	defer srv.Close()

	a := &EthereumAdapter{APIKey: "testkey", BaseURL: srv.URL, HTTPClient: srv.Client()}
	_, err := a.Fetch(context.Background(), ethAddr)

	var le *LookupError
	if !errors.As(err, &le) || le.Kind != MalformedResponse {
		t.Fatalf("err=%v", err)
	}
	if le.Msg != "NOTOK" {
		t.Fatalf("msg=%q", le.Msg)
	}
}

func TestTetherERC20Adapter_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("action") != "tokenbalance" {
			t.Fatalf("action=%s", q.Get("action"))
		}
		if q.Get("contractaddress") != TetherERC20Contract {
			t.Fatalf("contractaddress=%s", q.Get("contractaddress"))
		}
		// 12.345678 USDT
		_, _ = w.Write([]byte(`{"status":"1","message":"OK","result":"12345678"}`))
	}))
	defer srv.Close()

	a := &TetherERC20Adapter{APIKey: "testkey", BaseURL: srv.URL, HTTPClient: srv.Client()}
	rep, err := a.Fetch(context.Background(), ethAddr)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if rep.Balance.String() != "12.345678" {
		t.Fatalf("balance=%s", rep.Balance)
	}
	if rep.HasTxStats || rep.HasTxCount {
		t.Fatalf("token report must carry balance only")
	}
}

func TestTetherERC20Adapter_Fetch_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"0","message":"NOTOK","result":"Invalid address format"}`))
	}))
	defer srv.Close()

	a := &TetherERC20Adapter{APIKey: "testkey", BaseURL: srv.URL, HTTPClient: srv.Client()}
	_, err := a.Fetch(context.Background(), ethAddr)

	var le *LookupError
	if !errors.As(err, &le) || le.Kind != MalformedResponse || le.Msg != "NOTOK" {
		t.Fatalf("err=%v", err)
	}
}
