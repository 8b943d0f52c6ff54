package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient("http://one", time.Second)
	client2 := NewHTTPClient("http://one", time.Second)

	if client1.Client == client2.Client {
		t.Fatal("expected NewHTTPClient to return HTTPClients with different *resty.Client instances")
	}
}

func TestNewHTTPClient_Settings(t *testing.T) {
	client := NewHTTPClient("http://upstream/v1", 3*time.Second)

	if client.BaseURL != "http://upstream/v1" {
		t.Errorf("expected base url 'http://upstream/v1', got '%s'", client.BaseURL)
	}
	if got := client.GetClient().Timeout; got != 3*time.Second {
		t.Errorf("expected timeout 3s, got %s", got)
	}
}

func TestNewHTTPClient_ZeroTimeoutIsUnbounded(t *testing.T) {
	client := NewHTTPClient("http://upstream", 0)

	if got := client.GetClient().Timeout; got != 0 {
		t.Errorf("expected no timeout, got %s", got)
	}
}

func TestNewHTTPClient_UsesBaseURL(t *testing.T) {
	var gotPath, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAccept = r.Header.Get("Accept")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	resp, err := NewHTTPClient(srv.URL, time.Second).R().Get("/flights")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if resp.StatusCode() != http.StatusNoContent {
		t.Errorf("expected status 204, got %d", resp.StatusCode())
	}
	if gotPath != "/flights" {
		t.Errorf("expected path '/flights', got '%s'", gotPath)
	}
	if gotAccept != "application/json" {
		t.Errorf("expected Accept 'application/json', got '%s'", gotAccept)
	}
}
