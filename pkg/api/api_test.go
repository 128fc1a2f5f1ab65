package api

import (
	"context"
	"encoding/json"
	"io"
	stdlog "log"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/travelmap/pinmap/pkg/pin"
)

func testClient(baseURL string) *Client {
	c := retryablehttp.NewClient()
	c.Logger = stdlog.New(io.Discard, "", 0)
	c.RetryMax = 0
	return &Client{BaseURL: baseURL, HTTP: c}
}

func TestListPins(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/pins" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`[{"_id":"p1","username":"alice","title":"Beach","desc":"Nice","rating":4,"lat":10,"long":20,"createdAt":"2024-01-01"}]`))
	}))
	defer srv.Close()

	pins, err := testClient(srv.URL).ListPins(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	expect := []pin.Pin{{
		ID:        "p1",
		Username:  "alice",
		Title:     "Beach",
		Desc:      "Nice",
		Rating:    4,
		Lat:       10,
		Long:      20,
		CreatedAt: "2024-01-01",
	}}
	if !reflect.DeepEqual(pins, expect) {
		t.Fatalf("unexpected pins.\nwant: %#v\ngot:  %#v", expect, pins)
	}
}

func TestListPinsNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer srv.Close()

	if _, err := testClient(srv.URL).ListPins(context.Background()); err == nil {
		t.Fatal("expected error on non-200 response")
	}
}

func TestCreatePin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/pins" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}

		var req CreatePinRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		if req.Username != "bob" || req.Title != "X" || req.Rating != 3 {
			t.Errorf("unexpected body: %#v", req)
		}

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"_id":"p2","username":"bob","title":"X","desc":"Y","rating":3,"lat":5,"long":5,"createdAt":"2024-02-02"}`))
	}))
	defer srv.Close()

	created, err := testClient(srv.URL).CreatePin(context.Background(), CreatePinRequest{
		Username: "bob", Title: "X", Desc: "Y", Rating: 3, Lat: 5, Long: 5,
	})
	if err != nil {
		t.Fatal(err)
	}
	if created.ID != "p2" || created.CreatedAt != "2024-02-02" {
		t.Fatalf("unexpected created pin: %#v", created)
	}
}

func TestCreatePinFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad", http.StatusBadRequest)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).CreatePin(context.Background(), CreatePinRequest{})
	if err == nil {
		t.Fatal("expected error on non-2xx response")
	}
}

func TestLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/users/login" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}

		var creds map[string]string
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		if creds["username"] != "bob" || creds["password"] != "hunter2" {
			t.Errorf("unexpected credentials: %#v", creds)
		}

		w.Write([]byte(`{"_id":"u1","username":"bob"}`))
	}))
	defer srv.Close()

	name, err := testClient(srv.URL).Login(context.Background(), "bob", "hunter2")
	if err != nil {
		t.Fatal(err)
	}
	if name != "bob" {
		t.Fatalf("username = %q, want bob", name)
	}
}

func TestLoginRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "wrong password", http.StatusUnauthorized)
	}))
	defer srv.Close()

	if _, err := testClient(srv.URL).Login(context.Background(), "bob", "wrong"); err == nil {
		t.Fatal("expected error on rejected login")
	}
}

func TestRegister(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/users/register" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"_id":"u2","username":"carol"}`))
	}))
	defer srv.Close()

	if err := testClient(srv.URL).Register(context.Background(), "carol", "carol@example.com", "hunter2"); err != nil {
		t.Fatal(err)
	}
}
