package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/thaisring/ticket-show-world/model"
)

func TestGetJSON_Non2xxReturnsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client())
	client.maxAttempts = 1

	var out map[string]any
	err := client.getJSON(context.Background(), server.URL+"/fail", &out)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "500") || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGetJSON_RetriesTransientServerErrors(t *testing.T) {
	var attempts int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		current := atomic.AddInt32(&attempts, 1)
		if current < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("retry later"))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok": true}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client())
	client.maxAttempts = 3
	client.retryBase = time.Millisecond
	client.retryCap = 2 * time.Millisecond

	var out map[string]any
	if err := client.getJSON(context.Background(), server.URL+"/retry", &out); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if attempts != 3 {
		t.Fatalf("expected 3 attempts, got %d", attempts)
	}
	if ok, _ := out["ok"].(bool); !ok {
		t.Fatalf("unexpected payload: %+v", out)
	}
}

func TestGetJSON_DoesNotRetryOnClientErrors(t *testing.T) {
	var attempts int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("bad request"))
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client())
	client.maxAttempts = 3
	client.retryBase = time.Millisecond
	client.retryCap = 2 * time.Millisecond

	var out map[string]any
	if err := client.getJSON(context.Background(), server.URL+"/bad", &out); err == nil {
		t.Fatal("expected error")
	}
	if attempts != 1 {
		t.Fatalf("expected 1 attempt, got %d", attempts)
	}
}

func TestIsNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client())
	client.maxAttempts = 1

	_, err := client.GetPremieres(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestFetchStore_AssemblesCatalog(t *testing.T) {
	events := []model.Event{{
		Id:    "evt1",
		Title: "Cosmic Adventure",
		Showtimes: []model.Showtime{{
			Time:  "3:00 PM",
			Venue: "Galaxy Hall",
			Seats: mustSeats(2, 2, []string{"A1"}),
		}},
	}}
	shows := []model.UserShow{{Id: "show-1", Title: "Open Mic", Status: model.ShowApproved, TicketPrice: 199}}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/events":
			_ = json.NewEncoder(w).Encode(events)
		case "/shows":
			if r.URL.Query().Get("status") != "approved" {
				t.Errorf("expected status=approved query, got %q", r.URL.RawQuery)
			}
			_ = json.NewEncoder(w).Encode(shows)
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client())
	client.maxAttempts = 1

	store, err := client.FetchStore(context.Background())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(store.Events()) != 1 || store.Events()[0].Id != "evt1" {
		t.Fatalf("unexpected events: %+v", store.Events())
	}
	if status, _ := store.Events()[0].Showtimes[0].Seats.StatusOf("A1"); status != model.SeatBooked {
		t.Fatalf("expected fetched seat map to keep booked status, got %s", status)
	}
	if len(store.ApprovedShows()) != 1 {
		t.Fatalf("unexpected shows: %+v", store.ApprovedShows())
	}
	if len(store.Premieres()) != 0 {
		t.Fatalf("expected missing premieres endpoint to be tolerated, got %+v", store.Premieres())
	}
}
