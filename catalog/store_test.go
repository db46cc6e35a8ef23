package catalog

import (
	"testing"

	"github.com/thaisring/ticket-show-world/model"
)

func TestResolve_OrderAndKinds(t *testing.T) {
	store := Sample()

	res := store.Resolve("premiere-0")
	if res.Kind != KindPremiere {
		t.Fatalf("expected premiere, got kind %d", res.Kind)
	}
	if res.Premiere.Title != "Filmlovers!" || res.PremiereIndex != 0 {
		t.Fatalf("unexpected premiere resolution: %+v", res)
	}

	res = store.Resolve("show-improv-jam")
	if res.Kind != KindUserShow {
		t.Fatalf("expected community show, got kind %d", res.Kind)
	}
	if res.Show.Title != "Saturday Improv Jam" {
		t.Fatalf("unexpected show resolution: %+v", res.Show)
	}

	res = store.Resolve("evt1")
	if res.Kind != KindEvent {
		t.Fatalf("expected event, got kind %d", res.Kind)
	}
	if res.Event.Title != "Cosmic Adventure" {
		t.Fatalf("unexpected event resolution: %+v", res.Event)
	}

	if res := store.Resolve("premiere-99"); res.Kind != KindNotFound {
		t.Fatalf("expected out-of-range premiere index to be not found, got kind %d", res.Kind)
	}
	if res := store.Resolve("no-such-id"); res.Kind != KindNotFound {
		t.Fatalf("expected unknown id to be not found, got kind %d", res.Kind)
	}
}

func TestResolve_PendingShowInvisible(t *testing.T) {
	store := Sample()
	if res := store.Resolve("show-pottery-workshop"); res.Kind != KindNotFound {
		t.Fatalf("expected pending show to be invisible, got kind %d", res.Kind)
	}
	for _, show := range store.ApprovedShows() {
		if show.Status != model.ShowApproved {
			t.Fatalf("expected only approved shows, got %s with status %s", show.Id, show.Status)
		}
	}
	if got := len(store.ApprovedShows()); got != 2 {
		t.Fatalf("expected 2 approved shows, got %d", got)
	}
}

func TestNew_RejectsCollidingIds(t *testing.T) {
	event := model.Event{Id: "dup", Title: "Event"}
	show := model.UserShow{Id: "dup", Title: "Show", Status: model.ShowApproved}
	if _, err := New([]model.Event{event}, []model.UserShow{show}, nil, nil); err == nil {
		t.Fatal("expected error for event/show id collision")
	}

	premiereLike := model.Event{Id: "premiere-3", Title: "Sneaky"}
	if _, err := New([]model.Event{premiereLike}, nil, nil, nil); err == nil {
		t.Fatal("expected error for event id inside the premiere namespace")
	}

	blank := model.UserShow{Id: "  ", Status: model.ShowApproved}
	if _, err := New(nil, []model.UserShow{blank}, nil, nil); err == nil {
		t.Fatal("expected error for blank show id")
	}
}

func TestMarkBooked_ThroughStore(t *testing.T) {
	store := Sample()

	if err := store.MarkBooked("evt1", 0, []string{"A2", "B3"}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	event, ok := store.Event("evt1")
	if !ok {
		t.Fatal("expected evt1 to exist")
	}
	seats := event.Showtimes[0].Seats
	for _, id := range []string{"A2", "B3", "B2", "C5", "A1"} {
		if status, _ := seats.StatusOf(id); status != model.SeatBooked {
			t.Fatalf("expected %s booked, got %s", id, status)
		}
	}
	if seats.Available() != 35 {
		t.Fatalf("expected 35 available, got %d", seats.Available())
	}

	// The second showtime is untouched.
	if status, _ := event.Showtimes[1].Seats.StatusOf("A2"); status != model.SeatAvailable {
		t.Fatalf("expected A2 in showtime 1 available, got %s", status)
	}

	if err := store.MarkBooked("missing", 0, []string{"A1"}); err == nil {
		t.Fatal("expected error for unknown event")
	}
	if err := store.MarkBooked("evt1", 9, []string{"A1"}); err == nil {
		t.Fatal("expected error for out-of-range showtime")
	}
}

func TestSample_Evt1Grid(t *testing.T) {
	store := Sample()
	event, ok := store.Event("evt1")
	if !ok {
		t.Fatal("expected evt1 in the sample catalog")
	}
	seats := event.Showtimes[0].Seats
	if seats.Rows() != 5 || seats.Cols() != 8 {
		t.Fatalf("expected 5x8 grid, got %dx%d", seats.Rows(), seats.Cols())
	}
	if seats.Available() != 37 {
		t.Fatalf("expected 37 available, got %d", seats.Available())
	}
}

func TestPremiereId_RoundTrip(t *testing.T) {
	id := PremiereId(2)
	if id != "premiere-2" {
		t.Fatalf("unexpected premiere id %q", id)
	}
	index, ok := parsePremiereId(id)
	if !ok || index != 2 {
		t.Fatalf("expected index 2, got %d ok=%v", index, ok)
	}
	if _, ok := parsePremiereId("premiere-x"); ok {
		t.Fatal("expected non-numeric suffix to be rejected")
	}
	if _, ok := parsePremiereId("premiere--1"); ok {
		t.Fatal("expected negative index to be rejected")
	}
}
