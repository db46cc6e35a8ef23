package store

import (
	"testing"
	"time"
)

func setTestDirs(t *testing.T) {
	t.Helper()
	root := t.TempDir()
	t.Setenv("HOME", root)
	t.Setenv("XDG_CONFIG_HOME", root)
	t.Setenv("XDG_CACHE_HOME", root)
}

func TestSession_RoundTrip(t *testing.T) {
	setTestDirs(t)

	if _, ok, err := LoadSession(); err != nil || ok {
		t.Fatalf("expected no session, got ok=%v err=%v", ok, err)
	}

	session := Session{Name: "Asha", Email: "asha@example.com", SignedInAt: time.Now()}
	if err := SaveSession(session); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	loaded, ok, err := LoadSession()
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !ok || loaded.Name != "Asha" || loaded.Email != "asha@example.com" {
		t.Fatalf("unexpected session: ok=%v %+v", ok, loaded)
	}

	if err := ClearSession(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if _, ok, _ := LoadSession(); ok {
		t.Fatal("expected session cleared")
	}
	// Clearing twice is fine.
	if err := ClearSession(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestSaveSession_RequiresName(t *testing.T) {
	setTestDirs(t)
	if err := SaveSession(Session{Name: "  "}); err == nil {
		t.Fatal("expected error for blank name")
	}
}

func TestRememberView_DedupesAndCaps(t *testing.T) {
	setTestDirs(t)

	if err := RememberView(RecentView{ID: "evt1", Title: "Cosmic Adventure", Kind: "event"}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if err := RememberView(RecentView{ID: "show-1", Title: "Open Mic", Kind: "show"}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if err := RememberView(RecentView{ID: "evt1", Title: "Cosmic Adventure", Kind: "event"}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	views, err := LoadRecentViews()
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("expected 2 views, got %+v", views)
	}
	if views[0].ID != "evt1" || views[1].ID != "show-1" {
		t.Fatalf("expected evt1 promoted to head, got %+v", views)
	}

	for i := 0; i < 20; i++ {
		if err := RememberView(RecentView{ID: string(rune('a' + i)), Title: "x"}); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
	}
	views, _ = LoadRecentViews()
	if len(views) != maxRecentViews {
		t.Fatalf("expected history capped at %d, got %d", maxRecentViews, len(views))
	}

	if err := RememberView(RecentView{ID: " "}); err == nil {
		t.Fatal("expected error for blank id")
	}
}

func TestCatalogCache_RoundTrip(t *testing.T) {
	setTestDirs(t)

	if _, fresh, err := LoadCatalogCache(); err != nil || fresh {
		t.Fatalf("expected empty cache, got fresh=%v err=%v", fresh, err)
	}

	snapshot := CatalogSnapshot{}
	if err := SaveCatalogCache(snapshot); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	_, fresh, err := LoadCatalogCache()
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !fresh {
		t.Fatal("expected freshly saved cache to be fresh")
	}
}
