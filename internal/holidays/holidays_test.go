package holidays

import (
	"testing"

	"github.com/Davoodeh/jcal/internal/date"
)

func TestParse(t *testing.T) {
	t.Parallel()

	body := []byte(`{
		"status": true,
		"result": {
			"1": {
				"1": {"solar": {"year": 1404, "month": 1, "day": 1},
				      "event": ["Nowruz"], "holiday": true},
				"5": {"solar": {"year": 1404, "month": 1, "day": 5},
				      "event": ["workday"], "holiday": false}
			},
			"11": {
				"22": {"solar": {"year": 1404, "month": 11, "day": 22},
				       "event": ["Revolution anniversary", "public holiday"],
				       "holiday": true},
				"23": {"solar": {"year": 1404, "month": 11, "day": 23},
				       "event": [], "holiday": true}
			}
		}
	}`)
	cal, err := parse(body)
	if err != nil {
		t.Fatal(err)
	}
	if len(cal) != 3 {
		t.Fatalf("parsed %d entries, want 3", len(cal))
	}
	if got := cal[Key(1404, 1, 1)]; got != "Nowruz" {
		t.Errorf("Nowruz entry = %q", got)
	}
	if got := cal[Key(1404, 11, 22)]; got != "Revolution anniversary; public holiday" {
		t.Errorf("joined events = %q", got)
	}
	if got := cal[Key(1404, 11, 23)]; got != "Holiday" {
		t.Errorf("empty event fallback = %q", got)
	}
	if _, ok := cal[Key(1404, 1, 5)]; ok {
		t.Error("non-holiday included")
	}
}

func TestParseRejectsFailureStatus(t *testing.T) {
	t.Parallel()

	if _, err := parse([]byte(`{"status": false, "result": {}}`)); err == nil {
		t.Error("expected an error for a failed status")
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	t.Parallel()

	if _, err := parse([]byte("not json")); err == nil {
		t.Error("expected a decode error")
	}
}

func TestLookupConvertsCalendars(t *testing.T) {
	t.Parallel()

	cal := Calendar{Key(1404, 1, 1): "Nowruz"}
	g := date.New(date.Gregorian, 2025, 3, 21) // Farvardin 1, 1404
	if got, ok := cal.Lookup(g); !ok || got != "Nowruz" {
		t.Errorf("Lookup = %q, %v", got, ok)
	}
	if _, ok := cal.Lookup(g.WithDay(25)); ok {
		t.Error("unexpected holiday")
	}
}

func TestCacheRoundTrip(t *testing.T) {
	dir := t.TempDir()
	orig := cacheDir
	cacheDir = func() (string, error) { return dir, nil }
	defer func() { cacheDir = orig }()

	want := Calendar{Key(1404, 1, 1): "Nowruz"}
	if err := writeCache(1404, want); err != nil {
		t.Fatal(err)
	}
	got, err := readCache(1404)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[Key(1404, 1, 1)] != "Nowruz" {
		t.Errorf("cache round trip = %v", got)
	}

	if _, err := readCache(1405); err == nil {
		t.Error("missing cache year should fail")
	}
}
