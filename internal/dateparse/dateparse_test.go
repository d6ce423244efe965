package dateparse

import (
	"testing"
	"time"

	"github.com/Davoodeh/jcal/internal/date"
)

func TestMonth(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		sys  date.System
		want int
		ok   bool
	}{
		{"11", date.Gregorian, 11, true},
		{"nov", date.Gregorian, 11, true},
		{"NOVEMBER", date.Gregorian, 11, true},
		{"n", date.Gregorian, 11, true}, // unique among Gregorian months
		{"ju", date.Gregorian, 0, false},
		{"jun", date.Gregorian, 6, true},
		{"ma", date.Gregorian, 0, false}, // March vs May
		{"mar", date.Gregorian, 3, true},
		{"13", date.Gregorian, 0, false},
		{"0", date.Gregorian, 0, false},
		{"aban", date.Jalali, 8, true},
		{"ab", date.Jalali, 8, true},
		{"farv", date.Jalali, 1, true},
		{"m", date.Jalali, 0, false}, // Mordad vs Mehr
		{"mo", date.Jalali, 5, true},
		{"", date.Gregorian, 0, false},
	}
	for _, c := range cases {
		got, err := Month(c.in, c.sys)
		if (err == nil) != c.ok {
			t.Errorf("Month(%q, %v) err = %v, want ok=%v", c.in, c.sys, err, c.ok)
			continue
		}
		if c.ok && got != c.want {
			t.Errorf("Month(%q, %v) = %d, want %d", c.in, c.sys, got, c.want)
		}
	}
}

func TestWeekday(t *testing.T) {
	t.Parallel()

	if got, err := Weekday("sat"); err != nil || got != date.Saturday {
		t.Errorf("Weekday(sat) = %v, %v", got, err)
	}
	if got, err := Weekday("6"); err != nil || got != date.Saturday {
		t.Errorf("Weekday(6) = %v, %v", got, err)
	}
	if _, err := Weekday("s"); err == nil {
		t.Error("Weekday(s) should be ambiguous")
	}
	if _, err := Weekday("su"); err != nil {
		t.Error("Weekday(su) should resolve to Sunday")
	}
	if _, err := Weekday("7"); err == nil {
		t.Error("Weekday(7) should be out of range")
	}
}

func TestYMD(t *testing.T) {
	t.Parallel()

	d, err := YMD("1404/09/15", date.Jalali)
	if err != nil {
		t.Fatal(err)
	}
	if d.String() != "1404/09/15" {
		t.Errorf("YMD = %v", d)
	}

	for _, in := range []string{"2025-11-01", "2025.11.01", "2025/11/01"} {
		d, err := YMD(in, date.Gregorian)
		if err != nil || d.String() != "2025/11/01" {
			t.Errorf("YMD(%q) = %v, %v", in, d, err)
		}
	}

	for _, in := range []string{"2025/02/30", "2025/13/01", "2025/11", "x/y/z", "1404/12/30"} {
		if _, err := YMD(in, date.Gregorian); err == nil {
			t.Errorf("YMD(%q) should fail", in)
		}
	}
	// Esfand 30 exists in leap years only
	if _, err := YMD("1403/12/30", date.Jalali); err != nil {
		t.Errorf("leap Esfand 30 rejected: %v", err)
	}
	if _, err := YMD("1404/12/30", date.Jalali); err == nil {
		t.Error("common-year Esfand 30 accepted")
	}
}

func TestTime(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 11, 17, 12, 0, 0, 0, time.UTC)

	got, err := Time("@1762819200", now)
	if err != nil || got.Unix() != 1762819200 {
		t.Errorf("Time(@ts) = %v, %v", got, err)
	}

	got, err = Time("2025-11-01", now)
	if err != nil || got.Format("2006-01-02") != "2025-11-01" {
		t.Errorf("Time(layout) = %v, %v", got, err)
	}

	got, err = Time("yesterday", now)
	if err != nil || got.Day() != 16 {
		t.Errorf("Time(yesterday) = %v, %v", got, err)
	}

	got, err = Time("2 weeks ago", now)
	if err != nil || got.Day() != 3 {
		t.Errorf("Time(2 weeks ago) = %v, %v", got, err)
	}

	got, err = Time("1 month", now)
	if err != nil || got.Month() != time.December {
		t.Errorf("Time(1 month) = %v, %v", got, err)
	}

	if _, err := Time("not a date", now); err == nil {
		t.Error("garbage accepted")
	}
}
