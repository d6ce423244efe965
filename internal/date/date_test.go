package date

import (
	"testing"
	"time"
)

func TestWeekdaySteps(t *testing.T) {
	t.Parallel()

	if got := Saturday.Forward(1); got != Sunday {
		t.Errorf("Saturday.Forward(1) = %v", got)
	}
	if got := Sunday.Forward(-1); got != Saturday {
		t.Errorf("Sunday.Forward(-1) = %v", got)
	}
	if got := Sunday.StepsTo(Saturday); got != 6 {
		t.Errorf("Sunday.StepsTo(Saturday) = %d", got)
	}
	if got := Saturday.StepsTo(Sunday); got != 1 {
		t.Errorf("Saturday.StepsTo(Sunday) = %d", got)
	}
	if got := Wednesday.StepsTo(Wednesday); got != 0 {
		t.Errorf("Wednesday.StepsTo(Wednesday) = %d", got)
	}
}

func TestWeekdayOfKnownDays(t *testing.T) {
	t.Parallel()

	if got := New(Gregorian, 1970, 1, 1).Weekday(); got != Thursday {
		t.Errorf("epoch weekday = %v", got)
	}
	if got := New(Gregorian, 2025, 11, 1).Weekday(); got != Saturday {
		t.Errorf("2025-11-01 weekday = %v", got)
	}
	if got := New(Jalali, 1404, 1, 1).Weekday(); got != Friday {
		t.Errorf("1404/01/01 weekday = %v", got)
	}
	// dates before the epoch still map correctly
	if got := New(Gregorian, 1969, 12, 31).Weekday(); got != Wednesday {
		t.Errorf("1969-12-31 weekday = %v", got)
	}
}

func TestNewSaturates(t *testing.T) {
	t.Parallel()

	if got := New(Gregorian, 2025, 11, 35).Day(); got != 30 {
		t.Errorf("day 35 clamped to %d, want 30", got)
	}
	if got := New(Gregorian, 2025, 0, 10).Month(); got != 1 {
		t.Errorf("month 0 clamped to %d, want 1", got)
	}
	if got := New(Gregorian, 2025, 13, 10).Month(); got != 12 {
		t.Errorf("month 13 clamped to %d, want 12", got)
	}
	if got := New(Gregorian, 123456, 1, 1).Year(); got != 9999 {
		t.Errorf("year clamped to %d, want 9999", got)
	}
	if got := New(Jalali, -5000, 1, 1).Year(); got != -61 {
		t.Errorf("jalali year clamped to %d, want -61", got)
	}
	// year clamp applies before the day clamp, so Esfand 30 of a huge year
	// lands on the last valid day of the clamp year's Esfand
	d := New(Jalali, 1404, 12, 30)
	if d.Day() != 29 {
		t.Errorf("Esfand 30 of a common year clamped to %d, want 29", d.Day())
	}
}

func TestWithSaturates(t *testing.T) {
	t.Parallel()

	d := New(Gregorian, 2024, 1, 31)
	if got := d.WithMonth(2); got.Day() != 29 {
		t.Errorf("Jan 31 with month 2 = %v", got)
	}
	if got := d.WithYear(100000); got.Year() != 9999 {
		t.Errorf("WithYear clamp = %v", got)
	}
	if got := d.WithOrdinal(999); got.Ordinal() != 366 {
		t.Errorf("WithOrdinal clamp = %d", got.Ordinal())
	}
	if got := d.WithOrdinal(-3); got.Ordinal() != 1 {
		t.Errorf("WithOrdinal underflow = %d", got.Ordinal())
	}
}

func TestOrdinal(t *testing.T) {
	t.Parallel()

	if got := New(Gregorian, 2025, 11, 1).Ordinal(); got != 305 {
		t.Errorf("ordinal of 2025-11-01 = %d, want 305", got)
	}
	if got := New(Gregorian, 2025, 1, 1).Ordinal(); got != 1 {
		t.Errorf("ordinal of Jan 1 = %d", got)
	}
	if got := New(Jalali, 1404, 8, 10).Ordinal(); got != 227 {
		t.Errorf("ordinal of 1404/08/10 = %d, want 227", got)
	}
}

func TestAddMonths(t *testing.T) {
	t.Parallel()

	d := New(Gregorian, 2025, 11, 17)
	got := d.AddMonths(2)
	if y, m, dd := got.YMD(); y != 2026 || m != 1 || dd != 1 {
		t.Errorf("AddMonths(2) = %v", got)
	}
	got = d.AddMonths(-11)
	if y, m, dd := got.YMD(); y != 2024 || m != 12 || dd != 1 {
		t.Errorf("AddMonths(-11) = %v", got)
	}
	if got := d.AddMonths(0); got.Day() != 1 || got.Month() != 11 {
		t.Errorf("AddMonths(0) = %v", got)
	}

	// saturation at both ends
	if got := New(Gregorian, 9999, 6, 1).AddMonths(100); got.Year() != 9999 || got.Month() != 12 {
		t.Errorf("AddMonths overflow = %v", got)
	}
	if got := New(Gregorian, 1, 6, 1).AddMonths(-100); got.Year() != 1 || got.Month() != 1 {
		t.Errorf("AddMonths underflow = %v", got)
	}
}

func TestWeeknum(t *testing.T) {
	t.Parallel()

	nov := New(Gregorian, 2025, 11, 1)
	if got := nov.Weeknum(Sunday); got != 43 {
		t.Errorf("Sunday weeknum of 2025-11-01 = %d, want 43", got)
	}
	if got := nov.ISOWeeknum(); got != 44 {
		t.Errorf("ISO weeknum of 2025-11-01 = %d, want 44", got)
	}

	// 2025-01-01 is a Wednesday: days before the first Sunday are week 0
	jan1 := New(Gregorian, 2025, 1, 1)
	if got := jan1.Weeknum(Sunday); got != 0 {
		t.Errorf("Sunday weeknum of 2025-01-01 = %d, want 0", got)
	}
	if got := jan1.Weeknum(Wednesday); got != 1 {
		t.Errorf("Wednesday weeknum of 2025-01-01 = %d, want 1", got)
	}
	if got := New(Gregorian, 2025, 1, 5).Weeknum(Sunday); got != 1 {
		t.Errorf("Sunday weeknum of 2025-01-05 = %d, want 1", got)
	}
}

func TestWeeknumMonotonicWithinYear(t *testing.T) {
	t.Parallel()

	for _, sys := range []System{Gregorian, Jalali} {
		d := New(sys, 2024, 1, 1)
		last := d.Weeknum(Monday)
		lastISO := d.ISOWeeknum()
		for o := 2; o <= d.YearEndOrdinal(); o++ {
			cur := d.WithOrdinal(o)
			if w := cur.Weeknum(Monday); w < last {
				t.Fatalf("%v weeknum decreased at ordinal %d", sys, o)
			} else {
				last = w
			}
			if w := cur.ISOWeeknum(); w < lastISO {
				t.Fatalf("%v ISO weeknum decreased at ordinal %d", sys, o)
			} else {
				lastISO = w
			}
		}
	}
}

func TestWithWeeknum(t *testing.T) {
	t.Parallel()

	d := New(Gregorian, 2025, 1, 1)
	for week := 0; week < 52; week++ {
		moved := d.WithWeeknum(week, Sunday)
		if got := moved.Weeknum(Sunday); got != week+1 {
			t.Fatalf("week index %d lands on weeknum %d", week, got)
		}
		if got := moved.Weekday(); got != Sunday {
			t.Fatalf("week index %d lands on %v", week, got)
		}
	}
	// out-of-year indexes clamp to the year's end
	if got := d.WithWeeknum(53, Sunday).Year(); got != 2025 {
		t.Errorf("clamped week year = %d", got)
	}
}

func TestConvertAndEqual(t *testing.T) {
	t.Parallel()

	g := New(Gregorian, 2025, 11, 1)
	j := g.Convert(Jalali)
	if y, m, d := j.YMD(); y != 1404 || m != 8 || d != 10 {
		t.Errorf("2025-11-01 in jalali = %v", j)
	}
	if !g.Equal(j) {
		t.Error("conversion must preserve the absolute day")
	}
	if g.EpochDays() != j.EpochDays() {
		t.Errorf("day counts diverge: %d vs %d", g.EpochDays(), j.EpochDays())
	}
	if got := New(Gregorian, 1970, 1, 1).EpochDays(); got != 0 {
		t.Errorf("unix epoch day count = %d", got)
	}
	if back := j.Convert(Gregorian); !back.Equal(g) || back.String() != "2025/11/01" {
		t.Errorf("round trip = %v", back)
	}

	// converting near a range edge saturates instead of failing
	early := New(Gregorian, 100, 1, 1)
	if got := early.Convert(Jalali); got.Year() != -61 || got.Month() != 1 || got.Day() != 1 {
		t.Errorf("early conversion = %v", got)
	}
}

func TestConvertRoundTripSweep(t *testing.T) {
	t.Parallel()

	d := New(Gregorian, 1990, 1, 1)
	for i := 0; i < 400; i++ {
		j := d.Convert(Jalali)
		if !j.Convert(Gregorian).Equal(d) {
			t.Fatalf("round trip failed at %v", d)
		}
		if j.Weekday() != d.Weekday() {
			t.Fatalf("weekday changed across conversion at %v", d)
		}
		d = Date{Gregorian, d.days + 37}
	}
}

func TestFromTime(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("tehran", 3*3600+30*60)
	tm := time.Date(2025, 11, 1, 23, 30, 0, 0, loc)
	d := FromTime(tm)
	if d.String() != "2025/11/01" {
		t.Errorf("FromTime = %v", d)
	}
	if got := d.Time(); !got.Equal(time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Time = %v", got)
	}
}

func TestMonthName(t *testing.T) {
	t.Parallel()

	if got := New(Gregorian, 2025, 11, 1).MonthName(); got != "November" {
		t.Errorf("MonthName = %q", got)
	}
	if got := New(Jalali, 1404, 8, 10).MonthName(); got != "Aban" {
		t.Errorf("MonthName = %q", got)
	}
	if got := Abbrev("Sunday"); got != "Sun" {
		t.Errorf("Abbrev = %q", got)
	}
}
