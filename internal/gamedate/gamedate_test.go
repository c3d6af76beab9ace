package gamedate

import (
	"testing"
	"time"
)

func TestValidateDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in    string
		want  Date
		valid bool
	}{
		{in: "11/12/2014", want: Date{Month: "11", Day: "12", Year: "2014"}, valid: true},
		{in: "1/5/2024", want: Date{Month: "1", Day: "5", Year: "2024"}, valid: true},
		{in: "13/45/abcd", valid: false},
		{in: "", valid: false},
		{in: "2024-01-05", valid: false},
		{in: "11/12/14", valid: false},
		{in: "games on 3/4/2019 tonight", want: Date{Month: "3", Day: "4", Year: "2019"}, valid: true},
	}

	for _, tt := range tests {
		got, ok := ValidateDate(tt.in)
		if ok != tt.valid {
			t.Fatalf("ValidateDate(%q) ok = %v, want %v", tt.in, ok, tt.valid)
		}
		if ok && got != tt.want {
			t.Fatalf("ValidateDate(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestDayKey_PadsIndependentOfInputWidth(t *testing.T) {
	t.Parallel()

	short, _ := ValidateDate("1/5/2024")
	long, _ := ValidateDate("01/05/2024")

	if got := short.DayKey(); got != "20240105" {
		t.Fatalf("short DayKey = %q, want 20240105", got)
	}
	if short.DayKey() != long.DayKey() {
		t.Fatalf("DayKey differs: %q vs %q", short.DayKey(), long.DayKey())
	}
	if got := short.String(); got != "01/05/2024" {
		t.Fatalf("String = %q, want 01/05/2024", got)
	}
}

func TestRequestKey(t *testing.T) {
	t.Parallel()

	d := Date{Month: "3", Day: "9", Year: "2021"}
	if got := RequestKey(d, 12345); got != "2021030912345" {
		t.Fatalf("RequestKey = %q, want 2021030912345", got)
	}
}

func TestCacheToken(t *testing.T) {
	t.Parallel()

	now := time.UnixMilli(1515000000000 + 42)
	if got := CacheToken(now); got != 42 {
		t.Fatalf("CacheToken = %d, want 42", got)
	}
	if CacheToken(now.Add(time.Second)) == CacheToken(now) {
		t.Fatal("CacheToken did not change across a second")
	}
}

func TestResolveToday(t *testing.T) {
	t.Parallel()

	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	// 02:30 UTC on Jan 6 is still Jan 5 in New York.
	now := time.Date(2024, time.January, 6, 2, 30, 0, 0, time.UTC)
	today := ResolveToday(now, ny)

	if today.Formatted != "01/05/2024" {
		t.Fatalf("Formatted = %q, want 01/05/2024", today.Formatted)
	}
	if today.Month != "01" || today.Day != "05" || today.Year != "2024" {
		t.Fatalf("triple = %s/%s/%s, want 01/05/2024", today.Month, today.Day, today.Year)
	}
	if today.CacheToken != CacheToken(now) {
		t.Fatalf("CacheToken = %d, want %d", today.CacheToken, CacheToken(now))
	}
}

func TestLoadLocation(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"", "Local"} {
		loc, err := LoadLocation(name)
		if err != nil || loc != time.Local {
			t.Fatalf("LoadLocation(%q) = %v, %v; want time.Local", name, loc, err)
		}
	}
	if _, err := LoadLocation("Not/AZone"); err == nil {
		t.Fatal("LoadLocation(Not/AZone) succeeded, want error")
	}
}
