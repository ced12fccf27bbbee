package voicecmd

import (
	"testing"
	"time"

	"voice-scheduler/pkg/datemath"
)

func TestNormalizeClock(t *testing.T) {
	tests := []struct {
		hour, minute, meridian string
		want                   string
		ok                     bool
	}{
		{"3", "", "pm", "15:00", true},
		{"12", "", "am", "00:00", true},
		{"12", "", "pm", "12:00", true},
		{"11", "59", "pm", "23:59", true},
		{"0", "", "", "00:00", true},
		{"23", "15", "", "23:15", true},
		{"0", "", "am", "", false},
		{"13", "", "pm", "", false},
		{"24", "", "", "", false},
		{"9", "60", "", "", false},
	}

	for _, tt := range tests {
		got, ok := normalizeClock(tt.hour, tt.minute, tt.meridian)
		if ok != tt.ok {
			t.Errorf("normalizeClock(%s,%s,%s) ok = %v, want %v", tt.hour, tt.minute, tt.meridian, ok, tt.ok)
			continue
		}
		if ok && got.String() != tt.want {
			t.Errorf("normalizeClock(%s,%s,%s) = %s, want %s", tt.hour, tt.minute, tt.meridian, got, tt.want)
		}
	}
}

func TestExtractTime_ConsumesOnlyValidClause(t *testing.T) {
	w := newWorkText("Dinner at 25 with Sam")
	if _, ok := extractTime(w); ok {
		t.Fatal("at 25 must not be a valid time")
	}
	if w.String() != "Dinner at 25 with Sam" {
		t.Errorf("invalid clause was consumed: %q", w.String())
	}

	w = newWorkText("Lunch at 3:5pm")
	if _, ok := extractTime(w); ok {
		t.Fatal("at 3:5pm must not be read as 03:00")
	}
	if w.String() != "Lunch at 3:5pm" {
		t.Errorf("malformed clause was consumed: %q", w.String())
	}

	w = newWorkText("Dinner at 7pm with Sam")
	got, ok := extractTime(w)
	if !ok || got.String() != "19:00" {
		t.Fatalf("extractTime = %s, %v", got, ok)
	}
	if w.String() != "Dinner        with Sam" {
		t.Errorf("consumed text = %q", w.String())
	}
}

func TestExtractDate_LaterStagesCannotRematch(t *testing.T) {
	p := datemath.NewParserInLocation(time.UTC)
	ref := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	w := newWorkText("Sync tomorrow at 3pm")
	if _, ok := extractDate(w, p, ref); !ok {
		t.Fatal("expected tomorrow to match")
	}
	if got := extractTitle(w); got != "Sync" {
		t.Errorf("extractTitle = %q, want Sync", got)
	}
}
