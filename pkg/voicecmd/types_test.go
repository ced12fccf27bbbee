package voicecmd_test

import (
	"encoding/json"
	"testing"
	"time"

	"voice-scheduler/pkg/voicecmd"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "09:00", want: "09:00"},
		{in: "9:05", want: "09:05"},
		{in: " 23:59 ", want: "23:59"},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "1200", wantErr: true},
		{in: "12:5", wantErr: true},
		{in: "ab:cd", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := voicecmd.ParseTimeOfDay(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTimeOfDay(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got.String() != tt.want {
				t.Errorf("ParseTimeOfDay(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestTimeOfDay_Add(t *testing.T) {
	start := voicecmd.TimeOfDay{Hour: 9}
	if got := start.Add(time.Hour); got.String() != "10:00" {
		t.Errorf("09:00 + 1h = %s, want 10:00", got)
	}
	late := voicecmd.TimeOfDay{Hour: 23, Minute: 30}
	if got := late.Add(time.Hour); got.String() != "23:59" {
		t.Errorf("23:30 + 1h = %s, want saturation at 23:59", got)
	}
	if !start.Before(late) || late.Before(start) {
		t.Error("Before ordering is wrong")
	}
}

func TestTimeOfDay_On(t *testing.T) {
	day := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	got := voicecmd.TimeOfDay{Hour: 9, Minute: 30}.On(day)
	want := time.Date(2024, 3, 11, 9, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("On() = %v, want %v", got, want)
	}
}

func TestTimeOfDay_JSON(t *testing.T) {
	type form struct {
		Start voicecmd.TimeOfDay `json:"start"`
	}

	b, err := json.Marshal(form{Start: voicecmd.TimeOfDay{Hour: 15}})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `{"start":"15:00"}` {
		t.Errorf("marshal = %s", b)
	}

	var f form
	if err := json.Unmarshal([]byte(`{"start":"07:45"}`), &f); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if f.Start != (voicecmd.TimeOfDay{Hour: 7, Minute: 45}) {
		t.Errorf("unmarshal = %+v", f.Start)
	}
	if err := json.Unmarshal([]byte(`{"start":"7pm"}`), &f); err == nil {
		t.Error("expected error for non HH:MM value")
	}
}

func TestEnumsValid(t *testing.T) {
	for _, c := range []voicecmd.Category{voicecmd.CategoryMeeting, voicecmd.CategoryTask, voicecmd.CategoryEvent} {
		if !c.Valid() {
			t.Errorf("%s should be valid", c)
		}
	}
	if voicecmd.Category("party").Valid() {
		t.Error("party should not be a valid category")
	}
	for _, p := range []voicecmd.Priority{voicecmd.PriorityHigh, voicecmd.PriorityMedium, voicecmd.PriorityLow} {
		if !p.Valid() {
			t.Errorf("%s should be valid", p)
		}
	}
	if voicecmd.Priority("high").Valid() {
		t.Error("priorities are case-sensitive")
	}
}
