package datemath_test

import (
	"regexp"
	"testing"
	"time"

	"voice-scheduler/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("Asia/Ho_Chi_Minh")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}

	if p := datemath.NewParserInLocation(nil); p.Location() != time.UTC {
		t.Errorf("nil location should default to UTC, got %v", p.Location())
	}
}

func TestParse(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday, May 1, 2024
	startOfBase := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		relative string
		want     time.Time
		wantErr  bool
	}{
		{name: "Today", relative: "today", want: startOfBase},
		{name: "Tomorrow", relative: "tomorrow", want: startOfBase.AddDate(0, 0, 1)},
		{name: "Tomorrow mixed case", relative: "  ToMorrow ", want: startOfBase.AddDate(0, 0, 1)},
		{name: "Yesterday", relative: "yesterday", want: startOfBase.AddDate(0, 0, -1)},
		{name: "In 3 days", relative: "in 3 days", want: startOfBase.AddDate(0, 0, 3)},
		{name: "In 2 weeks", relative: "in 2 weeks", want: startOfBase.AddDate(0, 0, 14)},
		{name: "In 1 month", relative: "in 1 month", want: startOfBase.AddDate(0, 1, 0)},
		{name: "Invalid duration pattern", relative: "in a few days", wantErr: true},
		{name: "Next Monday (from Wed)", relative: "next monday", want: startOfBase.AddDate(0, 0, 5)},
		{name: "Next Wednesday (from Wed)", relative: "next wednesday", want: startOfBase.AddDate(0, 0, 7)},
		{name: "Next fri abbreviation", relative: "next fri", want: startOfBase.AddDate(0, 0, 2)},
		{name: "Unknown expression", relative: "some random day", wantErr: true},
		{name: "Empty", relative: "  ", wantErr: true},
		{name: "Invalid Next Weekday", relative: "next funday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(tt.relative, baseTime)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParse_Timezone(t *testing.T) {
	parser, err := datemath.NewParser("Asia/Ho_Chi_Minh")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	// 20:00 UTC on March 10 is already March 11 in UTC+7.
	base := time.Date(2024, 3, 10, 20, 0, 0, 0, time.UTC)

	got, _ := parser.Parse("today", base)
	if got.Format("2006-01-02") != "2024-03-11" {
		t.Errorf("today in UTC+7 = %s, want 2024-03-11", got.Format("2006-01-02"))
	}
	if got.Location() != parser.Location() {
		t.Errorf("result location = %v, want %v", got.Location(), parser.Location())
	}
}

func TestNextWeekday(t *testing.T) {
	parser := datemath.NewParserInLocation(time.UTC)
	sunday := time.Date(2024, 3, 10, 18, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		target time.Weekday
		strict bool
		want   string
	}{
		{name: "same day non-strict", target: time.Sunday, strict: false, want: "2024-03-10"},
		{name: "same day strict", target: time.Sunday, strict: true, want: "2024-03-17"},
		{name: "friday", target: time.Friday, strict: false, want: "2024-03-15"},
		{name: "monday strict", target: time.Monday, strict: true, want: "2024-03-11"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parser.NextWeekday(sunday, tt.target, tt.strict)
			if got.Format("2006-01-02") != tt.want {
				t.Errorf("NextWeekday() = %s, want %s", got.Format("2006-01-02"), tt.want)
			}
		})
	}
}

func TestMonthDay(t *testing.T) {
	parser := datemath.NewParserInLocation(time.UTC)

	tests := []struct {
		name    string
		year    int
		month   time.Month
		day     int
		wantErr bool
	}{
		{name: "valid", year: 2024, month: time.March, day: 15},
		{name: "leap day", year: 2024, month: time.February, day: 29},
		{name: "non leap", year: 2023, month: time.February, day: 29, wantErr: true},
		{name: "february 30", year: 2024, month: time.February, day: 30, wantErr: true},
		{name: "day zero", year: 2024, month: time.March, day: 0, wantErr: true},
		{name: "bad month", year: 2024, month: time.Month(13), day: 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.MonthDay(tt.year, tt.month, tt.day)
			if (err != nil) != tt.wantErr {
				t.Fatalf("MonthDay() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && (got.Month() != tt.month || got.Day() != tt.day) {
				t.Errorf("MonthDay() = %v", got)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	if wd, ok := datemath.LookupWeekday("Thurs"); !ok || wd != time.Thursday {
		t.Errorf("LookupWeekday(Thurs) = %v, %v", wd, ok)
	}
	if _, ok := datemath.LookupWeekday("funday"); ok {
		t.Error("LookupWeekday(funday) should fail")
	}
	if m, ok := datemath.LookupMonth("SEPT"); !ok || m != time.September {
		t.Errorf("LookupMonth(SEPT) = %v, %v", m, ok)
	}
}

func TestPatternsCoverLookupTables(t *testing.T) {
	wd := regexp.MustCompile(`^(?:` + datemath.WeekdayPattern + `)$`)
	for _, name := range []string{"monday", "tues", "thur", "sun"} {
		if !wd.MatchString(name) {
			t.Errorf("WeekdayPattern does not match %q", name)
		}
		if _, ok := datemath.LookupWeekday(name); !ok {
			t.Errorf("LookupWeekday(%q) failed", name)
		}
	}

	mo := regexp.MustCompile(`^(?:` + datemath.MonthPattern + `)$`)
	for _, name := range []string{"january", "sept", "may", "dec"} {
		if !mo.MatchString(name) {
			t.Errorf("MonthPattern does not match %q", name)
		}
		if _, ok := datemath.LookupMonth(name); !ok {
			t.Errorf("LookupMonth(%q) failed", name)
		}
	}
}
