package voicecmd

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"voice-scheduler/pkg/datemath"
)

var (
	tomorrowPattern    = regexp.MustCompile(`(?i)\btomorrow\b`)
	todayPattern       = regexp.MustCompile(`(?i)\btoday\b`)
	onMonthDayPattern  = regexp.MustCompile(`(?i)\bon\s+(` + datemath.MonthPattern + `)\.?\s+(\d{1,2})(?:st|nd|rd|th)?\b`)
	onWeekdayPattern   = regexp.MustCompile(`(?i)\bon\s+(` + datemath.WeekdayPattern + `)\b`)
	nextWeekdayPattern = regexp.MustCompile(`(?i)\bnext\s+(` + datemath.WeekdayPattern + `)\b`)

	// Groups: 1 noon|midnight, 2 hour, 3 minute, 4 am|pm, 5 a|p of the dotted form.
	// A clock without a marker must end the word: "at 3:5pm" is not "at 3".
	timePattern = regexp.MustCompile(`(?i)\bat\s+(?:(noon|midnight)\b|(\d{1,2})(?::(\d{2}))?(?:\s*(am|pm)\b|\s*([ap])\.m\.?|\s|$|[,;!?]|\.(?:\s|$)))`)

	// A connector only delimits the title when it follows whitespace.
	connectorPattern = regexp.MustCompile(`(?i)\s(?:at|on|tomorrow)(?:\s|$)`)
)

// workText is the utterance with consumed clauses blanked out. Blanking keeps byte offsets
// stable so every stage indexes the same string.
type workText struct {
	s []byte
}

func newWorkText(s string) *workText {
	return &workText{s: []byte(s)}
}

func (w *workText) String() string {
	return string(w.s)
}

func (w *workText) consume(start, end int) {
	for i := start; i < end; i++ {
		w.s[i] = ' '
	}
}

// dateMatcher resolves a date clause. ok=false means the clause is absent or invalid and
// nothing was consumed.
type dateMatcher func(w *workText, p *datemath.Parser, ref time.Time) (time.Time, bool)

// dateMatchers run in precedence order; the first one that yields a date wins.
var dateMatchers = []dateMatcher{
	matchTomorrow,
	matchToday,
	matchOnMonthDay,
	matchOnWeekday,
	matchNextWeekday,
}

func extractDate(w *workText, p *datemath.Parser, ref time.Time) (time.Time, bool) {
	for _, m := range dateMatchers {
		if d, ok := m(w, p, ref); ok {
			return d, true
		}
	}
	return p.StartOfDay(ref), false
}

func matchTomorrow(w *workText, p *datemath.Parser, ref time.Time) (time.Time, bool) {
	loc := tomorrowPattern.FindIndex(w.s)
	if loc == nil {
		return time.Time{}, false
	}
	w.consume(loc[0], loc[1])
	return p.AddDays(ref, 1), true
}

func matchToday(w *workText, p *datemath.Parser, ref time.Time) (time.Time, bool) {
	loc := todayPattern.FindIndex(w.s)
	if loc == nil {
		return time.Time{}, false
	}
	w.consume(loc[0], loc[1])
	return p.StartOfDay(ref), true
}

// matchOnMonthDay takes the first "on <month> <day>" clause naming a real date.
func matchOnMonthDay(w *workText, p *datemath.Parser, ref time.Time) (time.Time, bool) {
	year := ref.In(p.Location()).Year()
	for _, m := range onMonthDayPattern.FindAllSubmatchIndex(w.s, -1) {
		month, ok := datemath.LookupMonth(string(w.s[m[2]:m[3]]))
		if !ok {
			continue
		}
		day, err := strconv.Atoi(string(w.s[m[4]:m[5]]))
		if err != nil {
			continue
		}
		date, err := p.MonthDay(year, month, day)
		if err != nil {
			continue
		}
		w.consume(m[0], m[1])
		return date, true
	}
	return time.Time{}, false
}

func matchOnWeekday(w *workText, p *datemath.Parser, ref time.Time) (time.Time, bool) {
	return matchWeekday(w, p, ref, onWeekdayPattern, false)
}

func matchNextWeekday(w *workText, p *datemath.Parser, ref time.Time) (time.Time, bool) {
	return matchWeekday(w, p, ref, nextWeekdayPattern, true)
}

func matchWeekday(w *workText, p *datemath.Parser, ref time.Time, re *regexp.Regexp, strict bool) (time.Time, bool) {
	m := re.FindSubmatchIndex(w.s)
	if m == nil {
		return time.Time{}, false
	}
	wd, ok := datemath.LookupWeekday(string(w.s[m[2]:m[3]]))
	if !ok {
		return time.Time{}, false
	}
	w.consume(m[0], m[1])
	return p.NextWeekday(ref, wd, strict), true
}

// extractTime resolves the first "at ..." clause. An out-of-range clause is left in place
// and reported as absent.
func extractTime(w *workText) (TimeOfDay, bool) {
	m := timePattern.FindSubmatchIndex(w.s)
	if m == nil {
		return TimeOfDay{}, false
	}
	group := func(i int) string {
		if m[2*i] < 0 {
			return ""
		}
		return strings.ToLower(string(w.s[m[2*i]:m[2*i+1]]))
	}

	var t TimeOfDay
	switch group(1) {
	case "noon":
		t = TimeOfDay{Hour: 12}
	case "midnight":
		t = TimeOfDay{}
	default:
		var ok bool
		meridian := group(4)
		if dotted := group(5); dotted != "" {
			meridian = dotted + "m"
		}
		t, ok = normalizeClock(group(2), group(3), meridian)
		if !ok {
			return TimeOfDay{}, false
		}
	}

	w.consume(m[0], m[1])
	return t, true
}

// normalizeClock converts a 12- or 24-hour reading to 24-hour form.
func normalizeClock(hourStr, minuteStr, meridian string) (TimeOfDay, bool) {
	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		return TimeOfDay{}, false
	}
	minute := 0
	if minuteStr != "" {
		if minute, err = strconv.Atoi(minuteStr); err != nil {
			return TimeOfDay{}, false
		}
	}
	if minute > 59 {
		return TimeOfDay{}, false
	}

	switch meridian {
	case "am", "pm":
		if hour < 1 || hour > 12 {
			return TimeOfDay{}, false
		}
		if meridian == "pm" && hour < 12 {
			hour += 12
		}
		if meridian == "am" && hour == 12 {
			hour = 0
		}
	default:
		if hour > 23 {
			return TimeOfDay{}, false
		}
	}
	return TimeOfDay{Hour: hour, Minute: minute}, true
}

// extractTitle returns the text before the first remaining connector, whitespace collapsed.
func extractTitle(w *workText) string {
	s := w.String()
	if loc := connectorPattern.FindStringIndex(s); loc != nil {
		s = s[:loc[0]]
	}
	title := strings.Join(strings.Fields(s), " ")
	return strings.TrimRight(title, " ,;:")
}
