package value

import (
	"math"
	"strconv"
	"time"

	"github.com/ukaji3/odsref-go/pkg/odsref/source"
)

// part reads DIGIT+ as an int64. An empty run fails with code.
func (c *cursor) part(code source.Code) (int64, *source.Error) {
	start := c.pos
	d := c.digits()
	if d == "" {
		return 0, c.fail(code)
	}
	v, err := strconv.ParseInt(d, 10, 64)
	if err != nil {
		return 0, source.Wrap(source.CodeOverflow, c.span(start), err)
	}
	return v, nil
}

// nanos reads DIGIT+ as a fraction of a second. The digits are zero extended
// or truncated to nine places, never rounded.
func (c *cursor) nanos(code source.Code) (int64, *source.Error) {
	d := c.digits()
	if d == "" {
		return 0, c.fail(code)
	}
	var v int64
	for i := 0; i < 9; i++ {
		v *= 10
		if i < len(d) {
			v += int64(d[i] - '0')
		}
	}
	return v, nil
}

// field reads one calendar field and checks it against [lo, hi].
func (c *cursor) field(lo, hi int64) (int64, *source.Error) {
	start := c.pos
	v, err := c.part(source.CodeDateTime)
	if err != nil {
		return 0, err
	}
	if v < lo || v > hi {
		return 0, source.Wrap(source.CodeDateTime, c.span(start), ErrOutOfRange)
	}
	return v, nil
}

func (c *cursor) expect(b byte, code source.Code) *source.Error {
	if !c.byte(b) {
		return c.fail(code)
	}
	return nil
}

// ParseDateTime parses [-]YYYY-MM-DD[THH:MM:SS[.fraction]] as a UTC time.
// Years may be negative or have more than four digits. Fields need not be
// zero padded.
func ParseDateTime(s string) (time.Time, error) {
	t, err := parseDateTime(s)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

func parseDateTime(s string) (time.Time, *source.Error) {
	c := cursor{text: s}
	neg := c.byte('-')

	year, err := c.field(0, math.MaxInt32)
	if err != nil {
		return time.Time{}, err
	}
	if neg {
		year = -year
	}
	if err := c.expect('-', source.CodeDateTime); err != nil {
		return time.Time{}, err
	}
	monthStart := c.pos
	month, err := c.field(1, 12)
	if err != nil {
		return time.Time{}, err
	}
	monthSpan := c.span(monthStart)
	if err := c.expect('-', source.CodeDateTime); err != nil {
		return time.Time{}, err
	}
	dayStart := c.pos
	day, err := c.field(1, 31)
	if err != nil {
		return time.Time{}, err
	}
	// The day fits 1..31 but not this month; blame both fields.
	if day > int64(daysIn(int(year), time.Month(month))) {
		span := source.Union(s, monthSpan, c.span(dayStart))
		return time.Time{}, source.Wrap(source.CodeDateTime, span, ErrOutOfRange)
	}

	var hour, minute, second, nsec int64
	if c.byte('T') {
		if hour, err = c.field(0, 23); err != nil {
			return time.Time{}, err
		}
		if err := c.expect(':', source.CodeDateTime); err != nil {
			return time.Time{}, err
		}
		if minute, err = c.field(0, 59); err != nil {
			return time.Time{}, err
		}
		if err := c.expect(':', source.CodeDateTime); err != nil {
			return time.Time{}, err
		}
		if second, err = c.field(0, 59); err != nil {
			return time.Time{}, err
		}
		if c.byte('.') {
			if nsec, err = c.nanos(source.CodeDateTime); err != nil {
				return time.Time{}, err
			}
		}
	}
	if !c.eof() {
		return time.Time{}, c.fail(source.CodeDateTime)
	}

	return time.Date(int(year), time.Month(month), int(day),
		int(hour), int(minute), int(second), int(nsec), time.UTC), nil
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// appendPadded appends v with at least width digits.
func appendPadded(buf []byte, v int64, width int) []byte {
	var tmp [20]byte
	d := strconv.AppendInt(tmp[:0], v, 10)
	for i := len(d); i < width; i++ {
		buf = append(buf, '0')
	}
	return append(buf, d...)
}

// appendFraction appends ".fff", ".ffffff" or ".fffffffff" for a non-zero ns,
// using the shortest of the three that is exact.
func appendFraction(buf []byte, ns int64) []byte {
	if ns == 0 {
		return buf
	}
	buf = append(buf, '.')
	switch {
	case ns%1e6 == 0:
		return appendPadded(buf, ns/1e6, 3)
	case ns%1e3 == 0:
		return appendPadded(buf, ns/1e3, 6)
	}
	return appendPadded(buf, ns, 9)
}

// FormatDateTime writes t in UTC as YYYY-MM-DDTHH:MM:SS with a fraction only
// when t has sub-second precision.
func FormatDateTime(t time.Time) string {
	t = t.UTC()
	buf := make([]byte, 0, 32)

	year := int64(t.Year())
	if year < 0 {
		buf = append(buf, '-')
		year = -year
	}
	buf = appendPadded(buf, year, 4)
	buf = append(buf, '-')
	buf = appendPadded(buf, int64(t.Month()), 2)
	buf = append(buf, '-')
	buf = appendPadded(buf, int64(t.Day()), 2)
	buf = append(buf, 'T')
	buf = appendPadded(buf, int64(t.Hour()), 2)
	buf = append(buf, ':')
	buf = appendPadded(buf, int64(t.Minute()), 2)
	buf = append(buf, ':')
	buf = appendPadded(buf, int64(t.Second()), 2)
	buf = appendFraction(buf, int64(t.Nanosecond()))

	return string(buf)
}

// Duration units. Years and months are fixed lengths, durations here are an
// amount of elapsed time and never calendar relative.
const (
	secondsPerDay   = 24 * 60 * 60
	secondsPerMonth = 30 * secondsPerDay
	secondsPerYear  = 365 * secondsPerDay

	maxSeconds = math.MaxInt64 / int64(time.Second)
)

// ParseDuration parses [-]P[nY][nM][nD]TnHnMn[.fraction]S. The time part is
// required.
func ParseDuration(s string) (time.Duration, error) {
	d, err := parseDuration(s)
	if err != nil {
		return 0, err
	}
	return d, nil
}

func parseDuration(s string) (time.Duration, *source.Error) {
	c := cursor{text: s}
	neg := c.byte('-')
	if err := c.expect('P', source.CodeDuration); err != nil {
		return 0, err
	}

	var secs int64
	add := func(start int, v, unit int64) *source.Error {
		if v > (maxSeconds-secs)/unit {
			return source.Wrap(source.CodeOverflow, c.span(start), ErrOutOfRange)
		}
		secs += v * unit
		return nil
	}

	for _, u := range []struct {
		designator byte
		unit       int64
	}{{'Y', secondsPerYear}, {'M', secondsPerMonth}, {'D', secondsPerDay}} {
		save := c.pos
		if c.digits() == "" || !c.byte(u.designator) {
			c.pos = save
			continue
		}
		c.pos = save
		v, err := c.part(source.CodeDuration)
		if err != nil {
			return 0, err
		}
		c.pos++
		if err := add(save, v, u.unit); err != nil {
			return 0, err
		}
	}

	if err := c.expect('T', source.CodeDuration); err != nil {
		return 0, err
	}
	for _, u := range []struct {
		designator byte
		unit       int64
	}{{'H', 3600}, {'M', 60}} {
		start := c.pos
		v, err := c.part(source.CodeDuration)
		if err != nil {
			return 0, err
		}
		if err := c.expect(u.designator, source.CodeDuration); err != nil {
			return 0, err
		}
		if err := add(start, v, u.unit); err != nil {
			return 0, err
		}
	}

	start := c.pos
	v, err := c.part(source.CodeDuration)
	if err != nil {
		return 0, err
	}
	var nsec int64
	if c.byte('.') {
		if nsec, err = c.nanos(source.CodeDuration); err != nil {
			return 0, err
		}
	}
	if err := c.expect('S', source.CodeDuration); err != nil {
		return 0, err
	}
	if err := add(start, v, 1); err != nil {
		return 0, err
	}
	if !c.eof() {
		return 0, c.fail(source.CodeDuration)
	}
	if secs > (math.MaxInt64-nsec)/int64(time.Second) {
		return 0, source.Wrap(source.CodeOverflow, source.Rest(s, 0), ErrOutOfRange)
	}

	d := time.Duration(secs)*time.Second + time.Duration(nsec)
	if neg {
		d = -d
	}
	return d, nil
}

// FormatDuration writes d as [-]PTnHnMn[.fraction]S. Days are folded into
// hours.
func FormatDuration(d time.Duration) string {
	buf := make([]byte, 0, 32)

	u := uint64(d)
	if d < 0 {
		buf = append(buf, '-')
		u = -u
	}
	secs := u / uint64(time.Second)
	ns := int64(u % uint64(time.Second))

	buf = append(buf, "PT"...)
	buf = strconv.AppendUint(buf, secs/3600, 10)
	buf = append(buf, 'H')
	buf = strconv.AppendUint(buf, secs/60%60, 10)
	buf = append(buf, 'M')
	buf = strconv.AppendUint(buf, secs%60, 10)
	if ns != 0 {
		frac := appendPadded(nil, ns, 9)
		for frac[len(frac)-1] == '0' {
			frac = frac[:len(frac)-1]
		}
		buf = append(buf, '.')
		buf = append(buf, frac...)
	}
	return string(append(buf, 'S'))
}
