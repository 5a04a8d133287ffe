package service

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jfrkit/heapchart/api/object"
)

// ReadHeapSeries reads a two-column CSV export line by line and collects the
// samples in source order. Lines that are blank, have no comma or do not
// split into exactly two fields are silently skipped; a line that passes the
// shape check but carries an unparsable heap value fails the whole read. The
// asymmetry is deliberate: ragged lines are export noise, a malformed number
// inside a well-shaped line means the export itself is broken.
func ReadHeapSeries(r io.Reader) ([]object.Sample, error) {
	var samples []object.Sample

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || !strings.Contains(line, ",") {
			continue
		}
		parts := strings.Split(line, ",")
		if len(parts) != 2 {
			continue
		}

		heap, err := ParseHeapMB(parts[1])
		if err != nil {
			return nil, fmt.Errorf("failed to parse heap value %q; %w", parts[1], err)
		}
		samples = append(samples, object.Sample{Time: ParseClock(parts[0]), Heap: heap})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read series source; %w", err)
	}

	return samples, nil
}

// ParseClock converts a leading "H:M:S.fff" clock prefix to seconds since
// midnight. The fractional digit run is always treated as thousandths no
// matter how many digits it holds, so only three-digit fractions round-trip
// exactly; JFR exports emit three digits and the behavior is kept as is. A
// field that does not start with the clock pattern yields 0.
func ParseClock(field string) float64 {
	h, rest, ok := takeDigits(field)
	if !ok {
		return 0
	}
	rest, ok = takeDelimiter(rest, ':')
	if !ok {
		return 0
	}
	m, rest, ok := takeDigits(rest)
	if !ok {
		return 0
	}
	rest, ok = takeDelimiter(rest, ':')
	if !ok {
		return 0
	}
	s, rest, ok := takeDigits(rest)
	if !ok {
		return 0
	}
	rest, ok = takeDelimiter(rest, '.')
	if !ok {
		return 0
	}
	frac, _, ok := takeDigits(rest)
	if !ok {
		return 0
	}

	return float64(h)*3600 + float64(m)*60 + float64(s) + float64(frac)/1000
}

// ParseHeapMB parses a heap field such as "114.0", " 114.0MB " or
// "114.0 MB" into megabytes
func ParseHeapMB(field string) (float64, error) {
	v := strings.TrimSpace(field)
	v = strings.TrimSuffix(v, "MB")
	v = strings.TrimSpace(v)

	return strconv.ParseFloat(v, 64)
}

// NormalizeTimes returns a copy of the series shifted so it starts at zero.
// The order is untouched, the loaded sequence itself is never mutated
func NormalizeTimes(samples []object.Sample) []object.Sample {
	if len(samples) == 0 {
		return nil
	}

	start := samples[0].Time
	ret := make([]object.Sample, len(samples))
	for i, s := range samples {
		ret[i] = object.Sample{Time: s.Time - start, Heap: s.Heap}
	}

	return ret
}

func takeDigits(s string) (int, string, bool) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, s, false
	}
	n, err := strconv.Atoi(s[:i])
	if err != nil {
		return 0, s, false
	}

	return n, s[i:], true
}

func takeDelimiter(s string, d byte) (string, bool) {
	if len(s) == 0 || s[0] != d {
		return s, false
	}

	return s[1:], true
}
