// Package parser extracts LDS scan tables from raw Botvac CLI transcripts.
//
// Transcripts are terminal captures: shell prompts, echoed commands, banners
// and partial writes appear interleaved with scan tables. The only reliable
// framing is the shape of the data rows themselves plus the angle counter
// wrapping back to a low value at the start of each rotation.
package parser

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"

	"github.com/ldstools/ldsview/internal/lds"
)

// scanHeader is printed by the robot's CLI before each scan table. Serial
// captures sometimes garble it, so matching is fuzzy.
const scanHeader = "AngleInDegrees,DistInMM,Intensity,ErrorCodeHEX"

const headerMaxEdits = 8

// ParseLog extracts all complete scans from a transcript. Malformed or noisy
// lines are skipped, never surfaced; an input with no scans yields an empty
// sequence, not an error.
func ParseLog(text string) lds.ScanSequence {
	var (
		seq       lds.ScanSequence
		buf       []lds.Reading
		lastAngle = -1
	)
	emit := func() {
		if len(buf) > 0 {
			seq = append(seq, lds.NewScan(buf))
			buf = nil
		}
		lastAngle = -1
	}

	for _, line := range strings.Split(text, "\n") {
		if isScanHeader(line) {
			emit()
			continue
		}
		r, ok := parseReading(line)
		if !ok {
			continue
		}
		// The angle counter strictly increases within a rotation. Anything
		// else, including an exact repeat, marks the start of a new cycle.
		if r.Angle <= lastAngle {
			emit()
		}
		buf = append(buf, r)
		lastAngle = r.Angle
	}

	// Log tails are commonly truncated mid-scan. A trailing buffer shorter
	// than the cycle before it is a partial capture and gets dropped; with
	// no earlier cycle to compare against, take what we have.
	if len(buf) > 0 {
		if len(seq) == 0 || len(buf) >= seq[len(seq)-1].Len() {
			seq = append(seq, lds.NewScan(buf))
		}
	}
	return seq
}

// parseReading classifies one transcript line. A data line is exactly four
// non-negative integer fields, angle first and in range. Everything else is
// noise.
func parseReading(line string) (lds.Reading, bool) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})
	if len(fields) != 4 {
		return lds.Reading{}, false
	}
	var vals [4]int
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 0 {
			return lds.Reading{}, false
		}
		vals[i] = n
	}
	if vals[0] > 359 {
		return lds.Reading{}, false
	}
	return lds.Reading{
		Angle:      vals[0],
		DistanceMM: vals[1],
		Intensity:  vals[2],
		ErrorCode:  vals[3],
	}, true
}

func isScanHeader(line string) bool {
	if strings.Contains(line, "AngleInDegrees") {
		return true
	}
	trimmed := strings.TrimSpace(line)
	// Cheap length gate before the edit-distance check.
	if d := len(trimmed) - len(scanHeader); d > headerMaxEdits || d < -headerMaxEdits {
		return false
	}
	return levenshtein.ComputeDistance(trimmed, scanHeader) <= headerMaxEdits
}
