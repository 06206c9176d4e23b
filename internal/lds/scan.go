package lds

import (
	"math"
	"sort"
)

// Reading is one LDS measurement at one angle.
type Reading struct {
	Angle      int // degrees, 0-359, 0 = robot front
	DistanceMM int // millimeters; the sensor's no-return value is kept as-is
	Intensity  int // reflected signal strength
	ErrorCode  int // 0 = no error
}

// Scan holds one full rotation of readings, sorted by ascending angle.
// Angles within a scan are unique.
type Scan struct {
	readings []Reading
}

// NewScan builds a Scan from readings in any order. A later reading at an
// angle already seen replaces the earlier one.
func NewScan(readings []Reading) Scan {
	byAngle := make(map[int]Reading, len(readings))
	for _, r := range readings {
		byAngle[r.Angle] = r
	}
	sorted := make([]Reading, 0, len(byAngle))
	for _, r := range byAngle {
		sorted = append(sorted, r)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Angle < sorted[j].Angle })
	return Scan{readings: sorted}
}

// Len reports the number of readings in the scan.
func (s Scan) Len() int { return len(s.readings) }

// Readings returns the readings sorted by ascending angle. Callers must not
// modify the returned slice.
func (s Scan) Readings() []Reading { return s.readings }

// Reading returns the reading at the given angle, if present.
func (s Scan) Reading(angle int) (Reading, bool) {
	i := sort.Search(len(s.readings), func(i int) bool { return s.readings[i].Angle >= angle })
	if i < len(s.readings) && s.readings[i].Angle == angle {
		return s.readings[i], true
	}
	return Reading{}, false
}

// MaxIntensity returns the strongest intensity in the scan.
func (s Scan) MaxIntensity() int {
	max := 0
	for _, r := range s.readings {
		if r.Intensity > max {
			max = r.Intensity
		}
	}
	return max
}

// Point is a cartesian position in meters, robot at the origin facing +X.
type Point struct {
	X, Y float64
}

// Points converts the scan to a 2D point cloud in meters, sorted by angle.
// Distances beyond maxRangeMM are treated as no-return and collapse to the
// origin, matching the sensor's reported range limit.
func (s Scan) Points(maxRangeMM int) []Point {
	pts := make([]Point, len(s.readings))
	for i, r := range s.readings {
		d := float64(r.DistanceMM) / 1000.0
		if maxRangeMM > 0 && r.DistanceMM > maxRangeMM {
			d = 0
		}
		rad := float64(r.Angle) * math.Pi / 180.0
		pts[i] = Point{X: d * math.Cos(rad), Y: d * math.Sin(rad)}
	}
	return pts
}

// ScanSequence is the ordered list of scans extracted from one transcript,
// first scan in the file at index 0. Immutable once parsing finishes.
type ScanSequence []Scan

// Bound returns the largest distance in meters across all scans, after
// applying the no-return clamp. Used to fix plot axes across frames.
func (seq ScanSequence) Bound(maxRangeMM int) float64 {
	bound := 0.0
	for _, s := range seq {
		for _, p := range s.Points(maxRangeMM) {
			if v := math.Abs(p.X); v > bound {
				bound = v
			}
			if v := math.Abs(p.Y); v > bound {
				bound = v
			}
		}
	}
	return bound
}
