// Package testdata builds synthetic Botvac CLI transcripts for tests.
package testdata

import (
	"fmt"
	"math/rand"
	"strings"
)

// Header is the table header the robot prints before each scan.
const Header = "AngleInDegrees,DistInMM,Intensity,ErrorCodeHEX"

// ScanRows renders one full rotation as comma-separated data rows.
// Distance/intensity values are derived from the seed so two scans with
// different seeds are distinguishable in assertions.
func ScanRows(seed int) string {
	var b strings.Builder
	for angle := 0; angle < 360; angle++ {
		fmt.Fprintf(&b, "%d,%d,%d,0\n", angle, 1000+seed*10+angle%7, 50+seed)
	}
	return b.String()
}

// Transcript builds a capture of n scans with CLI chatter around each table.
func Transcript(n int) string {
	var b strings.Builder
	b.WriteString("Neato Robotics BotVac85\n")
	for i := 0; i < n; i++ {
		b.WriteString("user@host:~$ getldsscan\n")
		b.WriteString(Header + "\n")
		b.WriteString(ScanRows(i))
		b.WriteString("ROTATION_SPEED,5.02\n\n")
	}
	return b.String()
}

// Noisy interleaves junk lines into a transcript at a fixed cadence. The
// junk is shaped to never classify as a data row.
func Noisy(transcript string, rng *rand.Rand) string {
	junk := []string{
		"",
		"prompt> ",
		"### buffer overrun ###",
		"999 12 4 0", // angle out of range
		"12 34 56",   // short row
		"twelve 34 56 0",
		"-1 100 50 0",
	}
	lines := strings.Split(transcript, "\n")
	var b strings.Builder
	for i, line := range lines {
		b.WriteString(line + "\n")
		if i%5 == 0 {
			b.WriteString(junk[rng.Intn(len(junk))] + "\n")
		}
	}
	return b.String()
}
