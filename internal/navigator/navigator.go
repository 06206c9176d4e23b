// Package navigator tracks which scan of a parsed sequence is on display.
package navigator

import (
	"errors"

	"github.com/ldstools/ldsview/internal/lds"
)

// ErrNoScans is returned when constructing a navigator over an empty sequence.
var ErrNoScans = errors.New("no scans")

// Navigator holds an immutable scan sequence and the index of the scan
// currently shown. Stepping saturates at both ends; there is no wraparound
// and no invalid index reachable through the public methods.
type Navigator struct {
	scans lds.ScanSequence
	idx   int
}

// New creates a navigator positioned at the first scan.
func New(scans lds.ScanSequence) (*Navigator, error) {
	if len(scans) == 0 {
		return nil, ErrNoScans
	}
	return &Navigator{scans: scans}, nil
}

// Current returns the scan on display.
func (n *Navigator) Current() lds.Scan { return n.scans[n.idx] }

// Advance steps to the next scan, staying put at the last one.
func (n *Navigator) Advance() lds.Scan {
	if n.idx < len(n.scans)-1 {
		n.idx++
	}
	return n.scans[n.idx]
}

// Retreat steps to the previous scan, staying put at the first one.
func (n *Navigator) Retreat() lds.Scan {
	if n.idx > 0 {
		n.idx--
	}
	return n.scans[n.idx]
}

// Jump moves to the given index, clamped to the valid range.
func (n *Navigator) Jump(i int) lds.Scan {
	if i < 0 {
		i = 0
	}
	if i > len(n.scans)-1 {
		i = len(n.scans) - 1
	}
	n.idx = i
	return n.scans[n.idx]
}

// Index reports the current position, for status display.
func (n *Navigator) Index() int { return n.idx }

// Len reports the number of scans in the sequence.
func (n *Navigator) Len() int { return len(n.scans) }

// Sequence returns the underlying scan sequence.
func (n *Navigator) Sequence() lds.ScanSequence { return n.scans }
