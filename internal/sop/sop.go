// Package sop generates Standard Operating Procedure documents from a
// short form payload. Generation is deterministic in shape: a fixed set
// of sections with either 13 or 26 numbered procedure entries, each with
// action/control/outcome sub-lines.
package sop

import (
	"math/rand"
	"time"
)

// Depth selects the document length tier.
type Depth int

const (
	Depth13 Depth = 13
	Depth26 Depth = 26
)

// Valid reports whether d is a supported depth.
func (d Depth) Valid() bool { return d == Depth13 || d == Depth26 }

// ParseDepth converts a form value to a Depth.
func ParseDepth(s string) (Depth, bool) {
	switch s {
	case "13":
		return Depth13, true
	case "26":
		return Depth26, true
	}
	return 0, false
}

// DefaultBrief stands in when the user supplies no text brief.
const DefaultBrief = "Digital Marketing"

// Payload is the accumulated builder form input.
type Payload struct {
	FirstName string
	LastName  string
	Company   string
	Category  string
	Title     string
	Brief     string
}

// Document is a generated SOP.
type Document struct {
	ID          string // e.g. SOP-482913
	Title       string
	Category    string
	Company     string
	Owner       string
	Depth       Depth
	Content     string
	GeneratedAt time.Time
}

// Generator builds SOP documents. The clock and random source are
// injectable so document IDs and dates are reproducible in tests.
type Generator struct {
	Now  func() time.Time
	Rand *rand.Rand
}

// New returns a Generator using the wall clock and a time-seeded source.
func New() *Generator {
	return &Generator{
		Now:  time.Now,
		Rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}
