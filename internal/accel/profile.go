// Package accel implements pointer acceleration profiles.
package accel

import (
	"strings"

	"github.com/frudas24/deskpad/internal/pointer"
	log "github.com/sirupsen/logrus"
)

const (
	// NameNone disables acceleration.
	NameNone = "noacceleration"
	// DefaultName is used when a profile name is unknown.
	DefaultName = "medium"
)

// Profile turns raw touch deltas into accelerated pointer deltas.
type Profile interface {
	// TouchMoved records a raw delta observed at timestampMs.
	TouchMoved(dx, dy float64, timestampMs uint64)
	// Commit returns the accelerated delta for the samples recorded since the last commit.
	Commit() pointer.Delta
}

// exponents maps curve names to polynomial exponents.
var exponents = map[string]float64{
	"weaker":   0.25,
	"weak":     0.5,
	"medium":   1.0,
	"strong":   1.5,
	"stronger": 2.0,
}

// Names lists every known profile name.
func Names() []string {
	return []string{NameNone, "weaker", "weak", "medium", "strong", "stronger"}
}

// Known reports whether name selects a profile without falling back.
func Known(name string) bool {
	name = normalize(name)
	if name == NameNone {
		return true
	}
	_, ok := exponents[name]
	return ok
}

// ByName returns a fresh profile for name, falling back to DefaultName.
func ByName(name string) Profile {
	name = normalize(name)
	if name == NameNone {
		return &identity{}
	}
	exp, ok := exponents[name]
	if !ok {
		log.Debugf("accel: unknown profile %q, using %s", name, DefaultName)
		exp = exponents[DefaultName]
	}
	return newSpeedCurve(exp)
}

// normalize trims and lowercases a profile name.
func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// identity passes raw deltas through unchanged.
type identity struct {
	pending pointer.Delta
}

// TouchMoved adds the raw delta to the pending output.
func (p *identity) TouchMoved(dx, dy float64, _ uint64) {
	p.pending.X += dx
	p.pending.Y += dy
}

// Commit returns and clears the pending delta.
func (p *identity) Commit() pointer.Delta {
	out := p.pending
	p.pending = pointer.Delta{}
	return out
}
