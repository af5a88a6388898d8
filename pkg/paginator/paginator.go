// Package paginator implements linear navigation over a fixed set of pages.
//
// A Paginator is a plain state object: it has no timers and no locking. The
// session that owns it decides when it expires and serializes access to it.
package paginator

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned by New when fewer than two pages are given.
var ErrInvalidArgument = errors.New("paginator: at least two pages are required")

// Authorizer decides whether actor may navigate.
type Authorizer func(actor string) bool

// Result describes what a navigation request did.
type Result int

const (
	// Moved means the index changed by one.
	Moved Result = iota
	// AtBoundary means the request was a no-op because the index is already
	// at the first or last page.
	AtBoundary
	// Denied means the actor is not allowed to navigate; nothing changed.
	Denied
)

func (r Result) String() string {
	switch r {
	case Moved:
		return "moved"
	case AtBoundary:
		return "at_boundary"
	case Denied:
		return "denied"
	default:
		return fmt.Sprintf("Result(%d)", int(r))
	}
}

// Paginator holds pages and the index of the page being shown.
// The index always stays in [0, Len()-1].
type Paginator[P any] struct {
	pages     []P
	index     int
	authorize Authorizer
}

// New returns a paginator positioned on the first page. A nil authorize
// allows everyone.
func New[P any](pages []P, authorize Authorizer) (*Paginator[P], error) {
	if len(pages) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidArgument, len(pages))
	}
	if authorize == nil {
		authorize = func(string) bool { return true }
	}
	return &Paginator[P]{
		pages:     append([]P(nil), pages...),
		authorize: authorize,
	}, nil
}

// Allowed reports whether actor may navigate.
func (p *Paginator[P]) Allowed(actor string) bool {
	return p.authorize(actor)
}

// Previous moves one page back and returns the page now shown.
func (p *Paginator[P]) Previous(actor string) (P, Result) {
	return p.step(actor, -1)
}

// Next moves one page forward and returns the page now shown.
func (p *Paginator[P]) Next(actor string) (P, Result) {
	return p.step(actor, 1)
}

func (p *Paginator[P]) step(actor string, delta int) (P, Result) {
	if !p.authorize(actor) {
		return p.pages[p.index], Denied
	}
	next := p.index + delta
	if next < 0 || next >= len(p.pages) {
		return p.pages[p.index], AtBoundary
	}
	p.index = next
	return p.pages[p.index], Moved
}

// Current returns the page at the current index.
func (p *Paginator[P]) Current() P { return p.pages[p.index] }

// Index returns the zero-based current index.
func (p *Paginator[P]) Index() int { return p.index }

// Len returns the number of pages.
func (p *Paginator[P]) Len() int { return len(p.pages) }

// AtStart reports whether the first page is shown.
func (p *Paginator[P]) AtStart() bool { return p.index == 0 }

// AtEnd reports whether the last page is shown.
func (p *Paginator[P]) AtEnd() bool { return p.index == len(p.pages)-1 }

// PositionLabel returns the one-based position, e.g. "2/3".
func (p *Paginator[P]) PositionLabel() string {
	return fmt.Sprintf("%d/%d", p.index+1, len(p.pages))
}
