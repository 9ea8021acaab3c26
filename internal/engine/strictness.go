package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/movecheck/internal/errors"
)

// QueenPaths selects how the queen's two path predicates combine for a move.
type QueenPaths int

const (
	// QueenBoth requires the diagonal AND the straight predicate to hold.
	// No real displacement satisfies both, so queens never move under it.
	QueenBoth QueenPaths = iota
	// QueenEither accepts a clear diagonal OR a clear straight line.
	QueenEither
)

// String returns the flag spelling of q.
func (q QueenPaths) String() string {
	if q == QueenEither {
		return "either"
	}
	return "both"
}

// ParseQueenPaths parses "both" or "either".
func ParseQueenPaths(s string) (QueenPaths, error) {
	switch strings.ToLower(s) {
	case "both":
		return QueenBoth, nil
	case "either":
		return QueenEither, nil
	}
	return QueenBoth, fmt.Errorf("queen paths %q: %w", s, errors.ErrInvalidConfig)
}

// StepRule selects the pawn and king geometry.
type StepRule int

const (
	// StepsForwardOnly lets a pawn or king move only to from+8 (one row up,
	// whatever its side) and lets a king capture only diagonally.
	StepsForwardOnly StepRule = iota
	// StepsStandard moves pawns one row toward the opponent (two from the
	// start row over an empty square) and lets the king move or capture on
	// any adjacent square.
	StepsStandard
)

// String returns the flag spelling of s.
func (s StepRule) String() string {
	if s == StepsStandard {
		return "standard"
	}
	return "forward"
}

// ParseStepRule parses "forward" or "standard".
func ParseStepRule(s string) (StepRule, error) {
	switch strings.ToLower(s) {
	case "forward":
		return StepsForwardOnly, nil
	case "standard":
		return StepsStandard, nil
	}
	return StepsForwardOnly, fmt.Errorf("step rule %q: %w", s, errors.ErrInvalidConfig)
}

// AttackGeometry selects how SquareIsAttacked searches for attackers.
type AttackGeometry int

const (
	// AttacksRay walks every ray to its first occupant. A pawn on an open
	// diagonal attacks at any distance and in either direction, and kings
	// are never searched for; a king on a straight ray only blocks it.
	AttacksRay AttackGeometry = iota
	// AttacksStandard limits a pawn to the square diagonally ahead of it
	// and adds the adjacent-king search.
	AttacksStandard
)

// String returns the flag spelling of a.
func (a AttackGeometry) String() string {
	if a == AttacksStandard {
		return "standard"
	}
	return "ray"
}

// ParseAttackGeometry parses "ray" or "standard".
func ParseAttackGeometry(s string) (AttackGeometry, error) {
	switch strings.ToLower(s) {
	case "ray":
		return AttacksRay, nil
	case "standard":
		return AttacksStandard, nil
	}
	return AttacksRay, fmt.Errorf("attack geometry %q: %w", s, errors.ErrInvalidConfig)
}

// Rules holds the switches for the movement simplifications. The zero
// value is ReferenceRules.
type Rules struct {
	QueenPaths QueenPaths
	Steps      StepRule
	Attacks    AttackGeometry

	// RejectEmptyDestination makes every move onto an empty square illegal.
	RejectEmptyDestination bool
}

// ReferenceRules returns the reference behaviour: queen paths ANDed,
// forward-only pawn and king steps, ray attacks, empty destinations
// allowed.
func ReferenceRules() Rules {
	return Rules{}
}

// StandardRules returns rules closer to real chess movement.
func StandardRules() Rules {
	return Rules{QueenPaths: QueenEither, Steps: StepsStandard, Attacks: AttacksStandard}
}

// String summarises the rule set for logs.
func (r Rules) String() string {
	return fmt.Sprintf("queen=%s steps=%s attacks=%s rejectempty=%v",
		r.QueenPaths, r.Steps, r.Attacks, r.RejectEmptyDestination)
}
