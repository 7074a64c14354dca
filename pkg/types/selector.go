package types

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/heyps/pkg/errors"
)

// SelectorKind tags the variant held by a Selector
type SelectorKind int

const (
	// SelectLatest picks the most recent non pre-release build
	SelectLatest SelectorKind = iota + 1
	// SelectBeta picks the most recent pre-release build
	SelectBeta
	// SelectYear picks the build whose name carries a release year
	SelectYear
)

// Selector choices as typed on the command line
const (
	TargetLatest = "latest"
	TargetBeta   = "beta"
)

// SelectorUsage lists the accepted selector forms
const SelectorUsage = "latest, beta, or a release year such as 2024"

// Selector describes which installed version of an application to use
type Selector struct {
	Kind SelectorKind
	// Year is set only for SelectYear
	Year string
}

// Latest returns the selector for the newest stable build
func Latest() Selector { return Selector{Kind: SelectLatest} }

// Beta returns the selector for the newest pre-release build
func Beta() Selector { return Selector{Kind: SelectBeta} }

// Year returns the selector for a specific release year
func Year(year string) Selector { return Selector{Kind: SelectYear, Year: year} }

// ParseSelector parses "latest", "beta" or a four digit year starting with "20"
func ParseSelector(s string) (Selector, error) {
	switch {
	case s == TargetLatest:
		return Latest(), nil
	case s == TargetBeta:
		return Beta(), nil
	case isReleaseYear(s):
		return Year(s), nil
	default:
		return Selector{}, errors.Newf(errors.ErrInvalidSelector,
			"unsupported version %q (expected %s)", s, SelectorUsage).
			WithDetail("target", s)
	}
}

func isReleaseYear(s string) bool {
	if len(s) != 4 || !strings.HasPrefix(s, "20") {
		return false
	}
	for _, r := range s[2:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// String renders the selector the way it is typed on the command line
func (s Selector) String() string {
	switch s.Kind {
	case SelectLatest:
		return TargetLatest
	case SelectBeta:
		return TargetBeta
	case SelectYear:
		return s.Year
	default:
		panic(fmt.Sprintf("unknown SelectorKind %d", int(s.Kind)))
	}
}
