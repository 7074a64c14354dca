// Package resolver turns an application and a version selector into one
// installed application bundle.
//
// Candidates come from a discovery.Finder and are sorted by path before a
// selector is applied, so the result never depends on the order the
// metadata index returned them in. Matching is done on bundle names: Adobe
// embeds the release year or a pre-release marker in every bundle name.
package resolver

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/heyps/pkg/discovery"
	"github.com/arthur-debert/heyps/pkg/errors"
	"github.com/arthur-debert/heyps/pkg/logging"
	"github.com/arthur-debert/heyps/pkg/types"
	"github.com/rs/zerolog"
)

// DefaultPrereleaseMarker is the substring Adobe puts in beta bundle names
const DefaultPrereleaseMarker = "(Beta)"

// Resolver picks installed application bundles
type Resolver struct {
	finder discovery.Finder
	marker string
	logger zerolog.Logger
}

// New creates a Resolver. An empty marker uses DefaultPrereleaseMarker.
func New(finder discovery.Finder, marker string) *Resolver {
	if marker == "" {
		marker = DefaultPrereleaseMarker
	}
	return &Resolver{
		finder: finder,
		marker: marker,
		logger: logging.GetLogger("resolver"),
	}
}

// Marker returns the pre-release marker in use
func (r *Resolver) Marker() string {
	return r.marker
}

// Candidates returns every installed bundle of app, sorted by path.
// It fails with ErrAppNotFound when nothing is installed.
func (r *Resolver) Candidates(app types.AppID) ([]string, error) {
	bundleID := app.BundleID()

	found, err := r.finder.Find(bundleID)
	if err != nil {
		return nil, err
	}

	candidates := discovery.FilterBundles(found)
	if len(candidates) == 0 {
		return nil, errors.Newf(errors.ErrAppNotFound,
			"no installed %s found (bundle id %s)", app.BaseName(), bundleID).
			WithDetail("app", app.Abbr()).
			WithDetail("bundle_id", bundleID)
	}

	sort.Strings(candidates)
	return candidates, nil
}

// Resolve finds the installed bundle of app chosen by sel
func (r *Resolver) Resolve(app types.AppID, sel types.Selector) (*types.ResolvedApp, error) {
	done := logging.LogOperationStart(r.logger, "resolve")
	defer done()

	candidates, err := r.Candidates(app)
	if err != nil {
		return nil, err
	}

	path, err := Select(candidates, sel, r.marker)
	if err != nil {
		return nil, errors.Newf(errors.GetErrorCode(err),
			"%s %s", app.BaseName(), errors.Message(err)).
			WithDetail("app", app.Abbr()).
			WithDetail("target", sel.String())
	}

	resolved := &types.ResolvedApp{
		App:      app,
		BundleID: app.BundleID(),
		Name:     discovery.DisplayName(path),
		Path:     path,
		Selector: sel,
	}

	r.logger.Info().
		Str("app", app.Abbr()).
		Str("target", sel.String()).
		Str("name", resolved.Name).
		Str("path", resolved.Path).
		Int("candidates", len(candidates)).
		Msg("Resolved application")

	return resolved, nil
}

// Select applies sel to candidates, which must already be sorted.
// Names are compared on the bundle's base name.
//
//   - latest: the last candidate without marker; when every candidate is a
//     pre-release, the last candidate overall.
//   - beta: the last candidate with marker.
//   - year: the last candidate whose name contains the year.
func Select(candidates []string, sel types.Selector, marker string) (string, error) {
	if len(candidates) == 0 {
		return "", errors.New(errors.ErrAppNotFound, "no candidates to select from")
	}

	switch sel.Kind {
	case types.SelectLatest:
		if path, ok := lastMatching(candidates, func(name string) bool {
			return !strings.Contains(name, marker)
		}); ok {
			return path, nil
		}
		return candidates[len(candidates)-1], nil

	case types.SelectBeta:
		if path, ok := lastMatching(candidates, func(name string) bool {
			return strings.Contains(name, marker)
		}); ok {
			return path, nil
		}
		return "", errors.New(errors.ErrBetaNotFound, "beta not found").
			WithDetail("marker", marker)

	case types.SelectYear:
		if path, ok := lastMatching(candidates, func(name string) bool {
			return strings.Contains(name, sel.Year)
		}); ok {
			return path, nil
		}
		return "", errors.Newf(errors.ErrVersionNotFound, "version %s not found", sel.Year).
			WithDetail("year", sel.Year)

	default:
		return "", errors.Newf(errors.ErrInternal, "unknown selector kind %d", int(sel.Kind))
	}
}

// IsPrerelease reports whether the bundle name of path carries marker
func IsPrerelease(path, marker string) bool {
	return strings.Contains(filepath.Base(path), marker)
}

// lastMatching scans from the end and returns the first path whose base
// name satisfies match.
func lastMatching(candidates []string, match func(name string) bool) (string, bool) {
	for i := len(candidates) - 1; i >= 0; i-- {
		if match(filepath.Base(candidates[i])) {
			return candidates[i], true
		}
	}
	return "", false
}
