package discovery

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/heyps/pkg/errors"
	"github.com/arthur-debert/heyps/pkg/logging"
	"github.com/arthur-debert/heyps/pkg/runner"
	"github.com/rs/zerolog"
)

// DefaultMdfind is the Spotlight query utility
const DefaultMdfind = "mdfind"

// bundleSuffix marks application bundles
const bundleSuffix = ".app"

// Finder returns the locations of installed bundles with a given identifier
type Finder interface {
	Find(bundleID string) ([]string, error)
}

// Spotlight is a Finder backed by mdfind
type Spotlight struct {
	runner runner.Runner
	mdfind string
	logger zerolog.Logger
}

// NewSpotlight creates a Spotlight finder. An empty mdfind uses DefaultMdfind.
func NewSpotlight(r runner.Runner, mdfind string) *Spotlight {
	if mdfind == "" {
		mdfind = DefaultMdfind
	}
	return &Spotlight{
		runner: r,
		mdfind: mdfind,
		logger: logging.GetLogger("discovery"),
	}
}

// Query returns the metadata predicate matching bundleID exactly
func Query(bundleID string) string {
	return fmt.Sprintf("kMDItemCFBundleIdentifier == \"%s\"", bundleID)
}

// Find runs the Spotlight query and returns the application bundles it
// reported. An empty slice means the query worked but nothing is installed.
func (s *Spotlight) Find(bundleID string) ([]string, error) {
	cmd := runner.Command{Name: s.mdfind, Args: []string{Query(bundleID)}}

	result, err := s.runner.Run(cmd)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDiscoveryFailed,
			"failed to run %s", s.mdfind).
			WithDetail("bundle_id", bundleID)
	}

	if !result.Success() {
		return nil, errors.Newf(errors.ErrDiscoveryFailed,
			"%s exited with code %d: %s", s.mdfind, result.ExitCode, strings.TrimSpace(result.Stderr)).
			WithDetail("bundle_id", bundleID).
			WithDetail("exit_code", result.ExitCode)
	}

	bundles := FilterBundles(strings.Split(result.Stdout, "\n"))
	s.logger.Debug().
		Str("bundle_id", bundleID).
		Int("found", len(bundles)).
		Msg("Spotlight query finished")

	return bundles, nil
}

// FilterBundles keeps entries that are application bundles, dropping blank
// lines and anything without the .app suffix. Order is preserved.
func FilterBundles(paths []string) []string {
	bundles := make([]string, 0, len(paths))
	for _, p := range paths {
		p = strings.TrimSpace(p)
		if p == "" || !IsBundle(p) {
			continue
		}
		bundles = append(bundles, p)
	}
	return bundles
}

// IsBundle reports whether path names an application bundle
func IsBundle(path string) bool {
	return strings.HasSuffix(strings.ToLower(strings.TrimRight(path, "/")), bundleSuffix)
}

// DisplayName returns the bundle's file name without the .app suffix,
// which is the name the scripting bridge knows the application by.
func DisplayName(path string) string {
	base := filepath.Base(strings.TrimRight(path, "/"))
	if strings.HasSuffix(strings.ToLower(base), bundleSuffix) {
		base = base[:len(base)-len(bundleSuffix)]
	}
	return base
}
