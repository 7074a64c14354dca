// Package display holds the result structures heyps commands render.
// They carry json and yaml tags so every output format shares one shape.
package display

import (
	"github.com/arthur-debert/heyps/pkg/discovery"
	"github.com/arthur-debert/heyps/pkg/resolver"
	"github.com/arthur-debert/heyps/pkg/types"
)

// Installation is one installed bundle of an application
type Installation struct {
	Name    string `json:"name" yaml:"name"`
	Path    string `json:"path" yaml:"path"`
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
	Beta    bool   `json:"beta" yaml:"beta"`

	// PickedBy lists the named selectors that resolve to this bundle
	PickedBy []string `json:"pickedBy,omitempty" yaml:"pickedBy,omitempty"`
}

// ListResult is the output of `heyps list`
type ListResult struct {
	App           string         `json:"app" yaml:"app"`
	BundleID      string         `json:"bundleId" yaml:"bundleId"`
	Marker        string         `json:"marker" yaml:"marker"`
	Installations []Installation `json:"installations" yaml:"installations"`
}

// ResolveResult is the output of `heyps resolve`
type ResolveResult struct {
	App      string `json:"app" yaml:"app"`
	Target   string `json:"target" yaml:"target"`
	Name     string `json:"name" yaml:"name"`
	Path     string `json:"path" yaml:"path"`
	BundleID string `json:"bundleId" yaml:"bundleId"`
	Version  string `json:"version,omitempty" yaml:"version,omitempty"`
}

// VersionReader returns the version string of a bundle
type VersionReader func(bundlePath string) (string, error)

// NewListResult describes sorted candidates of app. A bundle whose version
// cannot be read is listed without one.
func NewListResult(app types.AppID, candidates []string, marker string, readVersion VersionReader) *ListResult {
	picks := make(map[string][]string)
	for _, sel := range []types.Selector{types.Latest(), types.Beta()} {
		if path, err := resolver.Select(candidates, sel, marker); err == nil {
			picks[path] = append(picks[path], sel.String())
		}
	}

	result := &ListResult{
		App:           app.Abbr(),
		BundleID:      app.BundleID(),
		Marker:        marker,
		Installations: make([]Installation, 0, len(candidates)),
	}

	for _, path := range candidates {
		inst := Installation{
			Name:     discovery.DisplayName(path),
			Path:     path,
			Beta:     resolver.IsPrerelease(path, marker),
			PickedBy: picks[path],
		}
		if readVersion != nil {
			if version, err := readVersion(path); err == nil {
				inst.Version = version
			}
		}
		result.Installations = append(result.Installations, inst)
	}

	return result
}

// NewResolveResult describes a resolved application
func NewResolveResult(app *types.ResolvedApp, version string) *ResolveResult {
	return &ResolveResult{
		App:      app.App.Abbr(),
		Target:   app.Selector.String(),
		Name:     app.Name,
		Path:     app.Path,
		BundleID: app.BundleID,
		Version:  version,
	}
}
