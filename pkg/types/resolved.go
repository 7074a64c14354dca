package types

// ResolvedApp is one installed application bundle chosen by the resolver.
// It is built once per invocation and not modified afterwards.
type ResolvedApp struct {
	// App is the application that was asked for
	App AppID

	// BundleID is the discovery key used to find the bundle
	BundleID string

	// Name is the bundle file name without ".app", e.g. "Adobe Photoshop 2024".
	// The scripting bridge addresses applications by this name.
	Name string

	// Path is the bundle location, e.g. "/Applications/Adobe Photoshop 2024/Adobe Photoshop 2024.app"
	Path string

	// Selector is the version selector that picked this bundle
	Selector Selector
}

// DispatchRequest pairs a resolved application with the script to run in it
type DispatchRequest struct {
	App     *ResolvedApp
	Kind    ScriptKind
	Path    string
	Verbose bool
}

// NewDispatchRequest derives the script kind from path and builds a request.
// path is expected to point at an existing regular file.
func NewDispatchRequest(app *ResolvedApp, path string, verbose bool) (DispatchRequest, error) {
	kind, err := ParseScriptKind(path)
	if err != nil {
		return DispatchRequest{}, err
	}
	return DispatchRequest{
		App:     app,
		Kind:    kind,
		Path:    path,
		Verbose: verbose,
	}, nil
}
