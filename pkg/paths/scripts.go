package paths

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/heyps/pkg/errors"
)

// ResolveScript returns the absolute path of the script named by path.
//
// path is used as given when it exists. A relative path that does not
// exist is looked up in scriptsDir. The result must be a regular file.
func ResolveScript(path, scriptsDir string) (string, error) {
	if path == "" {
		return "", errors.New(errors.ErrScriptNotFound, "no script file given")
	}

	path = ExpandHome(path)
	candidates := []string{path}
	if !filepath.IsAbs(path) && scriptsDir != "" {
		candidates = append(candidates, filepath.Join(ExpandHome(scriptsDir), path))
	}

	for _, candidate := range candidates {
		info, err := os.Stat(candidate)
		if err != nil {
			continue
		}
		if !info.Mode().IsRegular() {
			return "", errors.Newf(errors.ErrScriptNotFound, "%s is not a regular file", candidate).
				WithDetail("path", candidate)
		}
		abs, err := filepath.Abs(candidate)
		if err != nil {
			return "", errors.Wrapf(err, errors.ErrScriptNotFound, "failed to get absolute path for %s", candidate)
		}
		return abs, nil
	}

	return "", errors.Newf(errors.ErrScriptNotFound, "script file %s does not exist", path).
		WithDetail("path", path).
		WithDetail("scripts_dir", scriptsDir)
}
