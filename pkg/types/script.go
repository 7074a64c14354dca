package types

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/heyps/pkg/errors"
)

// ScriptKind is the script flavour, derived from the file extension
type ScriptKind int

const (
	// ScriptPlayback is a UXP script (.psjs) opened directly by Photoshop
	ScriptPlayback ScriptKind = iota + 1
	// ScriptExtendScript is an ExtendScript file (.jsx)
	ScriptExtendScript
	// ScriptPlain is a plain JavaScript file (.js)
	ScriptPlain
)

// Script extensions, lower case with the leading dot
const (
	ExtPlayback     = ".psjs"
	ExtExtendScript = ".jsx"
	ExtPlain        = ".js"
)

// ParseScriptKind derives the script kind from the file name suffix.
// The comparison ignores case.
func ParseScriptKind(path string) (ScriptKind, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ExtPlayback:
		return ScriptPlayback, nil
	case ExtExtendScript:
		return ScriptExtendScript, nil
	case ExtPlain:
		return ScriptPlain, nil
	default:
		return 0, errors.Newf(errors.ErrUnsupportedScript,
			"unsupported file type %q for %s (expected %s, %s or %s)",
			ext, filepath.Base(path), ExtPlayback, ExtExtendScript, ExtPlain).
			WithDetail("path", path)
	}
}

// Extension returns the canonical file extension for the kind
func (k ScriptKind) Extension() string {
	switch k {
	case ScriptPlayback:
		return ExtPlayback
	case ScriptExtendScript:
		return ExtExtendScript
	case ScriptPlain:
		return ExtPlain
	default:
		panic(fmt.Sprintf("unknown ScriptKind %d", int(k)))
	}
}

func (k ScriptKind) String() string {
	return k.Extension()
}
