package dispatcher

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/heyps/pkg/types"
)

// stringEscaper turns arbitrary text into the body of an AppleScript
// string literal.
var stringEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// EscapeString escapes backslashes and double quotes for use inside a
// double quoted AppleScript string.
func EscapeString(s string) string {
	return stringEscaper.Replace(s)
}

// AppleScript returns the one-line script that makes app run scriptPath.
// The application is addressed by its display name; After Effects takes
// DoScriptFile while Photoshop and Illustrator take do javascript.
func AppleScript(app *types.ResolvedApp, scriptPath string) string {
	name := EscapeString(app.Name)
	file := EscapeString(scriptPath)

	switch app.App {
	case types.AppAfterEffects:
		return fmt.Sprintf(`tell application "%s" to DoScriptFile "%s"`, name, file)
	case types.AppPhotoshop, types.AppIllustrator:
		return fmt.Sprintf(`tell application "%s" to do javascript of file "%s"`, name, file)
	default:
		panic(fmt.Sprintf("unknown AppID %d", int(app.App)))
	}
}
