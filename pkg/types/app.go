package types

import (
	"fmt"

	"github.com/arthur-debert/heyps/pkg/errors"
)

// AppID identifies one of the supported Adobe applications
type AppID int

const (
	// AppPhotoshop is Adobe Photoshop ("ps")
	AppPhotoshop AppID = iota + 1
	// AppIllustrator is Adobe Illustrator ("ai")
	AppIllustrator
	// AppAfterEffects is Adobe After Effects ("ae")
	AppAfterEffects
)

// bundleIDPrefix is shared by every Adobe bundle identifier
const bundleIDPrefix = "com.adobe."

// AllApps returns every supported application in abbreviation order
func AllApps() []AppID {
	return []AppID{AppPhotoshop, AppIllustrator, AppAfterEffects}
}

// ParseAppID converts a user supplied abbreviation into an AppID.
// Only exact, lower-case abbreviations are accepted.
func ParseAppID(s string) (AppID, error) {
	switch s {
	case "ps":
		return AppPhotoshop, nil
	case "ai":
		return AppIllustrator, nil
	case "ae":
		return AppAfterEffects, nil
	default:
		return 0, errors.Newf(errors.ErrInvalidApp,
			"unsupported application %q (expected one of: ps, ai, ae)", s).
			WithDetail("app", s)
	}
}

// Abbr returns the short name used on the command line
func (a AppID) Abbr() string {
	switch a {
	case AppPhotoshop:
		return "ps"
	case AppIllustrator:
		return "ai"
	case AppAfterEffects:
		return "ae"
	default:
		panic(fmt.Sprintf("unknown AppID %d", int(a)))
	}
}

// BaseName returns the product name without the "Adobe" prefix or a year
func (a AppID) BaseName() string {
	switch a {
	case AppPhotoshop:
		return "Photoshop"
	case AppIllustrator:
		return "Illustrator"
	case AppAfterEffects:
		return "After Effects"
	default:
		panic(fmt.Sprintf("unknown AppID %d", int(a)))
	}
}

// BundleID returns the CFBundleIdentifier shared by every installed
// version of the application.
func (a AppID) BundleID() string {
	switch a {
	case AppPhotoshop:
		return bundleIDPrefix + "Photoshop"
	case AppIllustrator:
		return bundleIDPrefix + "Illustrator"
	case AppAfterEffects:
		return bundleIDPrefix + "AfterEffects"
	default:
		panic(fmt.Sprintf("unknown AppID %d", int(a)))
	}
}

func (a AppID) String() string {
	return a.BaseName()
}
