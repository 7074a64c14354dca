package resolver

import (
	"github.com/arthur-debert/heyps/pkg/discovery"
	"github.com/arthur-debert/heyps/pkg/runner"
)

func discoveryFinder(r runner.Runner) discovery.Finder {
	return discovery.NewSpotlight(r, "")
}
