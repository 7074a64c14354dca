package display

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/heyps/pkg/resolver"
	"github.com/arthur-debert/heyps/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	ps2023 = "/Applications/Adobe Photoshop 2023/Adobe Photoshop 2023.app"
	ps2024 = "/Applications/Adobe Photoshop 2024/Adobe Photoshop 2024.app"
	psBeta = "/Applications/Adobe Photoshop (Beta)/Adobe Photoshop (Beta).app"
)

func TestNewListResult(t *testing.T) {
	versions := map[string]string{
		ps2023: "24.7.0",
		ps2024: "25.5.1",
	}
	readVersion := func(path string) (string, error) {
		if v, ok := versions[path]; ok {
			return v, nil
		}
		return "", stderrors.New("no Info.plist")
	}

	result := NewListResult(types.AppPhotoshop,
		[]string{psBeta, ps2023, ps2024}, resolver.DefaultPrereleaseMarker, readVersion)

	assert.Equal(t, "ps", result.App)
	assert.Equal(t, "com.adobe.Photoshop", result.BundleID)
	require.Len(t, result.Installations, 3)

	beta := result.Installations[0]
	assert.Equal(t, "Adobe Photoshop (Beta)", beta.Name)
	assert.True(t, beta.Beta)
	assert.Empty(t, beta.Version)
	assert.Equal(t, []string{"beta"}, beta.PickedBy)

	assert.Equal(t, "24.7.0", result.Installations[1].Version)
	assert.Empty(t, result.Installations[1].PickedBy)

	latest := result.Installations[2]
	assert.False(t, latest.Beta)
	assert.Equal(t, []string{"latest"}, latest.PickedBy)
}

func TestNewListResult_OnlyBeta(t *testing.T) {
	result := NewListResult(types.AppPhotoshop, []string{psBeta}, resolver.DefaultPrereleaseMarker, nil)

	require.Len(t, result.Installations, 1)
	assert.Equal(t, []string{"latest", "beta"}, result.Installations[0].PickedBy)
}

func TestNewResolveResult(t *testing.T) {
	app := &types.ResolvedApp{
		App:      types.AppIllustrator,
		BundleID: "com.adobe.Illustrator",
		Name:     "Adobe Illustrator 2024",
		Path:     "/Applications/Adobe Illustrator 2024/Adobe Illustrator 2024.app",
		Selector: types.Year("2024"),
	}

	result := NewResolveResult(app, "28.0")
	assert.Equal(t, "ai", result.App)
	assert.Equal(t, "2024", result.Target)
	assert.Equal(t, app.Path, result.Path)
	assert.Equal(t, "28.0", result.Version)
}
