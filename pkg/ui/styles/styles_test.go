package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedStylesLoad(t *testing.T) {
	require.NoError(t, LoadStylesFromData(embeddedStyles))

	for _, name := range defaultStyleNames {
		_, ok := StyleRegistry[name]
		assert.True(t, ok, "missing style %s", name)
	}
	assert.True(t, GetStyle("Error").GetBold())
	assert.True(t, GetStyle("FilePath").GetItalic())
}

func TestLoadStylesFromData_Invalid(t *testing.T) {
	t.Cleanup(func() { _ = LoadStylesFromData(embeddedStyles) })

	err := LoadStylesFromData([]byte("styles: [not, a, map"))
	assert.Error(t, err)
}

func TestGetStyle_Unknown(t *testing.T) {
	assert.Equal(t, "text", Render("NoSuchStyle", "text"))
}
