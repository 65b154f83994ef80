package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinifyCSS(t *testing.T) {
	out, err := MinifyCSS(`
		.hero {
			color: var(--primary-color);
			padding: 0px;
		}
	`)
	require.NoError(t, err)
	assert.NotContains(t, out, "\n")
	assert.Contains(t, out, ".hero{")
	assert.Contains(t, out, "var(--primary-color)")
}

func TestMinifyJS(t *testing.T) {
	out, err := MinifyJS(`
		document.addEventListener('DOMContentLoaded', function () {
			const navbar = document.querySelector('.navbar');
			console.log(navbar);
		});
	`)
	require.NoError(t, err)
	assert.NotContains(t, out, "\n")
	assert.Contains(t, out, "DOMContentLoaded")
}

func TestMinifyJSSyntaxError(t *testing.T) {
	_, err := MinifyJS("function (")
	assert.Error(t, err)
}
