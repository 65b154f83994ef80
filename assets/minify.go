// Package assets minifies the stylesheet and script inlined into preview pages.
package assets

import (
	"strings"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/pkg/errors"
)

var engines = []api.Engine{
	{Name: api.EngineChrome, Version: "100"},
	{Name: api.EngineFirefox, Version: "100"},
	{Name: api.EngineSafari, Version: "15"},
	{Name: api.EngineEdge, Version: "100"},
}

func MinifyCSS(src string) (string, error) {
	return transform(src, api.LoaderCSS)
}

// MinifyJS leaves identifiers alone.
func MinifyJS(src string) (string, error) {
	return transform(src, api.LoaderJS)
}

func transform(src string, loader api.Loader) (string, error) {
	result := api.Transform(src, api.TransformOptions{
		Loader:           loader,
		MinifyWhitespace: true,
		MinifySyntax:     true,
		Engines:          engines,
	})

	if len(result.Errors) > 0 {
		msgs := make([]string, 0, len(result.Errors))
		for _, m := range result.Errors {
			msgs = append(msgs, m.Text)
		}
		return "", errors.Errorf("minify: %s", strings.Join(msgs, "; "))
	}

	return strings.TrimSpace(string(result.Code)), nil
}
