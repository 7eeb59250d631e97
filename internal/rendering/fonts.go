package rendering

import (
	"fmt"
	"html"
	"strings"
)

// FontSource is one downloadable face of a font family.
type FontSource struct {
	URL    string `json:"url"`
	Weight int    `json:"weight"`
}

// FontAsset is a font family with its faces. Fonts are registered
// explicitly on a renderer at construction time; there is no process-wide
// font table.
type FontAsset struct {
	Family  string       `json:"family"`
	Sources []FontSource `json:"sources"`
}

// DefaultFontAssets returns the fonts the built-in templates reference by
// name. Templates using system families (Georgia, Helvetica) need no
// registration.
func DefaultFontAssets() []FontAsset {
	return []FontAsset{
		{
			Family: "Inter",
			Sources: []FontSource{
				{URL: "https://rsms.me/inter/font-files/Inter-Regular.woff2", Weight: 400},
				{URL: "https://rsms.me/inter/font-files/Inter-Bold.woff2", Weight: 700},
			},
		},
	}
}

// fontFaceCSS emits one @font-face rule per registered source.
func fontFaceCSS(assets []FontAsset) string {
	var sb strings.Builder
	for _, asset := range assets {
		for _, src := range asset.Sources {
			weight := src.Weight
			if weight == 0 {
				weight = 400
			}
			fmt.Fprintf(&sb, "@font-face{font-family:\"%s\";src:url(\"%s\");font-weight:%d;}\n",
				html.EscapeString(asset.Family), html.EscapeString(src.URL), weight)
		}
	}
	return sb.String()
}
