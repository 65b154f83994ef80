package utils

import (
	"regexp"
	"strings"
)

// DefaultBaseDomain is the platform domain previews are displayed under.
const DefaultBaseDomain = "storefront.app"

var protocolPattern = regexp.MustCompile(`^[a-z][a-z0-9+.-]*://`)

// NormalizeDomain reduces whatever a user typed as their domain to the bare
// slug. Scheme, path and the platform suffix of baseDomain are dropped and
// the result is lowercased. An empty baseDomain means DefaultBaseDomain.
func NormalizeDomain(raw, baseDomain string) string {
	d := strings.ToLower(strings.TrimSpace(raw))
	d = protocolPattern.ReplaceAllString(d, "")

	if i := strings.IndexAny(d, "/?#"); i >= 0 {
		d = d[:i]
	}

	base := platformDomain(baseDomain)
	d = strings.TrimSuffix(d, ".preview."+base)
	d = strings.TrimSuffix(d, "."+base)

	return strings.Trim(d, ".")
}

func platformDomain(baseDomain string) string {
	base := strings.ToLower(strings.Trim(baseDomain, ". "))
	if base == "" {
		return DefaultBaseDomain
	}
	return base
}

// PreviewURL is where the preview of domain is served from.
func PreviewURL(previewBase, baseDomain, domain string) string {
	return strings.TrimRight(previewBase, "/") + "/" + NormalizeDomain(domain, baseDomain)
}

// DisplayDomain shows the user what the domain would look like once hosted.
func DisplayDomain(baseDomain, domain string) string {
	return NormalizeDomain(domain, baseDomain) + ".preview." + platformDomain(baseDomain)
}
