package preview

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// FallbackRGB is the triplet for the default primary color #3f51b5.
const FallbackRGB = "63, 81, 181"

var hexColorPattern = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$`)

// ValidHexColor reports whether s is a 6 digit hex color, with or without #.
func ValidHexColor(s string) bool {
	return hexColorPattern.MatchString(s)
}

// HexToRGB turns "#RRGGBB" into "R, G, B" for use inside rgba(). Anything
// malformed yields FallbackRGB.
func HexToRGB(hex string) string {
	if !ValidHexColor(hex) {
		return FallbackRGB
	}

	v, err := strconv.ParseUint(strings.TrimPrefix(hex, "#"), 16, 32)
	if err != nil {
		return FallbackRGB
	}

	return fmt.Sprintf("%d, %d, %d", v>>16&0xff, v>>8&0xff, v&0xff)
}
