package preview

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexToRGB(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"#3f51b5", "63, 81, 181"},
		{"#f50057", "245, 0, 87"},
		{"#FFFFFF", "255, 255, 255"},
		{"000000", "0, 0, 0"},
		{"#333333", "51, 51, 51"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, HexToRGB(tc.input), "HexToRGB(%q)", tc.input)
	}
}

func TestHexToRGBMalformedFallsBack(t *testing.T) {
	for _, input := range []string{"", "#fff", "#12345", "#1234567", "#gg0000", "red", "rgb(1,2,3)", "##3f51b5"} {
		assert.Equal(t, FallbackRGB, HexToRGB(input), "HexToRGB(%q)", input)
	}
}

func TestHexToRGBRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 500; i++ {
		hex := fmt.Sprintf("#%06x", rng.Intn(1<<24))

		parts := strings.Split(HexToRGB(hex), ", ")
		require.Len(t, parts, 3, hex)

		var rebuilt strings.Builder
		rebuilt.WriteString("#")
		for _, p := range parts {
			n, err := strconv.Atoi(p)
			require.NoError(t, err)
			require.True(t, n >= 0 && n <= 255, "channel %d out of range for %s", n, hex)
			fmt.Fprintf(&rebuilt, "%02x", n)
		}
		assert.Equal(t, hex, rebuilt.String())
	}
}
