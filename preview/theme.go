package preview

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/ZacxDev/storefront/models"
)

const (
	DefaultPrimary     = "#3f51b5"
	DefaultSecondary   = "#f50057"
	DefaultBackground  = "#ffffff"
	DefaultText        = "#333333"
	DefaultAccent      = "#4caf50"
	DefaultHeadingFont = "Poppins"
	DefaultBodyFont    = "Inter"

	ContainedWidth = "1200px"
	FullWidth      = "100%"

	ContentWidthContained = "contained"
)

var fontNamePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 \-]{0,63}$`)

// Theme is Settings with every default applied and every value validated.
// Sections only ever read from a Theme, never from raw Settings.
type Theme struct {
	Primary      string
	PrimaryRGB   string
	Secondary    string
	SecondaryRGB string
	Background   string
	Text         string
	Accent       string
	HeadingFont  string
	BodyFont     string
	ContentWidth string
}

func NewTheme(s models.Settings) Theme {
	t := Theme{
		Primary:     colorOr(s.Colors.Primary, DefaultPrimary),
		Secondary:   colorOr(s.Colors.Secondary, DefaultSecondary),
		Background:  colorOr(s.Colors.Background, DefaultBackground),
		Text:        colorOr(s.Colors.Text, DefaultText),
		Accent:      colorOr(s.Colors.Accent, DefaultAccent),
		HeadingFont: fontOr(s.Fonts.Heading, DefaultHeadingFont),
		BodyFont:    fontOr(s.Fonts.Body, DefaultBodyFont),
	}

	t.PrimaryRGB = HexToRGB(t.Primary)
	t.SecondaryRGB = HexToRGB(t.Secondary)

	if s.Layout.ContentWidth == ContentWidthContained {
		t.ContentWidth = ContainedWidth
	} else {
		t.ContentWidth = FullWidth
	}

	return t
}

// FontsURL is the Google Fonts stylesheet for the heading and body fonts.
func (t Theme) FontsURL() string {
	families := []string{t.HeadingFont}
	if t.BodyFont != t.HeadingFont {
		families = append(families, t.BodyFont)
	}

	params := make([]string, 0, len(families))
	for _, f := range families {
		params = append(params, "family="+url.QueryEscape(f)+":wght@400;500;600;700")
	}

	return "https://fonts.googleapis.com/css2?" + strings.Join(params, "&") + "&display=swap"
}

func colorOr(v, def string) string {
	v = strings.TrimSpace(v)
	if !ValidHexColor(v) {
		return def
	}
	if !strings.HasPrefix(v, "#") {
		v = "#" + v
	}
	return strings.ToLower(v)
}

func fontOr(v, def string) string {
	v = strings.TrimSpace(v)
	if !fontNamePattern.MatchString(v) {
		return def
	}
	return v
}
