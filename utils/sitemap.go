package utils

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
)

type Sitemap struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	Urls    []Url    `xml:"url"`
}

type Url struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// SitemapEntry is one published preview page.
type SitemapEntry struct {
	Path    string
	LastMod time.Time
}

func GenerateSitemaps(dir, origin string, entries []SitemapEntry) error {
	xmlOutput, err := GenerateSitemapContent(origin, entries)
	if err != nil {
		return err
	}

	xmlFile, err := os.Create(filepath.Join(dir, "sitemap.xml"))
	if err != nil {
		return errors.WithStack(err)
	}
	defer xmlFile.Close()

	if _, err := xmlFile.Write([]byte(xml.Header + xmlOutput)); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func GenerateSitemapContent(origin string, entries []SitemapEntry) (string, error) {
	baseURL := strings.TrimRight(origin, "/")
	sitemap := Sitemap{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
	}

	for _, entry := range entries {
		url := Url{
			Loc:        fmt.Sprintf("%s%s", baseURL, entry.Path),
			ChangeFreq: "weekly",
		}
		if !entry.LastMod.IsZero() {
			url.LastMod = entry.LastMod.Format("2006-01-02")
		}
		sitemap.Urls = append(sitemap.Urls, url)
	}

	xmlOutput, err := xml.MarshalIndent(sitemap, "", "  ")
	if err != nil {
		return "", errors.WithStack(err)
	}

	return string(xmlOutput), nil
}
