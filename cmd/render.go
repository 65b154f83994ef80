package cmd

import (
	"io"
	"os"

	"github.com/ZacxDev/storefront/models"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

// siteFile is a website and its products, as written by hand for render.
type siteFile struct {
	Slug     string           `yaml:"slug"`
	Website  models.Website   `yaml:"website"`
	Products []models.Product `yaml:"products"`
}

var renderCmd = &cobra.Command{
	Use:   "render <site.yaml>",
	Short: "Render one website described in a YAML file to HTML",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")

		w := cmd.OutOrStdout()
		if out != "" && out != "-" {
			f, err := os.Create(out)
			if err != nil {
				return errors.WithStack(err)
			}
			defer f.Close()
			w = f
		}

		return renderSiteFile(args[0], w)
	},
}

func renderSiteFile(path string, w io.Writer) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read %s", path)
	}

	var site siteFile
	if err := yaml.Unmarshal(data, &site); err != nil {
		return errors.Wrapf(err, "parse %s", path)
	}

	slug := site.Slug
	if slug == "" {
		slug = site.Website.Slug(appConfig.Server.BaseDomain)
	}

	products := make([]models.Product, 0, len(site.Products))
	for _, p := range site.Products {
		if p.Category == "" {
			p.Category = models.DefaultProductCategory
		}
		products = append(products, p)
	}

	html, err := newRenderer(appConfig.Render).Render(&site.Website, products, slug)
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, html)
	return errors.WithStack(err)
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringP("out", "o", "", "Write the document to this file instead of stdout")
}
