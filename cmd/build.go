package cmd

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"

	"github.com/ZacxDev/storefront/handlers"
	"github.com/ZacxDev/storefront/logger"
	"github.com/ZacxDev/storefront/store"
	"github.com/ZacxDev/storefront/utils"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Export the previews of every published website as static files",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")
		ctx := cmd.Context()

		s, err := store.Open(ctx, appConfig.Store, appConfig.Server.BaseDomain, log)
		if err != nil {
			return err
		}
		defer s.Close()

		n, err := exportSite(ctx, s, out)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d pages to %s\n", n, out)
		return nil
	},
}

// exportSite fetches every published preview through the real router and
// writes it to <out>/<path>/index.html, plus a sitemap.xml.
func exportSite(ctx context.Context, s store.Store, out string) (int, error) {
	router, err := handlers.SetupRouter(handlers.Deps{
		Store:    s,
		Renderer: newRenderer(appConfig.Render),
		Logger:   log,
		Server:   appConfig.Server,
	})
	if err != nil {
		return 0, err
	}

	if err := os.MkdirAll(out, os.ModePerm); err != nil {
		return 0, errors.Wrap(err, "create output directory")
	}

	server := httptest.NewServer(router)
	defer server.Close()

	sites, err := s.ListPublishedWebsites(ctx)
	if err != nil {
		return 0, err
	}

	entries := handlers.SitemapEntries(sites, appConfig.Server.BaseDomain)
	for _, entry := range entries {
		if err := generateStaticPage(server, out, entry.Path); err != nil {
			return 0, errors.Wrapf(err, "export %s", entry.Path)
		}
		log.Debug("exported page", logger.String("path", entry.Path))
	}

	if err := utils.GenerateSitemaps(out, appConfig.Server.Origin, entries); err != nil {
		return 0, err
	}

	return len(entries), nil
}

func generateStaticPage(server *httptest.Server, out, route string) error {
	resp, err := http.Get(server.URL + route)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.WithStack(err)
	}

	filePath := filepath.Join(out, route[1:], "index.html")
	if err := os.MkdirAll(filepath.Dir(filePath), os.ModePerm); err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(os.WriteFile(filePath, body, 0644))
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().StringP("out", "o", "public", "Directory to write the exported site to")
}
