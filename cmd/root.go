package cmd

import (
	"fmt"
	"os"

	"github.com/ZacxDev/storefront/config"
	"github.com/ZacxDev/storefront/logger"
	"github.com/ZacxDev/storefront/preview"
	"github.com/spf13/cobra"
)

var (
	configPath string
	appConfig  *config.AppConfig
	log        logger.Logger = logger.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "storefront",
	Short: "Storefront - live previews for template-built shop websites",
	Long: `Storefront renders the website a merchant configured in the builder into a
complete, self-contained HTML preview, and serves the template and website API
the builder talks to.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.LoadEnv(".env"); err != nil {
			return err
		}

		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		appConfig = cfg

		l, err := logger.New(cfg.Logging)
		if err != nil {
			return err
		}
		log = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = log.Sync()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "storefront.yaml", "Path to the YAML config file")
}

func newRenderer(cfg config.RenderConfig) *preview.Renderer {
	return &preview.Renderer{Minify: cfg.Minify, Brand: cfg.Brand}
}
