// Package cli implements the unveil command-line interface.
//
// # Commands
//
//   - run: open the page in a window and scroll it with the wheel or keys
//   - plan: scroll the page headlessly and print when each block is revealed
//   - variants: list the built-in reveal animations
//
// All commands read the same configuration (--config, then UNVEIL_*
// environment variables) and support --verbose (-v) for debug logging.
// Loggers travel through context.Context.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/phanxgames/unveil"
	"github.com/phanxgames/unveil/internal/config"
	"github.com/phanxgames/unveil/page"
)

var version = "dev"

// SetVersion sets the version reported by --version.
func SetVersion(v string) {
	version = v
}

// rootOptions are the persistent flags shared by every command.
type rootOptions struct {
	configPath string
	verbose    bool
	logOut     io.Writer
}

// Execute runs the unveil CLI with ctx. Cancelling ctx closes the window.
func Execute(ctx context.Context) error {
	return newRootCmd(os.Stderr).ExecuteContext(ctx)
}

func newRootCmd(logOut io.Writer) *cobra.Command {
	opts := &rootOptions{logOut: logOut}
	root := &cobra.Command{
		Use:          "unveil",
		Short:        "unveil renders a scroll-revealed wedding page",
		Long:         `unveil composes a wedding invitation page and reveals each section with an animation the first time it scrolls into view.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if opts.verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(opts.logOut, level)))
		},
	}
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file (.toml, .yaml or .yml)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRunCmd(opts))
	root.AddCommand(newPlanCmd(opts))
	root.AddCommand(newVariantsCmd())
	return root
}

// loadConfig loads the configuration named by the --config flag.
func (o *rootOptions) loadConfig(logger *log.Logger) (config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return config.Config{}, err
	}
	logger.Debug("config loaded", "path", o.configPath, "window", cfg.Window, "assets", cfg.AssetsDir)
	return cfg, nil
}

// buildScene creates a scene with one full-window camera and composes the
// configured page into it. A nil assets draws image placeholders.
func buildScene(cfg config.Config, logger *log.Logger, assets page.Assets) (*unveil.Scene, *page.Page, error) {
	toggles, err := cfg.Toggles()
	if err != nil {
		return nil, nil, err
	}
	scene := unveil.NewScene()
	scene.SetLogger(logger)
	scene.ClearColor = unveil.ColorWhite
	scene.SetDebugMode(cfg.Debug)

	w, h := float64(cfg.Window.Width), float64(cfg.Window.Height)
	scene.NewCamera(unveil.Rect{Width: w, Height: h})

	p, err := page.Compose(scene, cfg.Page, page.Options{
		Width:   w,
		Height:  h,
		Toggles: toggles,
		Assets:  assets,
		OnLink: func(url string) {
			logger.Info("link clicked", "url", url)
		},
	})
	if err != nil {
		return nil, nil, err
	}
	return scene, p, nil
}
