package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/phanxgames/unveil"
	"github.com/phanxgames/unveil/page"
)

func newRunCmd(opts *rootOptions) *cobra.Command {
	var scriptPath string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open the page in a window",
		Long: `Open the page in a window. Scroll with the mouse wheel, the arrow keys,
PageUp/PageDown/Space, or Home/End. With --script the window follows a JSON
scroll script and closes when it finishes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			cfg, err := opts.loadConfig(logger)
			if err != nil {
				return err
			}
			scene, p, err := buildScene(cfg, logger, page.NewDirAssets(cfg.AssetsDir, logger))
			if err != nil {
				return err
			}
			defer p.Unmount()

			if scriptPath != "" {
				data, err := os.ReadFile(scriptPath)
				if err != nil {
					return fmt.Errorf("read script: %w", err)
				}
				script, err := unveil.LoadScrollScript(data)
				if err != nil {
					return err
				}
				scene.SetScript(script)
			}
			scene.SetUpdateFunc(ctx.Err)

			logger.Info("opening window", "title", cfg.Window.Title, "size", fmt.Sprintf("%dx%d", cfg.Window.Width, cfg.Window.Height), "page", p.Height())
			err = unveil.Run(scene, unveil.RunConfig{
				Title:            cfg.Window.Title,
				Width:            cfg.Window.Width,
				Height:           cfg.Window.Height,
				ShowFPS:          cfg.Window.ShowFPS,
				ExitOnScriptDone: scriptPath != "",
			})
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
	cmd.Flags().StringVar(&scriptPath, "script", "", "JSON scroll script to play")
	return cmd
}
