package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/FelixChenT/go-learn-kimi/internal/config"
	"github.com/FelixChenT/go-learn-kimi/internal/lesson"
	"github.com/FelixChenT/go-learn-kimi/internal/log"
	"github.com/FelixChenT/go-learn-kimi/internal/markdown"
)

// newDocCmd renders a lesson's markdown notes to the terminal.
func newDocCmd(reg *lesson.Registry) *cobra.Command {
	var (
		style string
		width int
		save  bool
	)

	cmd := &cobra.Command{
		Use:   "doc <lesson>",
		Short: "Show a lesson's notes",
		Long: `Render a lesson's notes (goal, key points, pitfalls) to the terminal.

The lesson is selected by number or slug, exactly as when running it.

Examples:
  golearn doc variables
  golearn doc 2 --style light
  golearn doc 2 --style light --save   # remember the style in the config`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := reg.Resolve(args[0])
			if err != nil {
				return fmt.Errorf("%w\navailable lessons: %s", err, strings.Join(reg.Slugs(), ", "))
			}

			chosen := cfg.UI.MarkdownStyle
			if cmd.Flags().Changed("style") {
				if !config.ValidMarkdownStyle(style) {
					return fmt.Errorf("unknown style %q (want dark or light)", style)
				}
				chosen = style
			}
			wrap := width
			if wrap <= 0 {
				wrap = cfg.UI.DocWidth
			}
			if wrap <= 0 {
				wrap = config.Defaults().UI.DocWidth
			}

			r, err := markdown.New(wrap, chosen)
			if err != nil {
				return fmt.Errorf("creating renderer: %w", err)
			}
			out, err := r.Render(entry.Doc)
			if err != nil {
				return fmt.Errorf("rendering notes for %q: %w", entry.Slug, err)
			}
			fmt.Fprint(cmd.OutOrStdout(), out)

			if save && cmd.Flags().Changed("style") {
				path := configFilePath()
				if err := config.SaveMarkdownStyle(path, style); err != nil {
					return fmt.Errorf("saving style: %w", err)
				}
				log.Info(log.CatDoc, "Saved markdown style", "style", style, "path", path)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&style, "style", "", `notes style: "dark" or "light"`)
	cmd.Flags().IntVar(&width, "width", 0, "word-wrap width (default from config)")
	cmd.Flags().BoolVar(&save, "save", false, "persist --style to the config file")

	return cmd
}
