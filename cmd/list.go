package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/FelixChenT/go-learn-kimi/internal/lesson"
)

// newListCmd prints every registered lesson, one tab-separated row per
// entry.
func newListCmd(reg *lesson.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every lesson",
		Long: `List every registered lesson in teaching order.

Each row is "<index>	<slug>	<title>". Both the index and the slug
select the lesson when passed to golearn.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, e := range reg.Entries() {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\n", e.Index, e.Slug, e.Title)
			}
			return nil
		},
	}
}
