package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vango-dev/navshell/internal/app"
	"github.com/vango-dev/navshell/pkg/render"
)

func renderCmd() *cobra.Command {
	var (
		document bool
		pretty   bool
	)

	cmd := &cobra.Command{
		Use:   "render <path>",
		Short: "Print the markup for a path",
		Long: `Render a path the way the server would and print the markup.

By default only the shell is printed. --document prints the full HTML
page with unfingerprinted asset links.

Examples:
  navshell render /dashboard
  navshell render /login --document`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := newRouter(nil)
			if err != nil {
				return err
			}
			req, err := r.Serve(cmd.Context(), args[0], "cli")
			if err != nil {
				return err
			}
			if req.Resolution.Invalid {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %q is not a valid path, rendering the shell only\n", args[0])
			}

			renderer := render.NewRenderer(render.RendererConfig{Pretty: pretty})
			out := cmd.OutOrStdout()
			if document {
				return renderer.RenderPage(out, app.Document(req.Node, nil))
			}
			html, err := renderer.RenderToString(req.Node)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, html)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&document, "document", "d", false, "Print the full HTML document")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent the markup")

	return cmd
}
