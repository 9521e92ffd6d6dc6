package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vango-dev/navshell/internal/errors"
	"github.com/vango-dev/navshell/internal/nav"
)

func routesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print the route table and check the navigation links",
		Long: `Print the route table depth-first, then each navigation link with
its match mode and the route it selects. Fails if a link selects no
route.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := newRouter(nil)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ROUTE\tKIND")
			for _, info := range r.Routes() {
				kind := "page"
				if info.Layout {
					kind = "layout"
				}
				fmt.Fprintf(tw, "%s%s\t%s\n", strings.Repeat("  ", info.Depth), info.Path, kind)
			}
			tw.Flush()
			fmt.Fprintln(out)

			tw = tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "LINK\tTARGET\tMATCH\tROUTE")
			for _, link := range nav.Links() {
				route := r.Resolve(link.Target).Route()
				if route == "" {
					route = "-"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", link.Label, link.Target, link.Match, route)
			}
			tw.Flush()

			if missing := nav.Check(r); len(missing) > 0 {
				return errors.New("E206").WithDetail(strings.Join(missing, ", "))
			}
			fmt.Fprintln(out, "\nall navigation links resolve")
			return nil
		},
	}
}
