package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/mixr"
	"github.com/hammamikhairi/mixr/internal/display"
)

func versionCmd(a *app) *cobra.Command {
	var banner bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the library version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if banner {
				fmt.Fprint(out, display.RenderBanner(0))
			}
			p := display.NewPrinter(out)
			p.Println("mixr v" + mixr.Version)
			p.PrintHint("api: " + a.cfg.APIURL)
			return nil
		},
	}
	cmd.Flags().BoolVar(&banner, "banner", false, "print the MIXR banner first")
	return cmd
}
