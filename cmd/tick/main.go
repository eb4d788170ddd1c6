package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zsiec/tick/pkg/version"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "tick",
		Short:        "Exact media time conversions",
		SilenceUsage: true,
	}

	root.AddCommand(
		newServeCmd(),
		newSecondsCmd(),
		newFramesCmd(),
		newTimecodeCmd(),
		newFromTimecodeCmd(),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.GetInfo()
			if short {
				fmt.Fprintln(cmd.OutOrStdout(), info.Short())
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), info.String())
			return nil
		},
	}
	cmd.Flags().BoolVar(&short, "short", false, "Print only the version")
	return cmd
}
