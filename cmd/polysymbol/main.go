// Command polysymbol builds direction symbols (dashes, arrowheads, markers
// and numbered markers) for a list of direction points and prints them as
// GeoJSON or WKT.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const appName = "polysymbol"

// version is overridden at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd creates the root command with all subcommands attached.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          appName,
		Short:        "Directional symbol builder for map polylines",
		Long:         "polysymbol turns direction points (a location plus a compass heading) into dash, arrowhead, marker or numbered marker shapes.",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("config", "", "Directory containing "+configFileHint)

	rootCmd.AddCommand(newBuildCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// newVersionCmd creates the "version" command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print polysymbol version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", appName, version)
		},
	}
}
