package internal

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blasgo/openblas-build/pkgs/target"
)

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "List the supported TARGET tokens",
	Run:   runTargets,
}

func init() {
	rootCmd.AddCommand(targetsCmd)
}

func runTargets(cmd *cobra.Command, args []string) {
	for _, t := range target.Supported() {
		fmt.Println(t.Token())
	}
}
