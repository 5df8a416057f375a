package internal

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blasgo/openblas-build/internal/detect"
)

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Suggest a TARGET token for the host CPU",
	Long: `Detect inspects the host CPU and prints the closest catalog target.
The suggestion is advisory: a build without --target lets the external
build tool run its own detection.`,
	RunE: runDetect,
}

func init() {
	rootCmd.AddCommand(detectCmd)
}

func runDetect(cmd *cobra.Command, args []string) error {
	tgt, err := detect.Host()
	if err != nil {
		return fmt.Errorf("failed to detect host cpu: %w", err)
	}
	fmt.Println(tgt.Token())
	return nil
}
