package internal

import (
	"log"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "openblas-build",
	Short: "openblas-build stages and drives Makefile builds of OpenBLAS",
	Long: `openblas-build copies an OpenBLAS source checkout into a disposable
output directory, translates build options into make arguments, and
supervises the external make run.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		log.Fatal(err)
	}
}
