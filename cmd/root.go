package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "gapfisher",
		Short: "adaptive sampling targets for the ends of assembly contigs",
		Long: `adaptive sampling targets for the ends of assembly contigs

Reads contigs in fasta/fastq format, clips a fixed length window from each end
and writes the windows as fasta, bed and a read-until device configuration.`,
		Version: "0.1.0",
	}

	// warnings are always shown, progress messages only with --verbose
	logger = log.New(os.Stderr, "gapfisher: ", 0)
)

// Execute executes the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func verbosef(verbose bool, format string, v ...interface{}) {
	if verbose {
		logger.Printf(format, v...)
	}
}
