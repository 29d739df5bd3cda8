package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tanaes/gapfisher/pkg/gfio"
	"github.com/tanaes/gapfisher/pkg/winnow"
)

var statsInput string
var statsOutfile string
var statsLength int

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().StringVarP(&statsInput, "input-fp", "i", "stdin", "Input fasta/fastq file")
	statsCmd.Flags().StringVarP(&statsOutfile, "outfile", "o", "stdout", "The output file to write")
	statsCmd.Flags().IntVarP(&statsLength, "length", "l", 2000, "Length of target region around contig ends")

	statsCmd.Flags().SortFlags = false
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Report the length of each contig and how many targets it would give",
	Long:  `Report the length of each contig and how many targets it would give`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {

		in, err := gfio.OpenIn(*cmd.Flag("input-fp"))
		if err != nil {
			return err
		}
		defer in.Close()

		out, err := gfio.OpenOut(*cmd.Flag("outfile"))
		if err != nil {
			return err
		}
		if !gfio.IsStd(*cmd.Flag("outfile")) {
			defer out.Close()
		}

		err = winnow.Stats(in, statsLength, out)

		return
	},
}
