package cmd

import (
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tanaes/gapfisher/pkg/config"
	"github.com/tanaes/gapfisher/pkg/gfio"
	"github.com/tanaes/gapfisher/pkg/minimap"
	"github.com/tanaes/gapfisher/pkg/winnow"
)

var (
	errNoOutputs      = errors.New("must select at least one of --bed, --fasta, or --toml")
	errTomlNeedsMmi   = errors.New("if selecting --toml, must also specify --mmi")
	errFaiNeedsFasta  = errors.New("if selecting --fai, must also specify a --fasta file")
	errIndexFromStdin = errors.New("cannot build a --mmi index when reading --input-fp from stdin")
)

var winnowInput string
var winnowBed string
var winnowFasta string
var winnowFai string
var winnowToml string
var winnowMmi string
var winnowLength int
var winnowConfig string
var winnowHost string
var winnowPort string
var winnowSettings string
var winnowVerbose bool

// newIndexer builds the index step of a run; replaced in tests
var newIndexer = func(c config.Minimap) minimap.Indexer {
	return minimap.Minimap2{Binary: c.Binary, Preset: c.Preset}
}

func init() {
	rootCmd.AddCommand(winnowCmd)

	winnowCmd.Flags().StringVarP(&winnowInput, "input-fp", "i", "", "Input FASTA file with contigs (stdin to read from stdin)")
	winnowCmd.Flags().StringVarP(&winnowBed, "bed", "b", "", "Output BED file with sequence targets")
	winnowCmd.Flags().StringVarP(&winnowFasta, "fasta", "f", "", "Output FASTA file of sequence targets")
	winnowCmd.Flags().StringVarP(&winnowFai, "fai", "", "", "Output samtools index of the --fasta targets")
	winnowCmd.Flags().StringVarP(&winnowToml, "toml", "t", "", "Output TOML file specifying sequence targets")
	winnowCmd.Flags().StringVarP(&winnowMmi, "mmi", "m", "", "Output MiniMap Index of sequence target")
	winnowCmd.Flags().IntVarP(&winnowLength, "length", "l", 2000, "Length of target region around contig ends")
	winnowCmd.Flags().StringVarP(&winnowConfig, "config", "c", "dna_r9.4.1_450bps_hac", "ONT basecalling config to use")
	winnowCmd.Flags().StringVarP(&winnowHost, "host-ip", "", "127.0.0.1", "IP address to basecaller host")
	winnowCmd.Flags().StringVarP(&winnowPort, "host-port", "", "5555", "Host basecaller port")
	winnowCmd.Flags().StringVarP(&winnowSettings, "settings", "", "", "Optional settings file (yaml, toml or json)")
	winnowCmd.Flags().BoolVarP(&winnowVerbose, "verbose", "v", false, "Report progress to stderr")

	winnowCmd.MarkFlagRequired("input-fp")
	winnowCmd.Flags().Lookup("verbose").NoOptDefVal = "true"

	winnowCmd.Flags().SortFlags = false
}

var winnowCmd = &cobra.Command{
	Use:   "winnow",
	Short: "Clip the ends of contigs into adaptive sampling targets",
	Long: `Clip the ends of contigs into adaptive sampling targets

Example usage:

	./gapfisher winnow -i contigs.fa -l 2000 --bed targets.bed --toml targets.toml --mmi contigs.mmi

Contigs longer than twice --length contribute two targets, the first and last --length
bases. Shorter contigs are targeted whole. Settings may also be given in a --settings file
or as GAPFISHER_ environment variables (e.g. GAPFISHER_DEVICE_HOST), flags taking priority.
`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {

		if !gfio.Given(*cmd.Flag("bed")) && !gfio.Given(*cmd.Flag("fasta")) && !gfio.Given(*cmd.Flag("toml")) {
			return errNoOutputs
		}
		if gfio.Given(*cmd.Flag("toml")) && !gfio.Given(*cmd.Flag("mmi")) {
			return errTomlNeedsMmi
		}
		if gfio.Given(*cmd.Flag("fai")) && (!gfio.Given(*cmd.Flag("fasta")) || gfio.IsStd(*cmd.Flag("fasta"))) {
			return errFaiNeedsFasta
		}
		if gfio.Given(*cmd.Flag("mmi")) && gfio.IsStd(*cmd.Flag("input-fp")) {
			return errIndexFromStdin
		}

		v := viper.New()
		v.BindPFlag("length", cmd.Flags().Lookup("length"))
		v.BindPFlag("device.config-name", cmd.Flags().Lookup("config"))
		v.BindPFlag("device.host", cmd.Flags().Lookup("host-ip"))
		v.BindPFlag("device.port", cmd.Flags().Lookup("host-port"))

		cfg, err := config.Load(v, winnowSettings)
		if err != nil {
			return err
		}

		in, err := gfio.OpenIn(*cmd.Flag("input-fp"))
		if err != nil {
			return err
		}
		defer in.Close()

		reference := ""
		if gfio.Given(*cmd.Flag("mmi")) {
			if reference, err = filepath.Abs(winnowMmi); err != nil {
				return err
			}
		}

		verbosef(winnowVerbose, "clipping %d bp windows from %s", cfg.Length, winnowInput)

		// read everything before creating any output file
		TS, err := winnow.Targets(in, cfg.Length)
		if err != nil {
			return err
		}

		var outs winnow.Outputs
		for _, o := range []struct {
			flag string
			dest *io.Writer
		}{
			{"fasta", &outs.Fasta},
			{"fai", &outs.Fai},
			{"bed", &outs.Bed},
			{"toml", &outs.Toml},
		} {
			if !gfio.Given(*cmd.Flag(o.flag)) {
				continue
			}
			f, err := gfio.OpenOut(*cmd.Flag(o.flag))
			if err != nil {
				return err
			}
			if !gfio.IsStd(*cmd.Flag(o.flag)) {
				defer f.Close()
			}
			*o.dest = f
		}

		err = winnow.Write(TS, winnow.Options{
			Length:    cfg.Length,
			Device:    cfg.Device,
			InputName: winnowInput,
			Reference: reference,
		}, outs)
		if err != nil {
			return err
		}

		verbosef(winnowVerbose, "wrote targets for %d contigs", TS.Len())

		if dups := TS.Duplicates(); len(dups) > 0 {
			logger.Printf("warning: duplicate contig names, keeping the last of each: %s", strings.Join(dups, ", "))
		}

		if gfio.Given(*cmd.Flag("mmi")) {
			verbosef(winnowVerbose, "indexing %s to %s", winnowInput, winnowMmi)
			if err = newIndexer(cfg.Minimap).Index(winnowInput, winnowMmi); err != nil {
				return err
			}
		}

		return
	},
}
