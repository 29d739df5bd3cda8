/*
Package winnow ties the reader, the window selector and the formatters
together: it reads contigs, clips their ends and writes every requested
output
*/
package winnow

import (
	"bytes"
	"fmt"
	"io"

	"github.com/tanaes/gapfisher/pkg/clip"
	"github.com/tanaes/gapfisher/pkg/config"
	"github.com/tanaes/gapfisher/pkg/fastx"
	"github.com/tanaes/gapfisher/pkg/format"
)

// Outputs are the destinations for a run. Nil writers are skipped. Fai indexes
// the clipped fasta, so it is only written alongside Fasta.
type Outputs struct {
	Fasta io.Writer
	Fai   io.Writer
	Bed   io.Writer
	Toml  io.Writer
}

// Options are what a run needs besides its input. InputName and Reference are
// only used in the device configuration.
type Options struct {
	Length    int
	Device    config.Device
	InputName string
	Reference string
}

// Winnow clips the ends of every contig read from in and writes the outputs.
// Nothing is written if the input cannot be read to the end.
func Winnow(in io.Reader, o Options, out Outputs) (*clip.TargetSet, error) {
	TS, err := Targets(in, o.Length)
	if err != nil {
		return nil, err
	}
	return TS, Write(TS, o, out)
}

// Targets clips the ends of every contig read from in
func Targets(in io.Reader, length int) (*clip.TargetSet, error) {
	return clip.Clip(fastx.NewReader(in), length)
}

// Write renders TS to each of the non-nil outputs
func Write(TS *clip.TargetSet, o Options, out Outputs) error {
	if out.Fasta != nil {
		fasta := new(bytes.Buffer)
		if err := (format.FastaFormatter{}).Format(fasta, TS); err != nil {
			return err
		}
		if _, err := out.Fasta.Write(fasta.Bytes()); err != nil {
			return fmt.Errorf("writing fasta: %w", err)
		}
		if out.Fai != nil {
			if err := format.WriteFaidx(out.Fai, fasta); err != nil {
				return fmt.Errorf("writing fasta index: %w", err)
			}
		}
	}

	if out.Bed != nil {
		if err := (format.BedFormatter{}).Format(out.Bed, TS); err != nil {
			return fmt.Errorf("writing bed: %w", err)
		}
	}

	if out.Toml != nil {
		F := format.TomlFormatter{Device: o.Device, Name: o.InputName, Reference: o.Reference}
		if err := F.Format(out.Toml, TS); err != nil {
			return fmt.Errorf("writing toml: %w", err)
		}
	}

	return nil
}
