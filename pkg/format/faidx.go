package format

import (
	"io"

	"github.com/biogo/hts/fai"
)

// WriteFaidx writes a samtools style .fai index of the fasta read from r, so that
// clipped targets can be opened directly by tools that expect an indexed fasta
func WriteFaidx(w io.Writer, r io.Reader) error {
	idx, err := fai.NewIndex(r)
	if err != nil {
		return err
	}
	return fai.WriteTo(w, idx)
}
