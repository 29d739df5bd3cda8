/*
Package format renders target sets as the files consumed downstream: a fasta
file of the clipped windows, a bed file of their coordinates, and a
read-until device configuration
*/
package format

import (
	"bufio"
	"io"
	"strconv"

	"github.com/tanaes/gapfisher/pkg/clip"
)

// Formatter writes a target set to w
type Formatter interface {
	Format(w io.Writer, TS *clip.TargetSet) error
}

// FastaFormatter writes each window as an unwrapped fasta record named
// <contig>_5 or <contig>_3
type FastaFormatter struct{}

func (FastaFormatter) Format(w io.Writer, TS *clip.TargetSet) error {
	bw := bufio.NewWriter(w)
	for _, T := range TS.Targets() {
		bw.WriteString(">" + T.Name + "_5\n" + T.Five + "\n")
		if T.HasThree {
			bw.WriteString(">" + T.Name + "_3\n" + T.Three + "\n")
		}
	}
	return bw.Flush()
}

// BedFormatter writes one tab separated name, start, end line per window
type BedFormatter struct{}

func (BedFormatter) Format(w io.Writer, TS *clip.TargetSet) error {
	bw := bufio.NewWriter(w)
	for _, T := range TS.Targets() {
		bw.WriteString(bedLine(T.Name, T.FiveRange))
		if T.HasThree {
			bw.WriteString(bedLine(T.Name, T.ThreeRange))
		}
	}
	return bw.Flush()
}

func bedLine(name string, R clip.Range) string {
	return name + "\t" + strconv.Itoa(R.Start) + "\t" + strconv.Itoa(R.End) + "\n"
}
