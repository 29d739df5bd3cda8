/*
Package clip selects the terminal windows of contigs that are targeted for
adaptive sampling. Contigs longer than twice the window length contribute a
5' window and a 3' window; shorter contigs contribute themselves whole.
*/
package clip

import (
	"errors"
	"fmt"
	"io"

	"github.com/tanaes/gapfisher/pkg/fastx"
)

var (
	// ErrInvalidArgument is the class of errors for caller misuse
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidLength is returned for a window length that is not positive
	ErrInvalidLength = fmt.Errorf("%w: target length must be a positive integer", ErrInvalidArgument)
)

// RecordReader is a source of sequence records, such as a *fastx.Reader.
// Read must return io.EOF once exhausted.
type RecordReader interface {
	Read() (fastx.Record, error)
}

// Range is a half-open, 0-based coordinate interval
type Range struct {
	Start int
	End   int
}

func (R Range) Len() int {
	return R.End - R.Start
}

// Target holds the window(s) selected from one contig. Three and ThreeRange
// are only meaningful when HasThree is true.
type Target struct {
	Name       string
	Five       string
	FiveRange  Range
	Three      string
	ThreeRange Range
	HasThree   bool
}

// Window returns the target windows for one sequence of a given window length
func Window(name string, seq string, length int) Target {
	L := len(seq)

	// if the contig is no longer than two windows, target all of it.
	// L-length cannot overflow where 2*length can
	if L-length <= length {
		return Target{
			Name:      name,
			Five:      seq,
			FiveRange: Range{0, L},
		}
	}

	return Target{
		Name:       name,
		Five:       seq[0:length],
		FiveRange:  Range{0, length},
		Three:      seq[L-length : L],
		ThreeRange: Range{L - length, L},
		HasThree:   true,
	}
}

// Clip reads every record from r and returns the target windows of each.
// length is validated before anything is read.
func Clip(r RecordReader, length int) (*TargetSet, error) {
	if length <= 0 {
		return nil, fmt.Errorf("%w (got %d)", ErrInvalidLength, length)
	}

	TS := NewTargetSet()

	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading sequences: %w", err)
		}
		TS.Add(Window(record.ID, record.Seq, length))
	}

	return TS, nil
}
