package winnow

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/tanaes/gapfisher/pkg/clip"
	"github.com/tanaes/gapfisher/pkg/fastx"
)

// Stats writes one tab separated line per record read from in: its name, its
// length, whether it carried a quality string, and how many windows it would
// contribute at the given target length
func Stats(in io.Reader, length int, w io.Writer) error {
	if length <= 0 {
		return fmt.Errorf("%w (got %d)", clip.ErrInvalidLength, length)
	}

	bw := bufio.NewWriter(w)
	bw.WriteString("name\tlength\tfastq\twindows\n")

	r := fastx.NewReader(in)
	for {
		R, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		windows := 1
		if clip.Window(R.ID, R.Seq, length).HasThree {
			windows = 2
		}

		bw.WriteString(R.ID + "\t" + strconv.Itoa(len(R.Seq)) + "\t" + strconv.FormatBool(R.IsFastq()) + "\t" + strconv.Itoa(windows) + "\n")
	}

	return bw.Flush()
}
