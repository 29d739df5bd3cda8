package fastx

import (
	"bufio"
	"io"
	"strings"
	"unicode"
)

// Reader reads fasta/fastq records one at a time. It holds on to the header line
// that terminated the previous record, so it must be read from start to finish
// by a single consumer and cannot be rewound.
type Reader struct {
	*bufio.Reader
	pending    string
	hasPending bool
	done       bool
}

func NewReader(f io.Reader) *Reader {
	return &Reader{Reader: bufio.NewReader(f)}
}

// Read reads one record from the underlying reader. After the final record,
// Read returns an empty Record and io.EOF, on this and every subsequent call.
// Badly formed input never produces an error: a fastq record whose quality
// block is truncated by the end of the file is returned without a quality
// string. The only errors returned are those of the underlying reader.
func (r *Reader) Read() (Record, error) {

	if r.done {
		return Record{}, io.EOF
	}

	// the first record, or the record after a fastq record: search for a header
	if !r.hasPending {
		for {
			line, ok, err := r.readLine()
			if err != nil {
				return Record{}, err
			}
			if !ok {
				r.done = true
				return Record{}, io.EOF
			}
			if len(line) > 0 && (line[0] == '>' || line[0] == '@') {
				r.pending = line
				r.hasPending = true
				break
			}
		}
	}

	R := Record{ID: parseID(r.pending)}
	r.hasPending = false

	var (
		seq        strings.Builder
		terminator string
		terminated bool
	)

	for {
		line, ok, err := r.readLine()
		if err != nil {
			return Record{}, err
		}
		if !ok {
			break
		}
		if len(line) > 0 && (line[0] == '@' || line[0] == '+' || line[0] == '>') {
			terminator = line
			terminated = true
			break
		}
		seq.WriteString(line)
	}

	R.Seq = seq.String()

	// a fasta record
	if !terminated || terminator[0] != '+' {
		if terminated {
			r.pending = terminator
			r.hasPending = true
		} else {
			r.done = true
		}
		return R, nil
	}

	// a fastq record: read quality lines until there are at least as many
	// quality characters as there are bases
	var qual strings.Builder
	for {
		line, ok, err := r.readLine()
		if err != nil {
			return Record{}, err
		}
		if !ok {
			// the file ended before the quality string did
			r.done = true
			return R, nil
		}
		qual.WriteString(line)
		if qual.Len() >= len(R.Seq) {
			R.Qual = qual.String()
			R.HasQual = true
			return R, nil
		}
	}
}

// readLine returns the next line without its unix or dos line ending. ok is
// false once the underlying reader is exhausted.
func (r *Reader) readLine() (line string, ok bool, err error) {
	b, err := r.ReadBytes('\n')
	if err != nil && err != io.EOF {
		return "", false, err
	}
	if len(b) == 0 {
		return "", false, nil
	}

	if b[len(b)-1] == '\n' {
		b = b[:len(b)-1]
		if len(b) > 0 && b[len(b)-1] == '\r' {
			b = b[:len(b)-1]
		}
	}

	return string(b), true, nil
}

// parseID returns the text after a header's marker up to the first whitespace
func parseID(header string) string {
	id := header[1:]
	if i := strings.IndexFunc(id, unicode.IsSpace); i >= 0 {
		id = id[:i]
	}
	return id
}

// ReadAll reads every record from f
func ReadAll(f io.Reader) ([]Record, error) {
	records := make([]Record, 0)
	r := NewReader(f)
	for {
		R, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return records, err
		}
		records = append(records, R)
	}
	return records, nil
}
