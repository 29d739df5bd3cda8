/*
Package fastx provides a streaming reader for fasta and fastq format files,
including files that mix the two and files whose sequence and quality blocks
are wrapped over several lines
*/
package fastx

// A struct for one fasta or fastq record. HasQual is false for fasta records
// and for fastq records whose quality block was cut short by the end of the file
type Record struct {
	ID      string
	Seq     string
	Qual    string
	HasQual bool
}

// IsFastq reports whether the record carried a complete quality string
func (R Record) IsFastq() bool {
	return R.HasQual
}
