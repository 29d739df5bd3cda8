package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"

	"github.com/tanaes/gapfisher/pkg/clip"
	"github.com/tanaes/gapfisher/pkg/config"
	"github.com/tanaes/gapfisher/pkg/minimap"
)

const contigs = `>contig1
AGCCCTTAGTCGCGCTACGATCGATCGATC
AACAGTCGACGATCGTCGATCGCGACGATC
>contig2
AGCCCTTAGTCGCGCTACGATCGATCGATC
AACAGTCGACGATCGTCGATCGCGACGATC
AGCCCTTAGTCGCGCTACGATCGATCGATC
AACAGTCGACGATCGTCGATCGCGACGATC
AGCCCTTAGTCGCGCTACGATCGATCGATC
AACAGTCGACGATCGTCGATCGCGACGATC
`

type fakeIndexer struct {
	calls [][2]string
	err   error
}

func (f *fakeIndexer) Index(fasta, mmi string) error {
	f.calls = append(f.calls, [2]string{fasta, mmi})
	return f.err
}

// runWinnow executes the winnow command with fresh flag values
func runWinnow(t *testing.T, idx minimap.Indexer, args ...string) error {
	t.Helper()

	winnowCmd.Flags().VisitAll(func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	})

	old := newIndexer
	newIndexer = func(config.Minimap) minimap.Indexer { return idx }
	defer func() { newIndexer = old }()

	rootCmd.SetArgs(append([]string{"winnow"}, args...))
	return rootCmd.Execute()
}

func writeContigs(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	in := filepath.Join(dir, "contigs.fa")
	if err := os.WriteFile(in, []byte(contigs), 0644); err != nil {
		t.Fatal(err)
	}
	return dir, in
}

func TestWinnowCmd(t *testing.T) {
	dir, in := writeContigs(t)
	bed := filepath.Join(dir, "targets.bed")
	toml := filepath.Join(dir, "targets.toml")
	mmi := filepath.Join(dir, "contigs.mmi")

	idx := &fakeIndexer{}
	err := runWinnow(t, idx, "-i", in, "-l", "60", "-b", bed, "-t", toml, "-m", mmi, "--host-port", "9999")
	if err != nil {
		t.Fatal(err)
	}

	b, err := os.ReadFile(bed)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "contig1\t0\t60\ncontig2\t0\t60\ncontig2\t120\t180\n" {
		t.Errorf("problem with bed output: %q", string(b))
	}

	tm, err := os.ReadFile(toml)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(tm), `port = "9999"`) || !strings.Contains(string(tm), `reference = "`+mmi+`"`) {
		t.Errorf("problem with toml output: %q", string(tm))
	}

	if len(idx.calls) != 1 || idx.calls[0] != [2]string{in, mmi} {
		t.Errorf("indexer not called as expected: %v", idx.calls)
	}
}

func TestWinnowCmdFastaFai(t *testing.T) {
	dir, in := writeContigs(t)
	fasta := filepath.Join(dir, "targets.fa")
	fai := filepath.Join(dir, "targets.fa.fai")

	idx := &fakeIndexer{}
	if err := runWinnow(t, idx, "-i", in, "-l", "60", "-f", fasta, "--fai", fai); err != nil {
		t.Fatal(err)
	}

	f, err := os.ReadFile(fasta)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Count(string(f), ">") != 3 {
		t.Errorf("problem with fasta output: %q", string(f))
	}

	if _, err := os.Stat(fai); err != nil {
		t.Error(err)
	}

	if len(idx.calls) != 0 {
		t.Errorf("indexer called without --mmi")
	}
}

func TestWinnowCmdValidation(t *testing.T) {
	dir, in := writeContigs(t)

	testCases := []struct {
		args []string
		want error
	}{
		{[]string{"-i", in}, errNoOutputs},
		{[]string{"-i", in, "-t", filepath.Join(dir, "x.toml")}, errTomlNeedsMmi},
		{[]string{"-i", in, "-b", filepath.Join(dir, "x.bed"), "--fai", filepath.Join(dir, "x.fai")}, errFaiNeedsFasta},
		{[]string{"-i", in, "-f", "stdout", "--fai", filepath.Join(dir, "x.fai")}, errFaiNeedsFasta},
		{[]string{"-i", "stdin", "-b", filepath.Join(dir, "x.bed"), "-m", filepath.Join(dir, "x.mmi")}, errIndexFromStdin},
		{[]string{"-i", in, "-b", filepath.Join(dir, "x.bed"), "-l", "0"}, clip.ErrInvalidLength},
	}

	for _, tc := range testCases {
		err := runWinnow(t, &fakeIndexer{}, tc.args...)
		if !errors.Is(err, tc.want) {
			t.Errorf("%v: expected %v, got %v", tc.args, tc.want, err)
		}
	}
}

func TestWinnowCmdIndexerError(t *testing.T) {
	dir, in := writeContigs(t)

	toolErr := &minimap.ExternalToolError{Tool: "minimap2", Err: errors.New("exit status 1")}
	err := runWinnow(t, &fakeIndexer{err: toolErr}, "-i", in, "-b", filepath.Join(dir, "x.bed"), "-m", filepath.Join(dir, "x.mmi"))

	var got *minimap.ExternalToolError
	if !errors.As(err, &got) {
		t.Errorf("expected the indexer error to be returned, got %v", err)
	}
}

func TestWinnowCmdUnreadableInput(t *testing.T) {
	dir := t.TempDir()
	bed := filepath.Join(dir, "targets.bed")

	// a directory opens but cannot be read
	err := runWinnow(t, &fakeIndexer{}, "-i", dir, "-b", bed)
	if err == nil {
		t.Fatal("expected an error reading a directory as input")
	}

	if _, err := os.Stat(bed); !os.IsNotExist(err) {
		t.Errorf("output file created although the input could not be read")
	}
}

func TestStatsCmdLeavesStdoutOpen(t *testing.T) {
	_, in := writeContigs(t)

	rootCmd.SetArgs([]string{"stats", "-i", in, "-l", "60"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stdout.Stat(); err != nil {
		t.Errorf("stats closed stdout: %v", err)
	}
}
