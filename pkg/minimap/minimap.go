/*
Package minimap runs minimap2 to build the alignment index that the
sequencing device matches reads against
*/
package minimap

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

var errNoArtifact = errors.New("no index was written")

// Indexer builds an alignment index at mmi from the sequences in fasta
type Indexer interface {
	Index(fasta, mmi string) error
}

// ExternalToolError is returned when minimap2 could not be run or exited with a
// non-zero status. Output holds whatever the tool wrote before it failed.
type ExternalToolError struct {
	Tool   string
	Args   []string
	Output string
	Err    error
}

func (e *ExternalToolError) Error() string {
	msg := fmt.Sprintf("failed to execute %s %s: %v", e.Tool, strings.Join(e.Args, " "), e.Err)
	if out := strings.TrimSpace(e.Output); out != "" {
		msg += ": " + out
	}
	return msg
}

func (e *ExternalToolError) Unwrap() error {
	return e.Err
}

// Minimap2 indexes with the minimap2 binary. The zero value runs "minimap2"
// from the PATH with the map-ont preset.
type Minimap2 struct {
	Binary string
	Preset string
}

func (m Minimap2) binary() string {
	if m.Binary == "" {
		return "minimap2"
	}
	return m.Binary
}

func (m Minimap2) preset() string {
	if m.Preset == "" {
		return "map-ont"
	}
	return m.Preset
}

// Args returns the arguments minimap2 is run with
func (m Minimap2) Args(fasta, mmi string) []string {
	return []string{"-x", m.preset(), fasta, "-d", mmi}
}

func (m Minimap2) Index(fasta, mmi string) error {
	args := m.Args(fasta, mmi)

	indexCmd := exec.Command(m.binary(), args...)

	// execute minimap2 and wait on it to finish
	output, err := indexCmd.CombinedOutput()
	if err != nil {
		return &ExternalToolError{Tool: m.binary(), Args: args, Output: string(output), Err: err}
	}

	if err := CheckArtifact(mmi); err != nil {
		return &ExternalToolError{Tool: m.binary(), Args: args, Output: string(output), Err: err}
	}

	return nil
}

// CheckArtifact confirms that an index file was written at mmi
func CheckArtifact(mmi string) error {
	info, err := os.Stat(mmi)
	if err != nil {
		return fmt.Errorf("%w: %v", errNoArtifact, err)
	}
	if info.IsDir() || info.Size() == 0 {
		return fmt.Errorf("%w: %s is empty", errNoArtifact, mmi)
	}
	return nil
}
