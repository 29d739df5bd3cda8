package format

import (
	"io"
	"strconv"
	"strings"
	"text/template"

	"github.com/tanaes/gapfisher/pkg/clip"
	"github.com/tanaes/gapfisher/pkg/config"
)

// the read-until configuration layout. targets is not valid toml (strands are
// bare), but it is what the device expects
var tomlTemplate = template.Must(template.New("toml").Parse(`[caller_settings]
config_name = "{{.Device.ConfigName}}"
host = "{{.Device.Host}}"
port = "{{.Device.Port}}"

[conditions]
reference = "{{.Reference}}"

[conditions.0]
name = "{{.Name}}"
control = {{.Device.Control}}
min_chunks = {{.Device.MinChunks}}
max_chunks = {{.Device.MaxChunks}}
targets = [{{.Targets}}]
single_on = "{{.Device.SingleOn}}"
single_off = "{{.Device.SingleOff}}"
multi_on = "{{.Device.MultiOn}}"
multi_off = "{{.Device.MultiOff}}"
no_seq = "{{.Device.NoSeq}}"
no_map = "{{.Device.NoMap}}"
`))

// TomlFormatter writes the device configuration for a target set. Name is the
// condition name (conventionally the input file) and Reference the path to the
// minimap2 index the device aligns against.
type TomlFormatter struct {
	Device    config.Device
	Name      string
	Reference string
}

func (F TomlFormatter) Format(w io.Writer, TS *clip.TargetSet) error {
	data := struct {
		Device    config.Device
		Name      string
		Reference string
		Targets   string
	}{F.Device, F.Name, F.Reference, tomlTargets(TS)}

	return tomlTemplate.Execute(w, data)
}

// tomlTargets lists every target on both strands: the 5' window on the reverse
// strand and the 3' window on the forward strand, so that reads running off
// either end of a contig are kept. Contigs with a single window list it twice.
func tomlTargets(TS *clip.TargetSet) string {
	var sb strings.Builder
	for _, T := range TS.Targets() {
		sb.WriteString(tomlTarget(T.Name, T.FiveRange, '-'))
		if T.HasThree {
			sb.WriteString(tomlTarget(T.Name, T.ThreeRange, '+'))
		} else {
			sb.WriteString(tomlTarget(T.Name, T.FiveRange, '+'))
		}
	}
	return sb.String()
}

func tomlTarget(name string, R clip.Range, strand byte) string {
	return `"` + name + `",` + strconv.Itoa(R.Start) + "," + strconv.Itoa(R.End) + "," + string(strand) + "\n"
}
