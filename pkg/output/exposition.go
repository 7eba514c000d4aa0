// Package output renders process facts in the Prometheus text exposition
// format.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/danpilch/inotify-instances/pkg/collectors/inotify"
)

// MetricName is the single gauge family this program exposes.
const MetricName = "inotify_instances"

const helpText = "Total number of inotify instances held open by a process."

// labelEscaper covers the characters a label value cannot carry raw.
var labelEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)

// Formatter writes the metric block to a sink.
type Formatter struct {
	writer io.Writer
}

// NewFormatter creates a formatter writing to w.
func NewFormatter(w io.Writer) *Formatter {
	return &Formatter{writer: w}
}

// Render writes the HELP/TYPE header followed by one gauge line per fact.
// Label order is fixed: pid, uid, command.
func (f *Formatter) Render(facts []inotify.Fact) error {
	_, err := fmt.Fprintf(f.writer, "# HELP %s %s\n# TYPE %s gauge\n",
		MetricName, helpText, MetricName)
	if err != nil {
		return err
	}

	for _, fact := range facts {
		_, err := fmt.Fprintf(f.writer, "%s{pid=\"%d\",uid=\"%d\",command=\"%s\"} %d\n",
			MetricName, fact.PID, fact.UID,
			labelEscaper.Replace(fact.Command), fact.Instances)
		if err != nil {
			return err
		}
	}
	return nil
}
