package registry

import (
	"fmt"
	"strings"
)

const (
	helpHeader        = "HELP MANUAL\n\n"
	helpMandatoryLine = "This argument is mandatory on the command line.\n"
	helpFlagLine      = "This argument has no value. If a value is present, it will be ignored.\n"
)

// Help renders the help manual: one entry per definition, in name order.
// The output depends only on the registered definitions.
func (r *Registry) Help() string {
	var b strings.Builder
	b.WriteString(helpHeader)
	for _, def := range r.Definitions() {
		fmt.Fprintf(&b, "- %s : %s\n", def.Name, def.Calls())
		b.WriteString(def.HelpText)
		b.WriteString("\n")
		if def.Mandatory {
			b.WriteString(helpMandatoryLine)
		}
		if def.ValueNotRequired {
			b.WriteString(helpFlagLine)
		}
		b.WriteString("\n")
	}
	return b.String()
}
