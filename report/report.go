package report

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/jpelchat/shovelcat/sink"
	"github.com/jpelchat/shovelcat/synth"
)

// Format renders a DerivedConstant as a breakdown table:
//
//	value: 2.997900e+08
//	factor      element             value
//	ring        ring-count          3
//	threshold   threshold           0.9993
//	boundary    boundary-structure  1e+08
//	budget: injected=0 drained=0 residual=0
func Format(d synth.DerivedConstant) string {
	var b strings.Builder
	fmt.Fprintf(&b, "value: %e\n", d.Value)

	w := tabwriter.NewWriter(&b, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "factor\telement\tvalue")
	for _, f := range d.Factors {
		fmt.Fprintf(w, "%s\t%s\t%g\n", f.Label, f.Element, f.Value)
	}
	w.Flush()

	b.WriteString(FormatBudget(d.Budget))

	return b.String()
}

// FormatBudget renders one error budget line.
func FormatBudget(budget sink.Budget) string {
	return fmt.Sprintf("budget: injected=%g drained=%g residual=%g\n",
		budget.Injected, budget.Drained, budget.Residual)
}
