package metrics

import (
	"fmt"
	"io"
	"strings"
)

// Chart writes a horizontal bar chart of losses, one bar per sampled epoch:
//
//	Error
//	  │████████████████████████████████████████
//	  │███████████
//	  │██
//	  └──────────────────────────────────────────→ Epoch
//	   0                  5000                 10000
//
// At most samples epochs are drawn, evenly spaced; width is the length of the
// longest bar. Bars are scaled to the largest sampled loss.
func Chart(w io.Writer, losses []float64, samples, width int) error {
	if len(losses) == 0 || samples <= 0 || width <= 0 {
		_, err := fmt.Fprintln(w, "(no epochs recorded)")
		return err
	}

	step := max(len(losses)/samples, 1)
	var sampled []float64
	for i := 0; i < len(losses) && len(sampled) < samples; i += step {
		sampled = append(sampled, losses[i])
	}

	peak := 0.0
	for _, v := range sampled {
		peak = max(peak, v)
	}

	var b strings.Builder
	b.WriteString("Error\n  │\n")
	for _, v := range sampled {
		bars := 0
		if peak > 0 {
			bars = int(v / peak * float64(width))
		}
		fmt.Fprintf(&b, "  │%s\n", strings.Repeat("█", bars))
	}
	fmt.Fprintf(&b, "  └%s→ Epoch\n", strings.Repeat("─", width+2))
	half := fmt.Sprint(len(losses) / 2)
	pad := max(width/2-len(half)+2, 1)
	fmt.Fprintf(&b, "   0%s%s%s%d\n", strings.Repeat(" ", pad), half, strings.Repeat(" ", pad), len(losses))

	_, err := io.WriteString(w, b.String())
	return err
}
