// Package pla renders a plan in the PLA task-graph text format read by
// Gantt renderers.
//
// Each recipe is written as a parent task listing its phases as children,
// followed by one block per phase:
//
//	[1] Damned Squirrel Mk. II
//	  child 2
//
//	  [2] Planning
//	    start 2020-01-04 10
//	    color #7a5624
//	    duration 1
//	    dep 3
package pla

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/felixgeelhaar/chronogrog/internal/duration"
	"github.com/felixgeelhaar/chronogrog/internal/plan"
)

const (
	indent     = "  "
	dateLayout = "2006-01-02"
	hourLayout = "2006-01-02 15"
)

// Render writes p to w
func Render(w io.Writer, p *plan.Plan) error {
	if _, err := io.WriteString(w, String(p)); err != nil {
		return fmt.Errorf("write pla: %w", err)
	}
	return nil
}

// String returns p in PLA format. The final newline of the document is
// dropped.
func String(p *plan.Plan) string {
	var b strings.Builder
	for _, r := range p.Recipes {
		writeRecipe(&b, r)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func writeRecipe(b *strings.Builder, r plan.Recipe) {
	b.WriteString("[" + strconv.Itoa(r.ID) + "] " + r.Name + "\n")
	for _, ph := range r.Phases {
		b.WriteString(indent + "child " + strconv.Itoa(ph.ID) + "\n")
	}
	b.WriteString("\n")

	for _, ph := range r.Phases {
		writePhase(b, ph)
	}
}

func writePhase(b *strings.Builder, ph plan.PhaseInstance) {
	b.WriteString(indent + "[" + strconv.Itoa(ph.ID) + "] " + ph.Description + "\n")
	b.WriteString(indent + indent + "start " + FormatStart(ph.StartDate) + "\n")
	b.WriteString(indent + indent + "color " + ph.ColorHex + "\n")
	b.WriteString(indent + indent + "duration " + strconv.FormatInt(duration.Hours(ph.Duration), 10) + "\n")
	for _, dep := range ph.Dependencies {
		b.WriteString(indent + indent + "dep " + strconv.Itoa(dep) + "\n")
	}
	b.WriteString("\n")
}

// FormatStart writes t as a bare date at midnight and as date plus hour
// otherwise. Minutes and seconds are dropped.
func FormatStart(t time.Time) string {
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return t.Format(dateLayout)
	}
	return t.Format(hourLayout)
}
