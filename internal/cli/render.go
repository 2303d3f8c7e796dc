package cli

import (
	"fmt"
	"io"
	"strings"

	"werkbon/internal/app/ds"
	"werkbon/internal/app/planning"

	"github.com/fatih/color"
)

var (
	headerColor    = color.New(color.FgCyan, color.Bold)
	completedColor = color.New(color.FgGreen)
	followUpColor  = color.New(color.FgYellow)
	emptyColor     = color.New(color.FgHiBlack)
)

// RenderPlanning prints the grid one day per block.
func RenderPlanning(w io.Writer, p *planning.Planning) {
	fmt.Fprintf(w, "%s  %s t/m %s\n\n", headerColor.Sprint(strings.ToUpper(string(p.View.Mode))), p.Range.Start, p.Range.End)
	for _, b := range p.Buckets {
		fmt.Fprintln(w, headerColor.Sprintf("%s (%s)", b.Day.Label, b.Day.Date))
		if len(b.WorkOrders) == 0 {
			fmt.Fprintln(w, emptyColor.Sprint("  geen werkbonnen"))
			continue
		}
		for i := range b.WorkOrders {
			fmt.Fprintln(w, "  "+workOrderLine(&b.WorkOrders[i]))
		}
	}
}

func workOrderLine(wo *ds.WorkOrder) string {
	slot := "-"
	if wo.PlanSlot != nil && *wo.PlanSlot != "" {
		slot = *wo.PlanSlot
	}
	address := strings.TrimSpace(fmt.Sprintf("%s %s%s, %s %s", wo.Street, wo.HouseNumber, wo.HouseNumberExt, wo.PostalCode, wo.City))
	line := fmt.Sprintf("%-12s %-13s %s", wo.Number, slot, address)

	switch {
	case wo.HandlingStatus != nil && *wo.HandlingStatus == ds.HandlingFollowUpRequired:
		return followUpColor.Sprint(line + "  [vervolg]")
	case wo.Status == ds.StatusCompleted:
		return completedColor.Sprint(line + "  [afgerond]")
	default:
		return line
	}
}
