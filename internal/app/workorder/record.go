package workorder

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"werkbon/internal/app/ds"
)

// DeriveHandlingStatus is the only source of the handling status: a job is
// to be processed when it is done and needs no follow-up.
func DeriveHandlingStatus(jobDone, followUpNeeded bool) ds.HandlingStatus {
	if jobDone && !followUpNeeded {
		return ds.HandlingToProcess
	}
	return ds.HandlingFollowUpRequired
}

// CanEdit reports whether tech may change w: the work order is loaded,
// the technician is known, the order is still scheduled and assigned to tech.
func CanEdit(w *ds.WorkOrder, tech *ds.Technician) bool {
	if w == nil || tech == nil {
		return false
	}
	return w.Status == ds.StatusScheduled && w.TechnicianID == tech.ID
}

var numberPattern = regexp.MustCompile(`^([A-Za-z])(\d{3})(.*)$`)

// Number is a parsed work-order number: W226/0001 => {W, 226, /0001}.
type Number struct {
	Prefix string
	Series int
	Suffix string
}

func (n Number) String() string {
	return n.Prefix + padSeries(n.Series) + n.Suffix
}

func ParseNumber(s string) (Number, bool) {
	m := numberPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Number{}, false
	}
	series, err := strconv.Atoi(m[2])
	if err != nil {
		return Number{}, false
	}
	return Number{Prefix: m[1], Series: series, Suffix: m[3]}, true
}

// PredecessorNumbers lists earlier numbers of the same series, stepping back
// 100 at a time while the series stays >= 0: W226/0001 => [W126/0001 W026/0001].
func PredecessorNumbers(number string) []string {
	n, ok := ParseNumber(number)
	if !ok {
		return []string{}
	}
	out := []string{}
	for series := n.Series - 100; series >= 0; series -= 100 {
		out = append(out, Number{Prefix: n.Prefix, Series: series, Suffix: n.Suffix}.String())
	}
	return out
}

func padSeries(series int) string {
	return fmt.Sprintf("%03d", series)
}
