package domain

import (
	"fmt"
	"strings"
)

// Activity is something the user wants to spend time on. Priority is a
// non-negative draw weight: an activity appears Priority times in the
// random pool, so priority 0 means never suggested.
type Activity struct {
	Name     string
	Priority int
}

// MaxPriorityLabel is the highest priority with a named label. Stored
// priorities may exceed it; displays clamp to this scale.
const MaxPriorityLabel = 10

// PriorityLabels maps priority values to display names, index 0 through
// MaxPriorityLabel.
var PriorityLabels = []string{
	"Ignore",
	"Low",
	"Medium",
	"High",
	"Very High",
	"Ultra High",
	"Mega High",
	"Giga High",
	"Tera High",
	"Peta High",
	"Exa High",
}

// Validate checks that the activity can be stored in the line-oriented
// activities file and drawn from the pool.
func (a Activity) Validate() error {
	name := strings.TrimSpace(a.Name)
	if name == "" {
		return fmt.Errorf("activity name is required")
	}
	if strings.ContainsAny(a.Name, "\r\n") {
		return fmt.Errorf("activity name %q must be a single line", a.Name)
	}
	if a.Priority < 0 {
		return fmt.Errorf("priority %d must be zero or greater", a.Priority)
	}
	return nil
}

// PriorityLabel returns the display name for the activity's priority,
// clamped to the labelled scale.
func (a Activity) PriorityLabel() string {
	p := a.Priority
	if p < 0 {
		p = 0
	}
	if p > MaxPriorityLabel {
		p = MaxPriorityLabel
	}
	return PriorityLabels[p]
}
