package types

import "fmt"

// Tab selects one of the five dashboard views.
type Tab string

func (t Tab) String() string {
	return string(t)
}

const (
	TabSummary  Tab = "summary"
	TabHourly   Tab = "hourly"
	TabDistance Tab = "distance"
	TabFare     Tab = "fare"
	TabPickup   Tab = "pickup"
)

// DefaultTab is shown when nothing has been selected yet.
const DefaultTab = TabSummary

// AllTabs lists the tabs in navigation order.
var AllTabs = []Tab{TabSummary, TabHourly, TabDistance, TabFare, TabPickup}

var tabLabels = map[Tab]string{
	TabSummary:  "Summary",
	TabHourly:   "By Hour",
	TabDistance: "By Distance",
	TabFare:     "By Fare",
	TabPickup:   "By Pickup Distance",
}

// Label is the navigation link text.
func (t Tab) Label() string {
	return tabLabels[t]
}

func (t Tab) Valid() bool {
	_, ok := tabLabels[t]
	return ok
}

// ParseTab converts a raw selector into a Tab. An empty selector means the default tab.
func ParseTab(s string) (Tab, error) {
	if s == "" {
		return DefaultTab, nil
	}
	t := Tab(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownTab, s)
	}
	return t, nil
}
