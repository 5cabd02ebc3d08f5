package dashboard

import (
	"fmt"
	"sync"

	"github.com/Temutjin2k/rickshaw-analytics/internal/domain/models"
	"github.com/Temutjin2k/rickshaw-analytics/internal/domain/types"
)

// Build maps the document slice owned by tab to its view.
func Build(tab types.Tab, doc *models.Document) (View, error) {
	if doc == nil {
		return View{}, types.ErrNotReady
	}

	switch tab {
	case types.TabSummary:
		return SummaryView(doc.Summary), nil
	case types.TabHourly:
		return HourlyView(doc.HourlyData), nil
	case types.TabDistance:
		return DistanceView(doc.DistanceData), nil
	case types.TabFare:
		return FareView(doc.FareData), nil
	case types.TabPickup:
		return PickupView(doc.PickupDistanceData), nil
	default:
		return View{}, fmt.Errorf("%w: %q", types.ErrUnknownTab, tab)
	}
}

// Router holds the active tab selection. The zero value is not usable; use NewRouter.
type Router struct {
	mu     sync.RWMutex
	active types.Tab
}

func NewRouter() *Router {
	return &Router{active: types.DefaultTab}
}

// Select makes tab the active view. Unknown tabs are rejected and the selection is kept.
func (r *Router) Select(tab types.Tab) error {
	if !tab.Valid() {
		return fmt.Errorf("%w: %q", types.ErrUnknownTab, tab)
	}

	r.mu.Lock()
	r.active = tab
	r.mu.Unlock()
	return nil
}

func (r *Router) Active() types.Tab {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.active
}

// Render builds the view of the active tab.
func (r *Router) Render(doc *models.Document) (View, error) {
	return Build(r.Active(), doc)
}
