package dashboard

import (
	"encoding/json"
	"fmt"

	"github.com/Temutjin2k/rickshaw-analytics/internal/domain/types"
)

// Chart is satisfied by every go-echarts chart type.
type Chart interface {
	Validate()
	JSON() map[string]interface{}
}

// View is the fixed layout of one dashboard tab.
type View struct {
	Tab         types.Tab
	Heading     string
	Description string
	Cards       []Card
	Blocks      []Block
}

// Card is a scalar metric shown above the charts.
type Card struct {
	Title string `json:"title"`
	Value string `json:"value"`
}

// Block is one row of the page: either chart panels or an insights list.
type Block struct {
	Panels   []Panel
	Insights *Insights
}

type Insights struct {
	Title string   `json:"title"`
	Items []string `json:"items"`
}

// Panel is a titled chart. Width is in grid columns out of 12, Height in pixels.
type Panel struct {
	ID     string
	Title  string
	Width  int
	Height int
	Format types.ValueFormat
	Chart  Chart
}

// Options returns the ECharts option tree of the panel as JSON.
func (p Panel) Options() ([]byte, error) {
	p.Chart.Validate()
	js, err := json.Marshal(p.Chart.JSON())
	if err != nil {
		return nil, fmt.Errorf("encode chart %s: %w", p.ID, err)
	}
	return js, nil
}

// Panels flattens the chart panels of a view in page order.
func (v View) Panels() []Panel {
	var out []Panel
	for _, b := range v.Blocks {
		out = append(out, b.Panels...)
	}
	return out
}

func row(panels ...Panel) Block {
	return Block{Panels: panels}
}

func insights(title string, items ...string) Block {
	return Block{Insights: &Insights{Title: title, Items: items}}
}
