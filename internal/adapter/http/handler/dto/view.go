package dto

import (
	"encoding/json"

	"github.com/Temutjin2k/rickshaw-analytics/internal/domain/types"
	"github.com/Temutjin2k/rickshaw-analytics/internal/service/dashboard"
)

type ViewResponse struct {
	Tab         types.Tab             `json:"tab"`
	Label       string                `json:"label"`
	Heading     string                `json:"heading"`
	Description string                `json:"description,omitempty"`
	Cards       []dashboard.Card      `json:"cards,omitempty"`
	Panels      []PanelResponse       `json:"panels"`
	Insights    []*dashboard.Insights `json:"insights,omitempty"`
}

type PanelResponse struct {
	ID      string            `json:"id"`
	Title   string            `json:"title"`
	Width   int               `json:"width"`
	Height  int               `json:"height"`
	Format  types.ValueFormat `json:"format"`
	Options json.RawMessage   `json:"options" swaggertype:"object"`
}

// NewViewResponse converts a view into its API form with the chart option trees inlined.
func NewViewResponse(v dashboard.View) (ViewResponse, error) {
	resp := ViewResponse{
		Tab:         v.Tab,
		Label:       v.Tab.Label(),
		Heading:     v.Heading,
		Description: v.Description,
		Cards:       v.Cards,
		Panels:      []PanelResponse{},
	}

	for _, b := range v.Blocks {
		if b.Insights != nil {
			resp.Insights = append(resp.Insights, b.Insights)
		}
		for _, p := range b.Panels {
			js, err := p.Options()
			if err != nil {
				return ViewResponse{}, err
			}
			resp.Panels = append(resp.Panels, PanelResponse{
				ID:      p.ID,
				Title:   p.Title,
				Width:   p.Width,
				Height:  p.Height,
				Format:  p.Format,
				Options: js,
			})
		}
	}

	return resp, nil
}
