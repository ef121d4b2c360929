package web

import (
	"github.com/lojasmm/gadgetchat/internal/affordance"
	"github.com/lojasmm/gadgetchat/internal/conversation"
	"github.com/lojasmm/gadgetchat/internal/message"
	"github.com/lojasmm/gadgetchat/internal/product"
	"github.com/lojasmm/gadgetchat/internal/render"
)

// viewData is a render.View flattened for the page template and the JSON
// API.
type viewData struct {
	Sender      conversation.Sender      `json:"sender"`
	Text        string                   `json:"text"`
	Comparison  *message.ComparisonBlock `json:"comparison,omitempty"`
	Affordances []affordance.Affordance  `json:"affordances"`
	Buttons     []affordance.Button      `json:"buttons"`
	Rows        []product.Row            `json:"rows,omitempty"`
}

func (v viewData) IsBot() bool { return v.Sender == conversation.SenderBot }

func toViewData(views []render.View) []viewData {
	out := make([]viewData, len(views))
	for i, v := range views {
		d := viewData{
			Sender:      v.Utterance.Sender,
			Text:        v.Utterance.Text,
			Affordances: v.Affordances,
			Buttons:     v.Buttons(),
			Rows:        v.Rows,
		}
		if d.Affordances == nil {
			d.Affordances = []affordance.Affordance{}
		}
		if d.Buttons == nil {
			d.Buttons = []affordance.Button{}
		}
		if block, ok := v.Segments.Block(); ok {
			d.Comparison = &block
		}
		out[i] = d
	}
	return out
}
