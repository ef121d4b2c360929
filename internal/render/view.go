// Package render assembles what a front-end needs to draw each transcript
// entry: its text segmentation, its controls and any product rows.
package render

import (
	"github.com/lojasmm/gadgetchat/internal/affordance"
	"github.com/lojasmm/gadgetchat/internal/conversation"
	"github.com/lojasmm/gadgetchat/internal/message"
	"github.com/lojasmm/gadgetchat/internal/product"
)

// View is one transcript entry ready to draw.
type View struct {
	Utterance   conversation.Utterance
	Segments    message.Segmentation
	Affordances []affordance.Affordance
	Rows        []product.Row
}

// Buttons returns every button attached to the view, in display order.
func (v View) Buttons() []affordance.Button {
	return affordance.Buttons(v.Affordances)
}

// BuildViews renders every utterance against ctx. Controls are computed
// from the latest context for all messages alike.
func BuildViews(transcript conversation.Transcript, ctx conversation.Context) []View {
	views := make([]View, len(transcript))
	for i, u := range transcript {
		views[i] = Build(u, ctx)
	}
	return views
}

// Build renders a single utterance.
func Build(u conversation.Utterance, ctx conversation.Context) View {
	v := View{
		Utterance:   u,
		Segments:    message.SegmentComparison(u.Text),
		Affordances: affordance.Compute(u, ctx),
	}
	if listing, ok := affordance.Find(v.Affordances, affordance.KindItemListing); ok {
		v.Rows = product.Render(listing.Items)
	}
	return v
}

// LastBot returns the index of the last bot view, or -1.
func LastBot(views []View) int {
	for i := len(views) - 1; i >= 0; i-- {
		if views[i].Utterance.IsBot() {
			return i
		}
	}
	return -1
}
