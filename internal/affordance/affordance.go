// Package affordance decides which interactive controls to attach to a bot
// message. The chat service signals them with fixed phrases inside the
// reply text; every phrase the front-end reacts to is declared here.
package affordance

import (
	"strings"

	"github.com/lojasmm/gadgetchat/internal/conversation"
	"github.com/lojasmm/gadgetchat/internal/message"
	"github.com/lojasmm/gadgetchat/internal/product"
)

// Signal phrases embedded by the chat service.
const (
	PhraseDecision = "proceed with one of these options or stop the process"
	PhraseRefine   = "add more items or finalize your order"
	PhraseListing  = "Here are some matching items"
)

// Fixed utterances sent when an action button is pressed.
const (
	ActionProceed     = "proceed"
	ActionStop        = "stop"
	ActionExploreMore = "explore more"
	ActionGoBack      = "go back to the previous recommendations"
	ActionFinalize    = "finalize my order"
)

// Kind identifies an affordance.
type Kind string

const (
	KindOptions     Kind = "options"
	KindDecision    Kind = "decision"
	KindRefine      Kind = "refine"
	KindItemListing Kind = "item_listing"
)

// Button is a clickable control. Pressing it submits Utterance as the next
// user turn.
type Button struct {
	Label     string `json:"label"`
	Utterance string `json:"utterance"`
}

// Affordance is one group of controls attached to a message. Item listings
// carry Items and no buttons.
type Affordance struct {
	Kind    Kind             `json:"kind"`
	Buttons []Button         `json:"buttons,omitempty"`
	Items   []product.Record `json:"items,omitempty"`
}

// Compute returns the affordances for u given the current context. The
// checks are independent, so a message may carry several of them; the
// result is ordered options, decision, refine, item listing.
func Compute(u conversation.Utterance, ctx conversation.Context) []Affordance {
	if !u.IsBot() {
		return nil
	}

	var out []Affordance

	if opts := message.ExtractOptions(u.Text); len(opts) > 0 {
		buttons := make([]Button, len(opts))
		for i, opt := range opts {
			buttons[i] = Button{Label: opt, Utterance: opt}
		}
		out = append(out, Affordance{Kind: KindOptions, Buttons: buttons})
	}

	if strings.Contains(u.Text, PhraseDecision) {
		buttons := []Button{
			{Label: "Proceed", Utterance: ActionProceed},
			{Label: "Stop", Utterance: ActionStop},
			{Label: "Explore More", Utterance: ActionExploreMore},
		}
		if ctx.RecommendationHistoryLen() > 0 {
			buttons = append(buttons, Button{Label: "Go Back", Utterance: ActionGoBack})
		}
		out = append(out, Affordance{Kind: KindDecision, Buttons: buttons})
	}

	if strings.Contains(u.Text, PhraseRefine) {
		out = append(out, Affordance{Kind: KindRefine, Buttons: []Button{
			{Label: "Add More Items", Utterance: ActionExploreMore},
			{Label: "Finalize Order", Utterance: ActionFinalize},
		}})
	}

	if strings.Contains(u.Text, PhraseListing) {
		out = append(out, Affordance{Kind: KindItemListing, Items: ctx.LastRetrievedItems()})
	}

	return out
}

// Buttons flattens the buttons of all affordances in order.
func Buttons(affs []Affordance) []Button {
	var out []Button
	for _, a := range affs {
		out = append(out, a.Buttons...)
	}
	return out
}

// Find returns the first affordance of the given kind.
func Find(affs []Affordance, kind Kind) (Affordance, bool) {
	for _, a := range affs {
		if a.Kind == kind {
			return a, true
		}
	}
	return Affordance{}, false
}
