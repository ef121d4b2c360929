// Package conversation holds the data exchanged with the chat service:
// utterances, the transcript and the server-owned context.
package conversation

// Sender tags who produced an utterance.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Utterance is one turn of dialogue.
type Utterance struct {
	Sender Sender `json:"sender"`
	Text   string `json:"text"`
}

// User builds a user utterance.
func User(text string) Utterance { return Utterance{Sender: SenderUser, Text: text} }

// Bot builds a bot utterance.
func Bot(text string) Utterance { return Utterance{Sender: SenderBot, Text: text} }

// IsBot reports whether the utterance came from the chat service.
func (u Utterance) IsBot() bool { return u.Sender == SenderBot }

// Transcript is the ordered list of utterances of a session.
type Transcript []Utterance

// Clone returns a copy that shares no backing array with t.
func (t Transcript) Clone() Transcript {
	out := make(Transcript, len(t))
	copy(out, t)
	return out
}
