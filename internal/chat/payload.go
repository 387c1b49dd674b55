package chat

// Button styles understood by the chat platform
const (
	ButtonStylePrimary = 1
	ButtonStyleLink    = 5
)

// MessagePayload is the renderable content of a chat message: one embed
// plus optional action buttons. Building payloads is pure; only the
// Client performs I/O.
type MessagePayload struct {
	Embed   Embed
	Buttons []Button
}

// Embed is a rich-content block within a message
type Embed struct {
	Title       string
	Description string
	Color       int
	Fields      []EmbedField
}

// EmbedField is one labelled value inside an embed
type EmbedField struct {
	Name   string
	Value  string
	Inline bool
}

// Button is an action affordance attached to a message.
// Link buttons carry a URL; other styles carry a CustomID the platform
// echoes back on interaction.
type Button struct {
	Label    string
	Style    int
	URL      string
	CustomID string
	Emoji    string
}
