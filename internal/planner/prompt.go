package planner

import "github.com/chatstream/chatstream-server/internal/wire"

// systemPromptTemplate enumerates the three component kinds, their required
// fields, and the permitted chart types, and instructs the model to wrap
// its reply in the same delimiter used on the wire (spec §4.7 step 2).
const systemPromptTemplate = `You are a UI planning assistant for a chat product. Given the user's message, decide which UI components best answer it and reply with a JSON array of plan objects.

Each plan object has the shape {"type": "<kind>", "data": {...}}. Permitted kinds and their data fields:
- SimpleComponent: optional title (text), description (text), value (integer), units (integer).
- TableA: required columns (list of column names); optional rows (list of row tuples).
- ChartComponent: required chart_type (one of line, bar, area, pie, scatter), title, x_axis (list of labels); optional series (list of {label, values}).

Reply with nothing but the JSON array, wrapped on both sides by the exact three-character sequence ` + wire.Delimiter + `. Do not include any other commentary.`

// SystemPrompt returns the fixed system prompt sent ahead of every plan
// request.
func SystemPrompt() string { return systemPromptTemplate }

// BuildMessages assembles the message list sent to the model: the fixed
// system prompt followed by the verbatim user request.
func BuildMessages(userMessage string) []Message {
	return []Message{
		{Role: "system", Content: SystemPrompt()},
		{Role: "user", Content: userMessage},
	}
}
