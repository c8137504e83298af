package llm

import "sort"

// BaseSystemMessage is prepended to every conversation.
const BaseSystemMessage = "You are a helpful assistant."

// additionalDataInstructions is appended to the system message when the
// caller requests structured additional data. The per-key lines follow.
const additionalDataInstructions = `

When responding, you may include additional structured data using the following format:
<additional_data key=[NAME]>[VALUE]</additional_data>
[KEY] should be substituted by the name of additional data field (without square brackets).
Example:
	<additional_data key=conversation_title>Counting 'R's in 'strawberry'</additional_data>
Only include additional data that was requested in this prompt.
All additional data fields should be included in the response, unless otherwise specified by their description.
All additional data values should be plain text, unless otherwise specified.
All additional data specified should have non-empty value (if it is included in the response). This is very important.

Additional data requested:
`

// buildSystemMessage returns the system prompt, extended with the
// additional-data protocol instructions when any keys are requested.
func buildSystemMessage(requested map[string]string) string {
	if len(requested) == 0 {
		return BaseSystemMessage
	}
	msg := BaseSystemMessage + additionalDataInstructions
	for _, key := range sortedKeys(requested) {
		msg += key + ": " + requested[key] + "\n"
	}
	return msg
}

// sortedKeys returns the map keys in a stable order so the generated
// system prompt is deterministic.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
