// Package toolcall normalizes the two tool-invocation protocols the
// completion model has used over time: native structured function calls,
// and the legacy embedded-text convention where a single JSON envelope
// ({"tool": ..., "args": {...}}) or an "ACTION:" sentinel line is inlined
// in the reply text.
package toolcall

import (
	"encoding/json"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/binguliki/IntelliLearn/pkg/gemini"
)

// sentinelPrefix marks the legacy one-line tool-call form:
// "ACTION: <name> <json args>".
const sentinelPrefix = "ACTION:"

// Request is one normalized tool invocation.
type Request struct {
	Name string
	Args map[string]interface{}
}

// Outcome classifies what the embedded-text parser found.
type Outcome int

const (
	// NoCall means the text carries no tool-call marker.
	NoCall Outcome = iota
	// Malformed means a marker was present but its payload did not parse.
	// The turn is treated as plain text (fail-open), never as an error.
	Malformed
	// Call means a single well-formed invocation was extracted.
	Call
)

// ParseResult is the explicit result of scanning text for an embedded call.
type ParseResult struct {
	Outcome Outcome
	Request Request
}

// Extract normalizes a completion response into an ordered request list and
// the text to display. Native structured calls take precedence; only when
// none are present is the reply text scanned for an embedded marker.
func Extract(text string, native []gemini.FunctionCall) ([]Request, string) {
	if len(native) > 0 {
		reqs := make([]Request, len(native))
		for i, fc := range native {
			reqs[i] = Request{Name: fc.Name, Args: fc.Args}
		}
		return reqs, text
	}

	res, cleaned := ParseEmbedded(text)
	if res.Outcome != Call {
		return nil, cleaned
	}
	return []Request{res.Request}, cleaned
}

// ParseEmbedded scans text for the leftmost embedded tool-call marker and
// returns the parse result plus the display text with the marker stripped.
// Only the first marker is honored; any later ones are left untouched in
// the cleaned text. A malformed payload yields the original text unchanged.
func ParseEmbedded(text string) (ParseResult, string) {
	jsonIdx, jsonRes, jsonEnd := scanJSONEnvelope(text)
	sentIdx, sentRes, sentEnd := scanSentinel(text)

	// Leftmost marker wins.
	idx, res, end := jsonIdx, jsonRes, jsonEnd
	if sentIdx >= 0 && (jsonIdx < 0 || sentIdx < jsonIdx) {
		idx, res, end = sentIdx, sentRes, sentEnd
	}

	if idx < 0 {
		return ParseResult{Outcome: NoCall}, text
	}
	if res.Outcome != Call {
		return res, text
	}

	cleaned := strings.TrimSpace(text[:idx] + text[end:])
	return res, cleaned
}

// scanJSONEnvelope finds the leftmost JSON object carrying "tool" and
// "args" keys. Returns -1 when no envelope-shaped object starts anywhere.
func scanJSONEnvelope(text string) (int, ParseResult, int) {
	for i := 0; i < len(text); i++ {
		if text[i] != '{' {
			continue
		}

		dec := json.NewDecoder(strings.NewReader(text[i:]))
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			// An unparseable object only counts as a marker when it
			// plainly tries to be the envelope.
			if strings.HasPrefix(text[i:], `{"tool"`) {
				return i, ParseResult{Outcome: Malformed}, i
			}
			continue
		}

		tool := gjson.GetBytes(raw, "tool")
		if !tool.Exists() || tool.Type != gjson.String {
			continue
		}

		args := map[string]interface{}{}
		if a := gjson.GetBytes(raw, "args"); a.IsObject() {
			if m, ok := a.Value().(map[string]interface{}); ok {
				args = m
			}
		}

		end := i + int(dec.InputOffset())
		return i, ParseResult{
			Outcome: Call,
			Request: Request{Name: tool.String(), Args: args},
		}, end
	}
	return -1, ParseResult{Outcome: NoCall}, -1
}

// scanSentinel finds the leftmost line that starts with "ACTION:". The
// payload is the tool name, optionally followed by a JSON args object.
func scanSentinel(text string) (int, ParseResult, int) {
	offset := 0
	for _, line := range strings.SplitAfter(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, sentinelPrefix) {
			offset += len(line)
			continue
		}

		idx := offset
		end := offset + len(line)
		payload := strings.TrimSpace(strings.TrimPrefix(trimmed, sentinelPrefix))
		if payload == "" {
			return idx, ParseResult{Outcome: Malformed}, idx
		}

		name := payload
		args := map[string]interface{}{}
		if brace := strings.IndexByte(payload, '{'); brace >= 0 {
			name = strings.TrimSpace(payload[:brace])
			if err := json.Unmarshal([]byte(payload[brace:]), &args); err != nil {
				return idx, ParseResult{Outcome: Malformed}, idx
			}
		}
		if name == "" {
			return idx, ParseResult{Outcome: Malformed}, idx
		}

		return idx, ParseResult{
			Outcome: Call,
			Request: Request{Name: name, Args: args},
		}, end
	}
	return -1, ParseResult{Outcome: NoCall}, -1
}
