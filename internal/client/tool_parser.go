package client

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"google.golang.org/genai"

	"nexusfile/internal/logging"
)

// toolCallFromText is the JSON shape a model without native function
// calling is instructed to emit.
type toolCallFromText struct {
	Tool string         `json:"tool"`
	Name string         `json:"name"` // alias for "tool"
	Args map[string]any `json:"args"`
}

var codeBlockPattern = regexp.MustCompile("(?s)```(?:json)?\\s*\\n?(\\{.*?\\})\\s*\\n?```")

// ParseToolCallsFromText extracts operation calls from free-form model
// output, stripping surrounding code fences first. Supported forms:
//   - {"tool": "name", "args": {...}}
//   - {"name": "name", "args": {...}}
//   - the same wrapped in ```json fences, possibly several in sequence
func ParseToolCallsFromText(text string) []*genai.FunctionCall {
	if text == "" {
		return nil
	}

	if calls := extractFromCodeBlocks(text); len(calls) > 0 {
		return calls
	}
	return extractFromBareJSON(text)
}

func extractFromCodeBlocks(text string) []*genai.FunctionCall {
	matches := codeBlockPattern.FindAllStringSubmatch(text, -1)

	var calls []*genai.FunctionCall
	for _, match := range matches {
		if len(match) < 2 {
			continue
		}
		if fc := parseToolCallJSON(match[1]); fc != nil {
			calls = append(calls, fc)
		}
	}
	return calls
}

func extractFromBareJSON(text string) []*genai.FunctionCall {
	var calls []*genai.FunctionCall
	for _, obj := range findJSONObjects(text) {
		if fc := parseToolCallJSON(obj); fc != nil {
			calls = append(calls, fc)
		}
	}
	return calls
}

// findJSONObjects extracts JSON objects from text by matching braces.
func findJSONObjects(text string) []string {
	var objects []string
	i := 0
	for i < len(text) {
		if text[i] != '{' {
			i++
			continue
		}

		depth := 0
		inString := false
		escaped := false
		j := i
		for j < len(text) {
			ch := text[j]
			if escaped {
				escaped = false
				j++
				continue
			}
			if ch == '\\' && inString {
				escaped = true
				j++
				continue
			}
			if ch == '"' {
				inString = !inString
			}
			if !inString {
				if ch == '{' {
					depth++
				} else if ch == '}' {
					depth--
					if depth == 0 {
						candidate := text[i : j+1]
						if strings.Contains(candidate, `"tool"`) || strings.Contains(candidate, `"name"`) {
							objects = append(objects, candidate)
						}
						break
					}
				}
			}
			j++
		}
		if depth != 0 {
			// Unmatched brace, skip
			i++
			continue
		}
		i = j + 1
	}
	return objects
}

func parseToolCallJSON(jsonStr string) *genai.FunctionCall {
	var tc toolCallFromText
	if err := json.Unmarshal([]byte(strings.TrimSpace(jsonStr)), &tc); err != nil {
		return nil
	}

	toolName := tc.Tool
	if toolName == "" {
		toolName = tc.Name
	}
	if toolName == "" {
		return nil
	}

	if tc.Args == nil {
		tc.Args = make(map[string]any)
	}

	logging.Debug("parsed tool call from text", "tool", toolName, "args_count", len(tc.Args))

	return &genai.FunctionCall{
		ID:   fmt.Sprintf("text_call_%s", toolName),
		Name: toolName,
		Args: tc.Args,
	}
}

// ToolCallFallbackPrompt returns the system prompt addition instructing
// models without native function calling to emit parseable JSON calls.
func ToolCallFallbackPrompt(decls []*genai.FunctionDeclaration) string {
	if len(decls) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("\n\n## Tool Calling Instructions\n\n")
	sb.WriteString("To request an operation, output a JSON object in a code block:\n\n")
	sb.WriteString("```json\n{\"tool\": \"tool_name\", \"args\": {\"param1\": \"value1\"}}\n```\n\n")
	sb.WriteString("Output ONLY JSON blocks, one per operation, no other text.\n")
	sb.WriteString("Use exact parameter names as defined below.\n\n")
	sb.WriteString("Available operations:\n\n")

	for _, decl := range decls {
		fmt.Fprintf(&sb, "### %s\n%s\n", decl.Name, decl.Description)

		if decl.Parameters != nil && len(decl.Parameters.Properties) > 0 {
			sb.WriteString("Parameters:\n")
			required := make(map[string]bool)
			for _, r := range decl.Parameters.Required {
				required[r] = true
			}
			for name, prop := range decl.Parameters.Properties {
				reqMark := ""
				if required[name] {
					reqMark = " (required)"
				}
				fmt.Fprintf(&sb, "- `%s`%s: %s\n", name, reqMark, prop.Description)
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
