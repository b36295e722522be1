package resolver

import (
	"google.golang.org/genai"

	"nexusfile/internal/plan"
)

// SystemInstruction constrains the model to the closed operation grammar.
const SystemInstruction = "You are a secure file management assistant. " +
	"Use the provided tools only. Never assume destructive intent. " +
	"When the user asks to move files without naming them individually, " +
	"first call search_files to find them, then call move_files with an " +
	"empty sources list to move what the search found."

// Declarations returns the function declarations for the closed grammar.
// Argument names here must match what the plan validator reads.
func Declarations() []*genai.FunctionDeclaration {
	return []*genai.FunctionDeclaration{
		{
			Name: plan.OpSearch,
			Description: "Search for files under a directory. Returns the " +
				"matching file paths. Does not modify anything.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"pattern": {
						Type:        genai.TypeString,
						Description: "Glob pattern to match file names, e.g. \"*.jpg\".",
					},
					"root_path": {
						Type:        genai.TypeString,
						Description: "Directory to search in. Defaults to the current directory.",
					},
					"recursive": {
						Type:        genai.TypeBoolean,
						Description: "Whether to search subdirectories. Defaults to true.",
					},
					"search_term": {
						Type:        genai.TypeString,
						Description: "Keyword that must appear in the file name.",
					},
				},
			},
		},
		{
			Name: plan.OpMove,
			Description: "Move files into a destination directory, creating " +
				"it if needed. Requires user confirmation before anything is moved.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"sources": {
						Type:        genai.TypeArray,
						Items:       &genai.Schema{Type: genai.TypeString},
						Description: "File paths to move. Leave empty to move the files found by the preceding search.",
					},
					"destination": {
						Type:        genai.TypeString,
						Description: "Directory to move the files into.",
					},
				},
				Required: []string{"destination"},
			},
		},
	}
}
