package codegen

import "codeberg.org/promptforge/server/internal/llm"

const (
	generateMaxTokens   = 2000
	generateTemperature = 0.7
)

// where the returned code came from
type Source string

const (
	SourceRemote   Source = "remote"
	SourceTemplate Source = "template"
)

// names one of the built-in fallback components
type Template string

const (
	TemplateTodo       Template = "todo"
	TemplateCounter    Template = "counter"
	TemplateCalculator Template = "calculator"
	TemplateLanding    Template = "landing"
)

// the outcome of one generation request
type Result struct {
	Code     string   `json:"code"`
	Preview  string   `json:"preview"`
	Source   Source   `json:"source"`
	Template Template `json:"template,omitempty"`
	Model    string   `json:"model,omitempty"`
}

// turns prompts into UI components, remotely when a completer is set
type Generator struct {
	completer llm.Completer
}
