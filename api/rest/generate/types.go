package generate

import "codeberg.org/promptforge/server/internal/codegen"

type Request struct {
	Prompt string `json:"prompt"`
}

// success is always true; source and template tell whether a built-in
// template stood in for the model
type Response struct {
	Code     string           `json:"code"`
	Preview  string           `json:"preview"`
	Success  bool             `json:"success"`
	Source   codegen.Source   `json:"source"`
	Template codegen.Template `json:"template,omitempty"`
}
