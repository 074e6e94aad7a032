package codegen

import (
	"context"
	"fmt"
	"strings"

	"codeberg.org/promptforge/server/internal/llm"
	"codeberg.org/promptforge/server/internal/logger"
)

// completer may be nil, in which case every request uses a template
func New(completer llm.Completer) *Generator {
	return &Generator{completer: completer}
}

// reports whether the generator calls a remote model
func (g *Generator) Remote() bool {
	return g.completer != nil
}

// produces component code and a preview for prompt. remote failures of any
// kind degrade to a built-in template; an error means the fallback failed too.
func (g *Generator) Generate(ctx context.Context, prompt string) (*Result, error) {
	if g.completer != nil {
		result, err := g.generateRemote(ctx, prompt)
		if err == nil {
			return result, nil
		}

		logger.FromContext(ctx).Warn("remote generation failed, using template",
			"error", err,
			"model", g.completer.Model(),
		)
	}

	return FromTemplate(SelectTemplate(prompt))
}

func (g *Generator) generateRemote(ctx context.Context, prompt string) (*Result, error) {
	resp, err := g.completer.Complete(ctx, llm.Request{
		SystemPrompt: systemPrompt,
		Messages:     []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		MaxTokens:    generateMaxTokens,
		Temperature:  generateTemperature,
	})
	if err != nil {
		return nil, fmt.Errorf("completion failed: %w", err)
	}

	code := strings.TrimSpace(ExtractCode(resp.Text))
	if code == "" {
		return nil, fmt.Errorf("completion returned no code")
	}

	preview, err := BuildPreview(code)
	if err != nil {
		return nil, err
	}

	return &Result{
		Code:    code,
		Preview: preview,
		Source:  SourceRemote,
		Model:   g.completer.Model(),
	}, nil
}

// builds a result from a built-in template
func FromTemplate(name Template) (*Result, error) {
	code, err := TemplateCode(name)
	if err != nil {
		return nil, err
	}

	preview, err := BuildPreview(code)
	if err != nil {
		return nil, err
	}

	return &Result{
		Code:     code,
		Preview:  preview,
		Source:   SourceTemplate,
		Template: name,
	}, nil
}

const systemPrompt = `You generate user interface components.

Return exactly one self-contained React function component named MyComponent.
Rules:
- use only the built-in hooks useState, useEffect and useRef (already in scope, do not import them)
- no import statements and no external libraries
- style everything with inline style objects
- the component must render a complete, good looking page on its own

Reply with the code in a single fenced code block and nothing else.`
