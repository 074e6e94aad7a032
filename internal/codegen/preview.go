package codegen

import (
	_ "embed"
	"fmt"
	"strings"
	"text/template"
)

// lines that bracket the component source inside a preview document
const (
	PreviewCodeStart = "// --- generated component start ---"
	PreviewCodeEnd   = "// --- generated component end ---"
)

//go:embed templates/preview.html.tmpl
var previewSource string

// text/template: the component must be embedded without any escaping
var previewTemplate = template.Must(template.New("preview").Parse(previewSource))

type previewData struct {
	Lang        string
	Title       string
	StartMarker string
	EndMarker   string
	Code        string
}

// wraps component code in a standalone HTML page that renders it
func BuildPreview(code string) (string, error) {
	var b strings.Builder

	err := previewTemplate.Execute(&b, previewData{
		Lang:        "ka",
		Title:       "Generated Component",
		StartMarker: PreviewCodeStart,
		EndMarker:   PreviewCodeEnd,
		Code:        code,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render preview: %w", err)
	}

	return b.String(), nil
}

// returns the component code embedded in a preview document
func PreviewCode(preview string) (string, bool) {
	start := strings.Index(preview, PreviewCodeStart+"\n")
	end := strings.LastIndex(preview, "\n"+PreviewCodeEnd)

	if start == -1 || end == -1 {
		return "", false
	}

	start += len(PreviewCodeStart) + 1
	if end < start {
		return "", false
	}

	return preview[start:end], true
}
