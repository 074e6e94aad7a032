package assistant

import "fmt"

func buildSystemPrompt(language string) string {
	if language == "" {
		language = "English"
	}

	return fmt.Sprintf(`You are a friendly AI assistant. Your answers must be:
- short and precise (2-3 sentences at most)
- written in %s
- friendly in tone
- practical and useful

If the question is not about code, give a short, informative answer.`, language)
}
