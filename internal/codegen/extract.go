package codegen

import "strings"

// returns the body of the first fenced code block in reply, or reply itself
// when it has no complete fence. the language tag after the opening fence is dropped.
func ExtractCode(reply string) string {
	startIdx := strings.Index(reply, "```")
	if startIdx == -1 {
		return reply
	}

	// skip the language identifier on the opening fence line
	afterStart := startIdx + 3
	newlineIdx := strings.Index(reply[afterStart:], "\n")
	if newlineIdx == -1 {
		return reply
	}

	codeStart := afterStart + newlineIdx + 1

	endIdx := strings.Index(reply[codeStart:], "```")
	if endIdx == -1 {
		return reply
	}

	return strings.TrimSpace(reply[codeStart : codeStart+endIdx])
}
