package assistant

import (
	"context"
	"strings"
	"unicode"
)

type cannedReply struct {
	keywords []string
	reply    string
}

// checked in order, first match wins
var cannedReplies = []cannedReply{
	{
		keywords: []string{"hello", "hi", "hey", "გამარჯობა", "სალამი"},
		reply:    "Hello! 👋 I can generate UI components (try \"create a todo app\") and answer short questions about web development.",
	},
	{
		keywords: []string{"react"},
		reply:    "React is a JavaScript library for building user interfaces out of reusable components. State lives in hooks like useState, and the UI re-renders when it changes.",
	},
	{
		keywords: []string{"javascript", "js", "learn", "learning"},
		reply:    "Start with the basics (variables, functions, arrays, objects), then practise on small projects like a todo list or calculator. MDN Web Docs is the best free reference.",
	},
	{
		keywords: []string{"css", "style", "design"},
		reply:    "Inline styles and flexbox go a long way for small components. Keep spacing and colours consistent and test on a narrow screen early.",
	},
	{
		keywords: []string{"help", "what can you do", "დახმარება"},
		reply:    "Ask me to create something (todo app, counter, calculator, landing page) and I will generate a live preview, or ask a short question.",
	},
	{
		keywords: []string{"thanks", "thank you", "მადლობა"},
		reply:    "You're welcome! Let me know if you want to build something else.",
	},
}

const defaultCannedReply = "The AI service is running in offline mode, so I can only give short canned answers. Try asking me to create a todo app, counter, calculator or landing page."

// answers from a fixed keyword table without calling any API
type LocalResponder struct{}

func NewLocalResponder() *LocalResponder {
	return &LocalResponder{}
}

func (r *LocalResponder) Reply(_ context.Context, message string, _ []Message) (string, error) {
	return CannedReply(message), nil
}

// returns the canned answer for message
func CannedReply(message string) string {
	text := normalize(message)

	for _, canned := range cannedReplies {
		for _, keyword := range canned.keywords {
			if strings.Contains(text, " "+keyword+" ") {
				return canned.reply
			}
		}
	}

	return defaultCannedReply
}

// lowercases message and reduces it to space separated words, padded on both
// sides so keywords only match whole words
func normalize(message string) string {
	words := strings.FieldsFunc(strings.ToLower(message), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	return " " + strings.Join(words, " ") + " "
}
