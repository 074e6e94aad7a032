package history

import "codeberg.org/promptforge/server/internal/history"

type ListResponse struct {
	Projects []history.Entry `json:"projects"`
	Success  bool            `json:"success"`
}

type AddRequest struct {
	Prompt  string `json:"prompt"`
	Code    string `json:"code"`
	Preview string `json:"preview"`
}

type AddResponse struct {
	Project history.Entry `json:"project"`
	Success bool          `json:"success"`
}
