package deploy

import "codeberg.org/promptforge/server/internal/deploy"

type Request struct {
	ProjectName string `json:"projectName"`
	GitHubURL   string `json:"githubUrl"`
}

type Response struct {
	Success       bool     `json:"success"`
	DeploymentURL string   `json:"deploymentUrl"`
	Message       string   `json:"message"`
	Steps         []string `json:"steps"`
}

type VercelRequest struct {
	ProjectName string        `json:"projectName"`
	Files       []deploy.File `json:"files"`
}

type VercelResponse struct {
	Success      bool   `json:"success"`
	URL          string `json:"url"`
	Message      string `json:"message"`
	DeploymentID string `json:"deploymentId"`
	ProjectID    string `json:"projectId"`
	Files        int    `json:"files"`
}

type PreviewRequest struct {
	Files []deploy.File `json:"files"`
}

type PreviewResponse struct {
	PreviewURL  string `json:"previewUrl"`
	RepoURL     string `json:"repoUrl"`
	PreviewID   string `json:"previewId"`
	ContainerID string `json:"containerId"`
}
