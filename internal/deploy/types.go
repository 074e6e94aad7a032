package deploy

import "time"

// progress steps reported by a simulated deployment, in order
var Steps = []string{
	"✅ Repository cloned",
	"✅ Dependencies installed",
	"✅ Build completed",
	"✅ Deployment successful",
}

type File struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

type Request struct {
	ProjectName string
	GitHubURL   string
}

type Deployment struct {
	URL   string   `json:"deploymentUrl"`
	Steps []string `json:"steps"`
}

type VercelRequest struct {
	ProjectName string
	Files       []File
}

type VercelDeployment struct {
	URL          string `json:"url"`
	DeploymentID string `json:"deploymentId"`
	ProjectID    string `json:"projectId"`
	Files        int    `json:"files"`
}

// fabricates deployments after an artificial delay
type Simulator struct {
	delay time.Duration
	now   func() time.Time
}
