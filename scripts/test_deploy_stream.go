//go:build ignore

package main

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"time"

	"github.com/gorilla/websocket"
)

type Event struct {
	Type          string   `json:"type"`
	Step          string   `json:"step,omitempty"`
	DeploymentURL string   `json:"deploymentUrl,omitempty"`
	Steps         []string `json:"steps,omitempty"`
	Error         string   `json:"error,omitempty"`
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run scripts/test_deploy_stream.go <project_name> [host]")
		fmt.Println("Example: go run scripts/test_deploy_stream.go todo-app localhost:8080")
		os.Exit(1)
	}

	host := "localhost:8080"
	if len(os.Args) > 2 {
		host = os.Args[2]
	}

	u := url.URL{
		Scheme: "ws",
		Host:   host,
		Path:   "/api/deploy/stream",
	}

	fmt.Printf("Connecting to %s\n", u.String())

	c, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		log.Fatal("dial:", err)
	}
	defer c.Close()

	if err := c.WriteJSON(map[string]string{"projectName": os.Args[1]}); err != nil {
		log.Fatal("write:", err)
	}

	c.SetReadDeadline(time.Now().Add(time.Minute)) //nolint:errcheck,gosec

	for {
		var event Event
		if err := c.ReadJSON(&event); err != nil {
			log.Fatal("read:", err)
		}

		switch event.Type {
		case "step":
			fmt.Println(event.Step)
		case "complete":
			fmt.Printf("\nDeployed to %s\n", event.DeploymentURL)
			return
		case "error":
			fmt.Printf("\nDeployment failed: %s\n", event.Error)
			os.Exit(1)
		default:
			fmt.Printf("unexpected event: %+v\n", event)
		}
	}
}
