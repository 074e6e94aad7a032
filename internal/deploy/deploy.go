package deploy

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
	"unicode"
)

var ErrInvalidProjectName = errors.New("project name is required")

const idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

func NewSimulator(delay time.Duration) *Simulator {
	return &Simulator{
		delay: delay,
		now:   time.Now,
	}
}

// pretends to clone, build and deploy a repository. onStep, if set, is
// called for each progress step as the delay elapses.
func (s *Simulator) Deploy(ctx context.Context, req Request, onStep func(step string)) (*Deployment, error) {
	slug, err := Slugify(req.ProjectName)
	if err != nil {
		return nil, err
	}

	stepDelay := s.delay / time.Duration(len(Steps))

	for _, step := range Steps {
		if err := sleep(ctx, stepDelay); err != nil {
			return nil, err
		}

		if onStep != nil {
			onStep(step)
		}
	}

	return &Deployment{
		URL:   fmt.Sprintf("https://%s-%s.vercel.app", slug, randomID(6)),
		Steps: append([]string(nil), Steps...),
	}, nil
}

// pretends to upload files to Vercel
func (s *Simulator) DeployToVercel(ctx context.Context, req VercelRequest) (*VercelDeployment, error) {
	slug, err := Slugify(req.ProjectName)
	if err != nil {
		return nil, err
	}

	// uploads take longer than git deployments
	if err := sleep(ctx, s.delay*3/2); err != nil {
		return nil, err
	}

	id := randomID(6)
	timestamp := strconv.FormatInt(s.now().UnixMilli(), 10)

	return &VercelDeployment{
		URL:          fmt.Sprintf("https://%s-%s-%s.vercel.app", slug, id, timestamp[len(timestamp)-6:]),
		DeploymentID: "dpl_" + id + timestamp,
		ProjectID:    "prj_" + id,
		Files:        len(req.Files),
	}, nil
}

// lowercases name and collapses anything but letters and digits into dashes
func Slugify(name string) (string, error) {
	var b strings.Builder
	dash := false

	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
			dash = false
			continue
		}

		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}

	slug := strings.TrimSuffix(b.String(), "-")
	if slug == "" {
		return "", ErrInvalidProjectName
	}

	return slug, nil
}

func randomID(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = idAlphabet[rand.IntN(len(idAlphabet))] //nolint:gosec // identifiers are not secrets
	}

	return string(b)
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
