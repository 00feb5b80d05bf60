// Package llm generates documentation text from a project digest via an
// Ollama-compatible generation service.
package llm

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	ollama "github.com/JexSrs/go-ollama"
	"github.com/sirupsen/logrus"

	"github.com/phobologic/codewiki/internal/config"
)

// Client talks to the generation service. It knows nothing about how the
// digest it receives was produced.
type Client struct {
	client       *ollama.Ollama
	model        string
	maxPromptLen int
	log          logrus.FieldLogger
}

// NewClient creates a client for the configured host and model.
// maxPromptLen bounds outgoing prompts; 0 disables truncation.
func NewClient(cfg config.OllamaConfig, maxPromptLen int) (*Client, error) {
	u, err := url.Parse(cfg.Host)
	if err != nil {
		return nil, fmt.Errorf("invalid ollama host %q: %w", cfg.Host, err)
	}

	return &Client{
		client:       ollama.New(*u),
		model:        cfg.Model,
		maxPromptLen: maxPromptLen,
		log:          logrus.StandardLogger(),
	}, nil
}

// Model returns the configured model identifier.
func (c *Client) Model() string {
	return c.model
}

// GenerateDocumentation produces documentation for the digest. When existing
// holds a previously generated (possibly hand-edited) wiki, the service is
// asked to refine it instead of starting over.
func (c *Client) GenerateDocumentation(digest, existing string) (string, error) {
	return c.generate(systemMessage, buildPrompt(digest, existing))
}

func (c *Client) generate(system, prompt string) (string, error) {
	prompt = c.truncate(prompt)

	res, err := c.client.Generate(
		c.client.Generate.WithModel(c.model),
		c.client.Generate.WithSystem(system),
		c.client.Generate.WithPrompt(prompt),
	)
	if err != nil {
		return "", fmt.Errorf("calling generation service: %w", err)
	}

	if !res.Done {
		return "", errors.New("generation did not complete (unexpected streaming response)")
	}
	if res.Response == "" {
		return "", errors.New("generation service returned an empty response")
	}

	// Models occasionally wrap the whole answer in code fences.
	return strings.TrimSpace(strings.Trim(res.Response, "`")), nil
}

func (c *Client) truncate(prompt string) string {
	if c.maxPromptLen > 0 && len(prompt) > c.maxPromptLen {
		c.log.Warnf("prompt truncated from %d to %d characters", len(prompt), c.maxPromptLen)
		return prompt[:c.maxPromptLen]
	}
	return prompt
}
