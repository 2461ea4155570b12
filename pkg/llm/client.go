// Package llm classifies a company name into one of an allowed sector list
// using a hosted language model. The last resort of the cascade: it only
// runs when overrides, the registry and web scoring all came up empty.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

const defaultModel = "claude-haiku-4-5-20251001"

// Classification is the model's answer for one company.
type Classification struct {
	Sector     string `json:"sector"`
	Confidence string `json:"confidence"`
	Reasoning  string `json:"reasoning"`
}

// Classifier assigns a sector from the allowed list to a company name.
// A nil Classification with nil error means the model declined or answered
// outside the list.
type Classifier interface {
	Classify(ctx context.Context, name string, allowed []string) (*Classification, error)
}

// Option configures the classifier.
type Option func(*anthropicClassifier)

// WithModel overrides the default model.
func WithModel(model string) Option {
	return func(c *anthropicClassifier) {
		if model != "" {
			c.model = model
		}
	}
}

// WithRequestOptions appends raw SDK request options (tests use this to
// point the client at a local server).
func WithRequestOptions(opts ...option.RequestOption) Option {
	return func(c *anthropicClassifier) {
		c.sdkOpts = append(c.sdkOpts, opts...)
	}
}

type anthropicClassifier struct {
	client  sdk.Client
	model   string
	sdkOpts []option.RequestOption
}

// NewClassifier creates an Anthropic-backed classifier.
func NewClassifier(apiKey string, opts ...Option) Classifier {
	c := &anthropicClassifier{
		model: defaultModel,
		sdkOpts: []option.RequestOption{
			option.WithAPIKey(apiKey),
			option.WithRequestTimeout(30 * time.Second),
		},
	}
	for _, o := range opts {
		o(c)
	}
	c.client = sdk.NewClient(c.sdkOpts...)
	return c
}

const systemPrompt = "Tu es un expert en classification d'entreprises. " +
	"Tu réponds uniquement en JSON, sans texte autour."

func userPrompt(name string, allowed []string) string {
	quoted := make([]string, len(allowed))
	for i, s := range allowed {
		quoted[i] = fmt.Sprintf("%q", s)
	}
	return fmt.Sprintf(`Identifie le secteur d'activité de l'entreprise suivante : %q.

Tu DOIS choisir le secteur le plus pertinent PARMI cette liste stricte :
[%s]

Si tu ne trouves aucune correspondance ou que l'entreprise n'existe pas, réponds "Unknown".

Réponds UNIQUEMENT au format JSON :
{"sector": "Nom du secteur choisi", "confidence": "Haut/Moyen/Bas", "reasoning": "Courte justification"}`,
		name, strings.Join(quoted, ", "))
}

func (c *anthropicClassifier) Classify(ctx context.Context, name string, allowed []string) (*Classification, error) {
	msg, err := c.client.Messages.New(ctx, sdk.MessageNewParams{
		Model:     sdk.Model(c.model),
		MaxTokens: 256,
		System: []sdk.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(userPrompt(name, allowed))),
		},
	})
	if err != nil {
		return nil, eris.Wrap(err, "llm: create message")
	}

	var text string
	for _, block := range msg.Content {
		if block.Type == "text" {
			text = block.Text
			break
		}
	}

	cls, err := parseClassification(text, allowed)
	if err != nil {
		zap.L().Warn("llm: unusable classification answer",
			zap.String("company", name),
			zap.Error(err),
		)
		return nil, nil
	}
	return cls, nil
}

// parseClassification decodes the model answer and enforces membership in
// the allowed sector list. "Unknown" and off-list answers are no-matches.
func parseClassification(text string, allowed []string) (*Classification, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var cls Classification
	if err := json.Unmarshal([]byte(text), &cls); err != nil {
		return nil, eris.Wrap(err, "llm: parse answer")
	}

	if cls.Sector == "" || cls.Sector == "Unknown" {
		return nil, eris.New("llm: model declined")
	}
	for _, s := range allowed {
		if s == cls.Sector {
			return &cls, nil
		}
	}
	return nil, eris.Errorf("llm: sector %q not in allowed list", cls.Sector)
}
