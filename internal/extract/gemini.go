// Package extract talks to the Gemini extraction collaborator. The
// model is asked for a strict JSON object; its answer is still treated
// as untrusted and re-validated by the importer.
package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"cloud.google.com/go/vertexai/genai"

	"github.com/taxops/perdcomp/internal/importer"
	"github.com/taxops/perdcomp/internal/model"
)

const systemPrompt = "Você é um analista de documentos fiscais. Sua tarefa é analisar o conteúdo de arquivos XML de PER/DCOMP e extrair as informações estruturadas com precisão."

const userPrompt = `Analise o seguinte conteúdo de um arquivo XML de PER/DCOMP e extraia as informações estruturadas.
Conteúdo XML:
`

// statusVocabulary is the closed set the extraction schema allows. The
// rest of the system treats status as free text; only the collaborator
// is held to this list.
var statusVocabulary = []string{
	model.StatusProcessing,
	model.StatusApproved,
	model.StatusRejected,
	model.StatusCancelled,
	model.StatusRectified,
}

// Client wraps a pre-configured generative model.
type Client struct {
	model *genai.GenerativeModel
	base  *genai.Client
}

// NewClient builds the collaborator client. projectID and region come
// from config; modelName defaults upstream.
func NewClient(ctx context.Context, projectID, region, modelName string) (*Client, error) {
	if projectID == "" || region == "" {
		return nil, fmt.Errorf("extract: projectID and region cannot be empty")
	}

	base, err := genai.NewClient(ctx, projectID, region)
	if err != nil {
		return nil, fmt.Errorf("genai.NewClient: %w", err)
	}

	m := base.GenerativeModel(modelName)
	m.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt)},
	}
	m.GenerationConfig = genai.GenerationConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   extractionSchema(),
		Temperature:      genai.Ptr[float32](0.0),
	}

	return &Client{model: m, base: base}, nil
}

func extractionSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"perDcompNumber": {
				Type:        genai.TypeString,
				Description: "O número do PER/DCOMP",
			},
			"transmissionDate": {
				Type:        genai.TypeString,
				Description: "Data de transmissão no formato YYYY-MM-DD",
			},
			"creditType": {
				Type:        genai.TypeString,
				Description: "Tipo de crédito (ex: IPI, PIS, COFINS)",
			},
			"documentType": {
				Type:        genai.TypeString,
				Description: "Tipo de documento (ex: Pedido de Ressarcimento)",
			},
			"status": {
				Type:        genai.TypeString,
				Description: "Situação atual",
				Enum:        statusVocabulary,
			},
			"value": {
				Type:        genai.TypeNumber,
				Description: "Valor total do crédito em formato numérico",
			},
		},
		Required: []string{"perDcompNumber", "transmissionDate", "value"},
	}
}

// Extract sends the (already truncated) XML text and decodes the JSON
// answer. One shot: no retry on failure.
func (c *Client) Extract(ctx context.Context, content string) (*importer.Extraction, error) {
	resp, err := c.model.GenerateContent(ctx, genai.Text(userPrompt+content))
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}

	text := responseText(resp)
	if text == "" {
		return nil, fmt.Errorf("resposta vazia do modelo")
	}

	var out importer.Extraction
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return nil, fmt.Errorf("não foi possível extrair os dados do XML de forma estruturada: %w", err)
	}
	return &out, nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	var b strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if txt, ok := part.(genai.Text); ok {
				b.WriteString(string(txt))
			}
		}
	}
	return strings.TrimSpace(b.String())
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	if c.base != nil {
		return c.base.Close()
	}
	return nil
}
