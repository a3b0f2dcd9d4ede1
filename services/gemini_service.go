package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gustta03/meals-api/models"
)

const defaultGeminiModel = "gemini-2.0-flash"

// GeminiService talks to the Gemini REST API. It is the only place that knows
// about prompts and response shapes; everything it returns still goes through
// the validator before being trusted.
type GeminiService struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

func NewGeminiService() *GeminiService {
	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = defaultGeminiModel
	}
	return &GeminiService{
		apiKey:  os.Getenv("GEMINI_API_KEY"),
		model:   model,
		baseURL: "https://generativelanguage.googleapis.com/v1beta",
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inline_data,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type geminiRequest struct {
	Contents []struct {
		Parts []geminiPart `json:"parts"`
	} `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (s *GeminiService) IdentifyFoods(ctx context.Context, text string) ([]models.FoodIdentification, error) {
	prompt := fmt.Sprintf(`Você é um sistema de identificação de alimentos. Identifique TODOS os alimentos mencionados na mensagem e extraia suas quantidades.

Mensagem do usuário: %q

INSTRUÇÕES:
1. Extraia o peso de cada alimento; se não especificado, use porções típicas conservadoras
2. Separe alimentos compostos em itens individuais
3. NÃO invente alimentos que não foram mencionados

Retorne APENAS um JSON válido:
{"foods":[{"food_name":"nome padronizado","weight_grams":número,"confidence":"high"|"medium"|"low"}]}`, text)

	raw, err := s.generate(ctx, []geminiPart{{Text: prompt}})
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Foods []models.FoodIdentification `json:"foods"`
	}
	if err := json.Unmarshal(stripFences(raw), &parsed); err != nil {
		return nil, externalErr("gemini identify parse", err)
	}
	if len(parsed.Foods) == 0 {
		return nil, fmt.Errorf("identify foods: %w", ErrNotFound)
	}
	return parsed.Foods, nil
}

func (s *GeminiService) ExtractNutrition(ctx context.Context, description string, weightGrams float64) (models.ExtractedNutrition, error) {
	prompt := fmt.Sprintf(`Você é um nutricionista. Estime os valores nutricionais de %.0fg de %q.

Retorne APENAS um JSON válido:
{"food_name":"nome","weight_grams":número,"calories":número,"protein_g":número,"carbs_g":número,"fat_g":número,"fiber_g":número,"confidence":"high"|"medium"|"low"}`,
		weightGrams, description)

	raw, err := s.generate(ctx, []geminiPart{{Text: prompt}})
	if err != nil {
		return models.ExtractedNutrition{}, err
	}

	var parsed models.ExtractedNutrition
	if err := json.Unmarshal(stripFences(raw), &parsed); err != nil {
		return models.ExtractedNutrition{}, externalErr("gemini extract parse", err)
	}
	return parsed, nil
}

func (s *GeminiService) IdentifyFoodsFromImage(ctx context.Context, image []byte, mimeType string) ([]models.ImageFoodItem, error) {
	prompt := `Identifique os alimentos visíveis nesta foto de refeição. Para cada um, estime a quantidade e o peso em gramas.

Retorne APENAS um JSON válido:
{"foods":[{"name":"nome","quantity":"descrição da porção","weight_grams":número,"unit":"g"}]}`

	parts := []geminiPart{
		{Text: prompt},
		{InlineData: &geminiInlineData{
			MimeType: mimeType,
			Data:     base64.StdEncoding.EncodeToString(image),
		}},
	}

	raw, err := s.generate(ctx, parts)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Foods []models.ImageFoodItem `json:"foods"`
	}
	if err := json.Unmarshal(stripFences(raw), &parsed); err != nil {
		return nil, externalErr("gemini image parse", err)
	}
	if len(parsed.Foods) == 0 {
		return nil, fmt.Errorf("identify foods from image: %w", ErrNotFound)
	}
	return parsed.Foods, nil
}

func (s *GeminiService) generate(ctx context.Context, parts []geminiPart) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("gemini: %w: GEMINI_API_KEY not set", ErrExternalService)
	}

	var req geminiRequest
	req.Contents = make([]struct {
		Parts []geminiPart `json:"parts"`
	}, 1)
	req.Contents[0].Parts = parts

	payload, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal gemini payload: %w", err)
	}

	u := fmt.Sprintf("%s/models/%s:generateContent?key=%s", s.baseURL, s.model, s.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return "", externalErr("gemini call", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", externalErr("gemini read", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini API error %d: %s: %w", resp.StatusCode, string(body), ErrExternalService)
	}

	var gr geminiResponse
	if err := json.Unmarshal(body, &gr); err != nil {
		return "", externalErr("gemini decode", err)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no candidates: %w", ErrExternalService)
	}
	return gr.Candidates[0].Content.Parts[0].Text, nil
}

// stripFences removes markdown code fences the model sometimes wraps JSON in.
func stripFences(s string) []byte {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return []byte(strings.TrimSpace(s))
}
