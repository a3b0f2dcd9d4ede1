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
	"time"
)

// WhapiService sends replies through the Whapi.Cloud WhatsApp gateway and
// downloads inbound media.
type WhapiService struct {
	token   string
	baseURL string
	client  *http.Client
}

func NewWhapiService() *WhapiService {
	base := os.Getenv("WHAPI_BASE_URL")
	if base == "" {
		base = "https://gate.whapi.cloud"
	}
	return &WhapiService{
		token:   os.Getenv("WHAPI_TOKEN"),
		baseURL: base,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *WhapiService) SendText(ctx context.Context, to, body string) error {
	payload := map[string]string{"to": to, "body": body}
	return s.post(ctx, "/messages/text", payload)
}

func (s *WhapiService) SendImage(ctx context.Context, to string, image []byte, caption, mimeType string) error {
	if mimeType == "" {
		mimeType = "image/png"
	}
	payload := map[string]string{
		"to":      to,
		"media":   fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(image)),
		"caption": caption,
	}
	return s.post(ctx, "/messages/image", payload)
}

// DownloadMedia fetches an inbound media file referenced by the webhook.
func (s *WhapiService) DownloadMedia(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create media request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.token)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, externalErr("whapi media download", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("whapi media download error %d: %w", resp.StatusCode, ErrExternalService)
	}
	return io.ReadAll(resp.Body)
}

func (s *WhapiService) post(ctx context.Context, path string, payload any) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal whapi payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("failed to create whapi request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.token)

	resp, err := s.client.Do(req)
	if err != nil {
		return externalErr("whapi call", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("whapi API error %d: %s: %w", resp.StatusCode, string(body), ErrExternalService)
	}
	return nil
}
