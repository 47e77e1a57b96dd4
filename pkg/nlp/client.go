package nlp

// client for the campus NLP microservice
// - intent detection / retrieval / answer generation live there,
//   this side only speaks its /api/chat JSON contract

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/campus-assist/campus-assist/pkg/types"
)

const DEFAULT_TIMEOUT = time.Second * 30

type Client struct {
	client  *http.Client
	baseURL string
}

func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DEFAULT_TIMEOUT
	}
	return &Client{
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

func (s *Client) BaseURL() string {
	return s.baseURL
}

// Chat 单次请求，不做重试，失败语义由调用方转换为兜底应答
func (s *Client) Chat(ctx context.Context, args types.ChatRequest) (*types.ChatResponse, error) {
	slog.Debug("nlp.Chat", slog.String("conversation", args.ConversationID), slog.String("language", args.Language))

	payload, err := json.Marshal(args)
	if err != nil {
		return nil, fmt.Errorf("Failed to marshal nlp chat request, %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/api/chat", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("Failed to build nlp chat request, %w", err)
	}
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("Failed to request nlp service: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("Failed to read nlp response, %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("Failed to request nlp service, %s: %s", resp.Status, string(body))
	}

	var result types.ChatResponse
	if err = json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("Failed to unmarshal nlp response, %w", err)
	}

	return &result, nil
}
