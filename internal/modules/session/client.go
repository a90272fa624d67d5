// README: HTTP chat client implementing the optimistic send flow over the log.
package session

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"scout/internal/modules/chat"
)

const defaultAssistantReply = "Let me find some perfect matches for you."

// Client sends chat turns to the API and maintains the session log. Failures
// are folded into the log as assistant messages; Send never returns an error
// to the rendering loop.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *Log
}

func NewClient(baseURL string, log *Log) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 60 * time.Second},
		log:        log,
	}
}

// Log exposes the session log for rendering.
func (c *Client) Log() *Log {
	return c.log
}

// Send runs one turn: the user entry is appended immediately, before the
// request goes out, and the history sent to the server excludes it. The
// returned slice holds the entries appended in response, for rendering.
func (c *Client) Send(ctx context.Context, content string) []Message {
	history := c.log.History()
	c.log.Append(NewMessage(TypeUser, content))

	resp, err := c.post(ctx, chat.ChatRequest{
		Message:             content,
		ConversationHistory: history,
	})
	if err != nil {
		errMsg := NewMessage(TypeAssistant,
			fmt.Sprintf("Sorry, I encountered an error: %v. Please try again.", err))
		c.log.Append(errMsg)
		return []Message{errMsg}
	}

	reply := resp.AssistantMessage
	if reply == "" {
		reply = defaultAssistantReply
	}
	appended := []Message{NewMessage(TypeAssistant, reply)}
	c.log.Append(appended[0])

	if len(resp.Restaurants) > 0 {
		rec := NewMessage(TypeRecommendations, "Here are my top recommendations:")
		rec.Restaurants = resp.Restaurants
		c.log.Append(rec)
		appended = append(appended, rec)
	}
	return appended
}

func (c *Client) post(ctx context.Context, req chat.ChatRequest) (*chat.ChatResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error string `json:"error"`
		}
		if decodeErr := json.NewDecoder(httpResp.Body).Decode(&apiErr); decodeErr == nil && apiErr.Error != "" {
			return nil, fmt.Errorf("API error: %s", apiErr.Error)
		}
		return nil, fmt.Errorf("API error: %s", httpResp.Status)
	}

	var chatResp chat.ChatResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&chatResp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return &chatResp, nil
}
