package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"kaju/entities"
	"kaju/pkg/remote"
)

type openAI struct {
	endpoint string
	key      string
	model    string
	httpc    *http.Client
}

func NewOpenAI(endpoint, key, model string) Client {
	return &openAI{
		endpoint: endpoint,
		key:      key,
		model:    model,
		httpc:    &http.Client{Timeout: 25 * time.Second},
	}
}

func (c *openAI) Diagnose(ctx context.Context, photos []string, description, kbCtx string) (*entities.Diagnosis, error) {
	content := []map[string]any{
		{"type": "text", "text": renderDiagnosePrompt(description, kbCtx)},
	}
	for _, p := range photos {
		if !strings.HasPrefix(p, "data:") {
			p = "data:image/jpeg;base64," + p
		}
		content = append(content, map[string]any{
			"type":      "image_url",
			"image_url": map[string]string{"url": p},
		})
	}

	reqBody := map[string]any{
		"model": c.model,
		"messages": []map[string]any{
			{"role": "system", "content": "You are a Japanese fruit-tree agronomist. Reply ONLY valid JSON."},
			{"role": "user", "content": content},
		},
		"temperature": 0.2,
	}
	b, _ := json.Marshal(reqBody)
	req, err := http.NewRequestWithContext(ctx, "POST", strings.TrimRight(c.endpoint, "/")+"/v1/chat/completions", bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, remote.NetError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<14))
		return nil, remote.StatusError(resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	if len(out.Choices) == 0 {
		return nil, fmt.Errorf("no choices")
	}
	return parseDiagnosis(out.Choices[0].Message.Content)
}

// parseDiagnosis accepts either a bare diagnosis object or one wrapped in a
// "diagnosis" envelope; models flip between the two.
func parseDiagnosis(content string) (*entities.Diagnosis, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	var d entities.Diagnosis
	if err := json.Unmarshal([]byte(content), &d); err != nil {
		return nil, fmt.Errorf("parse diagnosis: %v / raw: %s", err, content)
	}
	if d == (entities.Diagnosis{}) {
		var wrapped struct {
			Diagnosis entities.Diagnosis `json:"diagnosis"`
		}
		if err := json.Unmarshal([]byte(content), &wrapped); err == nil {
			d = wrapped.Diagnosis
		}
	}
	return &d, nil
}

func renderDiagnosePrompt(description, kbCtx string) string {
	return fmt.Sprintf(`写真と記録内容から果樹の状態を診断してください。
回答はJSONのみ: {"disease":"...","pest":"...","ripeness":"...","advice":"..."}
該当なしの項目は空文字にすること。adviceは具体的な作業指示を日本語で2文以内。

記録内容: %s

参考ノート:
%s
`, description, kbCtx)
}
