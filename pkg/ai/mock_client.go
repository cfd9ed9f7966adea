package ai

import (
	"context"
	"strings"

	"kaju/entities"
)

// mockClient stands in when no AI endpoint is configured.
type mockClient struct{}

func NewMock() Client { return &mockClient{} }

func (m *mockClient) Diagnose(ctx context.Context, photos []string, description, kbCtx string) (*entities.Diagnosis, error) {
	d := &entities.Diagnosis{Advice: "定期的な観察を続けてください。(mock)"}
	if strings.Contains(description, "病") {
		d.Disease = "要確認 (mock)"
	}
	if strings.Contains(description, "虫") {
		d.Pest = "要確認 (mock)"
	}
	return d, nil
}
