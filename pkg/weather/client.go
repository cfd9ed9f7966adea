// Package weather fetches the current conditions snapshot frozen into an
// activity at creation time. The upstream API is an opaque collaborator.
package weather

import (
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

type Client interface {
	Snapshot(ctx context.Context, lat, lon float64) (*entities.WeatherSnapshot, error)
}

type httpClient struct {
	endpoint string
	key      string
	httpc    *http.Client
}

func New(endpoint, key string) Client {
	return &httpClient{
		endpoint: endpoint,
		key:      key,
		httpc:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *httpClient) Snapshot(ctx context.Context, lat, lon float64) (*entities.WeatherSnapshot, error) {
	if c.endpoint == "" {
		return nil, fmt.Errorf("weather endpoint is not configured (WEATHER_ENDPOINT)")
	}
	url := fmt.Sprintf("%s?lat=%f&lon=%f&units=metric&appid=%s",
		strings.TrimRight(c.endpoint, "/"), lat, lon, c.key)

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
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
		Main struct {
			Temp     float64 `json:"temp"`
			Humidity float64 `json:"humidity"`
		} `json:"main"`
		Weather []struct {
			Description string `json:"description"`
		} `json:"weather"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	snap := &entities.WeatherSnapshot{
		TemperatureC: out.Main.Temp,
		HumidityPct:  out.Main.Humidity,
	}
	if len(out.Weather) > 0 {
		snap.Condition = out.Weather[0].Description
	}
	return snap, nil
}
