package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bnema/nova/internal/ports"
)

const (
	DefaultBaseURL = "https://api.openweathermap.org"
	weatherPath    = "/data/2.5/weather"
	maxBodyBytes   = 1 << 20
	defaultTimeout = 10 * time.Second
)

// Client answers weather questions from the OpenWeatherMap current weather
// endpoint. The API key is read from the secret store on every call so a
// rotated key takes effect without a restart.
type Client struct {
	baseURL    string
	secrets    ports.SecretStore
	httpClient *http.Client
}

var _ ports.WeatherProvider = (*Client)(nil)

type weatherResponse struct {
	Name string `json:"name"`
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Message string `json:"message"`
}

func NewClient(baseURL string, secrets ports.SecretStore, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		secrets:    secrets,
		httpClient: httpClient,
	}
}

func (c *Client) Weather(ctx context.Context, city string) (string, error) {
	apiKey, err := c.secrets.Get(ctx, ports.SecretWeatherAPIKey)
	if err != nil {
		return "", fmt.Errorf("load weather api key: %w", err)
	}

	query := url.Values{}
	query.Set("q", city)
	query.Set("appid", apiKey)
	query.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+weatherPath+"?"+query.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("build weather request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch weather: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("read weather response: %w", err)
	}

	var payload weatherResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("decode weather response (status %d): %w", resp.StatusCode, err)
	}

	if resp.StatusCode != http.StatusOK {
		message := payload.Message
		if message == "" {
			message = http.StatusText(resp.StatusCode)
		}
		return "", fmt.Errorf("weather api status %d: %s", resp.StatusCode, message)
	}

	if len(payload.Weather) == 0 {
		return "", fmt.Errorf("weather api returned no conditions for %q", city)
	}

	return fmt.Sprintf("The weather in %s is %s°C with %s.",
		city,
		strconv.FormatFloat(payload.Main.Temp, 'f', -1, 64),
		payload.Weather[0].Description,
	), nil
}
