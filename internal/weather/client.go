// Package weather consulta o OpenWeatherMap para a página de previsão
// do tempo. As descrições voltam traduzidas para pt-BR.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const baseURL = "http://api.openweathermap.org/data/2.5"

// requestTimeout limita a chamada externa: o bug do app antigo era uma
// página inteira travada esperando a API sem prazo.
const requestTimeout = 10 * time.Second

type Current struct {
	Description string  `json:"description"`
	Temp        int     `json:"temp"`
	Rain        float64 `json:"rain"`
}

type ForecastEntry struct {
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Temp        int     `json:"temp"`
	Rain        float64 `json:"rain"`
}

type Report struct {
	Current  Current         `json:"current"`
	Forecast []ForecastEntry `json:"forecast"`
}

type Client struct {
	apiKey string
	city   string
	http   *http.Client
	cache  *Cache

	// base é substituível nos testes.
	base string
}

func NewClient(apiKey, city string, cache *Cache) *Client {
	return &Client{
		apiKey: apiKey,
		city:   city,
		http:   &http.Client{Timeout: requestTimeout},
		cache:  cache,
		base:   baseURL,
	}
}

// Fetch busca o tempo atual e a previsão. Com cache configurado, a
// resposta vale por alguns minutos e só a primeira chamada paga a API.
func (c *Client) Fetch(ctx context.Context) (*Report, error) {
	if c.cache != nil {
		if report, ok := c.cache.Get(ctx); ok {
			return report, nil
		}
	}

	current, err := c.fetchCurrent(ctx)
	if err != nil {
		return nil, err
	}

	forecast, err := c.fetchForecast(ctx)
	if err != nil {
		return nil, err
	}

	report := &Report{Current: *current, Forecast: forecast}

	if c.cache != nil {
		c.cache.Set(ctx, report)
	}

	return report, nil
}

func (c *Client) fetchCurrent(ctx context.Context) (*Current, error) {
	var resp struct {
		Weather []struct {
			Description string `json:"description"`
		} `json:"weather"`
		Main struct {
			Temp float64 `json:"temp"`
		} `json:"main"`
		Rain struct {
			OneHour float64 `json:"1h"`
		} `json:"rain"`
	}

	if err := c.get(ctx, "/weather", &resp); err != nil {
		return nil, err
	}
	if len(resp.Weather) == 0 {
		return nil, fmt.Errorf("weather: empty response")
	}

	return &Current{
		Description: Translate(resp.Weather[0].Description),
		Temp:        int(resp.Main.Temp + 0.5),
		Rain:        resp.Rain.OneHour,
	}, nil
}

func (c *Client) fetchForecast(ctx context.Context) ([]ForecastEntry, error) {
	var resp struct {
		List []struct {
			Dt      int64 `json:"dt"`
			Weather []struct {
				Description string `json:"description"`
			} `json:"weather"`
			Main struct {
				Temp float64 `json:"temp"`
			} `json:"main"`
			Rain struct {
				ThreeHours float64 `json:"3h"`
			} `json:"rain"`
		} `json:"list"`
	}

	if err := c.get(ctx, "/forecast", &resp); err != nil {
		return nil, err
	}

	entries := make([]ForecastEntry, 0, len(resp.List))
	for _, item := range resp.List {
		if len(item.Weather) == 0 {
			continue
		}
		entries = append(entries, ForecastEntry{
			Date:        time.Unix(item.Dt, 0).Format("02/01 15:04"),
			Description: Translate(item.Weather[0].Description),
			Temp:        int(item.Main.Temp + 0.5),
			Rain:        item.Rain.ThreeHours,
		})
	}

	return entries, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	q := url.Values{}
	q.Set("q", c.city)
	q.Set("units", "metric")
	q.Set("appid", c.apiKey)
	q.Set("lang", "pt_br")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("weather: unexpected status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
