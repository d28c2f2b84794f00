package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newFakeAPI(t *testing.T, status int) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/weather":
			w.Write([]byte(`{
				"weather": [{"description": "clear sky"}],
				"main": {"temp": 27.6},
				"rain": {"1h": 0.4}
			}`))
		case "/forecast":
			w.Write([]byte(`{
				"list": [
					{
						"dt": 1756900800,
						"weather": [{"description": "light rain"}],
						"main": {"temp": 21.2},
						"rain": {"3h": 1.5}
					},
					{
						"dt": 1756911600,
						"weather": [],
						"main": {"temp": 20.0}
					}
				]
			}`))
		default:
			http.NotFound(w, r)
		}
	}))
}

func TestFetchTranslatesAndRounds(t *testing.T) {
	srv := newFakeAPI(t, http.StatusOK)
	defer srv.Close()

	client := NewClient("chave", "Arroio do Sal,BR", nil)
	client.base = srv.URL

	report, err := client.Fetch(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}

	if report.Current.Description != "céu limpo" {
		t.Errorf("descrição não traduzida: %q", report.Current.Description)
	}
	if report.Current.Temp != 28 {
		t.Errorf("temperatura arredondada: got %d, want 28", report.Current.Temp)
	}
	if report.Current.Rain != 0.4 {
		t.Errorf("chuva: got %v", report.Current.Rain)
	}

	// A segunda entrada da previsão não tem bloco weather e é ignorada.
	if len(report.Forecast) != 1 {
		t.Fatalf("previsão: got %d entradas, want 1", len(report.Forecast))
	}
	if report.Forecast[0].Description != "chuva leve" {
		t.Errorf("previsão não traduzida: %q", report.Forecast[0].Description)
	}
}

func TestFetchAPIError(t *testing.T) {
	srv := newFakeAPI(t, http.StatusTooManyRequests)
	defer srv.Close()

	client := NewClient("chave", "Arroio do Sal,BR", nil)
	client.base = srv.URL

	if _, err := client.Fetch(context.Background()); err == nil {
		t.Fatal("erro da API deveria ser propagado")
	}
}

func TestTranslateFallsBackToOriginal(t *testing.T) {
	if got := Translate("clear sky"); got != "céu limpo" {
		t.Errorf("tradução conhecida: %q", got)
	}
	if got := Translate("descrição desconhecida"); got != "descrição desconhecida" {
		t.Errorf("sem tradução deveria voltar o original: %q", got)
	}
}
