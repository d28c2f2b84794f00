package weather

import "strings"

// A API devolve descrições em inglês mesmo com lang=pt_br em algumas
// condições; o dicionário cobre o vocabulário do OpenWeatherMap.
var translations = map[string]string{
	"clear sky":                        "céu limpo",
	"few clouds":                       "poucas nuvens",
	"scattered clouds":                 "nuvens dispersas",
	"broken clouds":                    "nuvens quebradas",
	"overcast clouds":                  "nublado",
	"light rain":                       "chuva leve",
	"moderate rain":                    "chuva moderada",
	"heavy intensity rain":             "chuva forte",
	"very heavy rain":                  "chuva muito forte",
	"extreme rain":                     "chuva extrema",
	"freezing rain":                    "chuva congelante",
	"light intensity shower rain":      "chuva leve",
	"shower rain":                      "chuva",
	"heavy intensity shower rain":      "chuva forte",
	"ragged shower rain":               "chuva irregular",
	"light snow":                       "neve leve",
	"snow":                             "neve",
	"heavy snow":                       "neve forte",
	"sleet":                            "granizo",
	"light shower sleet":               "granizo leve",
	"shower sleet":                     "granizo",
	"light rain and snow":              "chuva e neve leve",
	"rain and snow":                    "chuva e neve",
	"light shower snow":                "neve leve",
	"shower snow":                      "neve",
	"heavy shower snow":                "neve forte",
	"mist":                             "névoa",
	"smoke":                            "fumaça",
	"haze":                             "neblina",
	"sand/dust whirls":                 "redemoinhos de areia/poeira",
	"fog":                              "névoa",
	"sand":                             "areia",
	"dust":                             "poeira",
	"volcanic ash":                     "cinza vulcânica",
	"squalls":                          "rajadas",
	"tornado":                          "tornado",
	"thunderstorm with light rain":     "trovoada com chuva leve",
	"thunderstorm with rain":           "trovoada com chuva",
	"thunderstorm with heavy rain":     "trovoada com chuva forte",
	"light thunderstorm":               "trovoada leve",
	"thunderstorm":                     "trovoada",
	"heavy thunderstorm":               "trovoada forte",
	"ragged thunderstorm":              "trovoada irregular",
	"thunderstorm with light drizzle":  "trovoada com garoa leve",
	"thunderstorm with drizzle":        "trovoada com garoa",
	"thunderstorm with heavy drizzle":  "trovoada com garoa forte",
}

// Translate devolve a descrição em português, ou a original quando não
// há tradução cadastrada.
func Translate(description string) string {
	if pt, ok := translations[strings.ToLower(description)]; ok {
		return pt
	}
	return description
}
