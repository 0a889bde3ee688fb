// Command lookup-demo runs three sample lookups against OpenWeatherMap:
// a valid city, a call with no inputs, and a call with an invalid key.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"github.com/i474232898/weather-lookup/internal/config"
	"github.com/i474232898/weather-lookup/internal/weather"
	"github.com/i474232898/weather-lookup/internal/weather/providers"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	provider := providers.NewOpenWeatherProvider(&http.Client{Timeout: cfg.HTTPTimeout}, cfg.OpenWeatherBaseURL)
	svc := weather.NewService(provider, nil)
	ctx := context.Background()

	// Успешный запрос
	res := svc.Lookup(ctx, cfg.Credentials(), map[string]string{"city": "Москва"})
	fmt.Printf("Успешно: %v\n", res.Success)
	if res.Success {
		d := res.Data
		fmt.Printf("Город: %s\n", d.City)
		fmt.Printf("Температура: %s\n", deref(d.TemperatureWithUnit))
		fmt.Printf("Ощущается как: %s°C\n", number(d.FeelsLike))
		fmt.Printf("Погода: %s\n", d.WeatherDescription)
		fmt.Printf("Влажность: %s%%\n", number(d.Humidity))
		fmt.Printf("Ветер: %s м/с\n", number(d.WindSpeed))
	} else {
		fmt.Printf("Ошибка: %s\n", deref(res.Error))
	}

	fmt.Println("\nГород не указан")
	res = svc.Lookup(ctx, nil, nil)
	fmt.Printf("Успешно: %v\n", res.Success)
	fmt.Printf("Ошибка: %s\n", deref(res.Error))

	fmt.Println("\nНеверный API ключ")
	res = svc.Lookup(ctx, map[string]string{"api_key": "неверный_ключ"}, map[string]string{"city": "Москва"})
	fmt.Printf("Успешно: %v\n", res.Success)
	fmt.Printf("Ошибка: %s\n", deref(res.Error))
}

func deref(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

func number(n *json.Number) string {
	if n == nil {
		return "-"
	}
	return n.String()
}
