package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"flicks/pkg/openweather"
)

// iconURLFormat turns a provider icon code into a fetchable image URL.
const iconURLFormat = "https://openweathermap.org/img/wn/%s@2x.png"

// Weather is the normalized current-weather result. Temperature is in
// Celsius; Timestamp is the provider's observation time in RFC 3339.
type Weather struct {
	CityName    string  `json:"cityName"`
	Temperature float64 `json:"temperature"`
	Icon        string  `json:"icon"`
	Timestamp   string  `json:"timestamp"`
}

// WeatherService is a passthrough gateway to the external weather provider.
// It holds no state and persists nothing.
type WeatherService struct {
	provider *openweather.Client
}

// NewWeatherService creates a new WeatherService.
func NewWeatherService(provider *openweather.Client) *WeatherService {
	return &WeatherService{
		provider: provider,
	}
}

// Current fetches and normalizes the current weather for a city. The caller
// resolves the city fallback (explicit argument or the user's profile city)
// before calling; an empty city here is a validation failure.
func (s *WeatherService) Current(ctx context.Context, city string) (*Weather, error) {
	if strings.TrimSpace(city) == "" {
		return nil, NewError(KindValidation, "please provide a city name")
	}

	obs, err := s.provider.Current(ctx, city)
	if err != nil {
		return nil, WrapError(KindUpstream, "failed to fetch weather data", err)
	}

	icon := ""
	if len(obs.Weather) > 0 {
		icon = fmt.Sprintf(iconURLFormat, obs.Weather[0].Icon)
	}
	return &Weather{
		CityName:    obs.Name,
		Temperature: obs.Main.Temp,
		Icon:        icon,
		Timestamp:   time.Unix(obs.Dt, 0).UTC().Format(time.RFC3339),
	}, nil
}
