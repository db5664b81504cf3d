package marine

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"swimcast/internal/config"
	"swimcast/internal/external"
	"swimcast/internal/types"
)

// Neutral substitutes used when the air quality API is unavailable. They sit
// in the no-deduction bands of every scoring rule.
const (
	fallbackAQI     = 40.0
	fallbackUVIndex = 4.0
)

// Service fetches and merges current conditions from the Open-Meteo provider
// APIs. The forecast API is required; marine and air quality data degrade to
// estimates when their providers are unavailable, and the resulting snapshot
// is flagged accordingly.
type Service struct {
	forecast   *forecastClient
	marine     *marineClient
	airQuality *airQualityClient
	logger     *slog.Logger
	nowFn      func() time.Time
}

// NewService wires provider clients from upstream configuration. Each
// provider gets its own circuit breaker so an outage in one does not block
// the others.
func NewService(cfg config.UpstreamConfig, logger *slog.Logger) *Service {
	httpClient := &http.Client{Timeout: cfg.Timeout}
	policy := external.RetryPolicy{
		MaxRetries: cfg.MaxRetries,
		MinWait:    250 * time.Millisecond,
		MaxWait:    5 * time.Second,
	}

	return &Service{
		forecast: &forecastClient{
			baseURL: cfg.WeatherBaseURL,
			http: external.NewBaseClient(httpClient, "open-meteo-forecast", policy, cfg.UserAgent,
				external.WithFailureCode(types.ErrCodeUpstreamWeather)),
		},
		marine: &marineClient{
			baseURL: cfg.MarineBaseURL,
			http: external.NewBaseClient(httpClient, "open-meteo-marine", policy, cfg.UserAgent,
				external.WithFailureCode(types.ErrCodeUpstreamMarine)),
		},
		airQuality: &airQualityClient{
			baseURL: cfg.AirQualityBaseURL,
			http: external.NewBaseClient(httpClient, "open-meteo-air-quality", policy, cfg.UserAgent,
				external.WithFailureCode(types.ErrCodeUpstreamWeather)),
		},
		logger: logger,
		nowFn:  time.Now,
	}
}

// FetchCurrent returns the merged conditions snapshot for a coordinate.
// The three provider calls run concurrently. A forecast failure aborts the
// fetch; marine and air quality failures are tolerated and replaced with
// estimates, marking the snapshot as estimated.
func (s *Service) FetchCurrent(ctx context.Context, lat, lon float64) (*types.CurrentConditions, error) {
	var (
		fc         *forecastResponse
		mr         *marineResponse
		aq         *airQualityResponse
		mErr, aErr error
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		fc, err = s.forecast.fetch(gctx, lat, lon)
		return err
	})
	g.Go(func() error {
		mr, mErr = s.marine.fetch(gctx, lat, lon)
		return nil
	})
	g.Go(func() error {
		aq, aErr = s.airQuality.fetch(gctx, lat, lon)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	estimated := false
	inputs := types.SwimInputs{
		WindSpeed:     fc.Current.WindSpeed10m,
		WindGust:      fc.Current.WindGusts10m,
		WindDirection: fc.Current.WindDirection10m,
		WeatherCode:   strconv.Itoa(fc.Current.WeatherCode),
		PrecipAmount:  fc.Current.Precipitation,
		PrecipLast24h: trailingPrecip(fc),
		Visibility:    latestVisibility(fc),
		CloudCover:    fc.Current.CloudCover,
		ApparentTemp:  fc.Current.ApparentTemperature,
	}

	if mErr != nil || mr == nil {
		if mErr != nil {
			s.logger.Warn("marine data unavailable, estimating sea temperature",
				slog.Float64("lat", lat), slog.Float64("lon", lon),
				slog.String("error", mErr.Error()),
			)
		}
		inputs.SeaTemp = estimateSeaTemp(fc.Current.ApparentTemperature)
		estimated = true
	} else {
		inputs.SeaTemp = mr.Current.SeaSurfaceTemperature
	}

	if aErr != nil || aq == nil {
		if aErr != nil {
			s.logger.Warn("air quality data unavailable, using neutral values",
				slog.Float64("lat", lat), slog.Float64("lon", lon),
				slog.String("error", aErr.Error()),
			)
		}
		inputs.AirQuality = fallbackAQI
		inputs.UVIndex = fallbackUVIndex
		estimated = true
	} else {
		inputs.AirQuality = aq.Current.USAQI
		inputs.UVIndex = aq.Current.UVIndex
	}

	return &types.CurrentConditions{
		Inputs:     inputs,
		Latitude:   lat,
		Longitude:  lon,
		Estimated:  estimated,
		ObservedAt: s.nowFn().UTC(),
	}, nil
}

// trailingPrecip sums the hourly precipitation series, which covers the
// trailing 24 hours plus the current hour.
func trailingPrecip(fc *forecastResponse) float64 {
	var sum float64
	n := len(fc.Hourly.Precipitation)
	if n > 24 {
		n = 24
	}
	for _, v := range fc.Hourly.Precipitation[:n] {
		sum += v
	}
	return sum
}

// latestVisibility returns the most recent hourly visibility reading in
// meters. The forecast API reports visibility hourly only, so the last entry
// in the window is the current value.
func latestVisibility(fc *forecastResponse) float64 {
	if len(fc.Hourly.Visibility) == 0 {
		// No reading at all; assume clear.
		return 10000
	}
	return fc.Hourly.Visibility[len(fc.Hourly.Visibility)-1]
}

// estimateSeaTemp approximates sea surface temperature from the apparent air
// temperature when the marine API has no coverage for the coordinate.
// Coastal water lags air temperature, so the estimate is offset downward and
// clamped to a plausible range.
func estimateSeaTemp(apparentTemp float64) float64 {
	est := apparentTemp - 4
	if est < 8 {
		est = 8
	}
	if est > 30 {
		est = 30
	}
	return est
}
