package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swimcast/internal/types"
)

type fakeConditionsService struct {
	cond *types.CurrentConditions
	err  error

	gotLat, gotLon float64
}

func (f *fakeConditionsService) FetchCurrent(ctx context.Context, lat, lon float64) (*types.CurrentConditions, error) {
	f.gotLat, f.gotLon = lat, lon
	return f.cond, f.err
}

type fakeRecorder struct {
	recommendation string
	total          int
	calls          int
}

func (f *fakeRecorder) RecordScore(recommendation string, total int) {
	f.recommendation, f.total = recommendation, total
	f.calls++
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func scoreRouter(svc ConditionsService, rec ScoreRecorder) http.Handler {
	r := chi.NewRouter()
	NewScoreHandler(svc, rec, testLogger()).RegisterRoutes(r)
	return r
}

const calmPayload = `{
	"windSpeed": 8, "windGust": 10, "windDirection": 180,
	"weatherCode": "0", "precipAmount": 0, "precipLast24h": 0,
	"visibility": 10000, "airQualityIndex": 20, "uvIndex": 5,
	"cloudCover": 40, "apparentTemp": 27, "sst": 26
}`

func TestHandleScore(t *testing.T) {
	t.Run("computes score for a valid payload", func(t *testing.T) {
		recorder := &fakeRecorder{}
		router := scoreRouter(&fakeConditionsService{}, recorder)

		req := httptest.NewRequest(http.MethodPost, "/swim-score", strings.NewReader(calmPayload))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Data types.SwimScoreOutput `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

		assert.Equal(t, 53, body.Data.TotalScore)
		assert.Equal(t, types.ScoreBreakdown{Safety: 60, Comfort: 53, Performance: 37}, body.Data.Breakdown)
		assert.NotEmpty(t, body.Data.Explanation)
		assert.NotEmpty(t, body.Data.Recommendation)
		assert.NotEmpty(t, body.Data.BestTimeToSwim)

		assert.Equal(t, 1, recorder.calls)
		assert.Equal(t, 53, recorder.total)
	})

	t.Run("storm payload short-circuits", func(t *testing.T) {
		router := scoreRouter(&fakeConditionsService{}, nil)

		payload := strings.Replace(calmPayload, `"weatherCode": "0"`, `"weatherCode": "95"`, 1)
		req := httptest.NewRequest(http.MethodPost, "/swim-score", strings.NewReader(payload))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Data types.SwimScoreOutput `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, 5, body.Data.TotalScore)
		assert.Equal(t, 5, body.Data.Breakdown.Safety)
	})

	t.Run("missing field is rejected", func(t *testing.T) {
		router := scoreRouter(&fakeConditionsService{}, nil)

		payload := strings.Replace(calmPayload, `"sst": 26`, `"sst2": 26`, 1)
		req := httptest.NewRequest(http.MethodPost, "/swim-score", strings.NewReader(payload))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "validation_invalid_payload")
	})

	t.Run("numeric weatherCode is rejected", func(t *testing.T) {
		router := scoreRouter(&fakeConditionsService{}, nil)

		payload := strings.Replace(calmPayload, `"weatherCode": "0"`, `"weatherCode": 0`, 1)
		req := httptest.NewRequest(http.MethodPost, "/swim-score", strings.NewReader(payload))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "validation_invalid_payload")
	})

	t.Run("malformed JSON is rejected", func(t *testing.T) {
		router := scoreRouter(&fakeConditionsService{}, nil)

		req := httptest.NewRequest(http.MethodPost, "/swim-score", strings.NewReader(`{"windSpeed":`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "validation_invalid_json")
	})
}

func TestHandleConditions(t *testing.T) {
	calmConditions := &types.CurrentConditions{
		Inputs: types.SwimInputs{
			WindSpeed: 8, WindGust: 10, WindDirection: 180,
			WeatherCode: "0", Visibility: 10000, AirQuality: 20,
			UVIndex: 5, CloudCover: 40, ApparentTemp: 27, SeaTemp: 26,
		},
		Latitude:   41.16,
		Longitude:  -8.68,
		Estimated:  true,
		ObservedAt: time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC),
	}

	t.Run("returns conditions with score attached", func(t *testing.T) {
		svc := &fakeConditionsService{cond: calmConditions}
		router := scoreRouter(svc, nil)

		req := httptest.NewRequest(http.MethodGet, "/conditions?lat=41.16&lon=-8.68", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 41.16, svc.gotLat)
		assert.Equal(t, -8.68, svc.gotLon)

		var body struct {
			Data conditionsResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.True(t, body.Data.Estimated)
		assert.Equal(t, "2026-08-31T12:00:00Z", body.Data.ObservedAt)
		require.NotNil(t, body.Data.Score)
		assert.Equal(t, 53, body.Data.Score.TotalScore)
	})

	t.Run("missing lat is rejected", func(t *testing.T) {
		router := scoreRouter(&fakeConditionsService{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/conditions?lon=-8.68", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "validation_missing_required_field")
	})

	t.Run("out of range lat is rejected", func(t *testing.T) {
		router := scoreRouter(&fakeConditionsService{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/conditions?lat=95&lon=-8.68", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "validation_invalid_latitude")
	})

	t.Run("upstream failure maps to 502", func(t *testing.T) {
		svc := &fakeConditionsService{
			err: types.NewAppError(types.ErrCodeUpstreamWeather, "provider down", nil),
		}
		router := scoreRouter(svc, nil)

		req := httptest.NewRequest(http.MethodGet, "/conditions?lat=41.16&lon=-8.68", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Contains(t, rec.Body.String(), "upstream_weather_unavailable")
	})
}
