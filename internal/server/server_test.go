package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/nutrivo/backend/config"
	"github.com/nutrivo/backend/internal/database"
	"github.com/nutrivo/backend/internal/models"
)

func setupServer(t *testing.T) *Server {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))

	seed := models.Recipe{
		Title: "Bowl saumon", Calories: 600, PrepTime: 20, Servings: 2,
		Ingredients: "saumon, riz", Tags: `["équilibré"]`,
		Source: models.SourceAIPreset, TargetProfile: "maintenance",
		Status: models.StatusApproved,
	}
	require.NoError(t, db.Create(&seed).Error)

	cfg := &config.Config{
		Server: config.ServerConfig{Host: "127.0.0.1", Port: "0"},
		Cache:  config.CacheConfig{Enabled: false, SuggestionTTL: time.Minute},
		Suggestions: config.SuggestionConfig{
			DefaultLimit:      6,
			CommunityPageSize: 20,
		},
	}
	return New(cfg, db, nil, nil)
}

func TestHealthEndpoint(t *testing.T) {
	srv := setupServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	srv.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	srv := setupServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/metrics", nil)
	srv.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSuggestionsEndToEnd(t *testing.T) {
	srv := setupServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/suggestions",
		strings.NewReader(`{"user_id":"u1","daily_calories_target":1800}`))
	req.Header.Set("Content-Type", "application/json")
	srv.Router().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Recipes []struct {
			Name       string `json:"name"`
			MatchScore int    `json:"match_score"`
		} `json:"recipes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Recipes, 1)
	assert.Equal(t, "Bowl saumon", resp.Recipes[0].Name)
	// 70 base + 15 calorie fit (600 vs 1800/3).
	assert.Equal(t, 85, resp.Recipes[0].MatchScore)
}
