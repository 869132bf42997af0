package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "fluxbill", cfg.DB.DBName)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "meta-llama/llama-3.1-8b-instruct", cfg.AI.OpenRouterModel)
	assert.Equal(t, "whisper-large-v3-turbo", cfg.STT.WhisperModel)
	assert.Equal(t, []string{"http://127.0.0.1:5173", "http://localhost:5173"}, cfg.CORS.Origins)
}

func TestLoad_EnvTienePrioridad(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("OPENROUTER_API_KEY", "  sk-or-test  ")
	t.Setenv("CORS_ORIGINS", "https://app.fluxbill.io, ,https://staging.fluxbill.io")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, 6543, cfg.DB.Port)
	// La key llega trimmed.
	assert.Equal(t, "sk-or-test", cfg.AI.OpenRouterAPIKey)
	// Entradas vacías del CSV se descartan.
	assert.Equal(t, []string{"https://app.fluxbill.io", "https://staging.fluxbill.io"}, cfg.CORS.Origins)
}

func TestDBConfig_DSN(t *testing.T) {
	db := DBConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "p@ss:word",
		DBName:   "fluxbill",
		SSLMode:  "disable",
	}
	dsn := db.DSN()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "localhost:5432")
	assert.Contains(t, dsn, "/fluxbill")
	// La contraseña con caracteres especiales va URL-encoded.
	assert.Contains(t, dsn, "p%40ss%3Aword")
}

func TestDBConfig_ConnectionString(t *testing.T) {
	db := DBConfig{DatabaseURL: "postgresql://u:p@remoto:5432/fluxbill?sslmode=require"}
	assert.Equal(t, db.DatabaseURL, db.ConnectionString())

	db.DatabaseURL = ""
	db.Host, db.Port, db.User, db.DBName, db.SSLMode = "localhost", 5432, "postgres", "fluxbill", "disable"
	assert.Equal(t, db.DSN(), db.ConnectionString())
}

func TestHTTPConfig_Addr(t *testing.T) {
	assert.Equal(t, "0.0.0.0:8080", HTTPConfig{Host: "0.0.0.0", Port: 8080}.Addr())
}
