package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "intellicollect-api", cfg.App.Name)
	assert.Equal(t, 8001, cfg.HTTP.Port)
	assert.Equal(t, "0.0.0.0:8001", cfg.HTTP.Addr())
	assert.Equal(t, StoreDriverBadger, cfg.Store.Driver)
	assert.Equal(t, "intellicollect", cfg.Store.Namespace)
	assert.True(t, cfg.Store.SeedOnStart)
	assert.False(t, cfg.Store.InMemory)
	assert.Equal(t, 300*time.Millisecond, cfg.Mock.Latency)
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("HTTP_PORT", "9090")
	v.Set("STORE_DRIVER", "POSTGRES")
	v.Set("STORE_IN_MEMORY", "true")
	v.Set("SEED_ON_START", "false")
	v.Set("MOCK_LATENCY", "0")

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, StoreDriverPostgres, cfg.Store.Driver)
	assert.True(t, cfg.Store.InMemory)
	assert.False(t, cfg.Store.SeedOnStart)
	assert.Zero(t, cfg.Mock.Latency)
}

func TestFromViper_LatenciaComoDuracion(t *testing.T) {
	v := viper.New()
	v.Set("MOCK_LATENCY", "1.5s")

	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, 1500*time.Millisecond, cfg.Mock.Latency)
}

func TestFromViper_ValoresInvalidos(t *testing.T) {
	v := viper.New()
	v.Set("STORE_DRIVER", "sqlite")
	_, err := fromViper(v)
	assert.Error(t, err, "driver desconocido debe fallar")

	v = viper.New()
	v.Set("MOCK_LATENCY", "-2s")
	_, err = fromViper(v)
	assert.Error(t, err, "latencia negativa debe fallar")
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:word", DBName: "collect", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aword@db:5432/collect?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x@y/z"
	assert.Equal(t, "postgres://x@y/z", c.ConnectionString())
}
