package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_ValoresPorDefecto(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "session", cfg.Session.KeyPrefix)
	assert.Equal(t, "redis", cfg.Session.Backend)
	assert.Equal(t, time.Duration(0), cfg.Session.TTL, "sin TTL por defecto: la sesión no expira")
	assert.Equal(t, 5*time.Second, cfg.DB.Timeout)
	assert.Equal(t, int32(10), cfg.DB.MaxConns)
	assert.Equal(t, int32(0), cfg.DB.MinConns)
	assert.Equal(t, time.Hour, cfg.DB.MaxConnLifetime)
	assert.False(t, cfg.Admin.Enabled())
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestFromViper_EnvComoTexto(t *testing.T) {
	v := viper.New()
	v.Set("HTTP_PORT", "9090")
	v.Set("SESSION_TTL_HOURS", "12")
	v.Set("SESSION_BACKEND", "MEMORY")
	v.Set("ADMIN_USERNAME", "root")
	v.Set("ADMIN_PASSWORD_HASH", "$2a$10$abc")

	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 12*time.Hour, cfg.Session.TTL)
	assert.Equal(t, "memory", cfg.Session.Backend)
	assert.True(t, cfg.Admin.Enabled())
}

func TestFromViper_BackendInvalido(t *testing.T) {
	v := viper.New()
	v.Set("SESSION_BACKEND", "localstorage")
	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:word", DBName: "dir", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aword@db:5432/dir?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x/y"
	assert.Equal(t, "postgres://x/y", c.ConnectionString())
}

func TestFromViper_PoolInvalido(t *testing.T) {
	v := viper.New()
	v.Set("DB_MAX_CONNS", "4")
	v.Set("DB_MIN_CONNS", "8")
	_, err := fromViper(v)
	assert.Error(t, err)

	v = viper.New()
	v.Set("DB_MAX_CONNS", "0")
	_, err = fromViper(v)
	assert.Error(t, err)
}
