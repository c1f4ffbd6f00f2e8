package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	return dir
}

func TestLoadFrom_DefaultsWithoutFile(t *testing.T) {
	cfg, err := LoadFrom(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, DriverMySQL, cfg.Database.Driver)
	assert.Equal(t, "admin_session", cfg.JWT.CookieName)
	assert.Equal(t, 2*time.Hour, cfg.JWT.Expire)
	assert.Equal(t, "bookstore.events", cfg.MQ.Exchange)
	assert.False(t, cfg.MQ.Enabled)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowOrigins)
}

func TestLoadFrom_File(t *testing.T) {
	dir := writeConfig(t, "config.yaml", `
server:
  port: 9090
  mode: test
database:
  driver: sqlite
  path: ":memory:"
jwt:
  expire: 30m
tracing:
  enabled: true
  endpoint: collector:4317
`)

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "test", cfg.Server.Mode)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, ":memory:", cfg.Database.DSN())
	assert.Equal(t, 30*time.Minute, cfg.JWT.Expire)
	assert.True(t, cfg.Tracing.Enabled)
	assert.Equal(t, "collector:4317", cfg.Tracing.Endpoint)
	// 文件未设置的键保留默认值
	assert.Equal(t, "localhost", cfg.Redis.Host)
}

func TestLoadFrom_EnvOverride(t *testing.T) {
	dir := writeConfig(t, "config.yaml", "server:\n  port: 9090\n")
	t.Setenv("BOOKSTORE_SERVER_PORT", "7070")
	t.Setenv("BOOKSTORE_DATABASE_PASSWORD", "s3cret")
	t.Setenv("BOOKSTORE_MQ_BREAKER_TIMEOUT", "45s")

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "s3cret", cfg.Database.Password)
	assert.Equal(t, 45*time.Second, cfg.MQ.Breaker.Timeout)
}

func TestLoadFrom_EnvSpecificFile(t *testing.T) {
	dir := writeConfig(t, "config.staging.yaml", "server:\n  port: 6060\n")
	t.Setenv("BOOKSTORE_ENV", "staging")

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)
	assert.Equal(t, 6060, cfg.Server.Port)
}

func TestLoadFrom_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"端口越界", "server:\n  port: 70000\n", "invalid server port"},
		{"未知驱动", "database:\n  driver: oracle\n", "unsupported database driver"},
		{"令牌有效期为负", "jwt:\n  expire: -1m\n", "jwt.expire"},
		{"生产环境默认密钥", "server:\n  mode: release\n", "jwt.secret"},
		{"启用MQ但无地址", "mq:\n  enabled: true\n  url: \"\"\n", "mq.url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFrom(writeConfig(t, "config.yaml", tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	mysql := DatabaseConfig{
		Driver: DriverMySQL, User: "root", Password: "pw", Host: "db", Port: 3306,
		DBName: "bookstore", Charset: "utf8mb4", ParseTime: true, Loc: "Asia/Shanghai",
	}
	assert.Equal(t, "root:pw@tcp(db:3306)/bookstore?charset=utf8mb4&parseTime=true&loc=Asia%2FShanghai", mysql.DSN())

	pg := DatabaseConfig{
		Driver: DriverPostgres, User: "u", Password: "p", Host: "pg", Port: 5432,
		DBName: "bookstore", SSLMode: "disable",
	}
	assert.Equal(t, "host=pg port=5432 user=u password=p dbname=bookstore sslmode=disable", pg.DSN())
}
