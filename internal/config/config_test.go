package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttendanceConfig_Cutoff(t *testing.T) {
	cases := []struct {
		input   string
		want    time.Duration
		wantErr bool
	}{
		{"09:00", 9 * time.Hour, false},
		{"09:00:00", 9 * time.Hour, false},
		{"08:30:15", 8*time.Hour + 30*time.Minute + 15*time.Second, false},
		{"9am", 0, true},
		{"", 0, true},
	}
	for _, c := range cases {
		got, err := AttendanceConfig{LateCutoff: c.input}.Cutoff()
		if c.wantErr {
			assert.Error(t, err, c.input)
			continue
		}
		require.NoError(t, err, c.input)
		assert.Equal(t, c.want, got, c.input)
	}
}

func validConfig() *Config {
	return &Config{
		Database:   DatabaseConfig{Password: "secret", Host: "db", Port: 5432, User: "u", Name: "ems", SSLMode: "disable"},
		JWT:        JWTConfig{Secret: "s", AccessExpiration: "24h"},
		App:        AppConfig{Timezone: "UTC"},
		Attendance: AttendanceConfig{LateCutoff: "09:00"},
		Auth:       AuthConfig{RateLimit: 10, RateLimitWindow: time.Minute},
	}
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, validConfig().Validate())

	c := validConfig()
	c.JWT.Secret = ""
	assert.Error(t, c.Validate())

	c = validConfig()
	c.Database.Password = ""
	assert.Error(t, c.Validate())
	c.Database.URL = "postgres://localhost/ems"
	assert.NoError(t, c.Validate())

	c = validConfig()
	c.JWT.AccessExpiration = "one day"
	assert.Error(t, c.Validate())

	c = validConfig()
	c.App.Timezone = "Mars/Olympus"
	assert.Error(t, c.Validate())

	c = validConfig()
	c.Jobs.GaugeInterval = -time.Second
	assert.Error(t, c.Validate())
}

func TestConfig_DatabaseURL(t *testing.T) {
	c := validConfig()
	assert.Equal(t, "postgres://u:secret@db:5432/ems?sslmode=disable", c.DatabaseURL())

	c.Database.URL = "postgres://override"
	assert.Equal(t, "postgres://override", c.DatabaseURL())
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("EMS_TEST_INT", "42")
	t.Setenv("EMS_TEST_BOOL", "false")
	t.Setenv("EMS_TEST_SLICE", "http://a, http://b ,")

	n, err := getEnvInt("EMS_TEST_INT", 1)
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	b, err := getEnvBool("EMS_TEST_BOOL", true)
	require.NoError(t, err)
	assert.False(t, b)

	assert.Equal(t, []string{"http://a", "http://b"}, getEnvSlice("EMS_TEST_SLICE", nil))
	assert.Equal(t, []string{"x"}, getEnvSlice("EMS_TEST_MISSING", []string{"x"}))

	t.Setenv("EMS_TEST_INT", "abc")
	_, err = getEnvInt("EMS_TEST_INT", 1)
	assert.Error(t, err)
}
