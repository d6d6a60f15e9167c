package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type ConfigSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigSuite))
}

func (s *ConfigSuite) TestDefaults() {
	conf, err := LoadConfig(nil)
	s.Require().NoError(err)

	s.Equal("localhost:8080", conf.ServerAddress)
	s.Empty(conf.DatabaseDSN)
	s.Empty(conf.RoutePrefix)
	s.Equal(DefaultShutdownTimeout, conf.ShutdownTimeout)
}

func (s *ConfigSuite) TestFlags() {
	conf, err := LoadConfig([]string{"-a", ":9090", "-p", "/api", "-s", "bookmarks.sqlite", "-t", "3s"})
	s.Require().NoError(err)

	s.Equal(":9090", conf.ServerAddress)
	s.Equal("/api", conf.RoutePrefix)
	s.Equal("bookmarks.sqlite", conf.SQLitePath)
	s.Equal(3*time.Second, conf.ShutdownTimeout)
}

func (s *ConfigSuite) TestEnvOverridesFlags() {
	s.T().Setenv("SERVER_ADDRESS", ":7070")
	s.T().Setenv("DATABASE_DSN", "postgres://localhost/bookmarks")
	s.T().Setenv("SHUTDOWN_TIMEOUT", "1s")

	conf, err := LoadConfig([]string{"-a", ":9090", "-d", "postgres://other/db"})
	s.Require().NoError(err)

	s.Equal(":7070", conf.ServerAddress)
	s.Equal("postgres://localhost/bookmarks", conf.DatabaseDSN)
	s.Equal(time.Second, conf.ShutdownTimeout)
}

func (s *ConfigSuite) TestInvalidFlag() {
	_, err := LoadConfig([]string{"-unknown"})
	s.Error(err)
}
