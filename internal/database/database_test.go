package database

import (
	"testing"

	"hotel-frontdesk-backend/internal/config"
	"hotel-frontdesk-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDSN(t *testing.T) {
	dsn := DSN(config.DatabaseConfig{Host: "db", Port: "3306", User: "desk", Password: "pw", Database: "innovahotel"})
	assert.Equal(t, "desk:pw@tcp(db:3306)/innovahotel?charset=utf8mb4&parseTime=True&loc=UTC&clientFoundRows=true", dsn)
}

func TestOpenGateway(t *testing.T) {
	log := zap.NewNop()

	gw, closeFn, err := OpenGateway(&config.Config{Store: config.StoreConfig{Driver: config.DriverMemory}}, log)
	require.NoError(t, err)
	defer closeFn()
	assert.IsType(t, &repository.MemoryGateway{}, gw)

	gw, _, err = OpenGateway(&config.Config{Store: config.StoreConfig{Driver: config.DriverRest, RestURL: "http://localhost", RestAPIKey: "k"}}, log)
	require.NoError(t, err)
	assert.IsType(t, &repository.RestGateway{}, gw)

	_, _, err = OpenGateway(&config.Config{Store: config.StoreConfig{Driver: "sqlite"}}, log)
	assert.Error(t, err)
}
