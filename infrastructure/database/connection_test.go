package database

import (
	"context"
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/pos-sales-analytics/internal/config"
)

func TestPlaceholderFor(t *testing.T) {
	assert.Equal(t, squirrel.Dollar, PlaceholderFor(DriverPostgres))
	assert.Equal(t, squirrel.Question, PlaceholderFor(DriverMySQL))
}

func TestNewConnectionUnsupportedDriver(t *testing.T) {
	_, err := NewConnection(context.Background(), config.Database{Driver: "sqlite", DSN: "file.db"})
	assert.ErrorContains(t, err, "sqlite")
}
