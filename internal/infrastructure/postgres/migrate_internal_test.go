package postgres

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMigrations_Embebidas(t *testing.T) {
	migs, err := loadMigrations(migrationsFS)
	require.NoError(t, err)
	require.NotEmpty(t, migs)
	assert.Equal(t, 1, migs[0].version)
	assert.Equal(t, "init", migs[0].name)
	assert.NotEmpty(t, migs[0].downFile)
}

func TestLoadMigrations_OrdenYFaltantes(t *testing.T) {
	fsys := fstest.MapFS{
		"migrations/0002_menu.up.sql":   {Data: []byte("SELECT 1")},
		"migrations/0001_init.up.sql":   {Data: []byte("SELECT 1")},
		"migrations/0001_init.down.sql": {Data: []byte("SELECT 1")},
		"migrations/README.md":          {Data: []byte("x")},
	}
	migs, err := loadMigrations(fsys)
	require.NoError(t, err)
	require.Len(t, migs, 2)
	assert.Equal(t, 1, migs[0].version)
	assert.Equal(t, 2, migs[1].version)
	assert.Empty(t, migs[1].downFile)

	_, err = loadMigrations(fstest.MapFS{"migrations/0003_x.down.sql": {Data: []byte("x")}})
	assert.Error(t, err)
}
