package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCountQueryNoFilter(t *testing.T) {
	query, args, err := buildCountQuery("profiles", nil)
	require.NoError(t, err)
	assert.Equal(t, `SELECT COUNT(*) FROM profiles WHERE 1=1`, query)
	assert.Empty(t, args)
}

func TestBuildCountQueryBindsFilterKeys(t *testing.T) {
	query, args, err := buildCountQuery("sessions", map[string]string{"spot": "la-graviere"})
	require.NoError(t, err)
	assert.Equal(t, `SELECT COUNT(*) FROM sessions WHERE 1=1 AND doc->>$1 = $2`, query)
	assert.Equal(t, []interface{}{"spot", "la-graviere"}, args)
}

func TestBuildCountQueryKeepsHostileKeysOutOfSQL(t *testing.T) {
	hostile := `spot' = '' OR '1'='1`
	query, args, err := buildCountQuery("profiles", map[string]string{hostile: "x"})
	require.NoError(t, err)

	// the key travels as a bound argument, never as query text
	assert.NotContains(t, query, hostile)
	assert.Equal(t, []interface{}{hostile, "x"}, args)
}

func TestBuildCountQueryRejectsUnknownTable(t *testing.T) {
	_, _, err := buildCountQuery("profiles; DROP TABLE profiles", nil)
	require.Error(t, err)
}
