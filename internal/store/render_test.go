// Unit tests for YAML rendering of defaults and environment overlays.
package store

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/slr71/mgmt/pkg/types"
)

// seedRenderFixture builds two sections with typed defaults and a "qa"
// environment overriding irods.port.
func seedRenderFixture(t *testing.T, s *Store) {
	t.Helper()

	_, err := s.AddSection("irods")
	require.NoError(t, err)
	_, err = s.AddSection("de")
	require.NoError(t, err)

	_, err = s.SetDefault("irods", "port", "1247", types.ValueTypeInt)
	require.NoError(t, err)
	_, err = s.SetDefault("irods", "host", "localhost", types.ValueTypeString)
	require.NoError(t, err)
	_, err = s.SetDefault("irods", "debug", "false", types.ValueTypeBool)
	require.NoError(t, err)
	_, err = s.SetDefault("de", "amqp_hosts", "a.example.org, b.example.org", types.ValueTypeCSV)
	require.NoError(t, err)

	envID, err := s.UpsertEnvironment("qa", "qa")
	require.NoError(t, err)
	valueID, err := s.SetValue("irods", "port", "1248", types.ValueTypeInt)
	require.NoError(t, err)
	require.NoError(t, s.AddEnvironmentValue(envID, valueID))
}

func renderedDoc(t *testing.T, buf *bytes.Buffer) map[string]map[string]any {
	t.Helper()
	var doc map[string]map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	return doc
}

func TestRenderDefaults(t *testing.T) {
	s := newTestStore(t)
	seedRenderFixture(t, s)

	var buf bytes.Buffer
	require.NoError(t, s.RenderDefaults(&buf))

	doc := renderedDoc(t, &buf)
	require.Contains(t, doc, "irods")
	require.Contains(t, doc, "de")

	assert.EqualValues(t, 1247, doc["irods"]["port"])
	assert.Equal(t, "localhost", doc["irods"]["host"])
	assert.Equal(t, false, doc["irods"]["debug"])
	assert.Equal(t, []any{"a.example.org", "b.example.org"}, doc["de"]["amqp_hosts"])
}

func TestRenderValues(t *testing.T) {
	t.Run("overlays environment values on defaults", func(t *testing.T) {
		s := newTestStore(t)
		seedRenderFixture(t, s)

		var buf bytes.Buffer
		require.NoError(t, s.RenderValues(&buf, "qa"))

		doc := renderedDoc(t, &buf)
		assert.EqualValues(t, 1248, doc["irods"]["port"], "environment override wins")
		assert.Equal(t, "localhost", doc["irods"]["host"], "unoverridden defaults remain")
	})

	t.Run("unknown environment returns ErrNotFound", func(t *testing.T) {
		s := newTestStore(t)
		seedRenderFixture(t, s)

		var buf bytes.Buffer
		err := s.RenderValues(&buf, "prod")
		assert.ErrorIs(t, err, types.ErrNotFound)
	})
}

func TestRenderEmptyStore(t *testing.T) {
	s := newTestStore(t)

	var buf bytes.Buffer
	require.NoError(t, s.RenderDefaults(&buf))

	doc := renderedDoc(t, &buf)
	assert.Empty(t, doc)
}
