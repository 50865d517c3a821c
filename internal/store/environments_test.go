// Unit tests for environment operations and the environment/value links.
package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slr71/mgmt/pkg/types"
)

func TestUpsertEnvironment(t *testing.T) {
	s := newTestStore(t)

	id, err := s.UpsertEnvironment("qa", "qa")
	require.NoError(t, err)
	assert.Positive(t, id)

	// Re-upserting keeps the id and updates the namespace.
	again, err := s.UpsertEnvironment("qa", "qa-2")
	require.NoError(t, err)
	assert.Equal(t, id, again)

	envs, err := s.ListEnvironments()
	require.NoError(t, err)
	require.Len(t, envs, 1)
	assert.Equal(t, "qa-2", envs[0].Namespace)

	_, err = s.UpsertEnvironment("", "ns")
	assert.ErrorIs(t, err, types.ErrInvalidName)
}

func TestEnvironmentID(t *testing.T) {
	s := newTestStore(t)

	_, err := s.EnvironmentID("qa")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestAddEnvironmentValue(t *testing.T) {
	s := newTestStore(t)
	sectionID, typeID, defaultID := seedParents(t, s, "de", "timeout")

	envID, err := s.UpsertEnvironment("qa", "qa")
	require.NoError(t, err)

	valueID, err := s.AddValue(types.ConfigValue{
		SectionID: sectionID, Key: "timeout", Value: "30",
		ValueTypeID: typeID, DefaultID: defaultID,
	})
	require.NoError(t, err)

	require.NoError(t, s.AddEnvironmentValue(envID, valueID))

	// Linking the same pair again is a no-op.
	require.NoError(t, s.AddEnvironmentValue(envID, valueID))

	values, err := s.EnvironmentValues("qa")
	require.NoError(t, err)
	require.Len(t, values, 1)
	assert.Equal(t, valueID, values[0].ID)

	// A missing environment or value violates the reference.
	err = s.AddEnvironmentValue(999, valueID)
	assert.ErrorIs(t, err, types.ErrConstraintViolation)
	err = s.AddEnvironmentValue(envID, 999)
	assert.ErrorIs(t, err, types.ErrConstraintViolation)
}

func TestDeleteEnvironment(t *testing.T) {
	s := newTestStore(t)
	sectionID, typeID, defaultID := seedParents(t, s, "de", "timeout")

	envID, err := s.UpsertEnvironment("qa", "qa")
	require.NoError(t, err)
	valueID, err := s.AddValue(types.ConfigValue{
		SectionID: sectionID, Key: "timeout", Value: "30",
		ValueTypeID: typeID, DefaultID: defaultID,
	})
	require.NoError(t, err)
	require.NoError(t, s.AddEnvironmentValue(envID, valueID))

	require.NoError(t, s.DeleteEnvironment("qa"))
	assert.ErrorIs(t, s.DeleteEnvironment("qa"), types.ErrNotFound)

	// Only the links cascade; the value itself stays.
	got, err := s.GetValue(valueID)
	require.NoError(t, err)
	assert.Equal(t, "timeout", got.Key)
}
