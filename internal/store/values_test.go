// Unit tests for config value operations: referential integrity, id
// assignment, and name-based resolution.
package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slr71/mgmt/pkg/types"
)

func TestAddValue(t *testing.T) {
	t.Run("assigns fresh ids and never deduplicates", func(t *testing.T) {
		s := newTestStore(t)
		sectionID, typeID, defaultID := seedParents(t, s, "de", "timeout")

		v := types.ConfigValue{
			SectionID: sectionID, Key: "timeout", Value: "30",
			ValueTypeID: typeID, DefaultID: defaultID,
		}

		first, err := s.AddValue(v)
		require.NoError(t, err)
		assert.Equal(t, int64(1), first)

		second, err := s.AddValue(v)
		require.NoError(t, err)
		assert.Equal(t, int64(2), second)

		values, err := s.ListValues("de")
		require.NoError(t, err)
		assert.Len(t, values, 2)
	})

	t.Run("missing parents fail and persist nothing", func(t *testing.T) {
		s := newTestStore(t)
		sectionID, typeID, defaultID := seedParents(t, s, "de", "timeout")

		tests := []struct {
			name string
			v    types.ConfigValue
		}{
			{
				name: "missing section",
				v:    types.ConfigValue{SectionID: 999, Key: "timeout", Value: "30", ValueTypeID: typeID, DefaultID: defaultID},
			},
			{
				name: "missing value type",
				v:    types.ConfigValue{SectionID: sectionID, Key: "timeout", Value: "30", ValueTypeID: 999, DefaultID: defaultID},
			},
			{
				name: "missing default",
				v:    types.ConfigValue{SectionID: sectionID, Key: "timeout", Value: "30", ValueTypeID: typeID, DefaultID: 999},
			},
			{
				name: "missing required field",
				v:    types.ConfigValue{SectionID: sectionID, Value: "30", ValueTypeID: typeID, DefaultID: defaultID},
			},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := s.AddValue(tt.v)
				assert.ErrorIs(t, err, types.ErrConstraintViolation)
			})
		}

		values, err := s.ListValues("de")
		require.NoError(t, err)
		assert.Empty(t, values)
	})
}

func TestSetValue(t *testing.T) {
	t.Run("resolves section, type, and default by name", func(t *testing.T) {
		s := newTestStore(t)
		sectionID, typeID, defaultID := seedParents(t, s, "irods", "port")

		id, err := s.SetValue("irods", "port", "1247", types.ValueTypeString)
		require.NoError(t, err)

		got, err := s.GetValue(id)
		require.NoError(t, err)
		assert.Equal(t, sectionID, got.SectionID)
		assert.Equal(t, typeID, got.ValueTypeID)
		assert.Equal(t, defaultID, got.DefaultID)
		assert.Equal(t, "1247", got.Value)
	})

	t.Run("fails without a default for the pair", func(t *testing.T) {
		s := newTestStore(t)
		_, err := s.AddSection("irods")
		require.NoError(t, err)

		_, err = s.SetValue("irods", "port", "1247", types.ValueTypeString)
		assert.ErrorIs(t, err, types.ErrConstraintViolation)
	})

	t.Run("fails for an unknown section or type name", func(t *testing.T) {
		s := newTestStore(t)
		seedParents(t, s, "irods", "port")

		_, err := s.SetValue("nope", "port", "1247", types.ValueTypeString)
		assert.ErrorIs(t, err, types.ErrConstraintViolation)

		_, err = s.SetValue("irods", "port", "1247", "nope")
		assert.ErrorIs(t, err, types.ErrConstraintViolation)
	})
}

func TestGetValue(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetValue(42)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestUpdateValue(t *testing.T) {
	s := newTestStore(t)
	sectionID, typeID, defaultID := seedParents(t, s, "de", "timeout")

	id, err := s.AddValue(types.ConfigValue{
		SectionID: sectionID, Key: "timeout", Value: "30",
		ValueTypeID: typeID, DefaultID: defaultID,
	})
	require.NoError(t, err)

	err = s.UpdateValue(types.ConfigValue{
		ID: id, SectionID: sectionID, Key: "timeout", Value: "60",
		ValueTypeID: typeID, DefaultID: defaultID,
	})
	require.NoError(t, err)

	got, err := s.GetValue(id)
	require.NoError(t, err)
	assert.Equal(t, "60", got.Value)

	err = s.UpdateValue(types.ConfigValue{
		ID: 999, SectionID: sectionID, Key: "timeout", Value: "60",
		ValueTypeID: typeID, DefaultID: defaultID,
	})
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestDeleteValue(t *testing.T) {
	s := newTestStore(t)
	sectionID, typeID, defaultID := seedParents(t, s, "de", "timeout")

	id, err := s.AddValue(types.ConfigValue{
		SectionID: sectionID, Key: "timeout", Value: "30",
		ValueTypeID: typeID, DefaultID: defaultID,
	})
	require.NoError(t, err)

	require.NoError(t, s.DeleteValue(id))
	assert.ErrorIs(t, s.DeleteValue(id), types.ErrNotFound)
}

func TestDeleteValueTypeRestricted(t *testing.T) {
	s := newTestStore(t)
	sectionID, typeID, defaultID := seedParents(t, s, "de", "timeout")

	id, err := s.AddValue(types.ConfigValue{
		SectionID: sectionID, Key: "timeout", Value: "30",
		ValueTypeID: typeID, DefaultID: defaultID,
	})
	require.NoError(t, err)

	// Referenced by both the value and the default: no cascade, the delete
	// fails and the referencing rows stay.
	err = s.DeleteValueType(types.ValueTypeString)
	assert.ErrorIs(t, err, types.ErrConstraintViolation)

	got, err := s.GetValue(id)
	require.NoError(t, err)
	assert.Equal(t, typeID, got.ValueTypeID)

	// An unreferenced type deletes cleanly.
	require.NoError(t, s.DeleteValueType(types.ValueTypeJSON))
	assert.ErrorIs(t, s.DeleteValueType(types.ValueTypeJSON), types.ErrNotFound)
}

func TestDeleteDefaultRestricted(t *testing.T) {
	s := newTestStore(t)
	sectionID, typeID, defaultID := seedParents(t, s, "de", "timeout")

	id, err := s.AddValue(types.ConfigValue{
		SectionID: sectionID, Key: "timeout", Value: "30",
		ValueTypeID: typeID, DefaultID: defaultID,
	})
	require.NoError(t, err)

	err = s.DeleteDefault(defaultID)
	assert.ErrorIs(t, err, types.ErrConstraintViolation)

	got, err := s.GetValue(id)
	require.NoError(t, err)
	assert.Equal(t, defaultID, got.DefaultID)

	// Once nothing references the default it deletes cleanly.
	require.NoError(t, s.DeleteValue(id))
	require.NoError(t, s.DeleteDefault(defaultID))
	assert.ErrorIs(t, s.DeleteDefault(defaultID), types.ErrNotFound)
}
