package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emilianohg/appart/internal/models"
	"github.com/emilianohg/appart/internal/store"
)

func TestMatchID(t *testing.T) {
	ids := []string{"3f2a9c10-aaaa", "3f2b0000-bbbb", "7c00ffee-cccc"}

	id, err := matchID("7c", ids)
	require.NoError(t, err)
	assert.Equal(t, "7c00ffee-cccc", id)

	id, err = matchID("3f2b0000-bbbb", ids)
	require.NoError(t, err)
	assert.Equal(t, "3f2b0000-bbbb", id)

	_, err = matchID("3f2", ids)
	assert.ErrorContains(t, err, "ambiguous")

	_, err = matchID("zz", ids)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestOptionalFlagsOnlyWhenSet(t *testing.T) {
	cmd := &cobra.Command{Use: "x"}
	addProjectFieldFlags(cmd)
	require.NoError(t, cmd.ParseFlags([]string{"--price", "199000", "--type", "Maison", "--stage", "notary"}))

	assert.Nil(t, optString(cmd, "name"))
	assert.Nil(t, optInt(cmd, "rooms"))
	assert.Equal(t, 199000.0, *optFloat(cmd, "price"))

	pt, err := optPropertyType(cmd, "type")
	require.NoError(t, err)
	assert.Equal(t, models.House, *pt)

	stage, err := optStage(cmd, "stage")
	require.NoError(t, err)
	assert.Equal(t, models.StageNotary, *stage)
}

func TestOptionalFlagsRejectUnknownValues(t *testing.T) {
	cmd := &cobra.Command{Use: "x"}
	addProjectFieldFlags(cmd)
	require.NoError(t, cmd.ParseFlags([]string{"--type", "castle", "--stage", "moving"}))

	_, err := optPropertyType(cmd, "type")
	assert.Error(t, err)
	_, err = optStage(cmd, "stage")
	assert.Error(t, err)
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "12345678", shortID("1234567890"))
	assert.Equal(t, "abc", shortID("abc"))
}
