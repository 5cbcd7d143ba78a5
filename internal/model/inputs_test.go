// internal/model/inputs_test.go
package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdatePageInput_JSON(t *testing.T) {
	t.Run("absent, null and value are distinguished", func(t *testing.T) {
		var absent, null, value UpdatePageInput
		require.NoError(t, json.Unmarshal([]byte(`{"id": 1}`), &absent))
		require.NoError(t, json.Unmarshal([]byte(`{"id": 1, "meta_description": null}`), &null))
		require.NoError(t, json.Unmarshal([]byte(`{"id": 1, "meta_description": "SEO"}`), &value))

		assert.False(t, absent.MetaDescription.Set)
		assert.True(t, absent.Empty())

		assert.True(t, null.MetaDescription.Set)
		assert.True(t, null.MetaDescription.Null)
		assert.Nil(t, null.MetaDescription.Ptr())
		assert.False(t, null.Empty())

		require.NotNil(t, value.MetaDescription.Ptr())
		assert.Equal(t, "SEO", *value.MetaDescription.Ptr())
	})

	t.Run("null on a non-nullable field counts as absent", func(t *testing.T) {
		var in UpdatePageInput
		require.NoError(t, json.Unmarshal([]byte(`{"id": 2, "title": null, "is_published": false}`), &in))
		assert.False(t, in.Title.Set)
		assert.True(t, in.IsPublished.Set)
		assert.False(t, in.IsPublished.Value)
	})
}

func TestUpdateProjectInput_Empty(t *testing.T) {
	assert.True(t, UpdateProjectInput{ID: 1}.Empty())
	assert.False(t, UpdateProjectInput{ID: 1, IsFeatured: Some(false)}.Empty())

	var in UpdateProjectInput
	require.NoError(t, json.Unmarshal([]byte(`{"github_stars": 0}`), &in))
	assert.True(t, in.GithubStars.Set)
	assert.Equal(t, int32(0), in.GithubStars.Value)
}

func TestUpdateProjectInput_RejectsWrongTypes(t *testing.T) {
	var in UpdateProjectInput
	err := json.Unmarshal([]byte(`{"github_stars": "many"}`), &in)
	assert.Error(t, err)
}
