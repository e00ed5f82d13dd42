package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goalz/models"
)

func resourceIDs(resources []models.ResourceSummary) []int64 {
	ids := make([]int64, 0, len(resources))
	for _, res := range resources {
		ids = append(ids, res.ResourceID)
	}
	return ids
}

func TestGetResource(t *testing.T) {
	conn := setupTestConn(t)

	resource, err := conn.GetResource(1)
	require.NoError(t, err)
	require.NotNil(t, resource)

	assert.Equal(t, int64(1), resource.ResourceID)
	assert.Equal(t, int64(2), resource.GoalID)
	require.NotNil(t, resource.UserID)
	assert.Equal(t, int64(1), *resource.UserID)
	assert.Equal(t, "How to use skies", resource.Title)
	assert.Equal(t, "sports", resource.Topic)
	require.NotNil(t, resource.RequiredTime)
	assert.Equal(t, int64(12), *resource.RequiredTime)
	assert.Equal(t, 1.0, resource.Rating)
}

func TestGetResourceNotFound(t *testing.T) {
	conn := setupTestConn(t)

	resource, err := conn.GetResource(100)
	assert.NoError(t, err)
	assert.Nil(t, resource)
}

func TestGetResourcesUnfiltered(t *testing.T) {
	conn := setupTestConn(t)

	resources, err := conn.GetResources(models.ResourceFilter{})
	require.NoError(t, err)
	assert.Len(t, resources, 5)
}

func TestGetResourcesByGoalAndPoster(t *testing.T) {
	conn := setupTestConn(t)

	resources, err := conn.GetResources(models.ResourceFilter{GoalID: intPtr(5)})
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{4, 5}, resourceIDs(resources))

	resources, err = conn.GetResources(models.ResourceFilter{UserID: intPtr(4)})
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{4, 5}, resourceIDs(resources))

	resources, err = conn.GetResources(models.ResourceFilter{
		GoalID: intPtr(5),
		UserID: intPtr(1),
	})
	require.NoError(t, err)
	assert.Empty(t, resources)
}

func TestGetResourcesMaxLength(t *testing.T) {
	conn := setupTestConn(t)

	// The bound is exclusive: 12 is out at 12, in at 13
	resources, err := conn.GetResources(models.ResourceFilter{MaxLength: intPtr(13)})
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{1, 2, 3}, resourceIDs(resources))

	resources, err = conn.GetResources(models.ResourceFilter{MaxLength: intPtr(12)})
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{2, 3}, resourceIDs(resources))

	// A negative bound is legal and matches nothing
	resources, err = conn.GetResources(models.ResourceFilter{MaxLength: intPtr(-50)})
	require.NoError(t, err)
	assert.NotNil(t, resources)
	assert.Empty(t, resources)
}

func TestGetResourcesLimit(t *testing.T) {
	conn := setupTestConn(t)

	resources, err := conn.GetResources(models.ResourceFilter{Limit: intPtr(3)})
	require.NoError(t, err)
	assert.Len(t, resources, 3)
}

func TestCreateResource(t *testing.T) {
	conn := setupTestConn(t)

	resourceID, err := conn.CreateResource(3, 2, "Knife skills", "https://example.com/knives",
		"cooking", strPtr("Basic cuts"), intPtr(2))
	require.NoError(t, err)
	assert.Equal(t, int64(6), resourceID)

	resource, err := conn.GetResource(resourceID)
	require.NoError(t, err)
	require.NotNil(t, resource)
	assert.Equal(t, int64(3), resource.GoalID)
	require.NotNil(t, resource.UserID)
	assert.Equal(t, int64(2), *resource.UserID)
	require.NotNil(t, resource.Description)
	assert.Equal(t, "Basic cuts", *resource.Description)
	assert.Zero(t, resource.Rating)
}

func TestCreateResourceOptionalFieldsNull(t *testing.T) {
	conn := setupTestConn(t)

	resourceID, err := conn.CreateResource(3, 2, "Bare", "https://example.com", "cooking", nil, nil)
	require.NoError(t, err)

	resource, err := conn.GetResource(resourceID)
	require.NoError(t, err)
	require.NotNil(t, resource)
	assert.Nil(t, resource.Description)
	assert.Nil(t, resource.RequiredTime)
}

func TestCreateResourceMissingReferences(t *testing.T) {
	conn := setupTestConn(t)

	_, err := conn.CreateResource(100, 1, "Orphan", "https://example.com", "none", nil, nil)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = conn.CreateResource(1, 100, "Orphan", "https://example.com", "none", nil, nil)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Equal(t, 5, countRows(t, conn, "resources"))
}

func TestModifyResourceUpdatesRatingOnly(t *testing.T) {
	conn := setupTestConn(t)

	resourceID, err := conn.ModifyResource(1, 0.5)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resourceID)

	resource, err := conn.GetResource(1)
	require.NoError(t, err)
	require.NotNil(t, resource)
	assert.Equal(t, 0.5, resource.Rating)
	assert.Equal(t, "How to use skies", resource.Title)
	require.NotNil(t, resource.RequiredTime)
	assert.Equal(t, int64(12), *resource.RequiredTime)
}

func TestModifyResourceNotFound(t *testing.T) {
	conn := setupTestConn(t)

	_, err := conn.ModifyResource(100, 0.5)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteResource(t *testing.T) {
	conn := setupTestConn(t)

	removed, err := conn.DeleteResource(1)
	require.NoError(t, err)
	assert.True(t, removed)

	resource, err := conn.GetResource(1)
	require.NoError(t, err)
	assert.Nil(t, resource)

	removed, err = conn.DeleteResource(1)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestDeleteUserKeepsResources(t *testing.T) {
	conn := setupTestConn(t)

	removed, err := conn.DeleteUser(4)
	require.NoError(t, err)
	require.True(t, removed)

	// Resources posted by the deleted user stay, with the poster cleared
	resource, err := conn.GetResource(4)
	require.NoError(t, err)
	require.NotNil(t, resource)
	assert.Nil(t, resource.UserID)
	assert.Equal(t, 5, countRows(t, conn, "resources"))
}
