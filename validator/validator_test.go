package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goalz/models"
)

func int64Ptr(v int64) *int64 { return &v }

func TestGoalFilterBounds(t *testing.T) {
	v := New()

	t.Run("empty filter passes", func(t *testing.T) {
		assert.NoError(t, v.Validate(models.GoalFilter{}))
	})

	t.Run("non-negative bounds pass", func(t *testing.T) {
		filter := models.GoalFilter{
			Before: int64Ptr(1616199840),
			After:  int64Ptr(0),
		}
		assert.NoError(t, v.Validate(filter))
	})

	t.Run("negative before fails with field name", func(t *testing.T) {
		err := v.Validate(models.GoalFilter{Before: int64Ptr(-1)})
		require.Error(t, err)

		verrs, ok := err.(ValidationErrors)
		require.True(t, ok)
		require.Len(t, verrs, 1)
		assert.Equal(t, "before", verrs[0].Field)
		assert.Equal(t, "gte", verrs[0].Tag)
	})

	t.Run("negative after fails", func(t *testing.T) {
		err := v.Validate(models.GoalFilter{After: int64Ptr(-50)})
		assert.Error(t, err)
	})
}

func TestProfileFields(t *testing.T) {
	v := New()
	bad := "not-an-email"
	good := "c@h.com"
	negative := int64(-3)

	t.Run("valid profile passes", func(t *testing.T) {
		assert.NoError(t, v.Validate(models.NewProfile{Email: &good}))
	})

	t.Run("malformed email fails", func(t *testing.T) {
		err := v.Validate(models.NewProfile{Email: &bad})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "email")
	})

	t.Run("negative age fails", func(t *testing.T) {
		err := v.Validate(models.UserPatch{Age: &negative})
		assert.Error(t, err)
	})
}
