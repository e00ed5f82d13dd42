package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectQueryNoConditions(t *testing.T) {
	query, args := newSelect("SELECT goal_id FROM goals").Build()

	assert.Equal(t, "SELECT goal_id FROM goals", query)
	assert.Empty(t, args)
}

func TestSelectQueryJoinsConditionsInOrder(t *testing.T) {
	q := newSelect("SELECT goal_id FROM goals")
	q.Where("user_id = ?", int64(2))
	q.Where("deadline < ?", int64(1616199840))
	q.Where("deadline > ?", int64(1500000000))

	query, args := q.Build()

	assert.Equal(t,
		"SELECT goal_id FROM goals WHERE user_id = ? AND deadline < ? AND deadline > ?",
		query)
	assert.Equal(t, []interface{}{int64(2), int64(1616199840), int64(1500000000)}, args)
}

func TestSelectQueryLimitRendersLast(t *testing.T) {
	q := newSelect("SELECT goal_id FROM goals")
	q.Limit(5)
	q.Where("user_id = ?", int64(1))
	q.OrderBy("deadline DESC")

	query, args := q.Build()

	assert.Equal(t,
		"SELECT goal_id FROM goals WHERE user_id = ? ORDER BY deadline DESC LIMIT ?",
		query)
	assert.Equal(t, []interface{}{int64(1), int64(5)}, args)
}

func TestSelectQueryValuesNeverEnterStatementText(t *testing.T) {
	q := newSelect("SELECT resource_id FROM resources")
	q.Where("title = ?", "x'; DROP TABLE resources; --")

	query, args := q.Build()

	assert.Equal(t, "SELECT resource_id FROM resources WHERE title = ?", query)
	assert.Equal(t, []interface{}{"x'; DROP TABLE resources; --"}, args)
}

func TestUpdateQueryEmpty(t *testing.T) {
	q := newUpdate("user_profile")
	assert.True(t, q.Empty())

	q.Set("firstname", "Mina")
	assert.False(t, q.Empty())
}

func TestUpdateQueryBuild(t *testing.T) {
	q := newUpdate("goals")
	q.Set("title", "New title")
	q.Set("status", 0.5)

	query, args := q.Build("goal_id = ?", int64(3))

	assert.Equal(t, "UPDATE goals SET title = ?, status = ? WHERE goal_id = ?", query)
	assert.Equal(t, []interface{}{"New title", 0.5, int64(3)}, args)
}
