package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hostpick/hostpick/app/models"
)

func TestOrderPlansKeepsRequestedOrder(t *testing.T) {
	plans := []models.Plan{
		{ID: 7, Name: "Cloud M"},
		{ID: 3, Name: "Starter"},
		{ID: 5, Name: "Business"},
	}

	ordered := orderPlans([]uint{5, 7, 3}, plans)

	assert.Len(t, ordered, 3)
	assert.Equal(t, uint(5), ordered[0].ID)
	assert.Equal(t, uint(7), ordered[1].ID)
	assert.Equal(t, uint(3), ordered[2].ID)
}

func TestOrderPlansSkipsMissingIDs(t *testing.T) {
	plans := []models.Plan{{ID: 2}, {ID: 4}}

	ordered := orderPlans([]uint{9, 4, 2, 11}, plans)

	assert.Len(t, ordered, 2)
	assert.Equal(t, uint(4), ordered[0].ID)
	assert.Equal(t, uint(2), ordered[1].ID)
}
