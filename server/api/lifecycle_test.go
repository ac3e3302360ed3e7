package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/dto"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/model"
)

func TestTransitionData(t *testing.T) {
	result := dto.TransitionResult{
		Success: true,
		Records: []interface{}{
			model.Checkout{ID: "co-1", AssetID: "a-1", EmployeeUserID: "emp-7"},
			model.Checkout{ID: "co-2", AssetID: "a-2", EmployeeUserID: "emp-7"},
		},
		Count: 2,
	}

	data := transitionData("checkouts", result)

	assert.Equal(t, true, data["success"])
	assert.Equal(t, 2, data["count"])
	rows, ok := data["checkouts"].([]interface{})
	require.True(t, ok)
	require.Len(t, rows, 2)
	assert.Equal(t, "co-1", rows[0].(model.Checkout).ID)
	_, generic := data["records"]
	assert.False(t, generic)
}

func TestTransitionDataFailure(t *testing.T) {
	data := transitionData("disposals", dto.TransitionResult{})
	assert.Equal(t, false, data["success"])
	assert.Equal(t, 0, data["count"])
	assert.Nil(t, data["disposals"])
}
