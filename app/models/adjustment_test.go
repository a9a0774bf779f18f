package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSalaryAdjustmentCarriesUserNameSnapshot(t *testing.T) {
	adjustment := SalaryAdjustment{
		ID:       "a1",
		UserID:   "u1",
		UserName: "Nguyễn Văn A",
		Date:     "2025-03-10",
		Amount:   50000,
		Type:     AdjustmentBonus,
		Reason:   "Thưởng",
	}

	raw, err := json.Marshal(adjustment)
	assert.NoError(t, err)

	var decoded map[string]interface{}
	assert.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "Nguyễn Văn A", decoded["user_name"])
	assert.Equal(t, "bonus", decoded["type"])
}
