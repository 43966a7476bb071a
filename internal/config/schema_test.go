package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSchema_AcceptsWellFormedConfig(t *testing.T) {
	raw := map[string]any{
		"DetectionThresholds": map[string]any{
			"maxclasslines":    300,
			"clusterthreshold": 0.7,
		},
		"exclude": map[string]any{
			"dirs": []any{"vendor"},
		},
	}
	assert.NoError(t, ValidateSchema(raw))
}

func TestValidateSchema_RejectsWrongType(t *testing.T) {
	raw := map[string]any{
		"DetectionThresholds": map[string]any{
			"maxclasslines": "not-a-number",
		},
	}
	assert.Error(t, ValidateSchema(raw))
}

func TestValidateSchema_RejectsOutOfRangeClusterThreshold(t *testing.T) {
	raw := map[string]any{
		"DetectionThresholds": map[string]any{
			"clusterthreshold": 2.0,
		},
	}
	assert.Error(t, ValidateSchema(raw))
}

func TestValidateSchema_AllowsUnknownTopLevelKeys(t *testing.T) {
	raw := map[string]any{
		"somethingElse": "fine",
	}
	assert.NoError(t, ValidateSchema(raw))
}
