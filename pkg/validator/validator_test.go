package validator

import (
	"errors"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ballPayload struct {
	Runs      int    `json:"runs" binding:"min=0,max=6"`
	ExtraType string `json:"extra_type,omitempty" binding:"omitempty,oneof=none wide"`
	BowlerID  string `json:"bowler_id" binding:"required"`
	Note      string `json:"-" binding:"max=3"`
}

func TestParseError_UsesJSONNames(t *testing.T) {
	UseJSONFieldNames()
	UseJSONFieldNames()

	err := binding.Validator.ValidateStruct(ballPayload{Runs: 9, ExtraType: "bouncer", Note: "long"})
	require.Error(t, err)

	got := ParseError(err)
	assert.Equal(t, "The runs field must not exceed 6.", got["runs"])
	assert.Equal(t, "The extra_type field must be one of the following: none, wide.", got["extra_type"])
	assert.Equal(t, "The bowler_id field is required.", got["bowler_id"])
	assert.Contains(t, got, "note")
}

func TestParseError_NonValidationError(t *testing.T) {
	assert.Equal(t, map[string]string{"error": "unexpected EOF"}, ParseError(errors.New("unexpected EOF")))
	assert.Empty(t, ParseError(nil))
}
