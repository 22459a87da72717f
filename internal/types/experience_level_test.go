package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExperienceLevel_Band(t *testing.T) {
	assert.Equal(t, 0, LevelEntry.Band())
	assert.Equal(t, 1, LevelMid.Band())
	assert.Equal(t, 2, LevelSenior.Band())
	assert.Equal(t, -1, LevelUnspecified.Band())
	assert.Equal(t, -1, ExperienceLevel("archmage").Band())
}

func TestExperienceLevel_Valid(t *testing.T) {
	for _, level := range []ExperienceLevel{LevelEntry, LevelMid, LevelSenior, LevelUnspecified} {
		assert.True(t, level.Valid(), "%s should be valid", level)
	}
	assert.False(t, ExperienceLevel("").Valid())
	assert.False(t, ExperienceLevel("archmage").Valid())
}

func TestMaxLevel(t *testing.T) {
	assert.Equal(t, LevelSenior, MaxLevel(LevelSenior, LevelEntry))
	assert.Equal(t, LevelSenior, MaxLevel(LevelEntry, LevelSenior))
	assert.Equal(t, LevelMid, MaxLevel(LevelMid, LevelUnspecified))
	assert.Equal(t, LevelMid, MaxLevel(LevelUnspecified, LevelMid))
	assert.Equal(t, LevelUnspecified, MaxLevel(LevelUnspecified, LevelUnspecified))
}
