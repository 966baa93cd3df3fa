package game

import (
	"testing"

	"github.com/gonewx/ratlair/pkg/utils"
	"github.com/stretchr/testify/assert"
)

func TestActionState_HeldAndEdge(t *testing.T) {
	s := NewActionState()
	var in Input = s

	assert.False(t, in.IsAction(ActionLeft))
	s.Hold(ActionLeft, true)
	assert.True(t, in.IsAction(ActionLeft))
	assert.False(t, in.TakeAction(ActionLeft), "holding a key is not an edge")

	s.Press(ActionJump)
	assert.True(t, in.TakeAction(ActionJump))
	assert.False(t, in.TakeAction(ActionJump), "edge is consumed once")

	s.Press(ActionDash)
	s.ClearPending()
	assert.False(t, in.TakeAction(ActionDash))
}

func TestActionState_CursorAndWindow(t *testing.T) {
	s := NewActionState()
	s.SetCursor(utils.V2(10.0, 20.0))
	s.SetWindowSize(utils.V2(640.0, 360.0))
	assert.Equal(t, utils.V2(10.0, 20.0), s.CursorPosition())
	assert.Equal(t, utils.V2(640.0, 360.0), s.WindowSize())
}

func TestAction_String(t *testing.T) {
	assert.Equal(t, "heavy_attack", ActionHeavyAttack.String())
	assert.Equal(t, "unknown", Action(99).String())
}

func TestDefaultKeyBindings_CoverAllActions(t *testing.T) {
	bindings := DefaultKeyBindings()
	for a := ActionLeft; a <= ActionFullscreen; a++ {
		assert.NotEmpty(t, bindings[a], "action %s has no key", a)
	}
}
