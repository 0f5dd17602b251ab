package engine

import "github.com/lixenwraith/vi-pong/vmath"

// Intent is the player's vertical input for one frame
type Intent int8

const (
	IntentUp   Intent = -1
	IntentNone Intent = 0
	IntentDown Intent = 1
)

// delta converts the intent to a paddle displacement, out-of-range values collapse to their sign
func (i Intent) delta(speed int) int {
	return vmath.SignInt(int(i)) * speed
}
