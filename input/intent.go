package input

import "github.com/lixenwraith/term-snake/components"

// Intent is the logical meaning of one key press
type Intent uint8

const (
	IntentNone Intent = iota // no key, or a key with no binding

	IntentUp
	IntentDown
	IntentLeft
	IntentRight
	IntentContinue // explicit "keep heading" key
	IntentQuit
)

var intentNames = [...]string{
	IntentNone:     "none",
	IntentUp:       "up",
	IntentDown:     "down",
	IntentLeft:     "left",
	IntentRight:    "right",
	IntentContinue: "continue",
	IntentQuit:     "quit",
}

func (i Intent) String() string {
	if int(i) < len(intentNames) {
		return intentNames[i]
	}
	return "unknown"
}

// Direction returns the steering request carried by the intent, or components.None
func (i Intent) Direction() components.Direction {
	switch i {
	case IntentUp:
		return components.Up
	case IntentDown:
		return components.Down
	case IntentLeft:
		return components.Left
	case IntentRight:
		return components.Right
	}
	return components.None
}
