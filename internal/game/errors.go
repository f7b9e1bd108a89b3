package game

import "fmt"

// Impossible rejects an action that cannot be performed right now. The
// message is shown to the player and no turn passes.
type Impossible struct {
	Message string
}

func (e *Impossible) Error() string { return e.Message }

func impossible(format string, args ...any) error {
	return &Impossible{Message: fmt.Sprintf(format, args...)}
}

// Invalid rejects a selection that does not name anything, such as an empty
// inventory slot or an unknown level-up choice.
type Invalid struct {
	Message string
}

func (e *Invalid) Error() string { return e.Message }

var errInvalidEntry = &Invalid{Message: "Invalid entry."}
