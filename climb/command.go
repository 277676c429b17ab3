package climb

// CommandKind tells the host what a Command asks for.
type CommandKind int

const (
	// Entity commands
	SpawnHold CommandKind = iota
	DestroyHold
	MoveClimber

	// Gameplay events
	Started
	Grabbed
	Fell
	Landed
	RunReset
	Tapped // input passed the gate; Pos is the tap

	// Diagnostics
	Trace
)

func (k CommandKind) String() string {
	switch k {
	case SpawnHold:
		return "SpawnHold"
	case DestroyHold:
		return "DestroyHold"
	case MoveClimber:
		return "MoveClimber"
	case Started:
		return "Started"
	case Grabbed:
		return "Grabbed"
	case Fell:
		return "Fell"
	case Landed:
		return "Landed"
	case RunReset:
		return "RunReset"
	case Tapped:
		return "Tapped"
	case Trace:
		return "Trace"
	}
	return "Unknown"
}

// FallCause records why a Fell command was issued.
type FallCause int

const (
	FallNone FallCause = iota
	FallMissed
	FallWrongHold
	FallHoldLost
)

func (c FallCause) String() string {
	switch c {
	case FallMissed:
		return "missed"
	case FallWrongHold:
		return "wrong hold"
	case FallHoldLost:
		return "hold lost"
	}
	return "none"
}

// Command is a side effect the host applies after OnInput or OnFrame.
// Hold is the spawn index for hold commands and Grabbed; Pos is the hold's
// spawn position or the climber's new position.
type Command struct {
	Kind  CommandKind
	Hold  int
	Pos   Vec2
	Cause FallCause
	Text  string
}

// Count returns how many commands of kind k are in cmds.
func Count(cmds []Command, k CommandKind) int {
	n := 0
	for _, c := range cmds {
		if c.Kind == k {
			n++
		}
	}
	return n
}
