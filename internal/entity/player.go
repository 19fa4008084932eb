package entity

import "github.com/google/uuid"

type PlayerKind string

const (
	KindHuman    PlayerKind = "human"
	KindComputer PlayerKind = "computer"
)

// ComputerName is the display name of every computer-controlled player.
const ComputerName = "CPU"

// Player is configured once before a session starts and stays immutable
// for its duration. The only behavioral difference between the kinds is
// where the next move comes from.
type Player struct {
	ID   string
	Name string
	Mark string
	Kind PlayerKind
}

func NewHumanPlayer(name, mark string) *Player {
	return &Player{
		ID:   uuid.New().String()[:8],
		Name: name,
		Mark: mark,
		Kind: KindHuman,
	}
}

func NewComputerPlayer(mark string) *Player {
	return &Player{
		ID:   "cpu-" + uuid.New().String()[:8],
		Name: ComputerName,
		Mark: mark,
		Kind: KindComputer,
	}
}

func (that *Player) IsComputer() bool {
	return that.Kind == KindComputer
}

func OpponentMark(mark string) string {
	if mark == PlayerX {
		return PlayerO
	}

	return PlayerX
}
