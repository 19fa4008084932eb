package entity

const (
	StatusInProgress = "in_progress"
	StatusFinished   = "finished"
)

// Outcome is derived from board contents and never stored, so it can't
// go stale.
type Outcome struct {
	Status string
	Winner string // PlayerX, PlayerO or PlayerTie; empty while in progress
}

func InProgress() Outcome {
	return Outcome{Status: StatusInProgress}
}

func WonBy(mark string) Outcome {
	return Outcome{Status: StatusFinished, Winner: mark}
}

func Drawn() Outcome {
	return Outcome{Status: StatusFinished, Winner: PlayerTie}
}

func (that Outcome) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that Outcome) IsDraw() bool {
	return that.IsFinished() && that.Winner == PlayerTie
}

func (that Outcome) IsWin() bool {
	return that.IsFinished() && that.Winner != PlayerTie
}
