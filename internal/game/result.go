package game

// State classifies a board position.
type State string

const (
	StateOngoing State = "ongoing"
	StateDraw    State = "draw"
	StateWon     State = "won"
)

// Result is the terminal classification of a board. Winner is set only
// when State is StateWon.
type Result struct {
	State  State
	Winner Mark
}

func (that Result) IsTerminal() bool {
	return that.State != StateOngoing
}

// Result - derives the game result from the winning lines and fullness.
// Win and draw are mutually exclusive: a full board with a winning line
// is a win.
func (that *Board) Result() Result {
	if winner, ok := that.Winner(); ok {
		return Result{State: StateWon, Winner: winner}
	}

	if that.IsFull() {
		return Result{State: StateDraw}
	}

	return Result{State: StateOngoing}
}
