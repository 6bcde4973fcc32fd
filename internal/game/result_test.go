package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoard_Result(t *testing.T) {
	tests := []struct {
		name     string
		board    string
		expected Result
	}{
		{
			name:     "Empty board is ongoing",
			board:    "---------",
			expected: Result{State: StateOngoing},
		},
		{
			name:     "Partial board is ongoing",
			board:    "XOX------",
			expected: Result{State: StateOngoing},
		},
		{
			name:     "Row win before the board is full",
			board:    "XXX-OO---",
			expected: Result{State: StateWon, Winner: MarkX},
		},
		{
			name:     "Column win",
			board:    "OX-OX-O--",
			expected: Result{State: StateWon, Winner: MarkO},
		},
		{
			name:     "Full board with no line is a draw",
			board:    "XOXOXOOXO",
			expected: Result{State: StateDraw},
		},
		{
			name:     "Full board with a line is a win, not a draw",
			board:    "XXXOOXOXO",
			expected: Result{State: StateWon, Winner: MarkX},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given: the board position
			board, err := ParseBoard(tt.board)
			require.NoError(t, err)

			// When: the result is derived
			result := board.Result()

			// Then: exactly the expected classification comes back
			require.Equal(t, tt.expected, result)
		})
	}
}

func TestResult_IsTerminal(t *testing.T) {
	require.False(t, Result{State: StateOngoing}.IsTerminal())
	require.True(t, Result{State: StateDraw}.IsTerminal())
	require.True(t, Result{State: StateWon, Winner: MarkX}.IsTerminal())
}
