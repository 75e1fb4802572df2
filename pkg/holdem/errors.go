package holdem

import "fmt"

// ActionError is an error caused by an illegal player action
// The message is safe to return to the player
type ActionError string

func (a ActionError) Error() string {
	return string(a)
}

func newActionError(format string, a ...interface{}) ActionError {
	return ActionError(fmt.Sprintf(format, a...))
}

// ErrNotYourTurn is returned when a player acts out of turn
var ErrNotYourTurn = ActionError("it is not your turn")

// ErrInactivePlayer is returned when a folded player tries to act
var ErrInactivePlayer = ActionError("you are no longer in the hand")

// ErrUnknownPlayer is returned when the player is not part of the hand
var ErrUnknownPlayer = ActionError("player is not at this table")

// ErrHandFinished is returned when an action is attempted after showdown
var ErrHandFinished = ActionError("the hand is finished")

// ErrHandNotStarted is returned when an action is attempted before the first hand is dealt
var ErrHandNotStarted = ActionError("the hand has not started")

// ErrNotEnoughPlayers is returned when a hand is started with fewer than two players
var ErrNotEnoughPlayers = ActionError("at least two players are required")

// ErrInsufficientStack is returned when a player joins with less than one big blind
var ErrInsufficientStack = ActionError("your stack is below the big blind")

// ErrAlreadySeated is returned when a player id is already seated or waiting
var ErrAlreadySeated = ActionError("player is already at the table")

// ErrTableFull is returned when all seats are taken
var ErrTableFull = ActionError("the table is full")

// ErrNotSeated is returned when an unknown player is removed
var ErrNotSeated = ActionError("player is not seated")

// ErrNotInHand is returned when a replay decision comes from a player outside the finished hand
var ErrNotInHand = ActionError("player was not part of the hand")

// ErrNoReplayVote is returned when a replay decision is made while no vote is open
var ErrNoReplayVote = ActionError("there is no replay vote in progress")
