package game

// Limits enforced when validating a game config, plus gameplay minimums.
const (
	MinPlayerLimit   = 2
	MaxPlayerLimit   = 100
	MinScoreLimit    = 1
	MaxScoreLimit    = 100
	MinHandSizeLimit = 3
	MaxHandSizeLimit = 20

	// Real and artificial players combined. At least two must be real
	// since one player judges while the others play.
	MinimumPlayersRequiredToPlay = 3

	MaxBlackCardAnswerFields = 3

	maxChatMessagesPerGame = 100
)
