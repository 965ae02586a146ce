package game

import (
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/cardczar/gameservice/pkg/rpc/grpc/gamerpc"
)

// ValidatedConfig is a game config whose fields have all been bounds-checked
// at construction. It is immutable; methods that consult it never
// re-validate.
type ValidatedConfig struct {
	displayName          string
	maxPlayers           int
	maxScore             int
	endlessMode          bool
	handSize             int
	customCardpackNames  []string
	defaultCardpackNames []string
	blankWhiteCardConfig *gamerpc.BlankWhiteCardConfig
}

func NewValidatedConfig(config *gamerpc.GameConfig) (*ValidatedConfig, error) {
	if config == nil {
		return nil, status.Error(codes.InvalidArgument, "Game config cannot be blank.")
	}

	displayName := strings.TrimSpace(config.GetDisplayName())
	if displayName == "" {
		return nil, status.Error(codes.InvalidArgument,
			"Game config property `display_name` cannot be empty.")
	}

	if config.GetMaxPlayers() > MaxPlayerLimit {
		return nil, status.Errorf(codes.InvalidArgument,
			"Game config property `max_players` must not exceed %d.", MaxPlayerLimit)
	}
	if config.GetMaxPlayers() < MinPlayerLimit {
		return nil, status.Errorf(codes.InvalidArgument,
			"Game config property `max_players` must be at least %d.", MinPlayerLimit)
	}

	validated := &ValidatedConfig{
		displayName:          displayName,
		maxPlayers:           int(config.GetMaxPlayers()),
		customCardpackNames:  append([]string(nil), config.GetCustomCardpackNames()...),
		defaultCardpackNames: append([]string(nil), config.GetDefaultCardpackNames()...),
	}

	switch endCondition := config.GetEndCondition().(type) {
	case *gamerpc.GameConfig_MaxScore:
		if endCondition.MaxScore > MaxScoreLimit {
			return nil, status.Errorf(codes.InvalidArgument,
				"Game config property `max_score` must not exceed %d.", MaxScoreLimit)
		}
		if endCondition.MaxScore < MinScoreLimit {
			return nil, status.Errorf(codes.InvalidArgument,
				"Game config property `max_score` must be at least %d.", MinScoreLimit)
		}
		validated.maxScore = int(endCondition.MaxScore)
	case *gamerpc.GameConfig_EndlessMode:
		validated.endlessMode = true
	default:
		return nil, status.Error(codes.InvalidArgument,
			"Game config must specify a win condition using either the `max_score` or `endless_mode` property.")
	}

	if config.GetHandSize() > MaxHandSizeLimit {
		return nil, status.Errorf(codes.InvalidArgument,
			"Game config property `hand_size` must not exceed %d.", MaxHandSizeLimit)
	}
	if config.GetHandSize() < MinHandSizeLimit {
		return nil, status.Errorf(codes.InvalidArgument,
			"Game config property `hand_size` must be at least %d.", MinHandSizeLimit)
	}
	validated.handSize = int(config.GetHandSize())

	if len(validated.customCardpackNames) == 0 && len(validated.defaultCardpackNames) == 0 {
		return nil, status.Error(codes.InvalidArgument,
			"Game config must contain at least one value for either `custom_cardpack_names` or `default_cardpack_names`.")
	}

	blankConfig := config.GetBlankWhiteCardConfig()
	if blankConfig == nil {
		return nil, status.Error(codes.InvalidArgument,
			"Game config property `blank_white_card_config` cannot be blank.")
	}
	if err := validateBlankWhiteCardConfig(blankConfig); err != nil {
		return nil, err
	}
	validated.blankWhiteCardConfig = cloneBlankWhiteCardConfig(blankConfig)

	return validated, nil
}

func validateBlankWhiteCardConfig(config *gamerpc.BlankWhiteCardConfig) error {
	switch added := config.GetBlankWhiteCardsAdded().(type) {
	case *gamerpc.BlankWhiteCardConfig_CardCount:
		if added.CardCount < 0 {
			return status.Error(codes.InvalidArgument,
				"Game config property `blank_white_card_config.card_count` cannot be negative.")
		}
		if added.CardCount > 10000 {
			return status.Error(codes.InvalidArgument,
				"Game config property `blank_white_card_config.card_count` must not exceed 10000.")
		}
	case *gamerpc.BlankWhiteCardConfig_Percentage:
		if added.Percentage < 0 {
			return status.Error(codes.InvalidArgument,
				"Game config property `blank_white_card_config.percentage` cannot be negative.")
		}
		if added.Percentage > 0.8 {
			return status.Error(codes.InvalidArgument,
				"Game config property `blank_white_card_config.percentage` must not exceed 0.8.")
		}
	}

	switch config.GetBehavior() {
	case gamerpc.BlankWhiteCardConfig_BEHAVIOR_UNSPECIFIED:
		return status.Error(codes.InvalidArgument,
			"Game config property `blank_white_card_config.behavior` cannot be left unspecified.")
	case gamerpc.BlankWhiteCardConfig_DISABLED:
		if config.GetBlankWhiteCardsAdded() != nil {
			return status.Error(codes.InvalidArgument,
				"Game config cannot have value for `card_count` or `percentage` since property `blank_white_card_config.behavior` is set to DISABLED.")
		}
	case gamerpc.BlankWhiteCardConfig_OPEN_TEXT:
		if config.GetBlankWhiteCardsAdded() == nil {
			return status.Error(codes.InvalidArgument,
				"Game config requires value for `card_count` or `percentage` since property `blank_white_card_config.behavior` is not set to DISABLED.")
		}
	default:
		return status.Error(codes.InvalidArgument,
			"Game config property `blank_white_card_config.behavior` must be a valid enum value.")
	}

	return nil
}

func cloneBlankWhiteCardConfig(config *gamerpc.BlankWhiteCardConfig) *gamerpc.BlankWhiteCardConfig {
	clone := &gamerpc.BlankWhiteCardConfig{Behavior: config.GetBehavior()}
	switch added := config.GetBlankWhiteCardsAdded().(type) {
	case *gamerpc.BlankWhiteCardConfig_CardCount:
		clone.BlankWhiteCardsAdded = &gamerpc.BlankWhiteCardConfig_CardCount{CardCount: added.CardCount}
	case *gamerpc.BlankWhiteCardConfig_Percentage:
		clone.BlankWhiteCardsAdded = &gamerpc.BlankWhiteCardConfig_Percentage{Percentage: added.Percentage}
	}
	return clone
}

func (c *ValidatedConfig) DisplayName() string { return c.displayName }

func (c *ValidatedConfig) MaxPlayers() int { return c.maxPlayers }

// MaxScore returns the winning score, or false when the game is endless.
func (c *ValidatedConfig) MaxScore() (int, bool) {
	if c.endlessMode {
		return 0, false
	}
	return c.maxScore, true
}

func (c *ValidatedConfig) HandSize() int { return c.handSize }

func (c *ValidatedConfig) CustomCardpackNames() []string { return c.customCardpackNames }

func (c *ValidatedConfig) DefaultCardpackNames() []string { return c.defaultCardpackNames }

func (c *ValidatedConfig) BlankWhiteCardConfig() *gamerpc.BlankWhiteCardConfig {
	return c.blankWhiteCardConfig
}

// Raw rebuilds the wire form of the config. A fresh message is returned each
// call so callers may attach it to responses without aliasing.
func (c *ValidatedConfig) Raw() *gamerpc.GameConfig {
	raw := &gamerpc.GameConfig{
		DisplayName:          c.displayName,
		MaxPlayers:           int32(c.maxPlayers),
		HandSize:             int32(c.handSize),
		CustomCardpackNames:  append([]string(nil), c.customCardpackNames...),
		DefaultCardpackNames: append([]string(nil), c.defaultCardpackNames...),
		BlankWhiteCardConfig: cloneBlankWhiteCardConfig(c.blankWhiteCardConfig),
	}
	if c.endlessMode {
		raw.EndCondition = &gamerpc.GameConfig_EndlessMode{EndlessMode: true}
	} else {
		raw.EndCondition = &gamerpc.GameConfig_MaxScore{MaxScore: int32(c.maxScore)}
	}
	return raw
}
