package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardczar/gameservice/pkg/rpc/grpc/gamerpc"
)

func TestValidatesConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(config *gamerpc.GameConfig)
		wantErr string
	}{
		{
			name:   "valid endless config",
			mutate: func(config *gamerpc.GameConfig) {},
		},
		{
			name: "valid max score config",
			mutate: func(config *gamerpc.GameConfig) {
				config.EndCondition = &gamerpc.GameConfig_MaxScore{MaxScore: 5}
			},
		},
		{
			name: "blank display name",
			mutate: func(config *gamerpc.GameConfig) {
				config.DisplayName = "   "
			},
			wantErr: "rpc error: code = InvalidArgument desc = Game config property `display_name` cannot be empty.",
		},
		{
			name: "too many players",
			mutate: func(config *gamerpc.GameConfig) {
				config.MaxPlayers = MaxPlayerLimit + 1
			},
			wantErr: "rpc error: code = InvalidArgument desc = Game config property `max_players` must not exceed 100.",
		},
		{
			name: "too few players",
			mutate: func(config *gamerpc.GameConfig) {
				config.MaxPlayers = MinPlayerLimit - 1
			},
			wantErr: "rpc error: code = InvalidArgument desc = Game config property `max_players` must be at least 2.",
		},
		{
			name: "max score too large",
			mutate: func(config *gamerpc.GameConfig) {
				config.EndCondition = &gamerpc.GameConfig_MaxScore{MaxScore: MaxScoreLimit + 1}
			},
			wantErr: "rpc error: code = InvalidArgument desc = Game config property `max_score` must not exceed 100.",
		},
		{
			name: "max score too small",
			mutate: func(config *gamerpc.GameConfig) {
				config.EndCondition = &gamerpc.GameConfig_MaxScore{MaxScore: 0}
			},
			wantErr: "rpc error: code = InvalidArgument desc = Game config property `max_score` must be at least 1.",
		},
		{
			name: "missing end condition",
			mutate: func(config *gamerpc.GameConfig) {
				config.EndCondition = nil
			},
			wantErr: "rpc error: code = InvalidArgument desc = Game config must specify a win condition using either the `max_score` or `endless_mode` property.",
		},
		{
			name: "hand size too large",
			mutate: func(config *gamerpc.GameConfig) {
				config.HandSize = MaxHandSizeLimit + 1
			},
			wantErr: "rpc error: code = InvalidArgument desc = Game config property `hand_size` must not exceed 20.",
		},
		{
			name: "hand size too small",
			mutate: func(config *gamerpc.GameConfig) {
				config.HandSize = MinHandSizeLimit - 1
			},
			wantErr: "rpc error: code = InvalidArgument desc = Game config property `hand_size` must be at least 3.",
		},
		{
			name: "no cardpacks",
			mutate: func(config *gamerpc.GameConfig) {
				config.CustomCardpackNames = nil
				config.DefaultCardpackNames = nil
			},
			wantErr: "rpc error: code = InvalidArgument desc = Game config must contain at least one value for either `custom_cardpack_names` or `default_cardpack_names`.",
		},
		{
			name: "missing blank white card config",
			mutate: func(config *gamerpc.GameConfig) {
				config.BlankWhiteCardConfig = nil
			},
			wantErr: "rpc error: code = InvalidArgument desc = Game config property `blank_white_card_config` cannot be blank.",
		},
		{
			name: "unspecified blank card behavior",
			mutate: func(config *gamerpc.GameConfig) {
				config.BlankWhiteCardConfig.Behavior = gamerpc.BlankWhiteCardConfig_BEHAVIOR_UNSPECIFIED
			},
			wantErr: "rpc error: code = InvalidArgument desc = Game config property `blank_white_card_config.behavior` cannot be left unspecified.",
		},
		{
			name: "disabled blanks with card count",
			mutate: func(config *gamerpc.GameConfig) {
				config.BlankWhiteCardConfig.BlankWhiteCardsAdded = &gamerpc.BlankWhiteCardConfig_CardCount{CardCount: 10}
			},
			wantErr: "rpc error: code = InvalidArgument desc = Game config cannot have value for `card_count` or `percentage` since property `blank_white_card_config.behavior` is set to DISABLED.",
		},
		{
			name: "open text blanks without amount",
			mutate: func(config *gamerpc.GameConfig) {
				config.BlankWhiteCardConfig.Behavior = gamerpc.BlankWhiteCardConfig_OPEN_TEXT
			},
			wantErr: "rpc error: code = InvalidArgument desc = Game config requires value for `card_count` or `percentage` since property `blank_white_card_config.behavior` is not set to DISABLED.",
		},
		{
			name: "negative blank card count",
			mutate: func(config *gamerpc.GameConfig) {
				config.BlankWhiteCardConfig = &gamerpc.BlankWhiteCardConfig{
					Behavior:             gamerpc.BlankWhiteCardConfig_OPEN_TEXT,
					BlankWhiteCardsAdded: &gamerpc.BlankWhiteCardConfig_CardCount{CardCount: -1},
				}
			},
			wantErr: "rpc error: code = InvalidArgument desc = Game config property `blank_white_card_config.card_count` cannot be negative.",
		},
		{
			name: "blank card count too large",
			mutate: func(config *gamerpc.GameConfig) {
				config.BlankWhiteCardConfig = &gamerpc.BlankWhiteCardConfig{
					Behavior:             gamerpc.BlankWhiteCardConfig_OPEN_TEXT,
					BlankWhiteCardsAdded: &gamerpc.BlankWhiteCardConfig_CardCount{CardCount: 10001},
				}
			},
			wantErr: "rpc error: code = InvalidArgument desc = Game config property `blank_white_card_config.card_count` must not exceed 10000.",
		},
		{
			name: "negative blank card percentage",
			mutate: func(config *gamerpc.GameConfig) {
				config.BlankWhiteCardConfig = &gamerpc.BlankWhiteCardConfig{
					Behavior:             gamerpc.BlankWhiteCardConfig_OPEN_TEXT,
					BlankWhiteCardsAdded: &gamerpc.BlankWhiteCardConfig_Percentage{Percentage: -0.1},
				}
			},
			wantErr: "rpc error: code = InvalidArgument desc = Game config property `blank_white_card_config.percentage` cannot be negative.",
		},
		{
			name: "blank card percentage too large",
			mutate: func(config *gamerpc.GameConfig) {
				config.BlankWhiteCardConfig = &gamerpc.BlankWhiteCardConfig{
					Behavior:             gamerpc.BlankWhiteCardConfig_OPEN_TEXT,
					BlankWhiteCardsAdded: &gamerpc.BlankWhiteCardConfig_Percentage{Percentage: 0.81},
				}
			},
			wantErr: "rpc error: code = InvalidArgument desc = Game config property `blank_white_card_config.percentage` must not exceed 0.8.",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			config := endlessTestGameConfig()
			tc.mutate(config)
			validated, err := NewValidatedConfig(config)
			if tc.wantErr == "" {
				require.NoError(t, err)
				require.NotNil(t, validated)
				return
			}
			require.EqualError(t, err, tc.wantErr)
		})
	}
}

func TestNilConfigIsRejected(t *testing.T) {
	_, err := NewValidatedConfig(nil)
	require.EqualError(t, err,
		"rpc error: code = InvalidArgument desc = Game config cannot be blank.")
}

func TestConfigTrimsDisplayName(t *testing.T) {
	config := endlessTestGameConfig()
	config.DisplayName = "  Trimmed Name  "
	validated, err := NewValidatedConfig(config)
	require.NoError(t, err)
	assert.Equal(t, "Trimmed Name", validated.DisplayName())
}

func TestConfigRoundTripsThroughRaw(t *testing.T) {
	validated, err := NewValidatedConfig(maxScoreTestGameConfig(7))
	require.NoError(t, err)
	raw := validated.Raw()
	assert.Equal(t, "Test Game", raw.GetDisplayName())
	assert.Equal(t, int32(7), raw.GetMaxScore())
	assert.Equal(t, int32(MinimumPlayersRequiredToPlay), raw.GetMaxPlayers())
	assert.Equal(t, []string{"test_custom_cardpack_name"}, raw.GetCustomCardpackNames())

	maxScore, hasMaxScore := validated.MaxScore()
	require.True(t, hasMaxScore)
	assert.Equal(t, 7, maxScore)

	endless, err := NewValidatedConfig(endlessTestGameConfig())
	require.NoError(t, err)
	_, hasMaxScore = endless.MaxScore()
	assert.False(t, hasMaxScore)
	assert.True(t, endless.Raw().GetEndlessMode())
}
