package game

import (
	"fmt"

	"github.com/cardczar/gameservice/pkg/rpc/grpc/gamerpc"
)

type playerKind int

const (
	kindRealUser playerKind = iota
	kindArtificialPlayer
)

// PlayerID is the primary key for a participant within a single game. Real
// users are keyed by user resource name, artificial players by their
// generated id. It is comparable and safe to use as a map key.
type PlayerID struct {
	kind  playerKind
	value string
}

func RealUserID(userName string) PlayerID {
	return PlayerID{kind: kindRealUser, value: userName}
}

func ArtificialPlayerID(id string) PlayerID {
	return PlayerID{kind: kindArtificialPlayer, value: id}
}

// PlayerIDFromProto extracts the id from a Player message. Returns false if
// the identifier oneof is unset.
func PlayerIDFromProto(player *gamerpc.Player) (PlayerID, bool) {
	switch identifier := player.GetIdentifier().(type) {
	case *gamerpc.Player_User:
		return RealUserID(identifier.User.GetName()), true
	case *gamerpc.Player_ArtificialUser:
		return ArtificialPlayerID(identifier.ArtificialUser.GetId()), true
	default:
		return PlayerID{}, false
	}
}

func (id PlayerID) IsRealUser() bool {
	return id.kind == kindRealUser
}

func (id PlayerID) IsArtificialPlayer() bool {
	return id.kind == kindArtificialPlayer
}

// Value returns the user name for real users or the generated id for
// artificial players.
func (id PlayerID) Value() string {
	return id.value
}

func (id PlayerID) String() string {
	if id.kind == kindArtificialPlayer {
		return fmt.Sprintf("ArtificialPlayer(%q)", id.value)
	}
	return fmt.Sprintf("RealUser(%q)", id.value)
}
