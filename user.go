package discord

import (
	"strconv"

	jsoniter "github.com/json-iterator/go"
)

// user.go represents all structures for a discord user.

// UserFlags represents the flags on a user's account.
type UserFlags uint32

// User flags.
const (
	UserFlagsDiscordEmployee UserFlags = 1 << iota
	UserFlagsPartneredServerOwner
	UserFlagsHypeSquadEvents
	UserFlagsBugHunterLevel1
	_
	_
	UserFlagsHouseBravery
	UserFlagsHouseBrilliance
	UserFlagsHouseBalance
	UserFlagsEarlySupporter
	UserFlagsTeamUser
	_
	_
	_
	UserFlagsBugHunterLevel2
	_
	UserFlagsVerifiedBot
	UserFlagsVerifiedDeveloper
	UserFlagsCertifiedModerator
	UserFlagsBotHTTPInteractions
	_
	_
	UserFlagsActiveDeveloper
)

// UserPremiumType represents the type of Nitro on a user's account.
type UserPremiumType int

// User premium type.
const (
	UserPremiumTypeNone UserPremiumType = iota
	UserPremiumTypeNitroClassic
	UserPremiumTypeNitro
	UserPremiumTypeNitroBasic
)

var UserPremiumTypes = NewEnum("UserPremiumType",
	Member("none", UserPremiumTypeNone),
	Member("nitro_classic", UserPremiumTypeNitroClassic),
	Member("nitro", UserPremiumTypeNitro),
	Member("nitro_basic", UserPremiumTypeNitroBasic),
)

func (t UserPremiumType) String() string {
	if name := UserPremiumTypes.NameOf(t); name != "" {
		return name
	}

	return strconv.Itoa(int(t))
}

// User represents a user on discord.
type User struct {
	DMChannelID      *ChannelID      `json:"dm_channel_id,omitempty"`
	Banner           string          `json:"banner,omitempty"`
	GlobalName       string          `json:"global_name"`
	Avatar           *string         `json:"avatar"`
	AvatarDecoration *string         `json:"avatar_decoration,omitempty"`
	Username         string          `json:"username"`
	Discriminator    string          `json:"discriminator"`
	Locale           string          `json:"locale,omitempty"`
	Email            string          `json:"email,omitempty"`
	ID               UserID          `json:"id"`
	PremiumType      UserPremiumType `json:"premium_type"`
	Flags            UserFlags       `json:"flags"`
	AccentColor      int32           `json:"accent_color"`
	PublicFlags      UserFlags       `json:"public_flags"`
	MFAEnabled       bool            `json:"mfa_enabled"`
	Verified         bool            `json:"verified"`
	Bot              bool            `json:"bot"`
	System           bool            `json:"system"`
}

// Used to avoid a marshal loop.
type marshalUser User

func (u User) MarshalJSON() ([]byte, error) {
	// Users migrated off the legacy username system have no discriminator.
	if u.Discriminator == "" {
		u.Discriminator = "0"
	}

	return jsoniter.Marshal(marshalUser(u))
}

// ClientUser aliases User to provide current user specific methods.
type ClientUser User
