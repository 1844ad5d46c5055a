package discord

// invites.go contains all structures for invites.

// InviteTargetType represents the type of an invites target.
type InviteTargetType uint16

const (
	InviteTargetTypeStream InviteTargetType = 1 + iota
	InviteTargetTypeEmbeddedApplication
)

// Invite represents the structure of Invite data.
type Invite struct {
	ExpiresAt                Timestamp            `json:"expires_at,omitempty"`
	CreatedAt                Timestamp            `json:"created_at"`
	ScheduledEvent           *ScheduledEvent      `json:"guild_scheduled_event,omitempty"`
	StageInstance            *InviteStageInstance `json:"stage_instance,omitempty"`
	Inviter                  *User                `json:"inviter,omitempty"`
	TargetType               *InviteTargetType    `json:"target_type,omitempty"`
	TargetUser               *User                `json:"target_user,omitempty"`
	TargetApplication        *Application         `json:"target_application"`
	Guild                    *Guild               `json:"guild,omitempty"`
	Channel                  *Channel             `json:"channel,omitempty"`
	GuildID                  *GuildID             `json:"guild_id,omitempty"`
	Code                     string               `json:"code"`
	ApproximateMemberCount   int32                `json:"approximate_member_count,omitempty"`
	Uses                     int32                `json:"uses"`
	MaxUses                  int32                `json:"max_uses"`
	MaxAge                   int32                `json:"max_age"`
	ApproximatePresenceCount int32                `json:"approximate_presence_count,omitempty"`
	Temporary                bool                 `json:"temporary"`
}

// InviteStageInstance represents the structure of an invite stage instance.
type InviteStageInstance struct {
	Topic            string          `json:"topic"`
	Members          GuildMemberList `json:"members"`
	ParticipantCount int32           `json:"participant_count"`
	SpeakerCount     int32           `json:"speaker_count"`
}

// InviteParams represents the params to create an invite.
type InviteParams struct {
	MaxAge    int32 `json:"max_age"`
	MaxUses   int32 `json:"max_uses"`
	Temporary bool  `json:"temporary"`
	Unique    bool  `json:"unique"`
}
