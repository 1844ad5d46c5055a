package discord

// emoji.go contains all structures for emojis.

// ReactionType differentiates normal and super reactions.
type ReactionType int

const (
	ReactionTypeNormal ReactionType = iota
	ReactionTypeBurst
)

// Emoji represents an Emoji on discord.
type Emoji struct {
	GuildID       *GuildID   `json:"guild_id,omitempty"`
	User          *User      `json:"user,omitempty"`
	Name          string     `json:"name"`
	Roles         RoleIDList `json:"roles,omitempty"`
	ID            EmojiID    `json:"id"`
	RequireColons bool       `json:"require_colons"`
	Managed       bool       `json:"managed"`
	Animated      bool       `json:"animated"`
	Available     bool       `json:"available"`
}

// EmojiParams represents the payload sent to discord to create an emoji.
type EmojiParams struct {
	Name  string     `json:"name"`
	Image string     `json:"image"`
	Roles RoleIDList `json:"roles"`
}
