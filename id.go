package discord

// id.go contains the typed snowflake aliases used across payloads.

type GuildID Snowflake

func (s *GuildID) UnmarshalJSON(b []byte) error {
	return toSnowflake(b, (*Snowflake)(s))
}

func (s GuildID) MarshalJSON() ([]byte, error) {
	return Snowflake(s).MarshalJSON()
}

func (s GuildID) String() string {
	return Snowflake(s).String()
}

type ChannelID Snowflake

func (s *ChannelID) UnmarshalJSON(b []byte) error {
	return toSnowflake(b, (*Snowflake)(s))
}

func (s ChannelID) MarshalJSON() ([]byte, error) {
	return Snowflake(s).MarshalJSON()
}

func (s ChannelID) String() string {
	return Snowflake(s).String()
}

type MessageID Snowflake

func (s *MessageID) UnmarshalJSON(b []byte) error {
	return toSnowflake(b, (*Snowflake)(s))
}

func (s MessageID) MarshalJSON() ([]byte, error) {
	return Snowflake(s).MarshalJSON()
}

func (s MessageID) String() string {
	return Snowflake(s).String()
}

type UserID Snowflake

func (s *UserID) UnmarshalJSON(b []byte) error {
	return toSnowflake(b, (*Snowflake)(s))
}

func (s UserID) MarshalJSON() ([]byte, error) {
	return Snowflake(s).MarshalJSON()
}

func (s UserID) String() string {
	return Snowflake(s).String()
}

type RoleID Snowflake

func (s *RoleID) UnmarshalJSON(b []byte) error {
	return toSnowflake(b, (*Snowflake)(s))
}

func (s RoleID) MarshalJSON() ([]byte, error) {
	return Snowflake(s).MarshalJSON()
}

func (s RoleID) String() string {
	return Snowflake(s).String()
}

type EmojiID Snowflake

func (s *EmojiID) UnmarshalJSON(b []byte) error {
	return toSnowflake(b, (*Snowflake)(s))
}

func (s EmojiID) MarshalJSON() ([]byte, error) {
	return Snowflake(s).MarshalJSON()
}

func (s EmojiID) String() string {
	return Snowflake(s).String()
}

type ApplicationID Snowflake

func (s *ApplicationID) UnmarshalJSON(b []byte) error {
	return toSnowflake(b, (*Snowflake)(s))
}

func (s ApplicationID) MarshalJSON() ([]byte, error) {
	return Snowflake(s).MarshalJSON()
}

func (s ApplicationID) String() string {
	return Snowflake(s).String()
}

type ApplicationTeamID Snowflake

func (s *ApplicationTeamID) UnmarshalJSON(b []byte) error {
	return toSnowflake(b, (*Snowflake)(s))
}

func (s ApplicationTeamID) MarshalJSON() ([]byte, error) {
	return Snowflake(s).MarshalJSON()
}

func (s ApplicationTeamID) String() string {
	return Snowflake(s).String()
}

type ApplicationCommandID Snowflake

func (s *ApplicationCommandID) UnmarshalJSON(b []byte) error {
	return toSnowflake(b, (*Snowflake)(s))
}

func (s ApplicationCommandID) MarshalJSON() ([]byte, error) {
	return Snowflake(s).MarshalJSON()
}

func (s ApplicationCommandID) String() string {
	return Snowflake(s).String()
}

type ApplicationCommandPermissionsID Snowflake

func (s *ApplicationCommandPermissionsID) UnmarshalJSON(b []byte) error {
	return toSnowflake(b, (*Snowflake)(s))
}

func (s ApplicationCommandPermissionsID) MarshalJSON() ([]byte, error) {
	return Snowflake(s).MarshalJSON()
}

func (s ApplicationCommandPermissionsID) String() string {
	return Snowflake(s).String()
}

type IntegrationID Snowflake

func (s *IntegrationID) UnmarshalJSON(b []byte) error {
	return toSnowflake(b, (*Snowflake)(s))
}

func (s IntegrationID) MarshalJSON() ([]byte, error) {
	return Snowflake(s).MarshalJSON()
}

func (s IntegrationID) String() string {
	return Snowflake(s).String()
}

type AuditLogEntryID Snowflake

func (s *AuditLogEntryID) UnmarshalJSON(b []byte) error {
	return toSnowflake(b, (*Snowflake)(s))
}

func (s AuditLogEntryID) MarshalJSON() ([]byte, error) {
	return Snowflake(s).MarshalJSON()
}

func (s AuditLogEntryID) String() string {
	return Snowflake(s).String()
}

type StageInstanceID Snowflake

func (s *StageInstanceID) UnmarshalJSON(b []byte) error {
	return toSnowflake(b, (*Snowflake)(s))
}

func (s StageInstanceID) MarshalJSON() ([]byte, error) {
	return Snowflake(s).MarshalJSON()
}

func (s StageInstanceID) String() string {
	return Snowflake(s).String()
}

type WebhookID Snowflake

func (s *WebhookID) UnmarshalJSON(b []byte) error {
	return toSnowflake(b, (*Snowflake)(s))
}

func (s WebhookID) MarshalJSON() ([]byte, error) {
	return Snowflake(s).MarshalJSON()
}

func (s WebhookID) String() string {
	return Snowflake(s).String()
}

type InteractionID Snowflake

func (s *InteractionID) UnmarshalJSON(b []byte) error {
	return toSnowflake(b, (*Snowflake)(s))
}

func (s InteractionID) MarshalJSON() ([]byte, error) {
	return Snowflake(s).MarshalJSON()
}

func (s InteractionID) String() string {
	return Snowflake(s).String()
}

type AttachmentID Snowflake

func (s *AttachmentID) UnmarshalJSON(b []byte) error {
	return toSnowflake(b, (*Snowflake)(s))
}

func (s AttachmentID) MarshalJSON() ([]byte, error) {
	return Snowflake(s).MarshalJSON()
}

func (s AttachmentID) String() string {
	return Snowflake(s).String()
}

type StickerID Snowflake

func (s *StickerID) UnmarshalJSON(b []byte) error {
	return toSnowflake(b, (*Snowflake)(s))
}

func (s StickerID) MarshalJSON() ([]byte, error) {
	return Snowflake(s).MarshalJSON()
}

func (s StickerID) String() string {
	return Snowflake(s).String()
}

type ScheduledEventID Snowflake

func (s *ScheduledEventID) UnmarshalJSON(b []byte) error {
	return toSnowflake(b, (*Snowflake)(s))
}

func (s ScheduledEventID) MarshalJSON() ([]byte, error) {
	return Snowflake(s).MarshalJSON()
}

func (s ScheduledEventID) String() string {
	return Snowflake(s).String()
}

// Corresponding List types
type GuildIDList = List[GuildID]
type ChannelIDList = List[ChannelID]
type MessageIDList = List[MessageID]
type UserIDList = List[UserID]
type RoleIDList = List[RoleID]
type EmojiIDList = List[EmojiID]
type ApplicationIDList = List[ApplicationID]
type ApplicationCommandIDList = List[ApplicationCommandID]
type IntegrationIDList = List[IntegrationID]
type StickerIDList = List[StickerID]
type ScheduledEventIDList = List[ScheduledEventID]

// ID functions
func (s *GuildID) IsNil() bool {
	return *s == 0
}

func (s *ChannelID) IsNil() bool {
	return *s == 0
}

func (s *UserID) IsNil() bool {
	return *s == 0
}

func (s *ScheduledEventID) IsNil() bool {
	return *s == 0
}
