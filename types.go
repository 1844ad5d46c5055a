package discord

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	gotils_strconv "github.com/savsgio/gotils/strconv"
)

const (
	DiscordCreation = 1420070400000

	bitSize            = 64
	decimalBase        = 10
	maxInt64JsonLength = 22
)

var null = []byte("null")

// Placeholder type for easy identification.
type Snowflake int64

func (s *Snowflake) IsNil() bool {
	return *s == 0
}

func toSnowflake(b []byte, s *Snowflake) error {
	if bytes.Equal(b, null) {
		*s = 0

		return nil
	}

	if b[0] == '"' && len(b) >= 2 {
		b = b[1 : len(b)-1]
	}

	i, err := strconv.ParseInt(gotils_strconv.B2S(b), decimalBase, bitSize)
	if err != nil {
		return fmt.Errorf("failed to unmarshal json: %w", err)
	}

	*s = Snowflake(i)

	return nil
}

func (s *Snowflake) UnmarshalJSON(b []byte) error {
	return toSnowflake(b, s)
}

func (s Snowflake) MarshalJSON() ([]byte, error) {
	return int64ToStringBytes(int64(s)), nil
}

func (s Snowflake) String() string {
	return strconv.FormatInt(int64(s), decimalBase)
}

// Time returns the creation time of the Snowflake.
func (s Snowflake) Time() time.Time {
	nsec := (int64(s) >> 22) + DiscordCreation

	return time.Unix(0, nsec*1000000)
}

// int64 to allow for marshalling support.
type Int64 int64

func (in *Int64) UnmarshalJSON(b []byte) error {
	return toSnowflake(b, (*Snowflake)(in))
}

func (in Int64) MarshalJSON() ([]byte, error) {
	return int64ToStringBytes(int64(in)), nil
}

func (in Int64) String() string {
	return strconv.FormatInt(int64(in), decimalBase)
}

func uint16Bytes(i uint16) []byte {
	return []byte(strconv.Itoa(int(i)))
}

func int64ToStringBytes(s int64) []byte {
	buf := make([]byte, 0, maxInt64JsonLength)

	buf = append(buf, '"')
	buf = strconv.AppendInt(buf, s, decimalBase)
	buf = append(buf, '"')

	return buf
}

// Timestamp represents an ISO8601 timestamp as sent over the wire.
type Timestamp string

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp(t.UTC().Format(time.RFC3339))
}

// Time parses the timestamp. Returns the zero time for empty timestamps.
func (t Timestamp) Time() (time.Time, error) {
	if t == "" {
		return time.Time{}, nil
	}

	parsed, err := time.Parse(time.RFC3339, string(t))
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse timestamp: %w", err)
	}

	return parsed, nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t == "" {
		return null, nil
	}

	if _, err := time.Parse(time.RFC3339, string(t)); err != nil {
		return nil, fmt.Errorf("timestamp is corrupted (is %v): %w", t, err)
	}

	return jsoniter.Marshal(string(t))
}

// List marshals empty slices as [] instead of null.
type List[T any] []T

func (l List[T]) MarshalJSON() ([]byte, error) {
	if len(l) == 0 {
		return []byte("[]"), nil
	}

	return jsoniter.Marshal([]T(l))
}

type SnowflakeList = List[Snowflake]
type StringList = List[string]
type Int64List = List[Int64]
type StageInstanceList = List[StageInstance]
type StickerList = List[Sticker]
type ScheduledEventList = List[ScheduledEvent]
type RoleList = List[Role]
type EmojiList = List[Emoji]
type VoiceStateList = List[VoiceState]
type GuildMemberList = List[GuildMember]
type ChannelList = List[Channel]
type ActivityList = List[Activity]
type PresenceUpdateList = List[PresenceUpdate]
type ChannelOverwriteList = List[ChannelOverwrite]
type UserList = List[User]
type AuditLogEntryList = List[AuditLogEntry]
type AuditLogChangesList = List[AuditLogChanges]
type IntegrationList = List[Integration]
type WebhookList = List[Webhook]
type EmbedFieldList = List[EmbedField]
type EmbedList = List[Embed]
type UnavailableGuildList = List[UnavailableGuild]
type ThreadMemberList = List[ThreadMember]
type ScheduledEventUserList = List[ScheduledEventUser]

type NullMap bool

func (n NullMap) MarshalJSON() ([]byte, error) {
	return []byte("{}"), nil
}

type NullSeq bool

func (n NullSeq) MarshalJSON() ([]byte, error) {
	return []byte("[]"), nil
}
