package discord

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
)

// http.go contains the endpoint helpers and the rest operations built on them.

// File stores information about a file sent in a message.
type File struct {
	Reader      io.Reader
	Name        string
	ContentType string
}

// GatewayResponse represents a GET /gateway response.
type GatewayResponse struct {
	URL string `json:"url"`
}

// GatewayBotResponse represents a GET /gateway/bot response.
type GatewayBotResponse struct {
	URL               string `json:"url"`
	Shards            int32  `json:"shards"`
	SessionStartLimit struct {
		Total          int32 `json:"total"`
		Remaining      int32 `json:"remaining"`
		ResetAfter     int32 `json:"reset_after"`
		MaxConcurrency int32 `json:"max_concurrency"`
	} `json:"session_start_limit"`
}

func EndpointGuild(guildID string) string {
	return "/guilds/" + guildID
}

func EndpointGuildChannels(guildID string) string {
	return "/guilds/" + guildID + "/channels"
}

func EndpointGuildMembers(guildID string) string {
	return "/guilds/" + guildID + "/members"
}

func EndpointGuildMember(guildID, userID string) string {
	return "/guilds/" + guildID + "/members/" + userID
}

func EndpointGuildBans(guildID string) string {
	return "/guilds/" + guildID + "/bans"
}

func EndpointGuildBan(guildID, userID string) string {
	return "/guilds/" + guildID + "/bans/" + userID
}

func EndpointGuildRoles(guildID string) string {
	return "/guilds/" + guildID + "/roles"
}

func EndpointGuildRole(guildID, roleID string) string {
	return "/guilds/" + guildID + "/roles/" + roleID
}

func EndpointGuildPrune(guildID string) string {
	return "/guilds/" + guildID + "/prune"
}

func EndpointGuildIntegrations(guildID string) string {
	return "/guilds/" + guildID + "/integrations"
}

func EndpointGuildIntegration(guildID, integrationID string) string {
	return "/guilds/" + guildID + "/integrations/" + integrationID
}

func EndpointGuildEmojis(guildID string) string {
	return "/guilds/" + guildID + "/emojis"
}

func EndpointGuildEmoji(guildID, emojiID string) string {
	return "/guilds/" + guildID + "/emojis/" + emojiID
}

func EndpointGuildStickers(guildID string) string {
	return "/guilds/" + guildID + "/stickers"
}

func EndpointGuildSticker(guildID, stickerID string) string {
	return "/guilds/" + guildID + "/stickers/" + stickerID
}

func EndpointGuildInvites(guildID string) string {
	return "/guilds/" + guildID + "/invites"
}

func EndpointGuildAuditLogs(guildID string) string {
	return "/guilds/" + guildID + "/audit-logs"
}

func EndpointGuildScheduledEvents(guildID string) string {
	return "/guilds/" + guildID + "/scheduled-events"
}

func EndpointGuildScheduledEvent(guildID, eventID string) string {
	return "/guilds/" + guildID + "/scheduled-events/" + eventID
}

func EndpointGuildScheduledEventUsers(guildID, eventID string) string {
	return "/guilds/" + guildID + "/scheduled-events/" + eventID + "/users"
}

func EndpointChannel(channelID string) string {
	return "/channels/" + channelID
}

func EndpointChannelMessages(channelID string) string {
	return "/channels/" + channelID + "/messages"
}

func EndpointChannelMessage(channelID, messageID string) string {
	return "/channels/" + channelID + "/messages/" + messageID
}

func EndpointChannelInvites(channelID string) string {
	return "/channels/" + channelID + "/invites"
}

func EndpointChannelPermission(channelID, overwriteID string) string {
	return "/channels/" + channelID + "/permissions/" + overwriteID
}

func EndpointChannelWebhooks(channelID string) string {
	return "/channels/" + channelID + "/webhooks"
}

func EndpointUser(userID string) string {
	return "/users/" + userID
}

func EndpointInvite(code string) string {
	return "/invites/" + code
}

func EndpointWebhook(webhookID string) string {
	return "/webhooks/" + webhookID
}

func EndpointWebhookToken(webhookID, token string) string {
	return "/webhooks/" + webhookID + "/" + token
}

func EndpointStickerPacks() string {
	return "/sticker-packs"
}

func EndpointSticker(stickerID string) string {
	return "/stickers/" + stickerID
}

func EndpointOAuth2Me() string {
	return "/oauth2/@me"
}

func EndpointGateway() string {
	return "/gateway"
}

func EndpointGatewayBot() string {
	return "/gateway/bot"
}

func auditLogHeaders(reason *string) http.Header {
	headers := http.Header{}

	if reason != nil {
		headers.Set(AuditLogReasonHeader, *reason)
	}

	return headers
}

// FetchGuild returns a guild by its id.
func FetchGuild(s *Session, guildID GuildID) (*Guild, error) {
	var guild Guild

	err := s.Interface.FetchJJ(s, http.MethodGet, EndpointGuild(guildID.String()), nil, nil, &guild)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch guild: %w", err)
	}

	return &guild, nil
}

// Edit modifies the guild. Requires the MANAGE_GUILD permission.
func (g *Guild) Edit(s *Session, params GuildParams, reason *string) error {
	err := s.Interface.FetchJJ(s, http.MethodPatch, EndpointGuild(g.ID.String()), params, auditLogHeaders(reason), g)
	if err != nil {
		return fmt.Errorf("failed to edit guild: %w", err)
	}

	return nil
}

// AuditLogs returns the audit log of the guild. Requires the VIEW_AUDIT_LOG permission.
func (g *Guild) AuditLogs(s *Session, limit int32, before *AuditLogEntryID, actionType *AuditLogActionType) (*GuildAuditLog, error) {
	if limit <= 0 {
		limit = 50
	}

	endpoint := EndpointGuildAuditLogs(g.ID.String()) +
		"?limit=" + strconv.FormatInt(int64(limit), decimalBase)

	if before != nil {
		endpoint += "&before=" + before.String()
	}

	if actionType != nil {
		endpoint += "&action_type=" + strconv.FormatInt(int64(*actionType), decimalBase)
	}

	var auditLog GuildAuditLog

	err := s.Interface.FetchJJ(s, http.MethodGet, endpoint, nil, nil, &auditLog)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch audit logs: %w", err)
	}

	return &auditLog, nil
}

// FetchChannels returns the channels of the guild.
func (g *Guild) FetchChannels(s *Session) ([]Channel, error) {
	var channels []Channel

	err := s.Interface.FetchJJ(s, http.MethodGet, EndpointGuildChannels(g.ID.String()), nil, nil, &channels)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch guild channels: %w", err)
	}

	return channels, nil
}

// FetchMembers returns the members of the guild, paginating forward from after.
func (g *Guild) FetchMembers(s *Session, limit int32, after *UserID) ([]GuildMember, error) {
	endpoint := EndpointGuildMembers(g.ID.String()) +
		"?limit=" + strconv.FormatInt(int64(limit), decimalBase)

	if after != nil {
		endpoint += "&after=" + after.String()
	}

	var members []GuildMember

	err := s.Interface.FetchJJ(s, http.MethodGet, endpoint, nil, nil, &members)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch guild members: %w", err)
	}

	return members, nil
}

// Ban bans a user from the guild. Requires the BAN_MEMBERS permission.
func (g *Guild) Ban(s *Session, userID UserID, reason *string) error {
	endpoint := EndpointGuildBan(g.ID.String(), userID.String())

	err := s.Interface.FetchJJ(s, http.MethodPut, endpoint, nil, auditLogHeaders(reason), nil)
	if err != nil {
		return fmt.Errorf("failed to ban user: %w", err)
	}

	return nil
}

// Unban removes a guild ban. Requires the BAN_MEMBERS permission.
func (g *Guild) Unban(s *Session, userID UserID, reason *string) error {
	endpoint := EndpointGuildBan(g.ID.String(), userID.String())

	err := s.Interface.FetchJJ(s, http.MethodDelete, endpoint, nil, auditLogHeaders(reason), nil)
	if err != nil {
		return fmt.Errorf("failed to unban user: %w", err)
	}

	return nil
}

// Prune kicks members that have been inactive for a number of days.
// Requires the KICK_MEMBERS permission.
func (g *Guild) Prune(s *Session, params GuildPruneParam, reason *string) (int32, error) {
	var response struct {
		Pruned int32 `json:"pruned"`
	}

	err := s.Interface.FetchJJ(s, http.MethodPost, EndpointGuildPrune(g.ID.String()), params, auditLogHeaders(reason), &response)
	if err != nil {
		return 0, fmt.Errorf("failed to prune guild: %w", err)
	}

	return response.Pruned, nil
}

// Integrations returns the integrations of the guild. Requires the MANAGE_GUILD permission.
func (g *Guild) Integrations(s *Session) ([]Integration, error) {
	var integrations []Integration

	err := s.Interface.FetchJJ(s, http.MethodGet, EndpointGuildIntegrations(g.ID.String()), nil, nil, &integrations)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch guild integrations: %w", err)
	}

	return integrations, nil
}

// Delete removes the integration from its guild. Requires the MANAGE_GUILD permission.
func (i *Integration) Delete(s *Session, reason *string) error {
	if i.GuildID == nil {
		return fmt.Errorf("%w: integration does not belong to a guild", ErrInvalidArgument)
	}

	endpoint := EndpointGuildIntegration(i.GuildID.String(), i.ID.String())

	err := s.Interface.FetchJJ(s, http.MethodDelete, endpoint, nil, auditLogHeaders(reason), nil)
	if err != nil {
		return fmt.Errorf("failed to delete integration: %w", err)
	}

	return nil
}

// FetchEmojis returns the emojis of the guild.
func (g *Guild) FetchEmojis(s *Session) ([]Emoji, error) {
	var emojis []Emoji

	err := s.Interface.FetchJJ(s, http.MethodGet, EndpointGuildEmojis(g.ID.String()), nil, nil, &emojis)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch guild emojis: %w", err)
	}

	return emojis, nil
}

// FetchStickers returns the stickers of the guild.
func (g *Guild) FetchStickers(s *Session) ([]Sticker, error) {
	var stickers []Sticker

	err := s.Interface.FetchJJ(s, http.MethodGet, EndpointGuildStickers(g.ID.String()), nil, nil, &stickers)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch guild stickers: %w", err)
	}

	return stickers, nil
}

// ScheduledEvents returns the scheduled events of the guild.
func (g *Guild) ScheduledEvents(s *Session, withUserCount bool) ([]ScheduledEvent, error) {
	return FetchScheduledEvents(s, g.ID, withUserCount)
}

// CreateScheduledEvent creates a scheduled event in the guild.
// Requires the MANAGE_EVENTS permission.
func (g *Guild) CreateScheduledEvent(s *Session, params ScheduledEventParams, reason *string) (*ScheduledEvent, error) {
	return CreateScheduledEvent(s, g.ID, params, reason)
}

// FetchChannel returns a channel by its id.
func FetchChannel(s *Session, channelID ChannelID) (*Channel, error) {
	var channel Channel

	err := s.Interface.FetchJJ(s, http.MethodGet, EndpointChannel(channelID.String()), nil, nil, &channel)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch channel: %w", err)
	}

	return &channel, nil
}

// Edit modifies the channel. Requires the MANAGE_CHANNELS permission.
func (c *Channel) Edit(s *Session, params ChannelParams, reason *string) error {
	err := s.Interface.FetchJJ(s, http.MethodPatch, EndpointChannel(c.ID.String()), params, auditLogHeaders(reason), c)
	if err != nil {
		return fmt.Errorf("failed to edit channel: %w", err)
	}

	return nil
}

// Delete deletes the channel, or closes it if it is a private message.
func (c *Channel) Delete(s *Session, reason *string) error {
	err := s.Interface.FetchJJ(s, http.MethodDelete, EndpointChannel(c.ID.String()), nil, auditLogHeaders(reason), nil)
	if err != nil {
		return fmt.Errorf("failed to delete channel: %w", err)
	}

	return nil
}

// Send sends a message to the channel.
func (c *Channel) Send(s *Session, params MessageParams) (*Message, error) {
	var message Message

	err := s.Interface.FetchJJ(s, http.MethodPost, EndpointChannelMessages(c.ID.String()), params, nil, &message)
	if err != nil {
		return nil, fmt.Errorf("failed to send message: %w", err)
	}

	return &message, nil
}

// CreateInvite creates an invite for the channel.
// Requires the CREATE_INSTANT_INVITE permission.
func (c *Channel) CreateInvite(s *Session, params InviteParams, reason *string) (*Invite, error) {
	var invite Invite

	err := s.Interface.FetchJJ(s, http.MethodPost, EndpointChannelInvites(c.ID.String()), params, auditLogHeaders(reason), &invite)
	if err != nil {
		return nil, fmt.Errorf("failed to create invite: %w", err)
	}

	return &invite, nil
}

// CreateWebhook creates a webhook for the channel.
// Requires the MANAGE_WEBHOOKS permission.
func (c *Channel) CreateWebhook(s *Session, params WebhookParam, reason *string) (*Webhook, error) {
	var webhook Webhook

	err := s.Interface.FetchJJ(s, http.MethodPost, EndpointChannelWebhooks(c.ID.String()), params, auditLogHeaders(reason), &webhook)
	if err != nil {
		return nil, fmt.Errorf("failed to create webhook: %w", err)
	}

	return &webhook, nil
}

// FetchMessage returns a message of a channel by its id.
func FetchMessage(s *Session, channelID ChannelID, messageID MessageID) (*Message, error) {
	var message Message

	err := s.Interface.FetchJJ(s, http.MethodGet, EndpointChannelMessage(channelID.String(), messageID.String()), nil, nil, &message)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch message: %w", err)
	}

	return &message, nil
}

// Edit modifies the message. Only the author may edit content.
func (m *Message) Edit(s *Session, params MessageParams) error {
	endpoint := EndpointChannelMessage(m.ChannelID.String(), m.ID.String())

	err := s.Interface.FetchJJ(s, http.MethodPatch, endpoint, params, nil, m)
	if err != nil {
		return fmt.Errorf("failed to edit message: %w", err)
	}

	return nil
}

// Delete deletes the message. Deleting another user's message requires the
// MANAGE_MESSAGES permission.
func (m *Message) Delete(s *Session, reason *string) error {
	endpoint := EndpointChannelMessage(m.ChannelID.String(), m.ID.String())

	err := s.Interface.FetchJJ(s, http.MethodDelete, endpoint, nil, auditLogHeaders(reason), nil)
	if err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}

	return nil
}

// FetchUser returns a user by their id.
func FetchUser(s *Session, userID UserID) (*User, error) {
	var user User

	err := s.Interface.FetchJJ(s, http.MethodGet, EndpointUser(userID.String()), nil, nil, &user)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}

	return &user, nil
}

// FetchCurrentUser returns the user the session is authorized as.
func FetchCurrentUser(s *Session) (*ClientUser, error) {
	var user ClientUser

	err := s.Interface.FetchJJ(s, http.MethodGet, EndpointUser("@me"), nil, nil, &user)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch current user: %w", err)
	}

	return &user, nil
}

// FetchAuthorizationInformation returns information about the current
// authorization.
func FetchAuthorizationInformation(s *Session) (*AuthorizationInformation, error) {
	var authorization AuthorizationInformation

	err := s.Interface.FetchJJ(s, http.MethodGet, EndpointOAuth2Me(), nil, nil, &authorization)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch authorization information: %w", err)
	}

	return &authorization, nil
}

// FetchInvite returns an invite by its code.
func FetchInvite(s *Session, code string, withCounts bool, scheduledEventID *ScheduledEventID) (*Invite, error) {
	endpoint := EndpointInvite(code) + "?with_counts=" + strconv.FormatBool(withCounts)

	if scheduledEventID != nil {
		endpoint += "&guild_scheduled_event_id=" + scheduledEventID.String()
	}

	var invite Invite

	err := s.Interface.FetchJJ(s, http.MethodGet, endpoint, nil, nil, &invite)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch invite: %w", err)
	}

	return &invite, nil
}

// FetchSticker returns a sticker by its id.
func FetchSticker(s *Session, stickerID StickerID) (*Sticker, error) {
	var sticker Sticker

	err := s.Interface.FetchJJ(s, http.MethodGet, EndpointSticker(stickerID.String()), nil, nil, &sticker)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sticker: %w", err)
	}

	return &sticker, nil
}

// FetchStickerPacks returns the sticker packs available to premium subscribers.
func FetchStickerPacks(s *Session) ([]StickerPack, error) {
	var response struct {
		StickerPacks []StickerPack `json:"sticker_packs"`
	}

	err := s.Interface.FetchJJ(s, http.MethodGet, EndpointStickerPacks(), nil, nil, &response)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sticker packs: %w", err)
	}

	return response.StickerPacks, nil
}

// Edit modifies the webhook. Requires the MANAGE_WEBHOOKS permission.
func (w *Webhook) Edit(s *Session, params WebhookParam, reason *string) error {
	err := s.Interface.FetchJJ(s, http.MethodPatch, EndpointWebhook(w.ID.String()), params, auditLogHeaders(reason), w)
	if err != nil {
		return fmt.Errorf("failed to edit webhook: %w", err)
	}

	return nil
}

// Delete deletes the webhook.
func (w *Webhook) Delete(s *Session, reason *string) error {
	err := s.Interface.FetchJJ(s, http.MethodDelete, EndpointWebhook(w.ID.String()), nil, auditLogHeaders(reason), nil)
	if err != nil {
		return fmt.Errorf("failed to delete webhook: %w", err)
	}

	return nil
}

// Send executes the webhook with its token.
func (w *Webhook) Send(s *Session, params WebhookMessageParams, wait bool) (*Message, error) {
	endpoint := EndpointWebhookToken(w.ID.String(), w.Token) + "?wait=" + strconv.FormatBool(wait)

	var message *Message

	if wait {
		message = &Message{}
	}

	err := s.Interface.FetchJJ(s, http.MethodPost, endpoint, params, nil, message)
	if err != nil {
		return nil, fmt.Errorf("failed to execute webhook: %w", err)
	}

	return message, nil
}

// FetchGateway returns the gateway url.
func FetchGateway(s *Session) (*GatewayResponse, error) {
	var gateway GatewayResponse

	err := s.Interface.FetchJJ(s, http.MethodGet, EndpointGateway(), nil, nil, &gateway)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch gateway: %w", err)
	}

	return &gateway, nil
}

// FetchGatewayBot returns the gateway url along with the recommended shard
// count and session start limits for the current bot.
func FetchGatewayBot(s *Session) (*GatewayBotResponse, error) {
	var gateway GatewayBotResponse

	err := s.Interface.FetchJJ(s, http.MethodGet, EndpointGatewayBot(), nil, nil, &gateway)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch gateway bot: %w", err)
	}

	return &gateway, nil
}
