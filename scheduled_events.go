package discord

import (
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// scheduled_events.go contains the structures and operations for guild scheduled events.

// EventStatus represents the status of an event.
type EventStatus uint16

const (
	EventStatusScheduled EventStatus = 1 + iota
	EventStatusActive
	EventStatusCompleted
	EventStatusCanceled
)

var EventStatuses = NewEnum("EventStatus",
	Member("scheduled", EventStatusScheduled),
	Member("active", EventStatusActive),
	Member("completed", EventStatusCompleted),
	Member("canceled", EventStatusCanceled),
	Member("cancelled", EventStatusCanceled),
)

func (s EventStatus) String() string {
	if name := EventStatuses.NameOf(s); name != "" {
		return name
	}

	return strconv.Itoa(int(s))
}

// ScheduledEntityType represents the type of event.
type ScheduledEntityType uint16

const (
	ScheduledEntityTypeStage ScheduledEntityType = 1 + iota
	ScheduledEntityTypeVoice
	ScheduledEntityTypeExternal
)

var ScheduledEntityTypes = NewEnum("EventEntityType",
	Member("stage", ScheduledEntityTypeStage),
	Member("voice", ScheduledEntityTypeVoice),
	Member("external", ScheduledEntityTypeExternal),
)

func (t ScheduledEntityType) String() string {
	if name := ScheduledEntityTypes.NameOf(t); name != "" {
		return name
	}

	return strconv.Itoa(int(t))
}

// ScheduledEvent represents an scheduled event.
type ScheduledEvent struct {
	ChannelID          *ChannelID               `json:"channel_id,omitempty"`
	CreatorID          *UserID                  `json:"creator_id,omitempty"`
	Creator            *User                    `json:"creator,omitempty"`
	EntityMetadata     *EventMetadata           `json:"entity_metadata,omitempty"`
	EntityID           *Snowflake               `json:"entity_id,omitempty"`
	ScheduledEndTime   *Timestamp               `json:"scheduled_end_time"`
	ScheduledStartTime Timestamp                `json:"scheduled_start_time"`
	Description        string                   `json:"description,omitempty"`
	Name               string                   `json:"name"`
	Image              string                   `json:"image,omitempty"`
	ID                 ScheduledEventID         `json:"id"`
	GuildID            GuildID                  `json:"guild_id"`
	UserCount          int32                    `json:"user_count,omitempty"`
	Status             EventStatus              `json:"status"`
	EntityType         ScheduledEntityType      `json:"entity_type"`
	PrivacyLevel       StageChannelPrivacyLevel `json:"privacy_level"`
}

// EventMetadata contains extra information about a scheduled event.
type EventMetadata struct {
	Location string `json:"location,omitempty"`
}

// Location returns the location of an external event, or an empty string.
func (ev *ScheduledEvent) Location() string {
	if ev.EntityMetadata == nil {
		return ""
	}

	return ev.EntityMetadata.Location
}

// ScheduledEventUser represents a user subscribed to an event.
type ScheduledEventUser struct {
	Member  *GuildMember     `json:"member,omitempty"`
	User    User             `json:"user"`
	EventID ScheduledEventID `json:"guild_scheduled_event_id"`
}

// ScheduledEventParams represents the optional arguments to create or modify
// a scheduled event. Nil fields are left untouched.
type ScheduledEventParams struct {
	Name         *string
	Description  *string
	Channel      *Channel
	Location     *string
	StartTime    *time.Time
	EndTime      *time.Time
	EntityType   *ScheduledEntityType
	Status       *EventStatus
	PrivacyLevel *StageChannelPrivacyLevel
	CoverImage   []byte
}

const (
	eventNameMaxLength        = 100
	eventLocationMaxLength    = 100
	eventDescriptionMaxLength = 1000

	eventUsersPageLimit = 100
)

// buildEventFields validates params against the current state of the event
// and returns the wire fields for a modify request. The zero ScheduledEvent
// is the "current state" when creating.
func (ev *ScheduledEvent) buildEventFields(params ScheduledEventParams) (map[string]interface{}, error) {
	fields := make(map[string]interface{})

	entityType := ev.EntityType

	if params.EntityType != nil {
		entityType = *params.EntityType

		if !ScheduledEntityTypes.Contains(entityType) {
			return nil, fmt.Errorf("%w: %d is not a valid entity type", ErrInvalidArgument, entityType)
		}

		if entityType == ScheduledEntityTypeExternal && ev.Location() == "" && params.Location == nil {
			return nil, fmt.Errorf("%w: location must be provided if the entity type is external", ErrInvalidArgument)
		}

		fields["entity_type"] = entityType
	}

	if params.Location != nil {
		location := *params.Location

		if len(location) < 1 || len(location) > eventLocationMaxLength {
			return nil, fmt.Errorf("%w: the length of the location must be between 1 and %d characters long; got %d",
				ErrInvalidArgument, eventLocationMaxLength, len(location))
		}

		// A location always makes the event external.
		if entityType != ScheduledEntityTypeExternal {
			entityType = ScheduledEntityTypeExternal
			fields["entity_type"] = entityType
		}

		fields["entity_metadata"] = EventMetadata{Location: location}
		fields["channel_id"] = nil
	}

	if params.Channel != nil {
		channel := params.Channel

		if channel.Type != ChannelTypeGuildVoice && channel.Type != ChannelTypeGuildStageVoice {
			return nil, fmt.Errorf("%w: the channel must be a stage or voice channel, not %s",
				ErrInvalidArgument, channel.Type)
		}

		if entityType == ScheduledEntityTypeExternal {
			if channel.Type == ChannelTypeGuildStageVoice {
				entityType = ScheduledEntityTypeStage
			} else {
				entityType = ScheduledEntityTypeVoice
			}

			fields["entity_type"] = entityType
		}

		fields["channel_id"] = channel.ID
		fields["entity_metadata"] = nil
	}

	if entityType != ScheduledEntityTypeExternal && params.Channel == nil &&
		(ev.ChannelID == nil || ev.ChannelID.IsNil()) {
		return nil, fmt.Errorf("%w: channel must be provided if the entity type is stage or voice", ErrInvalidArgument)
	}

	if params.Name != nil {
		if len(*params.Name) < 1 || len(*params.Name) > eventNameMaxLength {
			return nil, fmt.Errorf("%w: the length of the name must be between 1 and %d characters long; got %d",
				ErrInvalidArgument, eventNameMaxLength, len(*params.Name))
		}

		fields["name"] = *params.Name
	}

	if params.Description != nil {
		if len(*params.Description) < 1 || len(*params.Description) > eventDescriptionMaxLength {
			return nil, fmt.Errorf("%w: the length of the description must be between 1 and %d characters long; got %d",
				ErrInvalidArgument, eventDescriptionMaxLength, len(*params.Description))
		}

		fields["description"] = *params.Description
	}

	now := time.Now().UTC()

	var endTime time.Time

	if ev.ScheduledEndTime != nil {
		endTime, _ = ev.ScheduledEndTime.Time()
	}

	if params.EndTime != nil {
		if params.EndTime.Before(now) {
			return nil, fmt.Errorf("%w: the end time can not be in the past", ErrInvalidArgument)
		}

		endTime = *params.EndTime
		fields["scheduled_end_time"] = NewTimestamp(endTime)
	}

	if entityType == ScheduledEntityTypeExternal && endTime.IsZero() {
		return nil, fmt.Errorf("%w: an end time is required for external events", ErrInvalidArgument)
	}

	startTime, _ := ev.ScheduledStartTime.Time()

	if params.StartTime != nil {
		if params.StartTime.Before(now) {
			return nil, fmt.Errorf("%w: the start time can not be in the past", ErrInvalidArgument)
		}

		startTime = *params.StartTime
		fields["scheduled_start_time"] = NewTimestamp(startTime)
	}

	if !endTime.IsZero() && startTime.After(endTime) {
		return nil, fmt.Errorf("%w: the start time can not be after the end time", ErrInvalidArgument)
	}

	if params.Status != nil {
		status := *params.Status

		switch ev.Status {
		case EventStatusCompleted, EventStatusCanceled:
			return nil, fmt.Errorf("%w: the status of a completed or canceled event can not be changed", ErrInvalidArgument)
		case EventStatusActive:
			if status != EventStatusCompleted {
				return nil, fmt.Errorf("%w: the status of an active event can only be changed to completed", ErrInvalidArgument)
			}
		case EventStatusScheduled:
			if status != EventStatusActive && status != EventStatusCanceled {
				return nil, fmt.Errorf("%w: the status of a scheduled event can only be changed to active or canceled", ErrInvalidArgument)
			}
		}

		fields["status"] = status
	}

	if params.PrivacyLevel != nil {
		fields["privacy_level"] = *params.PrivacyLevel
	}

	if params.CoverImage != nil {
		image, err := ImageData(params.CoverImage)
		if err != nil {
			return nil, err
		}

		fields["image"] = image
	}

	return fields, nil
}

// Edit modifies the event. Requires the MANAGE_EVENTS permission. The reason,
// if set, shows up in the audit log. On success the receiver is refreshed
// from the returned payload.
func (ev *ScheduledEvent) Edit(s *Session, params ScheduledEventParams, reason *string) (*ScheduledEvent, error) {
	fields, err := ev.buildEventFields(params)
	if err != nil {
		return nil, err
	}

	endpoint := EndpointGuildScheduledEvent(ev.GuildID.String(), ev.ID.String())

	headers := http.Header{}

	if reason != nil {
		headers.Set(AuditLogReasonHeader, *reason)
	}

	var updated ScheduledEvent

	err = s.Interface.FetchJJ(s, http.MethodPatch, endpoint, fields, headers, &updated)
	if err != nil {
		return nil, fmt.Errorf("failed to edit scheduled event: %w", err)
	}

	*ev = updated

	return ev, nil
}

// Delete deletes the event. Requires the MANAGE_EVENTS permission.
func (ev *ScheduledEvent) Delete(s *Session, reason *string) error {
	endpoint := EndpointGuildScheduledEvent(ev.GuildID.String(), ev.ID.String())

	headers := http.Header{}

	if reason != nil {
		headers.Set(AuditLogReasonHeader, *reason)
	}

	err := s.Interface.FetchJJ(s, http.MethodDelete, endpoint, nil, headers, nil)
	if err != nil {
		return fmt.Errorf("failed to delete scheduled event: %w", err)
	}

	return nil
}

// Users returns the users subscribed to the event, requesting pages of 100
// until limit users have been gathered. A limit of 0 or below fetches every
// subscribed user. Pagination runs forward from after, or backward from
// before when set.
func (ev *ScheduledEvent) Users(s *Session, limit int32, before, after *UserID, withMember bool) ([]ScheduledEventUser, error) {
	var users []ScheduledEventUser

	for {
		pageLimit := int32(eventUsersPageLimit)
		if limit > 0 && limit-int32(len(users)) < pageLimit {
			pageLimit = limit - int32(len(users))
		}

		if pageLimit <= 0 {
			break
		}

		endpoint := EndpointGuildScheduledEventUsers(ev.GuildID.String(), ev.ID.String()) +
			"?limit=" + strconv.FormatInt(int64(pageLimit), decimalBase) +
			"&with_member=" + strconv.FormatBool(withMember)

		if before != nil {
			endpoint += "&before=" + before.String()
		} else if after != nil {
			endpoint += "&after=" + after.String()
		}

		var page []ScheduledEventUser

		err := s.Interface.FetchJJ(s, http.MethodGet, endpoint, nil, nil, &page)
		if err != nil {
			return users, fmt.Errorf("failed to fetch scheduled event users: %w", err)
		}

		if len(page) == 0 {
			break
		}

		users = append(users, page...)

		if int32(len(page)) < pageLimit {
			break
		}

		if before != nil {
			first := page[0].User.ID
			before = &first
		} else {
			last := page[len(page)-1].User.ID
			after = &last
		}
	}

	return users, nil
}

// CreateScheduledEvent creates a scheduled event in a guild. Requires the
// MANAGE_EVENTS permission.
func CreateScheduledEvent(s *Session, guildID GuildID, params ScheduledEventParams, reason *string) (*ScheduledEvent, error) {
	if params.Name == nil {
		return nil, fmt.Errorf("%w: a name is required to create a scheduled event", ErrInvalidArgument)
	}

	if params.StartTime == nil {
		return nil, fmt.Errorf("%w: a start time is required to create a scheduled event", ErrInvalidArgument)
	}

	if params.EntityType == nil {
		return nil, fmt.Errorf("%w: an entity type is required to create a scheduled event", ErrInvalidArgument)
	}

	fields, err := (&ScheduledEvent{EntityType: *params.EntityType}).buildEventFields(params)
	if err != nil {
		return nil, err
	}

	if params.PrivacyLevel == nil {
		fields["privacy_level"] = StageChannelPrivacyLevelGuildOnly
	}

	endpoint := EndpointGuildScheduledEvents(guildID.String())

	headers := http.Header{}

	if reason != nil {
		headers.Set(AuditLogReasonHeader, *reason)
	}

	var event ScheduledEvent

	err = s.Interface.FetchJJ(s, http.MethodPost, endpoint, fields, headers, &event)
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduled event: %w", err)
	}

	return &event, nil
}

// FetchScheduledEvents returns the scheduled events of a guild.
func FetchScheduledEvents(s *Session, guildID GuildID, withUserCount bool) ([]ScheduledEvent, error) {
	endpoint := EndpointGuildScheduledEvents(guildID.String()) +
		"?with_user_count=" + strconv.FormatBool(withUserCount)

	var events []ScheduledEvent

	err := s.Interface.FetchJJ(s, http.MethodGet, endpoint, nil, nil, &events)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch scheduled events: %w", err)
	}

	return events, nil
}

// FetchScheduledEvent returns a single scheduled event of a guild.
func FetchScheduledEvent(s *Session, guildID GuildID, eventID ScheduledEventID, withUserCount bool) (*ScheduledEvent, error) {
	endpoint := EndpointGuildScheduledEvent(guildID.String(), eventID.String()) +
		"?with_user_count=" + strconv.FormatBool(withUserCount)

	var event ScheduledEvent

	err := s.Interface.FetchJJ(s, http.MethodGet, endpoint, nil, nil, &event)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch scheduled event: %w", err)
	}

	return &event, nil
}
