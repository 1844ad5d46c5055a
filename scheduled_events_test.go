package discord

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
)

// recordingInterface captures the last request made through it and replies
// with a canned body.
type recordingInterface struct {
	method   string
	endpoint string
	payload  []byte
	headers  http.Header

	responses [][]byte
	calls     int
}

func (ri *recordingInterface) Fetch(s *Session, method, endpoint, contentType string, body []byte, headers http.Header) ([]byte, error) {
	ri.method = method
	ri.endpoint = endpoint
	ri.payload = body
	ri.headers = headers

	response := []byte("{}")
	if ri.calls < len(ri.responses) {
		response = ri.responses[ri.calls]
	}

	ri.calls++

	return response, nil
}

func (ri *recordingInterface) FetchBJ(s *Session, method, endpoint, contentType string, body []byte, headers http.Header, response interface{}) error {
	resp, err := ri.Fetch(s, method, endpoint, contentType, body, headers)
	if err != nil {
		return err
	}

	if response != nil {
		return jsoniter.Unmarshal(resp, response)
	}

	return nil
}

func (ri *recordingInterface) FetchJJ(s *Session, method, endpoint string, payload interface{}, headers http.Header, response interface{}) error {
	var body []byte
	var err error

	if payload != nil {
		body, err = jsoniter.Marshal(payload)
		if err != nil {
			return err
		}
	}

	return ri.FetchBJ(s, method, endpoint, "application/json", body, headers, response)
}

func (ri *recordingInterface) SetDebug(value bool) {}

func (ri *recordingInterface) fields(t *testing.T) map[string]interface{} {
	t.Helper()

	fields := make(map[string]interface{})

	if err := jsoniter.Unmarshal(ri.payload, &fields); err != nil {
		t.Fatalf("failed to decode request payload: %v", err)
	}

	return fields
}

func testSession(ri *recordingInterface) *Session {
	return NewSession(nil, "Bot token", ri)
}

func stagedEvent() *ScheduledEvent {
	channelID := ChannelID(400)

	return &ScheduledEvent{
		ID:                 ScheduledEventID(300),
		GuildID:            GuildID(200),
		ChannelID:          &channelID,
		Name:               "Movie night",
		Status:             EventStatusScheduled,
		EntityType:         ScheduledEntityTypeVoice,
		ScheduledStartTime: NewTimestamp(time.Now().UTC().Add(24 * time.Hour)),
	}
}

func externalEvent() *ScheduledEvent {
	ev := stagedEvent()
	ev.ChannelID = nil
	ev.EntityType = ScheduledEntityTypeExternal
	ev.EntityMetadata = &EventMetadata{Location: "Town hall"}

	end := NewTimestamp(time.Now().UTC().Add(48 * time.Hour))
	ev.ScheduledEndTime = &end

	return ev
}

func TestScheduledEventEditSendsPatch(t *testing.T) {
	ri := &recordingInterface{}
	ev := stagedEvent()

	name := "Film night"
	reason := "renamed"

	if _, err := ev.Edit(testSession(ri), ScheduledEventParams{Name: &name}, &reason); err != nil {
		t.Fatalf("edit failed: %v", err)
	}

	if ri.method != http.MethodPatch {
		t.Fatalf("expected PATCH, got %s", ri.method)
	}

	if ri.endpoint != "/guilds/200/scheduled-events/300" {
		t.Fatalf("unexpected endpoint %s", ri.endpoint)
	}

	if got := ri.headers.Get(AuditLogReasonHeader); got != "renamed" {
		t.Fatalf("expected audit log reason header, got %q", got)
	}

	fields := ri.fields(t)
	if fields["name"] != "Film night" {
		t.Fatalf("expected name field, got %v", fields)
	}
}

func TestScheduledEventEditRefreshesReceiver(t *testing.T) {
	ri := &recordingInterface{
		responses: [][]byte{[]byte(`{"id":"300","guild_id":"200","name":"Film night","status":1,"entity_type":2,"scheduled_start_time":"2030-01-01T00:00:00Z"}`)},
	}
	ev := stagedEvent()

	name := "Film night"

	updated, err := ev.Edit(testSession(ri), ScheduledEventParams{Name: &name}, nil)
	if err != nil {
		t.Fatalf("edit failed: %v", err)
	}

	if updated != ev {
		t.Fatal("expected the receiver to be returned")
	}

	if ev.Name != "Film night" {
		t.Fatalf("expected receiver to be refreshed, got %q", ev.Name)
	}
}

func TestScheduledEventEditNameLength(t *testing.T) {
	ri := &recordingInterface{}
	ev := stagedEvent()

	for _, name := range []string{"", strings.Repeat("a", 101)} {
		name := name
		if _, err := ev.Edit(testSession(ri), ScheduledEventParams{Name: &name}, nil); !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("expected ErrInvalidArgument for name of length %d, got %v", len(name), err)
		}
	}

	if ri.calls != 0 {
		t.Fatal("no request may be sent when validation fails")
	}

	long := strings.Repeat("a", 1001)
	if _, err := ev.Edit(testSession(ri), ScheduledEventParams{Description: &long}, nil); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for long description, got %v", err)
	}
}

func TestScheduledEventEditExternalRequiresLocation(t *testing.T) {
	ri := &recordingInterface{}
	ev := stagedEvent()

	external := ScheduledEntityTypeExternal

	_, err := ev.Edit(testSession(ri), ScheduledEventParams{EntityType: &external}, nil)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument without location, got %v", err)
	}
}

func TestScheduledEventEditExternalRequiresEndTime(t *testing.T) {
	ri := &recordingInterface{}
	ev := stagedEvent()

	// The location turns the voice event external, and external events must
	// carry an end time the event does not have yet.
	location := "Town hall"

	if _, err := ev.Edit(testSession(ri), ScheduledEventParams{Location: &location}, nil); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument without end time, got %v", err)
	}

	if ri.calls != 0 {
		t.Fatal("no request may be sent when validation fails")
	}
}

func TestScheduledEventEditLocationLength(t *testing.T) {
	ri := &recordingInterface{}
	ev := externalEvent()

	for _, location := range []string{"", strings.Repeat("a", 101)} {
		location := location
		if _, err := ev.Edit(testSession(ri), ScheduledEventParams{Location: &location}, nil); !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("expected ErrInvalidArgument for location of length %d, got %v", len(location), err)
		}
	}

	if ri.calls != 0 {
		t.Fatal("no request may be sent when validation fails")
	}
}

func TestScheduledEventEditLocationForcesExternal(t *testing.T) {
	ri := &recordingInterface{}
	ev := stagedEvent()

	location := "Town hall"
	end := time.Now().UTC().Add(48 * time.Hour)

	if _, err := ev.Edit(testSession(ri), ScheduledEventParams{Location: &location, EndTime: &end}, nil); err != nil {
		t.Fatalf("edit failed: %v", err)
	}

	fields := ri.fields(t)

	if fields["entity_type"] != float64(ScheduledEntityTypeExternal) {
		t.Fatalf("expected entity type to coerce to external, got %v", fields["entity_type"])
	}

	if fields["channel_id"] != nil {
		t.Fatalf("expected channel_id to clear, got %v", fields["channel_id"])
	}

	metadata, ok := fields["entity_metadata"].(map[string]interface{})
	if !ok || metadata["location"] != "Town hall" {
		t.Fatalf("expected entity metadata with location, got %v", fields["entity_metadata"])
	}
}

func TestScheduledEventEditChannelCoercesEntityType(t *testing.T) {
	ri := &recordingInterface{}
	ev := externalEvent()

	channel := &Channel{ID: ChannelID(500), Type: ChannelTypeGuildStageVoice}

	if _, err := ev.Edit(testSession(ri), ScheduledEventParams{Channel: channel}, nil); err != nil {
		t.Fatalf("edit failed: %v", err)
	}

	fields := ri.fields(t)

	if fields["entity_type"] != float64(ScheduledEntityTypeStage) {
		t.Fatalf("expected stage entity type, got %v", fields["entity_type"])
	}

	if fields["channel_id"] != "500" {
		t.Fatalf("expected channel_id 500, got %v", fields["channel_id"])
	}

	if fields["entity_metadata"] != nil {
		t.Fatalf("expected entity metadata to clear, got %v", fields["entity_metadata"])
	}
}

func TestScheduledEventEditRejectsTextChannel(t *testing.T) {
	ri := &recordingInterface{}
	ev := stagedEvent()

	channel := &Channel{ID: ChannelID(500), Type: ChannelTypeGuildText}

	if _, err := ev.Edit(testSession(ri), ScheduledEventParams{Channel: channel}, nil); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for text channel, got %v", err)
	}
}

func TestScheduledEventEditTimes(t *testing.T) {
	ri := &recordingInterface{}
	ev := stagedEvent()

	past := time.Now().UTC().Add(-time.Hour)

	if _, err := ev.Edit(testSession(ri), ScheduledEventParams{StartTime: &past}, nil); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for past start time, got %v", err)
	}

	if _, err := ev.Edit(testSession(ri), ScheduledEventParams{EndTime: &past}, nil); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for past end time, got %v", err)
	}

	start := time.Now().UTC().Add(48 * time.Hour)
	end := time.Now().UTC().Add(24 * time.Hour)

	if _, err := ev.Edit(testSession(ri), ScheduledEventParams{StartTime: &start, EndTime: &end}, nil); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument when start is after end, got %v", err)
	}
}

func TestScheduledEventEditStatusTransitions(t *testing.T) {
	ri := &recordingInterface{}

	active := EventStatusActive
	completed := EventStatusCompleted
	canceled := EventStatusCanceled
	scheduled := EventStatusScheduled

	// scheduled -> active is allowed.
	ev := stagedEvent()
	if _, err := ev.Edit(testSession(ri), ScheduledEventParams{Status: &active}, nil); err != nil {
		t.Fatalf("scheduled -> active failed: %v", err)
	}

	// scheduled -> canceled is allowed.
	ev = stagedEvent()
	if _, err := ev.Edit(testSession(ri), ScheduledEventParams{Status: &canceled}, nil); err != nil {
		t.Fatalf("scheduled -> canceled failed: %v", err)
	}

	// scheduled -> completed is not.
	ev = stagedEvent()
	if _, err := ev.Edit(testSession(ri), ScheduledEventParams{Status: &completed}, nil); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected scheduled -> completed to fail, got %v", err)
	}

	// active -> completed only.
	ev = stagedEvent()
	ev.Status = EventStatusActive
	if _, err := ev.Edit(testSession(ri), ScheduledEventParams{Status: &completed}, nil); err != nil {
		t.Fatalf("active -> completed failed: %v", err)
	}

	ev = stagedEvent()
	ev.Status = EventStatusActive
	if _, err := ev.Edit(testSession(ri), ScheduledEventParams{Status: &canceled}, nil); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected active -> canceled to fail, got %v", err)
	}

	// completed and canceled are terminal.
	for _, terminal := range []EventStatus{EventStatusCompleted, EventStatusCanceled} {
		ev = stagedEvent()
		ev.Status = terminal

		if _, err := ev.Edit(testSession(ri), ScheduledEventParams{Status: &scheduled}, nil); !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("expected transitions from %s to fail, got %v", terminal, err)
		}
	}
}

func TestScheduledEventEditCoverImage(t *testing.T) {
	ri := &recordingInterface{}
	ev := stagedEvent()

	// Minimal PNG header so content sniffing identifies the mime type.
	png := append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 16)...)

	if _, err := ev.Edit(testSession(ri), ScheduledEventParams{CoverImage: png}, nil); err != nil {
		t.Fatalf("edit failed: %v", err)
	}

	fields := ri.fields(t)

	image, ok := fields["image"].(string)
	if !ok || !strings.HasPrefix(image, "data:image/png;base64,") {
		t.Fatalf("expected png data uri, got %v", fields["image"])
	}

	ev = stagedEvent()

	if _, err := ev.Edit(testSession(ri), ScheduledEventParams{CoverImage: []byte("plain text")}, nil); !errors.Is(err, ErrUnsupportedImageType) {
		t.Fatalf("expected ErrUnsupportedImageType, got %v", err)
	}
}

func TestScheduledEventDelete(t *testing.T) {
	ri := &recordingInterface{}
	ev := stagedEvent()

	reason := "over"

	if err := ev.Delete(testSession(ri), &reason); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if ri.method != http.MethodDelete {
		t.Fatalf("expected DELETE, got %s", ri.method)
	}

	if ri.endpoint != "/guilds/200/scheduled-events/300" {
		t.Fatalf("unexpected endpoint %s", ri.endpoint)
	}

	if got := ri.headers.Get(AuditLogReasonHeader); got != "over" {
		t.Fatalf("expected audit log reason header, got %q", got)
	}
}

func TestScheduledEventUsersPagination(t *testing.T) {
	page := func(from, count int) []byte {
		users := make([]map[string]interface{}, 0, count)
		for i := 0; i < count; i++ {
			users = append(users, map[string]interface{}{
				"guild_scheduled_event_id": "300",
				"user":                     map[string]interface{}{"id": Snowflake(from + i).String()},
			})
		}

		b, _ := jsoniter.Marshal(users)

		return b
	}

	ri := &recordingInterface{
		responses: [][]byte{page(1, eventUsersPageLimit), page(101, 40)},
	}
	ev := stagedEvent()

	users, err := ev.Users(testSession(ri), 0, nil, nil, true)
	if err != nil {
		t.Fatalf("users failed: %v", err)
	}

	if len(users) != eventUsersPageLimit+40 {
		t.Fatalf("expected %d users, got %d", eventUsersPageLimit+40, len(users))
	}

	if ri.calls != 2 {
		t.Fatalf("expected 2 requests, got %d", ri.calls)
	}

	// The second request pages forward from the last user of the first page.
	if !strings.Contains(ri.endpoint, "after=100") {
		t.Fatalf("expected after=100 in second request, got %s", ri.endpoint)
	}

	if !strings.Contains(ri.endpoint, "with_member=true") {
		t.Fatalf("expected with_member=true, got %s", ri.endpoint)
	}
}

func TestScheduledEventUsersBackwardPagination(t *testing.T) {
	page := func(from, count int) []byte {
		users := make([]map[string]interface{}, 0, count)
		for i := 0; i < count; i++ {
			users = append(users, map[string]interface{}{
				"guild_scheduled_event_id": "300",
				"user":                     map[string]interface{}{"id": Snowflake(from + i).String()},
			})
		}

		b, _ := jsoniter.Marshal(users)

		return b
	}

	ri := &recordingInterface{
		responses: [][]byte{page(101, eventUsersPageLimit), page(61, 40)},
	}
	ev := stagedEvent()

	before := UserID(201)

	users, err := ev.Users(testSession(ri), 0, &before, nil, false)
	if err != nil {
		t.Fatalf("users failed: %v", err)
	}

	if len(users) != eventUsersPageLimit+40 {
		t.Fatalf("expected %d users, got %d", eventUsersPageLimit+40, len(users))
	}

	if ri.calls != 2 {
		t.Fatalf("expected 2 requests, got %d", ri.calls)
	}

	// The second request pages backward from the first user of the first page.
	if !strings.Contains(ri.endpoint, "before=101") {
		t.Fatalf("expected before=101 in second request, got %s", ri.endpoint)
	}
}

func TestScheduledEventUsersLimit(t *testing.T) {
	ri := &recordingInterface{
		responses: [][]byte{[]byte(`[{"guild_scheduled_event_id":"300","user":{"id":"1"}}]`)},
	}
	ev := stagedEvent()

	users, err := ev.Users(testSession(ri), 5, nil, nil, false)
	if err != nil {
		t.Fatalf("users failed: %v", err)
	}

	if len(users) != 1 {
		t.Fatalf("expected 1 user, got %d", len(users))
	}

	if !strings.Contains(ri.endpoint, "limit=5") {
		t.Fatalf("expected limit=5, got %s", ri.endpoint)
	}
}

func TestCreateScheduledEventValidation(t *testing.T) {
	ri := &recordingInterface{}
	s := testSession(ri)

	start := time.Now().UTC().Add(24 * time.Hour)
	end := time.Now().UTC().Add(48 * time.Hour)
	name := "Fair"
	location := "Town square"
	external := ScheduledEntityTypeExternal

	if _, err := CreateScheduledEvent(s, GuildID(200), ScheduledEventParams{}, nil); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument without name, got %v", err)
	}

	if _, err := CreateScheduledEvent(s, GuildID(200), ScheduledEventParams{
		Name:       &name,
		StartTime:  &start,
		EndTime:    &end,
		EntityType: &external,
		Location:   &location,
	}, nil); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if ri.method != http.MethodPost {
		t.Fatalf("expected POST, got %s", ri.method)
	}

	if ri.endpoint != "/guilds/200/scheduled-events" {
		t.Fatalf("unexpected endpoint %s", ri.endpoint)
	}

	fields := ri.fields(t)

	// Privacy level defaults to guild only when not given.
	if fields["privacy_level"] != float64(StageChannelPrivacyLevelGuildOnly) {
		t.Fatalf("expected guild only privacy level, got %v", fields["privacy_level"])
	}
}

func TestFetchScheduledEvent(t *testing.T) {
	ri := &recordingInterface{
		responses: [][]byte{[]byte(`{"id":"300","guild_id":"200","name":"Fair","status":2,"entity_type":3,"scheduled_start_time":"2030-01-01T00:00:00Z","user_count":12}`)},
	}

	ev, err := FetchScheduledEvent(testSession(ri), GuildID(200), ScheduledEventID(300), true)
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}

	if !strings.Contains(ri.endpoint, "with_user_count=true") {
		t.Fatalf("expected with_user_count=true, got %s", ri.endpoint)
	}

	if ev.Status != EventStatusActive || ev.EntityType != ScheduledEntityTypeExternal {
		t.Fatalf("unexpected event decode: %+v", ev)
	}

	if ev.UserCount != 12 {
		t.Fatalf("expected user count 12, got %d", ev.UserCount)
	}
}
