package discord

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
)

func testInterface(serverURL string) RESTInterface {
	return NewInterface(&http.Client{Timeout: 5 * time.Second}, serverURL, APIVersion, UserAgent)
}

func TestBaseInterfaceRoutesRequests(t *testing.T) {
	var request *http.Request
	var body []byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		request = r.Clone(context.Background())
		body, _ = io.ReadAll(r.Body)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"300","name":"Fair","status":1,"entity_type":3,"scheduled_start_time":"2030-01-01T00:00:00Z"}`))
	}))
	defer server.Close()

	session := NewSession(context.Background(), "Bot token", testInterface(server.URL))

	var event ScheduledEvent

	err := session.Interface.FetchJJ(session, http.MethodPatch, "/guilds/200/scheduled-events/300", map[string]interface{}{
		"name": "Fair",
	}, http.Header{AuditLogReasonHeader: []string{"renamed"}}, &event)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	if request.URL.Path != "/api/"+APIVersion+"/guilds/200/scheduled-events/300" {
		t.Fatalf("unexpected path %s", request.URL.Path)
	}

	if request.Method != http.MethodPatch {
		t.Fatalf("expected PATCH, got %s", request.Method)
	}

	if got := request.Header.Get("Authorization"); got != "Bot token" {
		t.Fatalf("expected authorization header, got %q", got)
	}

	if got := request.Header.Get(AuditLogReasonHeader); got != "renamed" {
		t.Fatalf("expected audit log reason header, got %q", got)
	}

	if got := request.Header.Get("Content-Type"); got != "application/json" {
		t.Fatalf("expected json content type, got %q", got)
	}

	var payload map[string]interface{}
	if err := jsoniter.Unmarshal(body, &payload); err != nil || payload["name"] != "Fair" {
		t.Fatalf("unexpected request body %s (%v)", body, err)
	}

	if event.Name != "Fair" || event.EntityType != ScheduledEntityTypeExternal {
		t.Fatalf("unexpected response decode: %+v", event)
	}
}

func TestBaseInterfaceQueryString(t *testing.T) {
	var query string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery

		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	session := NewSession(context.Background(), "Bot token", testInterface(server.URL))

	var events []ScheduledEvent

	err := session.Interface.FetchJJ(session, http.MethodGet, "/guilds/200/scheduled-events?with_user_count=true", nil, nil, &events)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	if query != "with_user_count=true" {
		t.Fatalf("unexpected query %q", query)
	}
}

func TestBaseInterfaceUnauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"401: Unauthorized","code":0}`))
	}))
	defer server.Close()

	session := NewSession(context.Background(), "Bot invalid", testInterface(server.URL))

	_, err := session.Interface.Fetch(session, http.MethodGet, "/users/@me", "", nil, nil)
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestBaseInterfaceRestError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"Missing Permissions","code":50013}`))
	}))
	defer server.Close()

	session := NewSession(context.Background(), "Bot token", testInterface(server.URL))

	err := session.Interface.FetchJJ(session, http.MethodDelete, "/guilds/200/scheduled-events/300", nil, nil, nil)

	var restErr *RestError
	if !errors.As(err, &restErr) {
		t.Fatalf("expected RestError, got %v", err)
	}

	if restErr.Message.Message != "Missing Permissions" || restErr.Message.Code != 50013 {
		t.Fatalf("unexpected error message: %+v", restErr.Message)
	}
}

func TestFetchAuthorizationInformation(t *testing.T) {
	ri := &recordingInterface{
		responses: [][]byte{[]byte(`{"application":{"id":"2"},"user":{"id":"1"},"scopes":["identify","guilds"],"expires":"2030-01-01T00:00:00Z"}`)},
	}

	authorization, err := FetchAuthorizationInformation(NewSession(context.Background(), "Bearer token", ri))
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}

	if ri.endpoint != "/oauth2/@me" {
		t.Fatalf("unexpected endpoint %s", ri.endpoint)
	}

	if len(authorization.Scopes) != 2 || authorization.Scopes[0] != "identify" {
		t.Fatalf("unexpected scopes %v", authorization.Scopes)
	}

	if expires, err := authorization.Expires.Time(); err != nil || expires.Year() != 2030 {
		t.Fatalf("unexpected expiry %v (%v)", authorization.Expires, err)
	}
}

func TestBaseInterfaceNoContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	session := NewSession(context.Background(), "Bot token", testInterface(server.URL))

	err := session.Interface.FetchJJ(session, http.MethodDelete, "/guilds/200/scheduled-events/300", nil, nil, nil)
	if err != nil {
		t.Fatalf("expected no error for 204, got %v", err)
	}
}
