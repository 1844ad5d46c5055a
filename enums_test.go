package discord

import (
	"testing"
)

func TestEnumResolvesNamesAndValues(t *testing.T) {
	colors := NewEnum("Color",
		Member("red", 1),
		Member("green", 2),
		Member("blue", 3),
	)

	if name := colors.NameOf(2); name != "green" {
		t.Fatalf("expected NameOf(2) to be green, got %q", name)
	}

	value, ok := colors.ValueOf("blue")
	if !ok || value != 3 {
		t.Fatalf("expected ValueOf(blue) to be 3, got %d (ok=%v)", value, ok)
	}

	if !colors.Contains(1) {
		t.Fatal("expected Contains(1) to be true")
	}

	if colors.Contains(4) {
		t.Fatal("expected Contains(4) to be false")
	}

	if colors.Len() != 3 {
		t.Fatalf("expected 3 members, got %d", colors.Len())
	}
}

func TestEnumUnknownValue(t *testing.T) {
	colors := NewEnum("Color", Member("red", 1))

	if name := colors.NameOf(99); name != "" {
		t.Fatalf("expected empty name for unknown value, got %q", name)
	}

	if _, ok := colors.ValueOf("magenta"); ok {
		t.Fatal("expected ValueOf(magenta) to miss")
	}
}

func TestEnumAliases(t *testing.T) {
	styles := NewEnum("Style",
		Member("primary", 1),
		Member("blurple", 1),
		Member("secondary", 2),
	)

	// The first declared name stays canonical.
	if name := styles.NameOf(1); name != "primary" {
		t.Fatalf("expected canonical name primary, got %q", name)
	}

	value, ok := styles.ValueOf("blurple")
	if !ok || value != 1 {
		t.Fatalf("expected alias blurple to resolve to 1, got %d (ok=%v)", value, ok)
	}

	// Aliases do not show up when iterating.
	if styles.Len() != 2 {
		t.Fatalf("expected 2 canonical members, got %d", styles.Len())
	}

	members := styles.Members()
	if members[0].Name != "primary" || members[1].Name != "secondary" {
		t.Fatalf("unexpected member order: %+v", members)
	}
}

func TestEnumMembersDeclarationOrder(t *testing.T) {
	days := NewEnum("Day",
		Member("wednesday", 3),
		Member("monday", 1),
		Member("tuesday", 2),
	)

	members := days.Members()

	expected := []string{"wednesday", "monday", "tuesday"}
	for i, name := range expected {
		if members[i].Name != name {
			t.Fatalf("expected member %d to be %q, got %q", i, name, members[i].Name)
		}
	}

	// Mutating the returned slice must not leak into the table.
	members[0].Name = "sunday"

	if days.Members()[0].Name != "wednesday" {
		t.Fatal("Members() must return a copy")
	}
}

func TestEnumDuplicateNamePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected duplicate member name to panic")
		}
	}()

	NewEnum("Broken",
		Member("one", 1),
		Member("one", 2),
	)
}

func TestEnumMustValue(t *testing.T) {
	colors := NewEnum("Color", Member("red", 1))

	if value := colors.MustValue("red"); value != 1 {
		t.Fatalf("expected MustValue(red) to be 1, got %d", value)
	}

	defer func() {
		if recover() == nil {
			t.Fatal("expected MustValue on unknown name to panic")
		}
	}()

	colors.MustValue("magenta")
}

func TestEnumTablesMatchConstants(t *testing.T) {
	if name := EventStatuses.NameOf(EventStatusActive); name != "active" {
		t.Fatalf("expected active, got %q", name)
	}

	// "cancelled" is declared as an alias of canceled.
	value, ok := EventStatuses.ValueOf("cancelled")
	if !ok || value != EventStatusCanceled {
		t.Fatalf("expected cancelled alias to resolve to %d, got %d (ok=%v)", EventStatusCanceled, value, ok)
	}

	if name := ScheduledEntityTypes.NameOf(ScheduledEntityTypeExternal); name != "external" {
		t.Fatalf("expected external, got %q", name)
	}

	if got := EventStatusScheduled.String(); got != "scheduled" {
		t.Fatalf("expected scheduled, got %q", got)
	}

	if got := EventStatus(42).String(); got != "42" {
		t.Fatalf("expected unknown status to render numerically, got %q", got)
	}

	value2, ok := ButtonStyles.ValueOf("blurple")
	if !ok || value2 != InteractionComponentStylePrimary {
		t.Fatalf("expected blurple to resolve to primary, got %d (ok=%v)", value2, ok)
	}

	if got := ActivityTypeGame.String(); got != "playing" {
		t.Fatalf("expected playing, got %q", got)
	}

	// "game" is declared as an alias of playing.
	value3, ok := ActivityTypes.ValueOf("game")
	if !ok || value3 != ActivityTypeGame {
		t.Fatalf("expected game alias to resolve to %d, got %d (ok=%v)", ActivityTypeGame, value3, ok)
	}
}
