package main

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"
	discord "github.com/mccoderpy/discord-go"
	"github.com/rs/zerolog"
)

// Lists the scheduled events of a guild and pushes the start of the first
// one back by an hour.
//
// Expects DISCORD_TOKEN and DISCORD_GUILD_ID in the environment or a .env file.
func main() {
	_ = godotenv.Load()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()

	token := os.Getenv("DISCORD_TOKEN")
	if token == "" {
		logger.Fatal().Msg("DISCORD_TOKEN is not set")
	}

	rawGuildID := os.Getenv("DISCORD_GUILD_ID")
	if rawGuildID == "" {
		logger.Fatal().Msg("DISCORD_GUILD_ID is not set")
	}

	var guildID discord.GuildID

	err := guildID.UnmarshalJSON([]byte(rawGuildID))
	if err != nil || guildID.IsNil() {
		logger.Fatal().Err(err).Msg("DISCORD_GUILD_ID is not a valid snowflake")
	}

	session := discord.NewSession(context.Background(), "Bot "+token, discord.NewBaseInterface())

	events, err := discord.FetchScheduledEvents(session, guildID, true)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to fetch scheduled events")
	}

	for _, event := range events {
		logger.Info().
			Str("name", event.Name).
			Str("status", event.Status.String()).
			Str("entity_type", event.EntityType.String()).
			Int32("user_count", event.UserCount).
			Msg("Scheduled event")
	}

	if len(events) == 0 {
		logger.Info().Msg("No scheduled events in guild")

		return
	}

	event := events[0]

	startTime := time.Now().UTC().Add(time.Hour)
	reason := "Pushed back by the event example"

	_, err = event.Edit(session, discord.ScheduledEventParams{
		StartTime: &startTime,
	}, &reason)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to edit scheduled event")
	}

	logger.Info().
		Str("name", event.Name).
		Time("start_time", startTime).
		Msg("Rescheduled event")
}
