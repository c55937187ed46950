package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/feybrew/cauldron/internal/brewing"
	"github.com/feybrew/cauldron/internal/logger"
)

// Announcer posts brew results to a Discord channel so the table sees what
// came out of the cauldron. Optional; a nil *Announcer is safe to call.
type Announcer struct {
	session   *discordgo.Session
	channelID string
}

// NewAnnouncer opens a Discord session. Returns nil (no error) when token or
// channel is empty, which disables announcements.
func NewAnnouncer(token, channelID string) (*Announcer, error) {
	if token == "" || channelID == "" {
		return nil, nil
	}

	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}
	if err := session.Open(); err != nil {
		return nil, fmt.Errorf("failed to open discord session: %w", err)
	}
	return &Announcer{session: session, channelID: channelID}, nil
}

// AnnounceBrew posts a short summary of a committed brew. Failures are
// logged, never propagated; announcements must not affect the commit.
func (a *Announcer) AnnounceBrew(ctx context.Context, characterName string, result *brewing.BrewResult) {
	if a == nil {
		return
	}

	var msg string
	if result.Batch.SuccessCount > 0 {
		msg = fmt.Sprintf("%s brewed %dx %s: %s", characterName, result.Batch.SuccessCount, result.Category, result.Description)
	} else {
		msg = fmt.Sprintf("%s's %s attempt fizzled (%s)", characterName, result.Category, summarizeRolls(result))
	}

	if _, err := a.session.ChannelMessageSend(a.channelID, msg); err != nil {
		logger.FromContext(ctx).Warn("Failed to announce brew", "error", err)
	}
}

// Close shuts down the Discord session
func (a *Announcer) Close() error {
	if a == nil {
		return nil
	}
	return a.session.Close()
}

func summarizeRolls(result *brewing.BrewResult) string {
	parts := make([]string, 0, len(result.Batch.Outcomes))
	for _, o := range result.Batch.Outcomes {
		parts = append(parts, fmt.Sprintf("%d%+d=%d", o.Roll, o.Modifier, o.Total))
	}
	return strings.Join(parts, ", ")
}
