package notifier

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/gdg-garage/hotel-registration-api/internal/config"
	"github.com/gdg-garage/hotel-registration-api/internal/format"
	"github.com/gdg-garage/hotel-registration-api/internal/models"
	"github.com/gdg-garage/hotel-registration-api/internal/pricing"
)

type Action string

const (
	Created Action = "created"
	Updated Action = "updated"
	Deleted Action = "deleted"
)

type Notifier interface {
	NotifyRegistration(action Action, registration models.Registration, quote pricing.Quote) error
}

// MessageSender is the part of a discordgo session the notifier needs.
type MessageSender interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

type DiscordNotifier struct {
	session   MessageSender
	channelID string
	formatter *format.Formatter
}

// NewDiscordNotifier opens a bot session from the configuration.
func NewDiscordNotifier(cfg *config.Config, formatter *format.Formatter) (*DiscordNotifier, error) {
	if cfg.DiscordBotToken == "" {
		return nil, fmt.Errorf("discord bot token is empty")
	}
	session, err := discordgo.New("Bot " + cfg.DiscordBotToken)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	return NewDiscordNotifierWithSession(session, cfg.DiscordNotificationsChannelID, formatter), nil
}

func NewDiscordNotifierWithSession(session MessageSender, channelID string, formatter *format.Formatter) *DiscordNotifier {
	return &DiscordNotifier{
		session:   session,
		channelID: channelID,
		formatter: formatter,
	}
}

func (n *DiscordNotifier) NotifyRegistration(action Action, registration models.Registration, quote pricing.Quote) error {
	if n.session == nil {
		return fmt.Errorf("discord session is nil")
	}
	if n.channelID == "" {
		return fmt.Errorf("discord channel ID is empty")
	}

	_, err := n.session.ChannelMessageSend(n.channelID, n.message(action, registration, quote))
	if err != nil {
		log.Printf("Failed to send discord message: %v", err)
		return err
	}

	return nil
}

func (n *DiscordNotifier) message(action Action, r models.Registration, q pricing.Quote) string {
	title := "🛎️ **Registration Update**"
	if action == Deleted {
		title = "🗑️ **Registration Cancelled**"
	}

	room := "not selected"
	if r.Room != nil {
		room = fmt.Sprintf("%s (%s)", r.Room.Name, r.Room.ShortName)
	}

	wifi := "no"
	if r.WifiEnabled {
		wifi = n.formatter.Money(q.Wifi)
	}

	return fmt.Sprintf("%s\n**Guest:** %s <%s>\n**Status:** %s\n**Dates:** %s - %s (%d nights)\n**Guests:** %d adults, %d children\n**Room:** %s\n**Wi-Fi:** %s\n**Total:** %s",
		title,
		r.Owner.FullName(),
		r.Owner.Email,
		action,
		n.formatter.Date(r.CheckInDate),
		n.formatter.Date(r.CheckOutDate),
		q.Nights,
		r.NumberOfAdults,
		r.NumberOfChildren,
		room,
		wifi,
		n.formatter.Money(q.Total),
	)
}
