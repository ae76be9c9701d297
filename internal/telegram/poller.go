// Package telegram runs the bot's transport: a long-polling loop over the
// Telegram Bot API that feeds incoming messages through the dispatcher.
// Updates are processed one at a time, so per-chat ordering holds without
// any locking around sessions.
package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"

	"github.com/itmo-abit/planbot/internal/bot"
	"github.com/itmo-abit/planbot/internal/config"
	"github.com/itmo-abit/planbot/internal/ctxutil"
	"github.com/itmo-abit/planbot/internal/logger"
	"github.com/itmo-abit/planbot/internal/metrics"
	"github.com/itmo-abit/planbot/internal/ratelimit"
	"github.com/itmo-abit/planbot/internal/sentry"
)

const apologyText = "Что-то пошло не так. Попробуй ещё раз чуть позже."

// sender is the slice of the Bot API the poller writes through.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Bot polls Telegram for updates and replies through the dispatcher.
type Bot struct {
	api        *tgbotapi.BotAPI
	out        sender
	dispatcher *bot.Dispatcher
	sessions   bot.SessionStore
	limiter    *ratelimit.PerChat
	log        *logger.Logger
	metrics    *metrics.Metrics
}

// New authorizes against the Bot API and builds the poller. limiter and
// metrics may be nil.
func New(token string, d *bot.Dispatcher, sessions bot.SessionStore, limiter *ratelimit.PerChat, log *logger.Logger, m *metrics.Metrics) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram authorize: %w", err)
	}
	log = log.WithModule("telegram")
	log.WithField("username", api.Self.UserName).Info("authorized")
	return &Bot{
		api:        api,
		out:        api,
		dispatcher: d,
		sessions:   sessions,
		limiter:    limiter,
		log:        log,
		metrics:    m,
	}, nil
}

// Run polls for updates until ctx is canceled.
func (b *Bot) Run(ctx context.Context) error {
	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = config.TelegramPollTimeout
	updates := b.api.GetUpdatesChan(cfg)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	msg := update.Message
	if msg == nil || msg.Chat == nil {
		b.record("other", "skipped")
		return
	}

	// Flooding chats are dropped silently; replying would only add load.
	if b.limiter != nil && !b.limiter.Allow(msg.Chat.ID) {
		b.record("message", "rate_limited")
		return
	}

	ctx, cancel := context.WithTimeout(ctx, config.UpdateProcessing)
	defer cancel()
	ctx = ctxutil.WithChatID(ctx, msg.Chat.ID)
	ctx = ctxutil.WithUpdateID(ctx, update.UpdateID)
	ctx = ctxutil.WithRequestID(ctx, uuid.NewString())

	kind := "message"
	text := msg.Text
	if msg.IsCommand() {
		kind = "command"
		text = commandText(msg.Command())
	}

	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("panic handling update: %v", r)
			b.log.WithError(err).ErrorContext(ctx, "update handler panicked")
			sentry.CaptureExceptionWithContext(ctx, err)
			b.record(kind, "panic")
			b.reply(ctx, msg.Chat.ID, apologyText)
		}
	}()

	sess, err := b.sessions.GetOrCreate(ctx, msg.Chat.ID)
	if err != nil {
		b.log.WithError(err).ErrorContext(ctx, "load session")
		b.record(kind, "error")
		b.reply(ctx, msg.Chat.ID, apologyText)
		return
	}

	answer := b.dispatcher.Dispatch(sess, text)

	if err := b.sessions.Save(ctx, msg.Chat.ID, sess); err != nil {
		// The reply is still valid; the session just falls back to its
		// previous state on the next message.
		b.log.WithError(err).WarnContext(ctx, "save session")
	}

	b.reply(ctx, msg.Chat.ID, answer)
	b.record(kind, "ok")
}

// commandText maps a bot command to the phrase the dispatcher understands.
// Unknown commands fall through to the out-of-domain reply.
func commandText(command string) string {
	switch command {
	case "start", "help":
		return "помощь"
	case "programs":
		return "программы"
	case "ai":
		return "искусственный интеллект"
	case "aiproduct":
		return "ai product"
	default:
		return "/" + command
	}
}

func (b *Bot) reply(ctx context.Context, chatID int64, text string) {
	if _, err := b.out.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		b.log.WithError(err).ErrorContext(ctx, "send reply")
	}
}

func (b *Bot) record(kind, status string) {
	if b.metrics == nil {
		return
	}
	b.metrics.RecordTelegramUpdate(kind, status)
}
