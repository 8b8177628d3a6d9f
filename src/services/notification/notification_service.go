package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"go-order-relay/src/config"
	"go-order-relay/src/infrastructure/log"
	"go-order-relay/src/services/order/domain"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

const parseModeMarkdownV2 = "MarkdownV2"

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

type getMeResponse struct {
	OK     bool           `json:"ok"`
	Result map[string]any `json:"result"`
}

// TelegramNotifier delivers order and error alerts to one chat.
type TelegramNotifier struct {
	apiURL   string
	chatID   string
	botToken string
	timeout  time.Duration
	logger   log.Logger
	now      func() time.Time
}

func NewTelegramNotifier(cfg *config.Config, logger log.Logger) *TelegramNotifier {
	return &TelegramNotifier{
		apiURL:   strings.TrimRight(cfg.TelegramAPIURL, "/") + "/bot" + cfg.TelegramBotToken,
		chatID:   cfg.TelegramChatID,
		botToken: cfg.TelegramBotToken,
		timeout:  cfg.OutboundTimeout,
		logger:   logger,
		now:      time.Now,
	}
}

func (n *TelegramNotifier) Configured() bool {
	return n.botToken != "" && n.botToken != config.BotTokenPlaceholder
}

// NotifyNewOrder sends the owner a summary of a freshly placed order.
func (n *TelegramNotifier) NotifyNewOrder(ctx context.Context, order domain.Order) domain.NotificationOutcome {
	if err := n.sendMessage(ctx, "Failed to send notification", FormatOrderMessage(order)); err != nil {
		n.logger.Exception(ctx, "Failed to send Telegram order notification", err)
		return domain.NotificationOutcome{Success: false, Error: err.Error()}
	}

	n.logger.Info(ctx, "Order notification sent successfully to Telegram")
	return domain.NotificationOutcome{Success: true, Message: "Notification sent successfully"}
}

// NotifyError alerts the owner about a processing failure; order may be nil.
func (n *TelegramNotifier) NotifyError(ctx context.Context, message string, order *domain.Order) domain.NotificationOutcome {
	if err := n.sendMessage(ctx, "Failed to send error notification", FormatErrorMessage(message, order, n.now())); err != nil {
		n.logger.Exception(ctx, "Failed to send Telegram error notification", err)
		return domain.NotificationOutcome{Success: false, Error: err.Error()}
	}

	n.logger.Info(ctx, "Error notification sent successfully to Telegram")
	return domain.NotificationOutcome{Success: true, Message: "Error notification sent successfully"}
}

// TestConnection calls getMe and returns the bot's identity.
func (n *TelegramNotifier) TestConnection(ctx context.Context) domain.ConnectionOutcome {
	timeout, err := n.timeoutFor(ctx)
	if err != nil {
		return domain.ConnectionOutcome{Success: false, Error: "Connection test failed: " + err.Error()}
	}

	code, body, errs := fiber.Get(n.apiURL + "/getMe").Timeout(timeout).Bytes()
	if len(errs) > 0 {
		err := errors.Join(errs...)
		n.logger.Exception(ctx, "Failed to test Telegram connection", err)
		return domain.ConnectionOutcome{Success: false, Error: "Connection test failed: " + err.Error()}
	}
	if code != fiber.StatusOK {
		return domain.ConnectionOutcome{Success: false, Error: "Telegram API error: " + strconv.Itoa(code)}
	}

	var me getMeResponse
	if err := json.Unmarshal(body, &me); err != nil {
		return domain.ConnectionOutcome{Success: false, Error: "Connection test failed: " + err.Error()}
	}
	return domain.ConnectionOutcome{
		Success: true,
		Message: "Telegram bot connection successful",
		BotInfo: me.Result,
	}
}

func (n *TelegramNotifier) sendMessage(ctx context.Context, failurePrefix, text string) error {
	timeout, err := n.timeoutFor(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", failurePrefix, err)
	}

	agent := fiber.Post(n.apiURL + "/sendMessage")
	agent.JSON(sendMessageRequest{ChatID: n.chatID, Text: text, ParseMode: parseModeMarkdownV2})
	code, _, errs := agent.Timeout(timeout).Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("%s: %w", failurePrefix, errors.Join(errs...))
	}
	if code != fiber.StatusOK {
		return fmt.Errorf("Telegram API error: %d", code)
	}
	return nil
}

// timeoutFor bounds a call by both the notifier timeout and the context deadline.
func (n *TelegramNotifier) timeoutFor(ctx context.Context) (time.Duration, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	timeout := n.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout || timeout <= 0 {
			timeout = remaining
		}
	}
	if timeout <= 0 {
		return 0, context.DeadlineExceeded
	}
	return timeout, nil
}
