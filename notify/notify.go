package notify

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"rando-scraper/models"
)

// TelegramNotifier reports finished scrape runs to a Telegram chat. A nil
// notifier is valid and ignores every call, so callers don't need to guard
// the unconfigured case.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegramNotifier creates a notifier from the RANDO_TG_TOKEN and
// RANDO_TG_CHAT environment variables. It returns nil without error when no
// token is set.
func NewTelegramNotifier() (*TelegramNotifier, error) {
	token := os.Getenv("RANDO_TG_TOKEN")
	if token == "" {
		return nil, nil
	}

	chatStr := os.Getenv("RANDO_TG_CHAT")
	chatID, err := strconv.ParseInt(chatStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid RANDO_TG_CHAT %q: %w", chatStr, err)
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize bot: %w", err)
	}
	log.Printf("Telegram notifications authorized on account %s\n", bot.Self.UserName)

	return &TelegramNotifier{bot: bot, chatID: chatID}, nil
}

// NotifyRun sends the summary of a finished run. Send failures are logged,
// never returned: notification must not affect the run's outcome.
func (n *TelegramNotifier) NotifyRun(summary *models.RunSummary) {
	if n == nil {
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, formatSummary(summary))
	if _, err := n.bot.Send(msg); err != nil {
		log.Printf("Warning: Failed to send Telegram notification: %v\n", err)
	}
}

// formatSummary renders the run report sent to the chat.
func formatSummary(summary *models.RunSummary) string {
	icon := "✅"
	if summary.Status != "completed" {
		icon = "❌"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s Scrape %s\n\n", icon, summary.Status))
	sb.WriteString(fmt.Sprintf("🥾 Hikes stored: %d\n", summary.Stored))
	sb.WriteString(fmt.Sprintf("📄 Pages visited: %d\n", summary.PagesVisited))
	sb.WriteString(fmt.Sprintf("🔗 Links found: %d\n", summary.URLsFound))
	if summary.Skipped() > 0 {
		sb.WriteString(fmt.Sprintf("⚠️ Skipped: %d (%d parse, %d fetch, %d robots)\n",
			summary.Skipped(), summary.SkippedParse, summary.SkippedTransport, summary.SkippedRobots))
	}
	sb.WriteString(fmt.Sprintf("⏱ Duration: %s", summary.Duration().Round(time.Second)))
	return sb.String()
}
