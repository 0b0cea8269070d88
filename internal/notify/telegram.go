package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"paradise/internal/config"
	"paradise/internal/domain"
)

const telegramAPIBase = "https://api.telegram.org"

// TelegramSender posts the lead card to a chat via the Bot API. A send that
// takes longer than the client timeout counts as a failure; no retries.
type TelegramSender struct {
	token   string
	chatID  string
	baseURL string
	client  *http.Client
}

func NewTelegramSender(cfg *config.Config) *TelegramSender {
	return &TelegramSender{
		token:   cfg.TelegramBotToken,
		chatID:  cfg.TelegramChatID,
		baseURL: telegramAPIBase,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *TelegramSender) Name() string { return "telegram" }

func (s *TelegramSender) Send(ctx context.Context, lead *domain.Lead) error {
	if s.token == "" || s.chatID == "" {
		return fmt.Errorf("telegram not configured")
	}

	payload, err := json.Marshal(map[string]string{
		"chat_id":    s.chatID,
		"text":       telegramBody(lead),
		"parse_mode": "Markdown",
	})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", s.baseURL, s.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("telegram send: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("telegram api: status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}

func telegramBody(lead *domain.Lead) string {
	email := lead.Email
	if email == "" {
		email = "Не указан"
	}
	quantity := "Не указано"
	if lead.Quantity != nil {
		quantity = fmt.Sprintf("%d", *lead.Quantity)
	}
	message := "Без сообщения"
	if lead.Message != "" {
		message = lead.Message
		if len([]rune(message)) > 200 {
			message = string([]rune(message)[:200]) + "..."
		}
	}
	file := "❌ Нет"
	if lead.FilePath != "" {
		file = "✅ Да"
	}

	return fmt.Sprintf(`🆕 *Новая заявка!*

👤 *Клиент:* %s
🏢 *Компания:* %s
📞 *Телефон:* %s
📧 *Email:* %s

📦 *Продукт:* %s
🔢 *Количество:* %s

💬 *Сообщение:*
%s

🌐 *Язык:* %s
📁 *Файл:* %s
🕐 *Время:* %s
`,
		lead.Name,
		lead.Company,
		lead.Phone,
		email,
		lead.ProductType.DisplayName(domain.LangRU),
		quantity,
		message,
		strings.ToUpper(lead.Language),
		file,
		lead.CreatedAt.Format("02.01.2006 15:04"),
	)
}
