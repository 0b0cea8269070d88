package notify

import (
	"context"
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"

	"paradise/internal/config"
	"paradise/internal/domain"
)

// dialer matches the one gomail method the senders use, so tests can swap
// the SMTP connection out.
type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// AdminEmailSender mails the full lead card to the operators' inbox.
type AdminEmailSender struct {
	d     dialer
	from  string
	admin string
}

func NewAdminEmailSender(cfg *config.Config) *AdminEmailSender {
	return &AdminEmailSender{
		d:     gomail.NewDialer(cfg.EmailHost, cfg.EmailPort, cfg.EmailUser, cfg.EmailPassword),
		from:  cfg.DefaultFromEmail,
		admin: cfg.AdminEmail,
	}
}

func (s *AdminEmailSender) Name() string { return "admin-email" }

func (s *AdminEmailSender) Send(_ context.Context, lead *domain.Lead) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", s.admin)
	m.SetHeader("Subject", fmt.Sprintf("🆕 Новая заявка от %s", lead.Company))
	m.SetBody("text/plain", adminBody(lead))

	return s.d.DialAndSend(m)
}

func adminBody(lead *domain.Lead) string {
	email := lead.Email
	if email == "" {
		email = "Не указан"
	}
	quantity := "Не указано"
	if lead.Quantity != nil {
		quantity = fmt.Sprintf("%d", *lead.Quantity)
	}

	return fmt.Sprintf(`Новая заявка!

Контактное лицо: %s
Компания: %s
Телефон: %s
Email: %s

Тип продукта: %s
Количество: %s
Сообщение: %s

Язык: %s
Дата: %s
`,
		lead.Name,
		lead.Company,
		lead.Phone,
		email,
		lead.ProductType.DisplayName(domain.LangRU),
		quantity,
		lead.Message,
		strings.ToUpper(lead.Language),
		lead.CreatedAt.Format("02.01.2006 15:04"),
	)
}

// AutoReplySender thanks the submitter in their own language. The caller skips
// it entirely when the lead has no email.
type AutoReplySender struct {
	d    dialer
	from string
}

func NewAutoReplySender(cfg *config.Config) *AutoReplySender {
	return &AutoReplySender{
		d:    gomail.NewDialer(cfg.EmailHost, cfg.EmailPort, cfg.EmailUser, cfg.EmailPassword),
		from: cfg.DefaultFromEmail,
	}
}

func (s *AutoReplySender) Name() string { return "auto-reply" }

func (s *AutoReplySender) Send(_ context.Context, lead *domain.Lead) error {
	if lead.Email == "" {
		return fmt.Errorf("lead %d has no email", lead.ID)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", lead.Email)
	m.SetHeader("Subject", "Спасибо за вашу заявку - Paradise Accessories")
	m.SetBody("text/plain", autoReplyBody(lead))

	return s.d.DialAndSend(m)
}

func autoReplyBody(lead *domain.Lead) string {
	switch domain.ParseLanguage(lead.Language) {
	case domain.LangEN:
		return fmt.Sprintf(`Hello, %s!

Thank you for your interest in Paradise Accessories products!

We have received your request for "%s" and will contact you shortly.

Our specialists are ready to answer all your questions and help you choose the best solution for your business.

Best regards,
Paradise Accessories Team
`, lead.Name, lead.ProductType.DisplayName(domain.LangEN))
	case domain.LangUZ:
		return fmt.Sprintf(`Assalomu alaykum, %s!

Paradise Accessories mahsulotlariga qiziqish bildirganingiz uchun rahmat!

Biz "%s" bo'yicha so'rovingizni oldik va tez orada siz bilan bog'lanamiz.

Mutaxassislarimiz barcha savollaringizga javob berishga va biznesingiz uchun eng yaxshi yechimni tanlashda yordam berishga tayyor.

Hurmat bilan,
Paradise Accessories jamoasi
`, lead.Name, lead.ProductType.DisplayName(domain.LangRU))
	default:
		return fmt.Sprintf(`Здравствуйте, %s!

Спасибо за ваш интерес к продукции Paradise Accessories!

Мы получили вашу заявку на "%s" и свяжемся с вами в ближайшее время.

Наши специалисты готовы ответить на все ваши вопросы и помочь с выбором оптимального решения для вашего бизнеса.

С уважением,
Команда Paradise Accessories
`, lead.Name, lead.ProductType.DisplayName(domain.LangRU))
	}
}
