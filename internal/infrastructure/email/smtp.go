package email

import (
	"errors"
	"fmt"
	"html"
	"io"

	"gopkg.in/gomail.v2"

	"turnero/internal/shared/config"
)

// ErrEmailDisabled is returned by the no-op sender.
var ErrEmailDisabled = errors.New("email delivery is disabled")

// ReceiptMail is a ticket receipt to be delivered to the citizen.
type ReceiptMail struct {
	To           string
	FullName     string
	Number       string
	Municipality string
	Filename     string
	PDF          []byte
}

type messageSender interface {
	DialAndSend(m ...*gomail.Message) error
}

type SMTPEmailService struct {
	config config.EmailConfig
	sender messageSender
}

func NewSMTPEmailService(cfg config.EmailConfig) *SMTPEmailService {
	return &SMTPEmailService{
		config: cfg,
		sender: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
	}
}

func (s *SMTPEmailService) SendReceipt(r ReceiptMail) error {
	if r.To == "" {
		return errors.New("recipient address is required")
	}

	subject := fmt.Sprintf("Su turno %s", r.Number)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Turno %s</h2>
			<p>Hola %s,</p>
			<p>Su turno para el municipio de %s fue registrado.</p>
			<p>Adjuntamos el comprobante en PDF. Preséntelo el día de su atención.</p>
		</body>
		</html>
	`, html.EscapeString(r.Number), html.EscapeString(r.FullName), html.EscapeString(r.Municipality))

	plainBody := fmt.Sprintf(`
Turno %s

Hola %s,

Su turno para el municipio de %s fue registrado.
Adjuntamos el comprobante en PDF. Preséntelo el día de su atención.
	`, r.Number, r.FullName, r.Municipality)

	m := s.newMessage(r.To, subject, htmlBody, plainBody)
	if len(r.PDF) > 0 {
		pdf := r.PDF
		m.Attach(r.Filename, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(pdf)
			return err
		}), gomail.SetHeader(map[string][]string{"Content-Type": {"application/pdf"}}))
	}

	if err := s.sender.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (s *SMTPEmailService) newMessage(to, subject, htmlBody, plainBody string) *gomail.Message {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)
	return m
}

// NoopEmailService is used when email delivery is turned off.
type NoopEmailService struct{}

func (NoopEmailService) SendReceipt(ReceiptMail) error {
	return ErrEmailDisabled
}
