package utils

import (
	"log"
	"os"
	"strconv"

	"github.com/wneessen/go-mail"

	"blackstone_back_end/internal/models"
)

// SendEmail envoie un e-mail HTML via le SMTP configuré
func SendEmail(to, subject, htmlBody string) error {
	msg := mail.NewMsg()

	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = "noreply@blackstonebd.com"
	}

	if err := msg.From(from); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	port := 587
	if p, err := strconv.Atoi(os.Getenv("SMTP_PORT")); err == nil && p > 0 {
		port = p
	}

	client, err := mail.NewClient(os.Getenv("SMTP_HOST"),
		mail.WithPort(port),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(os.Getenv("SMTP_USERNAME")),
		mail.WithPassword(os.Getenv("SMTP_PASSWORD")),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	log.Println("📤 Envoi de l'e-mail à", to)
	return client.DialAndSend(msg)
}

// SendOrderConfirmationEmail notifie le client que sa commande est enregistrée.
// Appelée en goroutine : l'échec est loggé, jamais bloquant pour le checkout.
func SendOrderConfirmationEmail(order models.Order) {
	html := GenerateOrderConfirmationHTML(order)
	if err := SendEmail(order.Email, "Your BlackStone BD order is confirmed", html); err != nil {
		log.Printf("⚠️ Échec envoi confirmation commande %s: %v", order.ID.Hex(), err)
	}
}

// SendSubscriptionEmail envoie le code promo de la modale marketing
func SendSubscriptionEmail(to, couponCode string, discount float64) {
	html := GenerateSubscriptionHTML(couponCode, discount)
	if err := SendEmail(to, "Your BlackStone BD discount code", html); err != nil {
		log.Printf("⚠️ Échec envoi code promo à %s: %v", to, err)
	}
}

// SendContactRelayEmail relaie un message du formulaire de contact vers la boutique
func SendContactRelayEmail(msg models.ContactMessage) {
	inbox := os.Getenv("CONTACT_INBOX")
	if inbox == "" {
		inbox = os.Getenv("SMTP_FROM")
	}
	if inbox == "" {
		return
	}
	html := GenerateContactRelayHTML(msg)
	if err := SendEmail(inbox, "New contact message: "+msg.Subject, html); err != nil {
		log.Printf("⚠️ Échec relai message contact: %v", err)
	}
}
