package utils

import (
	"fmt"
	"log"
	"os"

	"github.com/wneessen/go-mail"

	"fashion_store_back_end/internal/models"
)

// SendOrderStatusEmail envoie un email de notification de changement de statut
func SendOrderStatusEmail(order models.Order, newStatus string) error {
	to := order.Address.Email
	if to == "" {
		return nil
	}

	msg := mail.NewMsg()
	if err := msg.From(fromAddress()); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(statusEmailSubject(newStatus))
	msg.SetBodyString(mail.TypeTextHTML, statusEmailHTML(order, newStatus))

	client, err := mail.NewClient(os.Getenv("SMTP_HOST"),
		mail.WithPort(587),
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

func fromAddress() string {
	if from := os.Getenv("SMTP_FROM"); from != "" {
		return from
	}
	return "noreply@fashionstore.example"
}

func statusEmailSubject(status string) string {
	switch status {
	case "Shipped":
		return "Votre commande a été expédiée"
	case "Out for delivery":
		return "Votre commande est en cours de livraison"
	case "Delivered":
		return "Votre commande a été livrée"
	case "Cancelled":
		return "Votre commande a été annulée"
	default:
		return "Mise à jour de votre commande"
	}
}

func statusEmailHTML(order models.Order, status string) string {
	itemsHTML := ""
	for _, item := range order.Items {
		itemsHTML += fmt.Sprintf(`
			<tr>
				<td>%s (%s)</td>
				<td>%d</td>
				<td>%.2f</td>
			</tr>`, item.Name, item.Size, item.Quantity, item.Price*float64(item.Quantity))
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="fr">
<body style="font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<h2 style="color: #333;">Mise à jour de votre commande</h2>
		<p>Bonjour %s,</p>
		<p>Votre commande <strong>%s</strong> est maintenant : <strong>%s</strong></p>
		<table style="width: 100%%; border-collapse: collapse; margin: 20px 0;">
			%s
		</table>
		<p>Total : <strong>%.2f</strong></p>
	</div>
</body>
</html>`, order.Address.FirstName, order.ID.Hex(), status, itemsHTML, order.Amount)
}
