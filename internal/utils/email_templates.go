package utils

import (
	"fmt"

	"blackstone_back_end/internal/models"
)

// GenerateOrderConfirmationHTML génère le HTML de confirmation de commande
func GenerateOrderConfirmationHTML(order models.Order) string {
	itemsHTML := ""
	for _, item := range order.Items {
		variant := ""
		if item.Size != "" || item.Color != "" {
			variant = fmt.Sprintf(" (%s %s)", item.Size, item.Color)
		}
		itemsHTML += fmt.Sprintf(`
			<tr>
				<td style="padding: 8px; border: 1px solid #ddd;">%s%s</td>
				<td style="padding: 8px; border: 1px solid #ddd;">%d</td>
				<td style="padding: 8px; border: 1px solid #ddd;">৳%.2f</td>
				<td style="padding: 8px; border: 1px solid #ddd;">৳%.2f</td>
			</tr>`, item.Name, variant, item.Quantity, item.Price, item.Price*float64(item.Quantity))
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="UTF-8">
	<title>Order confirmation</title>
</head>
<body style="font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<h2 style="color: #111;">Thank you for your order, %s!</h2>
		<p>Your cash-on-delivery order has been received and is now <strong>pending</strong>.</p>

		<h3>Order details</h3>
		<table style="width: 100%%; border-collapse: collapse; margin: 20px 0;">
			<thead>
				<tr style="background-color: #f0f0f0;">
					<th style="padding: 8px; text-align: left; border: 1px solid #ddd;">Product</th>
					<th style="padding: 8px; text-align: left; border: 1px solid #ddd;">Qty</th>
					<th style="padding: 8px; text-align: left; border: 1px solid #ddd;">Unit price</th>
					<th style="padding: 8px; text-align: left; border: 1px solid #ddd;">Total</th>
				</tr>
			</thead>
			<tbody>
				%s
			</tbody>
			<tfoot>
				<tr>
					<td colspan="3" style="padding: 8px; text-align: right;">Subtotal:</td>
					<td style="padding: 8px;">৳%.2f</td>
				</tr>
				<tr>
					<td colspan="3" style="padding: 8px; text-align: right;">Delivery (%s):</td>
					<td style="padding: 8px;">৳%.2f</td>
				</tr>
				<tr>
					<td colspan="3" style="padding: 8px; text-align: right; font-weight: bold;">Total due on delivery:</td>
					<td style="padding: 8px; font-weight: bold;">৳%.2f</td>
				</tr>
			</tfoot>
		</table>

		<p style="margin-top: 30px; color: #555;">
			Regards,<br>
			<strong>The BlackStone BD team</strong>
		</p>
	</div>
</body>
</html>`, order.CustomerName, itemsHTML, order.Subtotal, order.DeliveryZone, order.ShippingFee, order.Total)
}

// GenerateSubscriptionHTML génère l'e-mail du code promo de bienvenue
func GenerateSubscriptionHTML(couponCode string, discount float64) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="UTF-8">
	<title>Your discount code</title>
</head>
<body style="font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px; text-align: center;">
		<h2 style="color: #111;">🎉 Welcome to BlackStone BD!</h2>
		<p>Here is your %.0f%%-off code:</p>
		<p style="font-size: 28px; font-weight: bold; letter-spacing: 3px; background-color: #f0f0f0; padding: 15px; border-radius: 8px;">%s</p>
		<p style="color: #555;">Show it at checkout on your next order.</p>
	</div>
</body>
</html>`, discount, couponCode)
}

// GenerateContactRelayHTML met en forme un message du formulaire de contact
func GenerateContactRelayHTML(msg models.ContactMessage) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="en">
<body style="font-family: Arial, sans-serif; padding: 20px;">
	<h3>New message from the contact form</h3>
	<p><strong>From:</strong> %s &lt;%s&gt;</p>
	<p><strong>Subject:</strong> %s</p>
	<p style="white-space: pre-wrap; background-color: #f5f5f5; padding: 15px; border-radius: 8px;">%s</p>
</body>
</html>`, msg.Name, msg.Email, msg.Subject, msg.Message)
}
