package constant

const EmailOrderPlacedSubject = "New order #%d"

const EmailOrderPlacedTemplate = `
A new order has been placed.

Order Details:
------------------------------------------
Order ID: MW-%d
Customer: %s
Contact Number: %s
Hall: %s
Room: %s
Quantity: %s
Delivery Date: %s
------------------------------------------

Open the admin panel to review today's orders.

Mealky Way

Note: This is an automated message, please do not reply to this email.
`
