package constant

const (
	QueueStreamName = "mealky_way_queue_stream"
)

const (
	AllWildcard   = "events.>"
	OrderWildcard = "events.order.>"
	EmailWildcard = "events.email.>"

	SubjectOrderPlaced = "events.order.placed"
	SubjectSendEmail   = "events.email.send"
)
