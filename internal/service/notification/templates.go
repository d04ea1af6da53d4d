package notification

import "service/internal/entities"

type messageTemplate struct {
	title string
	body  string
}

// Wording follows the in-app copy; note the "delivered" title reads
// "Errand Completed" to the requester.
var templates = map[entities.ErrandStatusType]messageTemplate{
	entities.ErrandAccepted: {
		title: "Errand Accepted",
		body:  "A runner has accepted your errand and is heading to the pickup location.",
	},
	entities.ErrandPickedUp: {
		title: "Errand Picked Up",
		body:  "Your items have been picked up.",
	},
	entities.ErrandOnTheWay: {
		title: "Errand On The Way",
		body:  "Your runner is on the way to the dropoff location.",
	},
	entities.ErrandDelivered: {
		title: "Errand Completed",
		body:  "Your errand has been delivered. Please confirm completion.",
	},
	entities.ErrandCompleted: {
		title: "Errand Confirmed",
		body:  "The requester has confirmed completion of the errand.",
	},
	entities.ErrandCancelled: {
		title: "Errand Cancelled",
		body:  "The errand has been cancelled by the requester.",
	},
}

func templateFor(status entities.ErrandStatusType) (messageTemplate, bool) {
	template, ok := templates[status]
	return template, ok
}
