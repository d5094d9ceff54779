package response

const (
	// MessageSuccess is the message attached to successful responses.
	MessageSuccess = "Success"
)
