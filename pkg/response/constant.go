package response

const (
	MessageSuccess       = "Success"
	MessageInternalError = "Something went wrong"
)
