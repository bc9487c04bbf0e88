package domain

var (
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageSomethingWentWrong   = "something went wrong"
)
