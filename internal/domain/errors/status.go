package errors

// Envelope status codes returned in the response body under status.code.
const (
	StatusSuccess            = 200
	StatusValidationFailed   = 220
	StatusPreconditionFailed = 230
)

// Envelope status messages returned in the response body under status.msg.
const (
	StatusMsgSuccess = "success"
	StatusMsgFailed  = "failed"
)
