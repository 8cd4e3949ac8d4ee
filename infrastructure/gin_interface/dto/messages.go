package dto

// MessageResponse is the uniform JSON body for every endpoint outcome.
type MessageResponse struct {
	Message string `json:"message"`
}

// Exact outcome strings; downstream consumers match on them, so they are
// part of the contract.
const (
	LivenessMessage          = "All Ok!"
	MissingFieldsMessage     = "Missing required fields in request body."
	VideoTriggeredMessage    = "Video Triggered Successfully"
	VideoDispatchFailMessage = "There is some error generation video, try again later..."
	InternalErrorMessage     = "Internal Server Error"
)
