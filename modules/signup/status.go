package signup

// Status is the lifecycle of one form submission.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Event drives Status transitions.
type Event string

const (
	EventSubmitEmpty   Event = "submit-empty"
	EventSubmitStart   Event = "submit-start"
	EventResponseOK    Event = "response-ok"
	EventResponseError Event = "response-error"
	EventNetworkError  Event = "network-error"
)

// Messages shown under the form.
const (
	MsgEmailRequired  = "Please enter your email address"
	MsgSubscribed     = "Thanks! We'll notify you when we launch."
	MsgSomethingWrong = "Something went wrong"
	MsgSubmitFailed   = "Failed to submit. Please try again."
)

// State is what the form renders: status, message and the email field value.
type State struct {
	Status  Status `json:"status"`
	Message string `json:"message,omitempty"`
	Email   string `json:"email,omitempty"`
}

// Loading reports whether a submission is in flight.
func (s State) Loading() bool { return s.Status == StatusLoading }
