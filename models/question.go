package models

// QuestionRequest is the body of a chat question.
type QuestionRequest struct {
	Message string `json:"message"`
}

// Answer is the raw backend reply to a request. The body is kept verbatim;
// the client never decodes it.
type Answer struct {
	Body      string
	RequestID string
}
