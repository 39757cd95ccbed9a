package chiwawa

// Responder is the host side of a webhook call: it holds the response to
// return, a log sink, and the signal that the request is finished.
type Responder interface {
	SetResponse(status int, body string)
	Log(msg string)
	Done()
}
