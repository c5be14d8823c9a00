package messenger

// PageObject is the webhook object type sent for Page subscriptions.
const PageObject = "page"

// WebhookPayload is the body Messenger posts to the webhook.
type WebhookPayload struct {
	// Object is the subscription type; only "page" is handled.
	Object string `json:"object"`
	// Entry holds one element per page, possibly batched.
	Entry []Entry `json:"entry"`
}

// Entry groups the messaging events of one page.
type Entry struct {
	ID        string           `json:"id"`
	Time      int64            `json:"time"`
	Messaging []MessagingEvent `json:"messaging"`
}

// MessagingEvent is a single event addressed to the page.
type MessagingEvent struct {
	Sender    User     `json:"sender"`
	Recipient User     `json:"recipient"`
	Timestamp int64    `json:"timestamp"`
	Message   *Message `json:"message,omitempty"`
}

// User identifies a sender or recipient by page-scoped id.
type User struct {
	ID string `json:"id"`
}

// Message is the content of a user message.
type Message struct {
	MID  string `json:"mid"`
	Text string `json:"text"`
}

// Text returns the message text, or "" if the event carries no text message.
func (e *MessagingEvent) Text() string {
	if e.Message == nil {
		return ""
	}
	return e.Message.Text
}

// InfoResponse describes the service on the root endpoint.
type InfoResponse struct {
	Info string   `json:"info"`
	Meta InfoMeta `json:"meta"`
}

// InfoMeta holds the service links.
type InfoMeta struct {
	Links InfoLinks `json:"links"`
}

// InfoLinks are absolute URLs built from the request host.
type InfoLinks struct {
	Self      string `json:"self"`
	FBWebhook string `json:"fb_webhook"`
}
