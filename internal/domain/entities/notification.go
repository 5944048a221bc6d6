package entities

// NotificationAttachment is a file sent along with a notification.
type NotificationAttachment struct {
	Filename    string
	ContentType string
	Content     []byte
}

// Notification is a best-effort message to a client. To is an email address;
// Phone is optional and only used by SMS-capable notifiers.
type Notification struct {
	To         string
	Phone      string
	Subject    string
	HTML       string
	Text       string
	Attachment *NotificationAttachment
}
