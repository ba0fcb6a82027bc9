package entity

// PushNotification is a fully rendered push message ready for dispatch.
// It is always constructed complete: a notification either carries all three
// fields or is never emitted at all.
type PushNotification struct {
	Token string
	Title string
	Body  string
}
