package domain

// NotificationPolicy bounds how much of a failing feed's stderr is embedded in
// the desktop alert raised when it exits.
type NotificationPolicy struct {
	TailLines  int
	Indent     string
	WidthLimit int
}

func DefaultNotificationPolicy() NotificationPolicy {
	return NotificationPolicy{
		TailLines:  5,
		Indent:     "  ",
		WidthLimit: 80,
	}
}
