package platform

// AppName is the application name handed to the host notification center.
const AppName = "PixelCanvas"

// Urgency ranks a notification for platforms that support it.
type Urgency int

const (
	UrgencyNormal Urgency = iota
	UrgencyCritical
)

// Options configures how a notification is displayed on the host platform.
type Options struct {
	// Urgency marks failures so the notification center can keep them
	// visible longer.
	Urgency Urgency
}

// timeout returns the expiry in milliseconds requested for a notification.
func (o Options) timeout() int32 {
	if o.Urgency == UrgencyCritical {
		return 0
	}
	return 5000
}
