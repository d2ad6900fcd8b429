package notify

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"time"

	"github.com/nitroxskg-dev/Real-Estate/models"
)

// Email is a rendered outbound message.
type Email struct {
	From    string
	To      string
	Subject string
	HTML    string
}

// Mailer sends a single email. Implementations own their transport and
// timeouts.
type Mailer interface {
	Send(ctx context.Context, email Email) error
}

// Notifier dispatches inquiry notification emails off the request path.
// Dispatch never blocks and never fails the caller: messages go onto a
// buffered queue consumed by a single worker goroutine, and anything that
// goes wrong there is logged and dropped.
type Notifier struct {
	mailer Mailer
	from   string
	to     string
	queue  chan models.Inquiry
	done   chan struct{}
}

const queueSize = 64

// NewNotifier starts the worker. A nil mailer or empty destination disables
// the notifier; Dispatch becomes a no-op.
func NewNotifier(mailer Mailer, from, to string) *Notifier {
	n := &Notifier{
		mailer: mailer,
		from:   from,
		to:     to,
	}
	if !n.Enabled() {
		slog.Info("inquiry notifications disabled")
		return n
	}
	n.queue = make(chan models.Inquiry, queueSize)
	n.done = make(chan struct{})
	go n.worker()
	return n
}

func (n *Notifier) Enabled() bool {
	return n.mailer != nil && n.to != ""
}

// Dispatch enqueues a notification for the inquiry. It never blocks; if the
// queue is full the notification is dropped and logged.
func (n *Notifier) Dispatch(inquiry models.Inquiry) {
	if !n.Enabled() {
		return
	}
	select {
	case n.queue <- inquiry:
	default:
		slog.Error("notification queue full, dropping inquiry notification", "inquiry_id", inquiry.ID)
	}
}

// Close stops the worker after draining queued notifications.
func (n *Notifier) Close() {
	if !n.Enabled() {
		return
	}
	close(n.queue)
	<-n.done
}

func (n *Notifier) worker() {
	defer close(n.done)
	for inquiry := range n.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		err := n.mailer.Send(ctx, Email{
			From:    n.from,
			To:      n.to,
			Subject: InquirySubject(inquiry),
			HTML:    InquiryBody(inquiry),
		})
		cancel()
		if err != nil {
			slog.Error("failed to send email notification", "inquiry_id", inquiry.ID, "error", err)
			continue
		}
		slog.Info("email notification sent", "inquiry_id", inquiry.ID)
	}
}

// InquirySubject includes the property title when the inquiry carries one.
func InquirySubject(inquiry models.Inquiry) string {
	title := inquiry.PropertyTitle
	if title == "" {
		title = "General Contact"
	}
	return "New Inquiry: " + title
}

// InquiryBody renders the notification HTML.
func InquiryBody(inquiry models.Inquiry) string {
	propertyInfo := ""
	if inquiry.PropertyTitle != "" {
		propertyInfo = fmt.Sprintf("<p><strong>Property:</strong> %s</p>", html.EscapeString(inquiry.PropertyTitle))
	}
	phone := inquiry.Phone
	if phone == "" {
		phone = "Not provided"
	}
	return fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
    <h2 style="color: #050505;">New Property Inquiry</h2>
    %s
    <p><strong>Name:</strong> %s</p>
    <p><strong>Email:</strong> %s</p>
    <p><strong>Phone:</strong> %s</p>
    <p><strong>Message:</strong></p>
    <p style="background: #f5f5f4; padding: 15px; border-left: 3px solid #E5D0AC;">%s</p>
</div>
`,
		propertyInfo,
		html.EscapeString(inquiry.Name),
		html.EscapeString(inquiry.Email),
		html.EscapeString(phone),
		html.EscapeString(inquiry.Message),
	)
}
