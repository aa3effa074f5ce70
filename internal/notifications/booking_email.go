package notifications

import (
	"bytes"
	"html/template"

	"github.com/FlorinDG/coral-remodeling-pro/internal/models"
)

const bookingNotificationTemplate = `<!DOCTYPE html>
<html>
<body>
  <h2>Site Visit Scheduled</h2>
  <p><strong>Client:</strong> {{.ClientName}}</p>
  <p><strong>Email:</strong> {{.ClientEmail}}</p>
  <p><strong>Service:</strong> {{.ServiceType}}</p>
  <p><strong>Date:</strong> {{.Date}}</p>
  <p><strong>Time Slot:</strong> {{.TimeSlot}}</p>
  <hr />
  <p>This booking has also been saved to the database.</p>
</body>
</html>`

var bookingNotificationTmpl = template.Must(template.New("booking_notification").Parse(bookingNotificationTemplate))

type bookingNotificationData struct {
	ClientName  string
	ClientEmail string
	ServiceType string
	Date        string
	TimeSlot    string
}

func buildBookingNotificationHTML(booking models.Booking, date string) (string, error) {
	data := bookingNotificationData{
		ClientName:  booking.ClientName,
		ClientEmail: booking.ClientEmail,
		ServiceType: booking.ServiceType,
		Date:        date,
		TimeSlot:    booking.TimeSlot,
	}
	var buf bytes.Buffer
	if err := bookingNotificationTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
