package notifications

import (
	"bytes"
	"html/template"

	"github.com/FlorinDG/coral-remodeling-pro/internal/models"
)

const leadNotificationTemplate = `<!DOCTYPE html>
<html>
<body>
  <h2>New Inquiry Received</h2>
  <p><strong>Name:</strong> {{.Name}}</p>
  <p><strong>Email:</strong> {{.Email}}</p>
  <p><strong>Phone:</strong> {{.Phone}}</p>
  <p><strong>Service:</strong> {{.Service}}</p>
  <p><strong>Message:</strong></p>
  <p>{{.Message}}</p>
  <hr />
  <p>This inquiry has also been saved to the database.</p>
</body>
</html>`

var leadNotificationTmpl = template.Must(template.New("lead_notification").Parse(leadNotificationTemplate))

type leadNotificationData struct {
	Name    string
	Email   string
	Phone   string
	Service string
	Message string
}

func buildLeadNotificationHTML(lead models.Lead) (string, error) {
	data := leadNotificationData{
		Name:    lead.Name,
		Email:   lead.Email,
		Phone:   lead.Phone,
		Service: lead.Service,
		Message: lead.Message,
	}
	if data.Phone == "" {
		data.Phone = "N/A"
	}
	if data.Message == "" {
		data.Message = "No message provided."
	}
	var buf bytes.Buffer
	if err := leadNotificationTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
