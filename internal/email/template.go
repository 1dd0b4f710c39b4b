package email

import (
	"bytes"
	"fmt"
	"html/template"
	"sort"
	"strings"
	"time"

	"github.com/mechgenz/contact-backend/internal/domain"
)

// Identity is the sender identity substituted into the fixed templates.
// All fields are treated as opaque text and escaped on render.
type Identity struct {
	Name    string
	Tagline string
	Email   string
	Phone   string
	Address string
	Website string
}

// replyData feeds the reply templates.
type replyData struct {
	Identity
	ToName          string
	ReplyMessage    string
	OriginalMessage string
}

// notifyData feeds the intake notification templates.
type notifyData struct {
	Identity
	Fields      []fieldRow
	Message     string
	SubmittedAt string
	IPAddress   string
}

type fieldRow struct {
	Label string
	Value string
}

var replyHTMLTmpl = template.Must(template.New("reply").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1.0"><title>Reply from {{.Name}}</title></head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; background-color: #f4f4f4;">
  <div style="background-color: #ffffff; border-radius: 10px; padding: 30px;">
    <div style="text-align: center; border-bottom: 3px solid #ff5722; padding-bottom: 20px; margin-bottom: 30px;">
      <div style="font-size: 28px; font-weight: bold; color: #ff5722; letter-spacing: 2px;">{{.Name}}</div>
      {{if .Tagline}}<div style="font-size: 12px; color: #666; letter-spacing: 3px; margin-top: 5px;">{{.Tagline}}</div>{{end}}
    </div>
    <div style="font-size: 18px; margin-bottom: 20px;">Dear {{.ToName}},</div>
    <p>Thank you for contacting {{.Name}}. We appreciate your inquiry and are pleased to respond to your message.</p>
    <div style="background-color: #f9f9f9; padding: 20px; border-left: 4px solid #ff5722; margin: 20px 0; border-radius: 5px;">
      <h3 style="color: #ff5722; margin-top: 0;">Our Response:</h3>
      <p style="margin-bottom: 0; white-space: pre-line;">{{.ReplyMessage}}</p>
    </div>
    {{if .OriginalMessage}}
    <div style="background-color: #f0f0f0; padding: 15px; border-radius: 5px; margin: 20px 0; border-left: 3px solid #ccc;">
      <h4 style="color: #666; margin-top: 0; font-size: 14px;">Your Original Message:</h4>
      <p style="margin-bottom: 0; font-style: italic; white-space: pre-line;">{{.OriginalMessage}}</p>
    </div>
    {{end}}
    <p>If you have any further questions or need additional information, please don't hesitate to contact us.</p>
    <div style="margin: 20px 0; padding: 15px; background-color: #f8f8f8; border-radius: 5px;">
      <h4 style="color: #ff5722; margin-top: 0;">Contact Information</h4>
      {{if .Address}}<p><strong>Office:</strong> {{.Address}}</p>{{end}}
      {{if .Phone}}<p><strong>Phone:</strong> {{.Phone}}</p>{{end}}
      {{if .Email}}<p><strong>Email:</strong> {{.Email}}</p>{{end}}
      {{if .Website}}<p><strong>Website:</strong> {{.Website}}</p>{{end}}
    </div>
    <div style="margin-top: 30px; padding: 20px; background-color: #ff5722; color: white; border-radius: 5px; text-align: center;">
      <p style="margin: 0;"><strong>Best Regards,<br>{{.Name}} Team</strong></p>
    </div>
  </div>
</body>
</html>
`))

var notifyHTMLTmpl = template.Must(template.New("notify").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1.0"><title>New Contact Form Submission - {{.Name}}</title></head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; background-color: #f4f4f4;">
  <div style="background-color: #ffffff;">
    <div style="background-color: #ff5722; color: white; padding: 30px; text-align: center;">
      <div style="font-size: 28px; font-weight: bold; letter-spacing: 2px;">{{.Name}}</div>
      {{if .Tagline}}<div style="font-size: 12px; letter-spacing: 3px;">{{.Tagline}}</div>{{end}}
    </div>
    <div style="background-color: #fff3e0; color: #ff5722; padding: 20px; text-align: center; font-weight: bold; border-left: 4px solid #ff5722;">
      New Contact Form Submission
    </div>
    <div style="padding: 30px;">
      <p style="color: #666; font-size: 14px;">You have received a new inquiry through the website contact form.</p>
      <div style="background-color: #f8f9fa; padding: 20px; border-radius: 8px; margin: 20px 0;">
        <div style="color: #ff5722; font-size: 18px; font-weight: bold; margin-bottom: 15px;">Contact Information</div>
        {{range .Fields}}
        <div style="margin-bottom: 12px;"><strong>{{.Label}}:</strong> <span style="color: #666;">{{.Value}}</span></div>
        {{end}}
        <div style="margin-bottom: 12px;"><strong>Submitted:</strong> <span style="color: #666;">{{.SubmittedAt}}</span></div>
        {{if .IPAddress}}<div style="margin-bottom: 12px;"><strong>IP:</strong> <span style="color: #666;">{{.IPAddress}}</span></div>{{end}}
      </div>
      {{if .Message}}
      <div style="background-color: #f8f9fa; padding: 20px; border-radius: 8px; margin: 20px 0;">
        <div style="color: #ff5722; font-size: 18px; font-weight: bold; margin-bottom: 15px;">Message</div>
        <div style="background-color: white; padding: 15px; border-radius: 5px; border-left: 4px solid #ff5722; white-space: pre-wrap;">{{.Message}}</div>
      </div>
      {{end}}
    </div>
    <div style="background-color: #37474f; color: white; padding: 20px; text-align: center; font-size: 12px;">
      <p>This is an automated notification from your {{.Name}} website contact form.</p>
    </div>
  </div>
</body>
</html>
`))

// RenderReply renders the fixed reply layout with the sender identity, the
// reply text, and (when present) the quoted original message. Inputs are
// opaque text; the HTML rendering escapes them.
func RenderReply(id Identity, toName, replyMessage, originalMessage string) (html, text string, err error) {
	data := replyData{
		Identity:        id,
		ToName:          toName,
		ReplyMessage:    replyMessage,
		OriginalMessage: originalMessage,
	}
	var buf bytes.Buffer
	if err := replyHTMLTmpl.Execute(&buf, data); err != nil {
		return "", "", err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Dear %s,\n\n", toName)
	fmt.Fprintf(&sb, "Thank you for contacting %s. We appreciate your inquiry and are pleased to respond to your message.\n\n", id.Name)
	fmt.Fprintf(&sb, "Our Response:\n%s\n", replyMessage)
	if originalMessage != "" {
		fmt.Fprintf(&sb, "\nYour Original Message:\n%s\n", originalMessage)
	}
	sb.WriteString("\nIf you have any further questions or need additional information, please don't hesitate to contact us.\n")
	if id.Address != "" {
		fmt.Fprintf(&sb, "\nOffice: %s", id.Address)
	}
	if id.Phone != "" {
		fmt.Fprintf(&sb, "\nPhone: %s", id.Phone)
	}
	if id.Email != "" {
		fmt.Fprintf(&sb, "\nEmail: %s", id.Email)
	}
	if id.Website != "" {
		fmt.Fprintf(&sb, "\nWebsite: %s", id.Website)
	}
	fmt.Fprintf(&sb, "\n\nBest Regards,\n%s Team\n", id.Name)

	return buf.String(), sb.String(), nil
}

// RenderIntakeNotification renders the admin notification for a freshly
// stored submission. Scalar payload fields are listed in stable (sorted)
// order; the "message" field gets its own block, mirroring how the contact
// form lays the mail out.
func RenderIntakeNotification(id Identity, fields domain.JSONMap, submittedAt time.Time, ip string) (html, text string, err error) {
	rows := make([]fieldRow, 0, len(fields))
	for k, v := range fields {
		if k == "message" {
			continue
		}
		rows = append(rows, fieldRow{Label: labelize(k), Value: stringify(v)})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Label < rows[j].Label })

	data := notifyData{
		Identity:    id,
		Fields:      rows,
		Message:     fields.String("message"),
		SubmittedAt: submittedAt.UTC().Format("January 2, 2006 at 3:04 PM") + " UTC",
		IPAddress:   ip,
	}
	var buf bytes.Buffer
	if err := notifyHTMLTmpl.Execute(&buf, data); err != nil {
		return "", "", err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "New contact form submission for %s\n\n", id.Name)
	for _, r := range rows {
		fmt.Fprintf(&sb, "%s: %s\n", r.Label, r.Value)
	}
	fmt.Fprintf(&sb, "Submitted: %s\n", data.SubmittedAt)
	if ip != "" {
		fmt.Fprintf(&sb, "IP: %s\n", ip)
	}
	if data.Message != "" {
		fmt.Fprintf(&sb, "\nMessage:\n%s\n", data.Message)
	}

	return buf.String(), sb.String(), nil
}

// labelize turns a snake_case field key into a title-ish label ("to_email"
// -> "To email").
func labelize(key string) string {
	key = strings.ReplaceAll(key, "_", " ")
	if key == "" {
		return key
	}
	return strings.ToUpper(key[:1]) + key[1:]
}

// stringify renders a dynamic JSON value for display. Nested structures use
// the %v form; this mail is for operators, not machines.
func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case nil:
		return ""
	case float64:
		// Trim the ".000000" noise for integral numbers.
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%g", t)
	default:
		return fmt.Sprintf("%v", t)
	}
}
