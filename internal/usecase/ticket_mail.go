package usecase

import (
	"bytes"
	"fmt"
	"html/template"

	"gatetogether/internal/data/entity"
	"gatetogether/pkg/mailer"
)

const ticketMailSubject = "Your GateTogether QR Ticket"

// Content-ID of the embedded QR image; the HTML body references it inline
const ticketMailCID = "qrcode.png"

var ticketMailTmpl = template.Must(template.New("ticket").Parse(`<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width" />
  </head>
  <body style="margin:0;padding:0;background:#f3f4f6;font-family:Arial,Helvetica,sans-serif;color:#111;">
    <table width="100%" cellpadding="0" cellspacing="0" role="presentation">
      <tr>
        <td align="center" style="padding:28px 12px;">
          <table width="600" cellpadding="0" cellspacing="0" role="presentation" style="max-width:600px;background:#ffffff;border-radius:12px;overflow:hidden;">
            <tr>
              <td style="padding:22px 24px;">
                <table width="100%" cellpadding="0" cellspacing="0" role="presentation">
                  <tr>
                    <td style="font-size:18px;font-weight:600;color:#0f172a;padding-bottom:8px;">
                      Hi {{.Name}},
                    </td>
                    <td align="right" style="font-size:12px;color:#9ca3af;">
                      GateTogether
                    </td>
                  </tr>
                </table>
                <p style="margin:12px 0 8px;line-height:1.5;color:#334155;font-size:15px;">
                  Thank you for registering. Your ticket number is <strong>{{.TicketNumber}}</strong>.
                  Please present this QR code at the gate.
                </p>
                <table width="100%" cellpadding="0" cellspacing="0" role="presentation" style="background:#f8fafc;border-radius:10px;padding:16px;text-align:center;">
                  <tr>
                    <td style="padding:8px 0;">
                      <img src="cid:{{.CID}}" alt="QR Code" style="display:block;margin:0 auto;max-width:260px;height:auto;" />
                    </td>
                  </tr>
                  <tr>
                    <td style="padding-top:10px;font-size:13px;color:#64748b;">
                      Present this QR at the gate for check-in
                    </td>
                  </tr>
                </table>
                <p style="margin:18px 0 0;font-size:14px;color:#475569;line-height:1.45;">
                  If the image does not display, open this link:
                  <a href="{{.CheckinURL}}" style="color:#0369a1;text-decoration:none;font-weight:600;">Check-In</a>
                </p>
                <p style="margin:18px 0 0;color:#475569;font-size:14px;line-height:1.4;">
                  Regards,<br/>
                  <strong style="color:#0f172a;">GateTogether</strong>
                </p>
              </td>
            </tr>
            <tr>
              <td align="center" style="padding:12px 16px;background:#fbfdff;font-size:12px;color:#9ca3af;">
                If you have questions, reply to this email.
              </td>
            </tr>
          </table>
        </td>
      </tr>
    </table>
  </body>
</html>
`))

type ticketMailData struct {
	Name         string
	TicketNumber string
	CheckinURL   string
	CID          string
}

// composeTicketMail builds the notification payload for one booking. The QR
// image goes inline via CID; the plain-text part carries the bare link as a
// fallback for clients that strip images.
func composeTicketMail(booking *entity.Booking, png []byte, checkinURL string) (*mailer.Payload, error) {
	name := booking.Firstname
	if name == "" {
		name = "Guest"
	}

	ticketNumber := ""
	if booking.TicketNumber != nil {
		ticketNumber = *booking.TicketNumber
	}

	data := ticketMailData{
		Name:         name,
		TicketNumber: ticketNumber,
		CheckinURL:   checkinURL,
		CID:          ticketMailCID,
	}

	var html bytes.Buffer
	if err := ticketMailTmpl.Execute(&html, data); err != nil {
		return nil, fmt.Errorf("execute ticket template: %w", err)
	}

	text := fmt.Sprintf(
		"Hi %s,\n\nThank you for registering. Your ticket number is %s.\n"+
			"Present the attached QR code at the gate, or open this link:\n%s\n\nRegards,\nGateTogether\n",
		name, ticketNumber, checkinURL,
	)

	return &mailer.Payload{
		BookingID: booking.ID.String(),
		To:        booking.Email,
		Subject:   ticketMailSubject,
		HTML:      html.String(),
		Text:      text,
		ImageCID:  ticketMailCID,
		ImagePNG:  png,
	}, nil
}
