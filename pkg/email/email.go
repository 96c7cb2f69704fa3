package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"strings"

	"github.com/arpanregmi/cafepos-api/internal/domain/entity"
)

// Config holds SMTP configuration
type Config struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromName     string
	FromEmail    string
	ShopName     string
}

// Service renders and delivers the day-open and day-close summary emails
type Service struct {
	config Config
}

// NewService creates a new email service
func NewService(config Config) *Service {
	return &Service{config: config}
}

// SendDayStarted sends the day-open notice to all recipients
func (s *Service) SendDayStarted(recipients []string, day entity.Day) error {
	if len(recipients) == 0 {
		return fmt.Errorf("no recipients configured")
	}

	htmlContent, err := s.renderDayStarted(day)
	if err != nil {
		return fmt.Errorf("failed to render day start email: %w", err)
	}

	subject := fmt.Sprintf("%s - Day Started (%s)", s.config.ShopName, day.StartedAt.Format("Monday, January 2, 2006"))
	return s.sendEmail(recipients, s.buildHTMLEmail(recipients, subject, htmlContent))
}

// SendDaySummary sends the day-close summary to all recipients
func (s *Service) SendDaySummary(recipients []string, summary *entity.DaySummary) error {
	if len(recipients) == 0 {
		return fmt.Errorf("no recipients configured")
	}

	htmlContent, err := s.renderDaySummary(summary)
	if err != nil {
		return fmt.Errorf("failed to render day summary email: %w", err)
	}

	sign := ""
	if summary.NetProfit >= 0 {
		sign = "+"
	}
	subject := fmt.Sprintf("%s - Daily Summary: %sRs.%d (%s)", s.config.ShopName, sign, summary.NetProfit, summary.Date)
	return s.sendEmail(recipients, s.buildHTMLEmail(recipients, subject, htmlContent))
}

// sendEmail sends an email using SMTP
func (s *Service) sendEmail(to []string, message []byte) error {
	addr := fmt.Sprintf("%s:%d", s.config.SMTPHost, s.config.SMTPPort)

	auth := smtp.PlainAuth("", s.config.SMTPUsername, s.config.SMTPPassword, s.config.SMTPHost)

	if err := smtp.SendMail(addr, auth, s.config.FromEmail, to, message); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// buildHTMLEmail builds an HTML email message
func (s *Service) buildHTMLEmail(to []string, subject, htmlBody string) []byte {
	headers := fmt.Sprintf(
		"From: %s <%s>\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=\"UTF-8\"\r\n"+
			"\r\n",
		s.config.FromName,
		s.config.FromEmail,
		strings.Join(to, ", "),
		subject,
	)

	return []byte(headers + htmlBody)
}

func (s *Service) renderDayStarted(day entity.Day) (string, error) {
	tmpl, err := template.New("day_started").Parse(dayStartedTemplate)
	if err != nil {
		return "", err
	}

	data := struct {
		ShopName string
		Date     string
		Time     string
		By       string
	}{
		ShopName: s.config.ShopName,
		Date:     day.StartedAt.Format("Monday, January 2, 2006"),
		Time:     day.StartedAt.Format("03:04 PM"),
		By:       day.StartedBy.UserName,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (s *Service) renderDaySummary(summary *entity.DaySummary) (string, error) {
	tmpl, err := template.New("day_summary").Parse(daySummaryTemplate)
	if err != nil {
		return "", err
	}

	closedAt := ""
	closedBy := ""
	if summary.EndedAt != nil {
		closedAt = summary.EndedAt.Format("03:04 PM")
	}
	if summary.EndedBy != nil {
		closedBy = summary.EndedBy.UserName
	}

	data := struct {
		ShopName  string
		Summary   *entity.DaySummary
		ClosedAt  string
		ClosedBy  string
		IsProfit  bool
		NetAmount int64
	}{
		ShopName:  s.config.ShopName,
		Summary:   summary,
		ClosedAt:  closedAt,
		ClosedBy:  closedBy,
		IsProfit:  summary.NetProfit >= 0,
		NetAmount: abs(summary.NetProfit),
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

const dayStartedTemplate = `
<!DOCTYPE html>
<html lang="en">
<body style="margin: 0; padding: 0; font-family: Arial, sans-serif; background-color: #1a1a1a;">
    <div style="max-width: 500px; margin: 0 auto; padding: 20px; color: #fff;">
        <h2 style="text-align: center; color: #4ade80;">{{.ShopName}} - Day Started</h2>
        <div style="background: #2a2a2a; padding: 20px; border-radius: 8px; text-align: center;">
            <p style="font-size: 18px; margin: 0;">{{.Date}}</p>
            <p style="color: #888; margin: 10px 0;">Opened at <strong>{{.Time}}</strong></p>
            <p style="color: #888; margin: 0;">By: <strong>{{.By}}</strong></p>
        </div>
        <p style="text-align: center; color: #4ade80; margin-top: 20px;">Have a great day!</p>
    </div>
</body>
</html>
`

const daySummaryTemplate = `
<!DOCTYPE html>
<html lang="en">
<body style="margin: 0; padding: 0; font-family: Arial, sans-serif; background-color: #1a1a1a;">
    <div style="max-width: 600px; margin: 0 auto; padding: 20px; color: #fff;">
        <h2 style="text-align: center; color: #f87171;">{{.ShopName}} - Day Ended</h2>

        <div style="background: #2a2a2a; padding: 15px; border-radius: 8px; text-align: center; margin-bottom: 20px;">
            <p style="font-size: 18px; margin: 0;">{{.Summary.Date}}</p>
            <p style="color: #888; margin: 10px 0;">Closed at <strong>{{.ClosedAt}}</strong> by <strong>{{.ClosedBy}}</strong></p>
        </div>

        <div style="background: {{if .IsProfit}}#1e3d1e{{else}}#3d1e1e{{end}}; padding: 20px; border-radius: 8px; text-align: center; margin-bottom: 20px;">
            <p style="margin: 0; font-size: 16px;">{{if .IsProfit}}Net Profit{{else}}Net Loss{{end}}</p>
            <p style="margin: 10px 0 0 0; font-size: 32px; font-weight: bold; color: {{if .IsProfit}}#4ade80{{else}}#f87171{{end}};">Rs. {{.NetAmount}}</p>
        </div>

        <table role="presentation" style="width: 100%; margin-bottom: 20px; border-collapse: collapse;">
            <tr>
                <td style="width: 50%; background: #1e3d1e; padding: 15px; border-radius: 8px; text-align: center;">
                    <p style="margin: 0; color: #888; font-size: 12px;">TOTAL IN</p>
                    <p style="margin: 5px 0 0 0; font-size: 20px; color: #4ade80; font-weight: bold;">Rs. {{.Summary.TotalIn}}</p>
                </td>
                <td style="width: 50%; background: #3d1e1e; padding: 15px; border-radius: 8px; text-align: center;">
                    <p style="margin: 0; color: #888; font-size: 12px;">TOTAL OUT</p>
                    <p style="margin: 5px 0 0 0; font-size: 20px; color: #f87171; font-weight: bold;">Rs. {{.Summary.TotalOut}}</p>
                </td>
            </tr>
        </table>

        <div style="background: #2a2a2a; border-radius: 8px; overflow: hidden; margin-bottom: 15px;">
            <div style="background: #1e3d1e; padding: 10px 15px;"><strong>MONEY IN - Sales</strong></div>
            <div style="padding: 15px;">
                {{if not .Summary.SoldItems}}<p style="color: #666;">No sales today</p>{{end}}
                {{range .Summary.SoldItems}}
                <table role="presentation" style="width: 100%; border-collapse: collapse;"><tr>
                    <td style="padding: 5px 0; border-bottom: 1px solid #333;">{{.Name}} <span style="color: #888;">x{{.Quantity}}</span></td>
                    <td style="padding: 5px 0; border-bottom: 1px solid #333; text-align: right; color: #4ade80;">Rs. {{.Total}}</td>
                </tr></table>
                {{end}}
                <table role="presentation" style="width: 100%; border-collapse: collapse; font-weight: bold;"><tr>
                    <td style="padding-top: 10px; border-top: 2px solid #444;">Total Sales</td>
                    <td style="padding-top: 10px; border-top: 2px solid #444; text-align: right; color: #4ade80;">Rs. {{.Summary.TotalIn}}</td>
                </tr></table>
            </div>
        </div>

        <div style="background: #2a2a2a; border-radius: 8px; overflow: hidden; margin-bottom: 15px;">
            <div style="background: #3d1e1e; padding: 10px 15px;"><strong>MONEY OUT - Expenses</strong></div>
            <div style="padding: 15px;">
                <p style="color: #888; font-size: 12px; margin: 0 0 10px 0; text-transform: uppercase;">Inventory</p>
                {{if not .Summary.InventoryItems}}<p style="color: #666;">No inventory purchases</p>{{end}}
                {{range .Summary.InventoryItems}}
                <table role="presentation" style="width: 100%; border-collapse: collapse;"><tr>
                    <td style="padding: 5px 0; border-bottom: 1px solid #333;">{{.Item}} <span style="color: #888;">x{{.Quantity}}{{if .Unit}} {{.Unit}}{{end}}</span></td>
                    <td style="padding: 5px 0; border-bottom: 1px solid #333; text-align: right; color: #f87171;">Rs. {{.TotalPrice}}</td>
                </tr></table>
                {{end}}
                <p style="color: #888; font-size: 13px;">Inventory Subtotal: Rs. {{.Summary.InventoryTotal}}</p>

                <p style="color: #888; font-size: 12px; margin: 15px 0 10px 0; text-transform: uppercase;">Staff Wages</p>
                {{if not .Summary.StaffWages}}<p style="color: #666;">No staff hours</p>{{end}}
                {{range .Summary.StaffWages}}
                <table role="presentation" style="width: 100%; border-collapse: collapse;"><tr>
                    <td style="padding: 5px 0; border-bottom: 1px solid #333;">{{.Name}} <span style="color: #888;">{{printf "%.1f" .Hours}}h</span></td>
                    <td style="padding: 5px 0; border-bottom: 1px solid #333; text-align: right; color: #f87171;">Rs. {{.Wage}}</td>
                </tr></table>
                {{end}}
                <p style="color: #888; font-size: 13px;">Wages Subtotal: Rs. {{.Summary.TotalWages}}</p>

                <p style="color: #888; font-size: 12px; margin: 15px 0 10px 0; text-transform: uppercase;">Fixed Costs</p>
                <table role="presentation" style="width: 100%; border-collapse: collapse;"><tr>
                    <td style="padding: 5px 0;">Daily Rent + Utilities</td>
                    <td style="padding: 5px 0; text-align: right; color: #f87171;">Rs. {{.Summary.Rent}}</td>
                </tr></table>

                <table role="presentation" style="width: 100%; border-collapse: collapse; font-weight: bold;"><tr>
                    <td style="padding-top: 10px; border-top: 2px solid #444;">Total Expenses</td>
                    <td style="padding-top: 10px; border-top: 2px solid #444; text-align: right; color: #f87171;">Rs. {{.Summary.TotalOut}}</td>
                </tr></table>
            </div>
        </div>

        <p style="text-align: center; color: #888; font-size: 12px; margin-top: 20px;">
            Generated by {{.ShopName}} POS System
        </p>
    </div>
</body>
</html>
`
