package notify

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"html/template"
	"mime"
	"net"
	"net/smtp"
	"strings"

	"github.com/futig/proposal-backend/internal/config"
	"github.com/futig/proposal-backend/internal/entity"
)

// smtpSender delivers a single HTML mail over plain SMTP
type smtpSender struct {
	cfg config.SMTPConfig
}

func newSMTPSender(cfg config.SMTPConfig) *smtpSender {
	return &smtpSender{cfg: cfg}
}

// send performs one SMTP exchange. The dial and every subsequent read and
// write are bounded by the context deadline, so a hung server cannot block
// the dispatch goroutine past the dispatcher's timeout.
func (s *smtpSender) send(ctx context.Context, to, subject string, htmlBody []byte) error {
	var msg bytes.Buffer
	fmt.Fprintf(&msg, "From: %s\r\n", s.cfg.From)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.Write(htmlBody)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("dial smtp %s: %w", addr, err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetDeadline(deadline); err != nil {
			return fmt.Errorf("set smtp deadline: %w", err)
		}
	}

	client, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return fmt.Errorf("smtp handshake with %s: %w", addr, err)
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: s.cfg.Host}); err != nil {
			return fmt.Errorf("smtp starttls: %w", err)
		}
	}

	if s.cfg.User != "" {
		auth := smtp.PlainAuth("", s.cfg.User, s.cfg.Password, s.cfg.Host)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("smtp auth: %w", err)
		}
	}

	if err := client.Mail(s.cfg.From); err != nil {
		return fmt.Errorf("smtp mail from: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("smtp rcpt to %s: %w", to, err)
	}

	wc, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}
	if _, err := wc.Write(msg.Bytes()); err != nil {
		wc.Close()
		return fmt.Errorf("write mail body: %w", err)
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("finish mail body: %w", err)
	}

	return client.Quit()
}

type mailRecommendation struct {
	Category string
	Savings  float64
}

type salesMailData struct {
	Survey          *entity.Survey
	Proposal        *entity.Proposal
	Budget          string
	Position        string
	Phone           string
	Challenges      []string
	Recommendations []mailRecommendation
}

var salesMailTemplate = template.Must(template.New("sales").Parse(`<div style="font-family: 'Helvetica Neue', Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <div style="background: #667eea; color: white; padding: 30px; text-align: center;">
    <h1 style="margin: 0; font-size: 24px;">🎯 新しいAI活用ニーズ調査</h1>
    <p style="margin: 10px 0 0 0;">提案が自動生成されました</p>
  </div>
  <div style="padding: 30px; background: #f8f9fa;">
    <h2 style="margin-top: 0;">企業情報</h2>
    <table style="width: 100%;">
      <tr><td style="font-weight: bold;">会社名:</td><td>{{.Survey.CompanyName}}</td></tr>
      <tr><td style="font-weight: bold;">業種:</td><td>{{.Survey.Industry}}</td></tr>
      <tr><td style="font-weight: bold;">従業員数:</td><td>{{.Survey.EmployeeCount}}</td></tr>
      <tr><td style="font-weight: bold;">予算:</td><td>{{.Budget}}</td></tr>
    </table>
  </div>
  <div style="padding: 30px; background: white;">
    <h2 style="margin-top: 0;">担当者情報</h2>
    <table style="width: 100%;">
      <tr><td style="font-weight: bold;">お名前:</td><td>{{.Survey.ContactInfo.Name}}</td></tr>
      <tr><td style="font-weight: bold;">役職:</td><td>{{.Position}}</td></tr>
      <tr><td style="font-weight: bold;">メール:</td><td>{{.Survey.ContactInfo.Email}}</td></tr>
      <tr><td style="font-weight: bold;">電話:</td><td>{{.Phone}}</td></tr>
    </table>
  </div>
  <div style="padding: 30px; background: #f8f9fa;">
    <h2 style="margin-top: 0;">課題・ニーズ</h2>
    <div>
      {{range .Challenges}}<span style="display: inline-block; background: #e3f2fd; color: #1565c0; padding: 4px 8px; margin: 2px; border-radius: 4px; font-size: 12px;">{{.}}</span>{{end}}
    </div>
    <div style="background: white; padding: 15px; margin-top: 10px; border-left: 4px solid #2196f3;">{{.Survey.WorkflowDescription}}</div>
  </div>
  <div style="padding: 30px; background: white;">
    <h2 style="margin-top: 0;">AI提案サマリー</h2>
    <div style="background: #f5f5f5; padding: 15px; border-radius: 4px;">{{.Proposal.Summary}}</div>
    {{range .Recommendations}}<div style="background: #e8f5e8; padding: 15px; margin-top: 10px; border-radius: 4px;">
      <strong style="color: #2e7d32;">{{.Category}}</strong>
      <div style="font-size: 24px; font-weight: bold; color: #2e7d32;">{{.Savings}}時間/月</div>
      <div style="font-size: 12px; color: #555;">削減予想</div>
    </div>{{end}}
  </div>
  <div style="padding: 30px; background: #667eea; color: white; text-align: center;">
    <h3 style="margin: 0 0 10px 0;">次のアクション</h3>
    <p style="margin: 0;">提案ID: {{.Proposal.ID}}</p>
    <p style="margin: 10px 0 0 0;">3営業日以内にお客様へご連絡ください</p>
  </div>
</div>`))

// SalesEmailChannel mails the lead summary to the internal sales address
type SalesEmailChannel struct {
	sender     *smtpSender
	salesEmail string
}

func NewSalesEmailChannel(sender *smtpSender, salesEmail string) *SalesEmailChannel {
	return &SalesEmailChannel{
		sender:     sender,
		salesEmail: salesEmail,
	}
}

func (c *SalesEmailChannel) Name() string {
	return "sales-email"
}

func (c *SalesEmailChannel) Send(ctx context.Context, survey *entity.Survey, proposal *entity.Proposal) error {
	data := salesMailData{
		Survey:     survey,
		Proposal:   proposal,
		Budget:     orUnset(survey.Budget),
		Position:   orUnset(survey.ContactInfo.Position),
		Phone:      orUnset(survey.ContactInfo.Phone),
		Challenges: survey.CurrentChallenges,
	}
	for _, rec := range proposal.Recommendations {
		data.Recommendations = append(data.Recommendations, mailRecommendation{
			Category: rec.Category,
			Savings:  rec.TimeSavingEstimate,
		})
	}

	var body bytes.Buffer
	if err := salesMailTemplate.Execute(&body, data); err != nil {
		return fmt.Errorf("render sales mail: %w", err)
	}

	subject := fmt.Sprintf("[AI活用ニーズ調査] %s様からの新しい調査完了", survey.CompanyName)
	return c.sender.send(ctx, c.salesEmail, subject, body.Bytes())
}

type customerMailData struct {
	Survey          *entity.Survey
	Proposal        *entity.Proposal
	ProposalURL     string
	Recommendations []mailRecommendation
}

var customerMailTemplate = template.Must(template.New("customer").Parse(`<div style="font-family: 'Helvetica Neue', Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <div style="background: #667eea; color: white; padding: 30px; text-align: center;">
    <h1 style="margin: 0; font-size: 24px;">AI活用提案書をお送りいたします</h1>
    <p style="margin: 10px 0 0 0;">{{.Survey.CompanyName}} 様</p>
  </div>
  <div style="padding: 30px; background: white;">
    <p>{{.Survey.ContactInfo.Name}} 様</p>
    <p>この度は、AI活用ニーズ調査にご協力いただき、誠にありがとうございました。</p>
    <p>お聞かせいただいた課題を基に、AIによる自動分析を行い、貴社に最適な業務効率化提案を作成させていただきました。</p>
    <div style="background: #f8f9fa; padding: 20px; border-radius: 8px; margin: 20px 0;">
      <h3 style="margin: 0 0 15px 0;">提案サマリー</h3>
      <p style="margin: 0;">{{.Proposal.Summary}}</p>
    </div>
    {{range .Recommendations}}<div style="background: #e3f2fd; padding: 15px; border-radius: 6px; text-align: center; margin-bottom: 10px;">
      <div style="font-weight: bold; color: #1565c0;">{{.Category}}</div>
      <div style="font-size: 28px; font-weight: bold; color: #1565c0;">{{.Savings}}</div>
      <div style="font-size: 12px; color: #555;">時間/月の削減予想</div>
    </div>{{end}}
    <p>詳細な提案書は、オンラインでご確認いただけます。また、PDF版のダウンロードも可能です。</p>
    <div style="text-align: center; margin: 30px 0;">
      <a href="{{.ProposalURL}}" style="display: inline-block; background: #667eea; color: white; padding: 15px 30px; text-decoration: none; border-radius: 6px; font-weight: bold;">提案書を確認する</a>
    </div>
    <p>ご質問やご相談がございましたら、お気軽にお声がけください。3営業日以内に担当者よりご連絡させていただきます。</p>
  </div>
  <div style="padding: 20px; background: #f8f9fa; text-align: center; border-top: 1px solid #dee2e6;">
    <p style="margin: 0; color: #6c757d; font-size: 12px;">このメールは AI活用ニーズ調査システムより自動送信されています。</p>
  </div>
</div>`))

// CustomerEmailChannel mails the thank-you message with the online proposal
// link back to the survey submitter
type CustomerEmailChannel struct {
	sender  *smtpSender
	baseURL string
}

func NewCustomerEmailChannel(sender *smtpSender, baseURL string) *CustomerEmailChannel {
	return &CustomerEmailChannel{
		sender:  sender,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (c *CustomerEmailChannel) Name() string {
	return "customer-email"
}

func (c *CustomerEmailChannel) Send(ctx context.Context, survey *entity.Survey, proposal *entity.Proposal) error {
	data := customerMailData{
		Survey:      survey,
		Proposal:    proposal,
		ProposalURL: fmt.Sprintf("%s/proposal/%s", c.baseURL, proposal.ID),
	}
	for _, rec := range proposal.Recommendations {
		data.Recommendations = append(data.Recommendations, mailRecommendation{
			Category: rec.Category,
			Savings:  rec.TimeSavingEstimate,
		})
	}

	var body bytes.Buffer
	if err := customerMailTemplate.Execute(&body, data); err != nil {
		return fmt.Errorf("render customer mail: %w", err)
	}

	subject := fmt.Sprintf("【AI活用提案書】%s様専用の業務効率化提案をお送りします", survey.CompanyName)
	return c.sender.send(ctx, survey.ContactInfo.Email, subject, body.Bytes())
}

func orUnset(value string) string {
	if value == "" {
		return "未設定"
	}
	return value
}
