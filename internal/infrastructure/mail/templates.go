package mail

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"
)

const verificationText = `Hello {{.Name}},

Your verification code is: {{.Code}}

This code is valid for 5 minutes.

Best regards,
CorpHunt Team
`

const verificationHTML = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">Email Verification</h2>
  <p>Hello <strong>{{.Name}}</strong>,</p>
  <p>Your verification code is:</p>
  <div style="background-color: #f0f0f0; padding: 20px; text-align: center; margin: 20px 0; border-radius: 8px;">
    <span style="font-size: 28px; font-weight: bold; color: #007bff; letter-spacing: 2px;">{{.Code}}</span>
  </div>
  <p>This code is valid for 5 minutes.</p>
  <p>If you didn't request this code, please ignore this email.</p>
  <p>Best regards,<br>CorpHunt Team</p>
</div>
`

const welcomeText = `Hello {{.Name}},

Thanks for signing up! Your account is verified and ready to use.

Best regards,
CorpHunt Team
`

const welcomeHTML = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">Welcome to CorpHunt</h2>
  <p>Hello <strong>{{.Name}}</strong>,</p>
  <p>Thanks for signing up! Your account is verified and ready to use.</p>
  <p>Best regards,<br>CorpHunt Team</p>
</div>
`

var (
	verificationTextTmpl = texttemplate.Must(texttemplate.New("verification_text").Parse(verificationText))
	verificationHTMLTmpl = htmltemplate.Must(htmltemplate.New("verification_html").Parse(verificationHTML))
	welcomeTextTmpl      = texttemplate.Must(texttemplate.New("welcome_text").Parse(welcomeText))
	welcomeHTMLTmpl      = htmltemplate.Must(htmltemplate.New("welcome_html").Parse(welcomeHTML))
)

type templateData struct {
	Name string
	Code string
}

func renderVerification(name, code string) (text, html string, err error) {
	return render(verificationTextTmpl, verificationHTMLTmpl, templateData{Name: name, Code: code})
}

func renderWelcome(name string) (text, html string, err error) {
	return render(welcomeTextTmpl, welcomeHTMLTmpl, templateData{Name: name})
}

func render(textTmpl *texttemplate.Template, htmlTmpl *htmltemplate.Template, data templateData) (string, string, error) {
	var textBuf, htmlBuf bytes.Buffer
	if err := textTmpl.Execute(&textBuf, data); err != nil {
		return "", "", fmt.Errorf("render text body: %w", err)
	}
	if err := htmlTmpl.Execute(&htmlBuf, data); err != nil {
		return "", "", fmt.Errorf("render html body: %w", err)
	}
	return textBuf.String(), htmlBuf.String(), nil
}
