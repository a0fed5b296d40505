package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Mailer 抽象单封邮件的外发。实现必须对每个收件人独立失败。
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

// resendEndpoint 是 Resend 邮件 API 地址。
const resendEndpoint = "https://api.resend.com/emails"

// resendEmailRequest represents the request payload for the Resend API.
type resendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html,omitempty"`
}

// resendErrorResponse represents an error response from the Resend API.
type resendErrorResponse struct {
	Message string `json:"message"`
}

// ResendMailer 通过 Resend HTTP API 外发邮件。
type ResendMailer struct {
	apiKey   string
	from     string
	endpoint string
	client   *http.Client
}

// NewResendMailer creates a ResendMailer. apiKey 为空时 Send 直接报错，
// 由调用方决定是否静默跳过外发。
func NewResendMailer(apiKey, from string) *ResendMailer {
	if from == "" {
		from = "Inkwell <[email protected]>"
	}
	return &ResendMailer{
		apiKey:   apiKey,
		from:     from,
		endpoint: resendEndpoint,
		client:   &http.Client{Timeout: 15 * time.Second},
	}
}

// Send 投递一封邮件给单个收件人。
func (m *ResendMailer) Send(to, subject, htmlBody string) error {
	if m.apiKey == "" {
		return errors.New("mailer disabled: RESEND_API_KEY not configured")
	}

	payload, err := json.Marshal(resendEmailRequest{
		From:    m.from,
		To:      []string{to},
		Subject: subject,
		HTML:    htmlBody,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, m.endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		var apiErr resendErrorResponse
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Message != "" {
			return fmt.Errorf("resend: %s (status %d)", apiErr.Message, resp.StatusCode)
		}
		return fmt.Errorf("resend: unexpected status %d", resp.StatusCode)
	}

	return nil
}
