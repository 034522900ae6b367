package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/reddsec/scoreboard/internal/common"
)

const sendTimeout = 10 * time.Second

// ResendMailer sends email through https://resend.com. The endpoint is
// configurable so tests can point it at a local server.
type ResendMailer struct {
	endpoint string
	apiKey   string
	from     string
	client   *http.Client
}

func NewResendMailer(endpoint string, apiKey string, from string) *ResendMailer {
	return &ResendMailer{
		endpoint: endpoint,
		apiKey:   apiKey,
		from:     from,
		client:   &http.Client{Timeout: sendTimeout},
	}
}

type resendRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// SendVerificationCode emails the 6-digit code to the address. A non-2xx
// response from the API is reported as common.ErrorMailDelivery.
func (m *ResendMailer) SendVerificationCode(ctx context.Context, to string, code string) error {
	payload := resendRequest{
		From:    m.from,
		To:      to,
		Subject: "【reddsec】認証コードの確認",
		HTML: fmt.Sprintf(`<div style="font-family: sans-serif; padding: 20px; border: 1px solid #ddd; border-radius: 10px;">
			<h2 style="color: #38bdf8;">reddsec へのご登録ありがとうございます</h2>
			<p>認証コードを入力してください：</p>
			<p style="font-size: 24px; font-weight: bold; letter-spacing: 5px; background: #f4f4f4; padding: 10px; text-align: center; border-radius: 5px;">%s</p>
			<p style="color: #666; font-size: 12px;">※有効期限は5分間です。</p>
		</div>`, code),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("error marshalling mail request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("error creating mail request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrorMailDelivery, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: unexpected status %d", common.ErrorMailDelivery, resp.StatusCode)
	}
	return nil
}
