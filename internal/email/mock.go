package email

import "sync"

// MockProvider records sent mail instead of delivering it. Used in tests and
// when SMTP is not configured.
type MockProvider struct {
	mu   sync.Mutex
	Sent []SentMail
}

type SentMail struct {
	To    string
	Kind  string
	Token string
}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (p *MockProvider) record(to, kind, token string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Sent = append(p.Sent, SentMail{To: to, Kind: kind, Token: token})
}

func (p *MockProvider) SendVerificationEmail(to, _ string, token string) error {
	p.record(to, "verification", token)
	return nil
}

func (p *MockProvider) SendPasswordResetEmail(to, _ string, token string) error {
	p.record(to, "password_reset", token)
	return nil
}

func (p *MockProvider) SendAccountRestoredEmail(to, _ string) error {
	p.record(to, "account_restored", "")
	return nil
}
