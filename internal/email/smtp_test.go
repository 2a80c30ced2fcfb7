package email

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildWelcome(t *testing.T) {
	m := buildWelcome("noreply@postwall.dev", "ann@x.com", "<Ann>")

	assert.Equal(t, []string{"ann@x.com"}, m.GetHeader("To"))
	assert.Equal(t, []string{"Welcome to postwall"}, m.GetHeader("Subject"))

	var buf bytes.Buffer
	_, err := m.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Hi <Ann>,")
	assert.Contains(t, buf.String(), "&lt;Ann&gt;")
}

func TestNewSMTPSenderDefaults(t *testing.T) {
	s := NewSMTPSender(SMTPConfig{Host: "smtp.example.com", TLSMode: "ssl"})
	assert.Equal(t, 587, s.cfg.Port)
	assert.True(t, s.dialer.SSL)
}

func TestNoopSender(t *testing.T) {
	assert.NoError(t, NoopSender{}.SendWelcome(context.Background(), "a@x.com", "A"))
}
