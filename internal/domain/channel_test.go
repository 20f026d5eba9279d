package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannelResults(t *testing.T) {
	t.Parallel()

	results := ChannelResults{
		{Channel: ChannelEmail, Success: false, ErrorMessage: "smtp down"},
		{Channel: ChannelSMS, Success: true},
		{Channel: ChannelWebhook, Success: false, ErrorMessage: "status 500"},
	}
	assert.Equal(t, 1, results.Succeeded())
	assert.Len(t, results.Failed(), 2)

	err := results.Err()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email: smtp down")
	assert.Contains(t, err.Error(), "webhook: status 500")

	assert.NoError(t, ChannelResults{{Channel: ChannelSMS, Success: true}}.Err())
	assert.NoError(t, ChannelResults{}.Err())
}

func TestChannels_Order(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []Channel{ChannelEmail, ChannelSMS, ChannelWhatsApp, ChannelWebhook}, Channels())
}
