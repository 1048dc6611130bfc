package share

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/manav03panchal/milkledger/internal/config"
	"github.com/manav03panchal/milkledger/internal/errors"
	"github.com/manav03panchal/milkledger/internal/ledger"
	"github.com/manav03panchal/milkledger/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func januaryStats() ledger.MonthlyStats {
	var records []model.DailyRecord
	for day := 1; day <= 15; day++ {
		records = append(records, model.DailyRecord{
			Date:    time.Date(2024, time.January, day, 0, 0, 0, 0, time.Local).Format(model.DateLayout),
			Cow:     day <= 10,
			Buffalo: day >= 8,
		})
	}
	return ledger.Aggregate(records, ledger.Period{Year: 2024, Month: time.January}, model.DefaultPrices())
}

const wantJanuaryText = `🥛 *દૂધનો હિસાબ - જાન્યુઆરી 2024* 🥛

🗓 કુલ દિવસ: 15

🐄 *ગાય:*
- દિવસ: 10
- ભાવ: ₹60
- રકમ: ₹600

🐃 *ભેંસ:*
- દિવસ: 8
- ભાવ: ₹80
- રકમ: ₹640

💰 *કુલ બાકી રકમ: ₹1240*

(દૂધનો હિસાબ એપ દ્વારા જનરેટ કરેલ)`

func TestBuildText(t *testing.T) {
	assert.Equal(t, wantJanuaryText, BuildText("જાન્યુઆરી 2024", januaryStats()))
}

func TestEncodeComponent(t *testing.T) {
	assert.Equal(t, "a%20b", EncodeComponent("a b"))
	assert.Equal(t, "*bold*!(x)~'", EncodeComponent("*bold*!(x)~'"))
	assert.Equal(t, "%0A%E2%82%B9", EncodeComponent("\n₹"))
	assert.Equal(t, "a%2Bb%26c%3Dd", EncodeComponent("a+b&c=d"))
}

func TestLinkRoundTrip(t *testing.T) {
	text := BuildText("જાન્યુઆરી 2024", januaryStats())
	link := Link(text)

	require.True(t, strings.HasPrefix(link, "https://wa.me/?text="))
	assert.NotContains(t, link, "+")

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, text, u.Query().Get("text"))
}

func TestLinkSink(t *testing.T) {
	out, err := LinkSink{}.Share(context.Background(), "hello world")
	require.NoError(t, err)
	assert.Equal(t, "https://wa.me/?text=hello%20world", out.Link)
	assert.Empty(t, out.MessageID)
}

func TestNewCloudSinkRequiresConfig(t *testing.T) {
	_, err := NewCloudSink(config.WhatsAppConfig{AccessToken: "t"})
	require.Error(t, err)
	assert.True(t, errors.IsUserError(err))
	assert.ErrorIs(t, err, errors.ErrShareNotConfigured)
}

func TestCloudSinkShare(t *testing.T) {
	var body map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v20.0/12345/messages", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"messaging_product":"whatsapp","messages":[{"id":"wamid.ABC"}]}`))
	}))
	defer server.Close()

	sink, err := NewCloudSink(config.WhatsAppConfig{
		AccessToken:   "tok",
		PhoneNumberID: "12345",
		To:            "+919876543210",
		BaseURL:       server.URL + "/",
		APIVersion:    "v20.0",
	})
	require.NoError(t, err)

	out, err := sink.Share(context.Background(), "hisab")
	require.NoError(t, err)
	assert.Equal(t, "wamid.ABC", out.MessageID)
	assert.Equal(t, "919876543210", body["to"])
	assert.Equal(t, "hisab", body["text"].(map[string]any)["body"])
}

func TestCloudSinkAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"Invalid parameter","type":"OAuthException","code":100}}`))
	}))
	defer server.Close()

	sink, err := NewCloudSink(config.WhatsAppConfig{
		AccessToken: "tok", PhoneNumberID: "1", To: "919876543210",
		BaseURL: server.URL, APIVersion: "v20.0",
	})
	require.NoError(t, err)

	_, err = sink.Share(context.Background(), "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "code=100")
	assert.Contains(t, err.Error(), "Invalid parameter")
}
