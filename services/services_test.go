package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/rpupo63/constructco-site-backend/models"
)

func testInquiry() *models.ContactInquiry {
	phone := "555-0100"
	return &models.ContactInquiry{
		Name:        "Jane <Doe>",
		Email:       "jane@example.com",
		Phone:       &phone,
		Subject:     "villa Inquiry",
		Message:     "Need a villa\nwith a pool",
		ServiceType: "villa",
	}
}

func TestEmailNotifierSendsThroughResend(t *testing.T) {
	var got ResendEmailRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "Bearer re_test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"id":"email_123"}`))
	}))
	defer server.Close()

	notifier := NewEmailNotifier(NewResendClient("re_test", "Site <site@example.com>", server.URL), []string{"office@example.com"})
	require.NoError(t, notifier.NotifyInquiry(context.Background(), testInquiry()))

	assert.Equal(t, "Site <site@example.com>", got.From)
	assert.Equal(t, []string{"office@example.com"}, got.To)
	assert.Equal(t, "New inquiry: villa Inquiry", got.Subject)
	assert.Equal(t, "jane@example.com", got.ReplyTo)
	assert.Contains(t, got.Html, "Jane &lt;Doe&gt;")
	assert.Contains(t, got.Html, "Villa Construction")
	assert.Contains(t, got.Html, "Need a villa<br>with a pool")
}

func TestResendErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"invalid from address"}`))
	}))
	defer server.Close()

	client := NewResendClient("re_test", "bad", server.URL)
	err := client.SendEmail(context.Background(), ResendEmailRequest{To: []string{"a@example.com"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid from address")

	assert.Error(t, client.SendEmail(context.Background(), ResendEmailRequest{}))
}

type fakeMessages struct {
	params *twilioApi.CreateMessageParams
	err    error
}

func (f *fakeMessages) CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error) {
	f.params = params
	if f.err != nil {
		return nil, f.err
	}
	sid := "SM123"
	return &twilioApi.ApiV2010Message{Sid: &sid}, nil
}

func TestTwilioNotifier(t *testing.T) {
	fake := &fakeMessages{}
	notifier := &TwilioNotifier{api: fake, from: "+15550001111", to: normalizePhone("5550002222")}

	inquiry := testInquiry()
	inquiry.Message = strings.Repeat("x", 500)
	require.NoError(t, notifier.NotifyInquiry(context.Background(), inquiry))

	require.NotNil(t, fake.params)
	assert.Equal(t, "+15550002222", *fake.params.To)
	assert.Equal(t, "+15550001111", *fake.params.From)
	assert.Len(t, *fake.params.Body, maxSMSLength)
	assert.True(t, strings.HasPrefix(*fake.params.Body, "New inquiry from Jane <Doe> <jane@example.com> about Villa Construction"))

	fake.err = errors.New("twilio down")
	assert.Error(t, notifier.NotifyInquiry(context.Background(), inquiry))
}

func TestTwilioNotifierKeepsMultibyteMessageValid(t *testing.T) {
	fake := &fakeMessages{}
	notifier := &TwilioNotifier{api: fake, from: "+15550001111", to: "+15550002222"}

	for _, name := range []string{"J", "Jo"} {
		inquiry := testInquiry()
		inquiry.Name = name
		inquiry.Message = strings.Repeat("é", 400)
		require.NoError(t, notifier.NotifyInquiry(context.Background(), inquiry))

		body := *fake.params.Body
		assert.True(t, utf8.ValidString(body), "name %q", name)
		assert.LessOrEqual(t, len(body), maxSMSLength)
		assert.True(t, strings.HasSuffix(body, "é..."), "name %q", name)
	}
}

func TestTruncateBody(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		limit int
		want  string
	}{
		{"short", "hello", 10, "hello"},
		{"exact", "0123456789", 10, "0123456789"},
		{"ascii cut", "0123456789ab", 10, "0123456..."},
		{"backs off to rune start", "ab" + strings.Repeat("é", 5), 8, "abé..."},
		{"three byte runes", strings.Repeat("€", 4), 9, "€€..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncateBody(tt.body, tt.limit)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "+15550002222", normalizePhone("5550002222"))
	assert.Equal(t, "+15550002222", normalizePhone("15550002222"))
	assert.Equal(t, "+447700900123", normalizePhone(" +447700900123 "))
}

type recordingNotifier struct {
	calls int
	err   error
}

func (r *recordingNotifier) NotifyInquiry(ctx context.Context, inquiry *models.ContactInquiry) error {
	r.calls++
	return r.err
}

func TestNotifiersFanOutAndJoinErrors(t *testing.T) {
	first := &recordingNotifier{err: errors.New("smtp down")}
	second := &recordingNotifier{}
	third := &recordingNotifier{err: errors.New("sms down")}

	err := Notifiers{first, second, third}.NotifyInquiry(context.Background(), testInquiry())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "smtp down")
	assert.Contains(t, err.Error(), "sms down")
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 1, second.calls)
	assert.Equal(t, 1, third.calls)

	assert.NoError(t, Notifiers{}.NotifyInquiry(context.Background(), testInquiry()))
}

func TestNewNotifiersSkipsIncompleteChannels(t *testing.T) {
	assert.Empty(t, NewNotifiers(NotifySettings{ResendAPIKey: "re_test"}))

	notifiers := NewNotifiers(NotifySettings{
		ResendAPIKey:    "re_test",
		ResendFromEmail: "site@example.com",
		NotifyEmails:    []string{"office@example.com"},
	})
	require.Len(t, notifiers, 1)
	assert.IsType(t, &EmailNotifier{}, notifiers[0])
}

func TestNewNotifiersWarnsOnceWhenNothingConfigured(t *testing.T) {
	var buf bytes.Buffer
	previous := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = previous })

	assert.Empty(t, NewNotifiers(NotifySettings{}))
	assert.Equal(t, 1, strings.Count(buf.String(), "No inquiry notification channel configured"))
}

type fakePutter struct {
	input *s3.PutObjectInput
	body  string
}

func (f *fakePutter) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = params
	b, _ := io.ReadAll(params.Body)
	f.body = string(b)
	return &s3.PutObjectOutput{}, nil
}

func TestS3ImageStorePut(t *testing.T) {
	fake := &fakePutter{}
	store := newS3ImageStore(fake, StorageSettings{Bucket: "constructco-media", Region: "eu-west-1", KeyPrefix: "projects/"})

	url, err := store.Put(context.Background(), "Villa.JPG", "image/jpeg", strings.NewReader("jpeg bytes"))
	require.NoError(t, err)

	assert.Equal(t, "constructco-media", *fake.input.Bucket)
	assert.Equal(t, "image/jpeg", *fake.input.ContentType)
	assert.True(t, strings.HasPrefix(*fake.input.Key, "projects/"))
	assert.True(t, strings.HasSuffix(*fake.input.Key, ".jpg"))
	assert.Equal(t, "https://constructco-media.s3.eu-west-1.amazonaws.com/"+*fake.input.Key, url)
	assert.Equal(t, "jpeg bytes", fake.body)

	_, err = NewS3ImageStore(context.Background(), StorageSettings{})
	assert.ErrorIs(t, err, ErrStorageDisabled)
}
