package telephony

import (
	"net/http"
	"strings"
)

// VoiceWebhookForm captures the subset of voice webhook fields worth logging.
// Twilio sends application/x-www-form-urlencoded by default.
// Ref: https://www.twilio.com/docs/voice/twiml
//
// The routing response never branches on any of these; they exist for
// operational visibility only.
type VoiceWebhookForm struct {
	CallSid        string
	AccountSid     string
	ApplicationSid string
	From           string
	To             string
	Caller         string
	Direction      string
	CallStatus     string
	ApiVersion     string
}

func ParseVoiceWebhook(r *http.Request) (VoiceWebhookForm, error) {
	if err := r.ParseForm(); err != nil {
		return VoiceWebhookForm{}, err
	}
	return VoiceWebhookForm{
		CallSid:        strings.TrimSpace(r.PostFormValue("CallSid")),
		AccountSid:     strings.TrimSpace(r.PostFormValue("AccountSid")),
		ApplicationSid: strings.TrimSpace(r.PostFormValue("ApplicationSid")),
		From:           strings.TrimSpace(r.PostFormValue("From")),
		To:             strings.TrimSpace(r.PostFormValue("To")),
		Caller:         strings.TrimSpace(r.PostFormValue("Caller")),
		Direction:      strings.TrimSpace(r.PostFormValue("Direction")),
		CallStatus:     strings.TrimSpace(r.PostFormValue("CallStatus")),
		ApiVersion:     strings.TrimSpace(r.PostFormValue("ApiVersion")),
	}, nil
}

// StatusCallbackForm captures the subset of status callback fields worth
// logging. Everything else in the payload is acknowledged and dropped.
type StatusCallbackForm struct {
	CallSid      string
	CallStatus   string
	CallDuration string
	Timestamp    string
}

func ParseStatusCallback(r *http.Request) (StatusCallbackForm, error) {
	if err := r.ParseForm(); err != nil {
		return StatusCallbackForm{}, err
	}
	return StatusCallbackForm{
		CallSid:      strings.TrimSpace(r.PostFormValue("CallSid")),
		CallStatus:   strings.TrimSpace(r.PostFormValue("CallStatus")),
		CallDuration: strings.TrimSpace(r.PostFormValue("CallDuration")),
		Timestamp:    strings.TrimSpace(r.PostFormValue("Timestamp")),
	}, nil
}
