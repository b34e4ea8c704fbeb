package token

import (
	"errors"
	"strings"
	"time"

	"sip-dialer/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Issuer mints Twilio access tokens for the browser SDK.
//
// The token shape is dictated by Twilio's first-party auth contract:
// HS256 JWT signed with the API key secret, content-type header
// "twilio-fpa;v=1", issuer = API key SID, subject = account SID, and a
// grants claim carrying the client identity plus a voice grant.
//
// Tokens are verified by Twilio, never by this service.
type Issuer struct {
	accountSID string
	keySID     string
	secret     []byte
	appSID     string
	identity   string
	ttl        time.Duration
}

const contentType = "twilio-fpa;v=1"

var ErrBadKeyMaterial = errors.New("token: signing key material is empty")

func NewIssuer(tw config.TwilioConfig, call config.CallConfig) *Issuer {
	return &Issuer{
		accountSID: tw.AccountSID,
		keySID:     tw.APIKeySID,
		secret:     []byte(tw.APIKeySecret),
		appSID:     tw.TwiMLAppSID,
		identity:   call.CallerID,
		ttl:        tw.TokenTTL,
	}
}

// Claims is the Twilio access-token claim set.
type Claims struct {
	jwt.RegisteredClaims

	Grants Grants `json:"grants"`
}

type Grants struct {
	Identity string     `json:"identity"`
	Voice    VoiceGrant `json:"voice"`
}

type VoiceGrant struct {
	Outgoing OutgoingGrant `json:"outgoing"`
	Incoming IncomingGrant `json:"incoming"`
}

type OutgoingGrant struct {
	ApplicationSID string `json:"application_sid"`
}

type IncomingGrant struct {
	Allow bool `json:"allow"`
}

// Issue returns a serialized access token valid from now until now+TTL.
// Errors never include key material.
func (i *Issuer) Issue(now time.Time) (string, error) {
	if len(strings.TrimSpace(string(i.secret))) == 0 {
		return "", ErrBadKeyMaterial
	}

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    i.keySID,
			Subject:   i.accountSID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
			ID:        i.keySID + "-" + uuid.NewString(),
		},
		Grants: Grants{
			Identity: i.identity,
			Voice: VoiceGrant{
				Outgoing: OutgoingGrant{ApplicationSID: i.appSID},
				// Inbound calling is deliberately disabled for this client.
				Incoming: IncomingGrant{Allow: false},
			},
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	t.Header["cty"] = contentType

	signed, err := t.SignedString(i.secret)
	if err != nil {
		return "", errors.New("token: signing failed")
	}
	return signed, nil
}
