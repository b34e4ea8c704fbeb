package telephony

import (
	"bytes"
	"encoding/xml"
	"errors"
	"strings"
)

// Minimal TwiML builder. It intentionally avoids any provider SDK dependency;
// only the verbs needed at this boundary are modeled.

type twimlResponse struct {
	XMLName xml.Name `xml:"Response"`
	Dial    twimlDial
}

type twimlDial struct {
	XMLName  xml.Name  `xml:"Dial"`
	CallerID string    `xml:"callerId,attr,omitempty"`
	Number   string    `xml:"Number,omitempty"`
	Sip      *twimlSip `xml:"Sip,omitempty"`
}

type twimlSip struct {
	XMLName xml.Name `xml:"Sip"`
	URI     string   `xml:",chardata"`
}

// DialPlan is the fixed routing decision applied to every inbound webhook:
// dial one target with one caller identity.
type DialPlan struct {
	Target   string
	CallerID string
}

// RenderDialTwiML produces the <Response><Dial> document for a plan.
// A sip: target becomes <Sip>; anything else is dialed as a PSTN <Number>.
func RenderDialTwiML(plan DialPlan) (string, error) {
	target := strings.TrimSpace(plan.Target)
	if target == "" {
		return "", errors.New("telephony: dial target required")
	}

	d := twimlDial{CallerID: plan.CallerID}
	if strings.HasPrefix(strings.ToLower(target), "sip:") {
		d.Sip = &twimlSip{URI: target}
	} else {
		d.Number = target
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(twimlResponse{Dial: d}); err != nil {
		return "", err
	}
	if err := enc.Flush(); err != nil {
		return "", err
	}
	return buf.String(), nil
}
