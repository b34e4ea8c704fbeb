package telephony

import (
	"net/http"

	"sip-dialer/pkg/logger"

	"github.com/gin-gonic/gin"
)

// WebhookHandler answers Twilio's voice webhook and status callbacks.
//
// The voice response is a pure function of the configured dial plan; request
// metadata is parsed only so the call can be traced in logs. The status sink
// acknowledges unconditionally so the platform never retries against us.
type WebhookHandler struct {
	Plan DialPlan
}

func (h WebhookHandler) HandleVoiceWebhook(c *gin.Context) {
	log := logger.FromGin(c)

	form, err := ParseVoiceWebhook(c.Request)
	if err != nil {
		// The response never depends on the body; dial the plan anyway.
		log.Warn("voice webhook parse failed", "err", err)
	} else {
		log.Info("voice webhook",
			"call_sid", form.CallSid,
			"from", form.From,
			"to", form.To,
			"direction", form.Direction,
			"status", form.CallStatus,
		)
	}

	twiml, err := RenderDialTwiML(h.Plan)
	if err != nil {
		log.Error("twiml render failed", "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "twiml failed"})
		return
	}

	log.Info("dialing configured target", "target", h.Plan.Target, "caller_id", h.Plan.CallerID)

	c.Header("Content-Type", "text/xml; charset=utf-8")
	c.String(http.StatusOK, twiml)
}

func (h WebhookHandler) HandleStatusCallback(c *gin.Context) {
	log := logger.FromGin(c)

	form, err := ParseStatusCallback(c.Request)
	if err != nil {
		// Ack anyway; an unparseable callback is not worth a retry storm.
		log.Warn("status callback parse failed", "err", err)
		c.String(http.StatusOK, "ok")
		return
	}

	log.Info("call status",
		"call_sid", form.CallSid,
		"status", form.CallStatus,
		"duration", form.CallDuration,
	)

	c.String(http.StatusOK, "ok")
}
