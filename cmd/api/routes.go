package main

import (
	"sip-dialer/internal/config"
	"sip-dialer/internal/httpapi"
	"sip-dialer/internal/telephony"
	"sip-dialer/internal/webui"

	"github.com/gin-gonic/gin"
)

// registerRoutes wires HTTP routes to handlers.
// Keep this file free of business logic. Handlers should delegate to internal modules.
func registerRoutes(r *gin.Engine, cfg config.Config, issuer httpapi.TokenIssuer, page *webui.Handler) error {
	api := httpapi.Handlers{Issuer: issuer}

	r.GET("/", page.Index)
	r.GET("/token", api.Token)
	r.GET("/health", api.Health)

	// Embedded dialer script.
	assets, err := webui.Assets()
	if err != nil {
		return err
	}
	r.StaticFS("/assets", assets)

	// On-disk dir re-exposing the vendor SDK bundle (twilio.min.js).
	r.Static("/static", cfg.HTTP.StaticDir)

	// Platform webhooks (public).
	// NOTE: these should be protected by Twilio signature validation in production.
	wh := telephony.WebhookHandler{
		Plan: telephony.DialPlan{
			Target:   cfg.Call.SIPAddress,
			CallerID: cfg.Call.CallerID,
		},
	}
	r.POST(cfg.VoiceWebhookRoute(), wh.HandleVoiceWebhook)
	r.POST(cfg.StatusCallbackRoute(), wh.HandleStatusCallback)

	// Everything else, including wrong methods on known routes, is logged
	// for integration visibility.
	r.NoRoute(httpapi.NotFound)

	return nil
}
