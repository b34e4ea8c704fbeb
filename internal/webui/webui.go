package webui

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"sip-dialer/pkg/logger"

	"github.com/gin-gonic/gin"
)

//go:embed templates/index.html assets/app.js
var content embed.FS

// PageData parameterizes the dialer page. The SIP address is rendered for
// operator visibility only; the actual dial target lives server-side.
type PageData struct {
	SIPAddress string
}

type Handler struct {
	tmpl *template.Template
	data PageData
}

func New(sipAddress string) (*Handler, error) {
	tmpl, err := template.ParseFS(content, "templates/index.html")
	if err != nil {
		return nil, err
	}
	return &Handler{tmpl: tmpl, data: PageData{SIPAddress: sipAddress}}, nil
}

// Index renders the dialer page.
func (h *Handler) Index(c *gin.Context) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := h.tmpl.ExecuteTemplate(c.Writer, "index.html", h.data); err != nil {
		logger.FromGin(c).Error("page render failed", "err", err)
	}
}

// Assets exposes the embedded dialer script for serving under /assets.
func Assets() (http.FileSystem, error) {
	sub, err := fs.Sub(content, "assets")
	if err != nil {
		return nil, err
	}
	return http.FS(sub), nil
}
