package controllers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PageController serves the static marketing pages out of ComponentsDir.
type PageController struct {
	ComponentsDir string
	Logger        *zap.Logger
}

func NewPageController(componentsDir string, logger *zap.Logger) *PageController {
	return &PageController{ComponentsDir: componentsDir, Logger: logger}
}

// Serve returns a handler for one named page. A missing backing file is a
// soft failure: the visitor still gets a 200 with a generic not-found body
// rather than a browser error page, and the miss is logged for ops.
func (p *PageController) Serve(filename string) gin.HandlerFunc {
	return func(c *gin.Context) {
		content, err := os.ReadFile(filepath.Join(p.ComponentsDir, filename))
		if err != nil {
			p.Logger.Warn("Page file missing",
				zap.String("file", filename),
				zap.Error(err),
			)
			c.Data(http.StatusOK, "text/html; charset=utf-8",
				[]byte("<html><body><h1>Page not found</h1></body></html>"))
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", content)
	}
}
