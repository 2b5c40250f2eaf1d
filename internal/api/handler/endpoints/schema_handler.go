package endpoints

import (
	"io"
	"net/http"

	"sftpconfig"
	"sftpconfig/internal/api/handler/response"
	"sftpconfig/internal/api/service"

	"github.com/gin-contrib/graceful"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type schemaHandler struct {
	schemaService *service.SchemaService
	logger        zerolog.Logger
}

func newSchemaHandler() *schemaHandler {
	return &schemaHandler{
		schemaService: service.NewSchemaService(),
		logger:        sftpconfig.Logger,
	}
}

// SchemaHandler sets up configuration schema routes. The schema itself
// is public: the form renderer fetches it before any user is known.
func SchemaHandler(router *graceful.Graceful) {
	h := newSchemaHandler()

	routes := router.Group("/api/v1/schema")
	{
		routes.GET("/sftp-writer", h.getSftpWriter)
		routes.POST("/sftp-writer/validate", h.validateConfig)
	}
}

// getSftpWriter serves the SFTP writer configuration form schema
func (slf *schemaHandler) getSftpWriter(c *gin.Context) {
	c.Data(http.StatusOK, "application/json", slf.schemaService.SftpWriterDocument())
}

// validateConfig validates a raw configuration object against the schema
func (slf *schemaHandler) validateConfig(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.APIError{Message: "Failed to read request body"})
		return
	}

	result, err := slf.schemaService.ValidateRaw(body)
	if err != nil {
		slf.logger.Error().Err(err).Msg("Failed to parse configuration payload")
		c.JSON(http.StatusBadRequest, response.APIError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
