package endpoints

import (
	"errors"
	"net/http"
	"strconv"

	"sftpconfig"
	"sftpconfig/internal/api/handler/mapper"
	"sftpconfig/internal/api/handler/middleware"
	"sftpconfig/internal/api/handler/request"
	"sftpconfig/internal/api/handler/response"
	"sftpconfig/internal/api/service"
	"sftpconfig/pkg"

	"github.com/gin-contrib/graceful"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type connectionHandler struct {
	connectionService *service.SftpConnectionService
	logger            zerolog.Logger
	config            sftpconfig.AppConfig
	connectionMapper  mapper.ConnectionMapper
}

func newConnectionHandler() *connectionHandler {
	return &connectionHandler{
		connectionService: service.NewSftpConnectionService(),
		logger:            sftpconfig.Logger,
		config:            sftpconfig.GetConfig(),
		connectionMapper:  mapper.NewConnectionMapper(),
	}
}

// ConnectionHandler sets up SFTP connection routes
func ConnectionHandler(router *graceful.Graceful) {
	h := newConnectionHandler()

	routes := router.Group("/api/v1/connections")
	routes.Use(middleware.AuthMiddleware(h.config))
	{
		routes.GET("", h.getAll)
		routes.GET("/:id", h.getByID)
		routes.POST("", h.create)
		routes.PUT("/:id", h.update)
		routes.DELETE("/:id", h.delete)
	}
}

// getAll returns all stored SFTP connections, secrets masked
func (slf *connectionHandler) getAll(c *gin.Context) {
	connections, err := slf.connectionService.FindAll()
	if err != nil {
		slf.logger.Error().Err(err).Msg("Failed to get all connections")
		c.JSON(http.StatusInternalServerError, response.APIError{Message: "Failed to retrieve connections"})
		return
	}

	c.JSON(http.StatusOK, slf.connectionMapper.ToConnectionResponses(connections))
}

// getByID returns a single SFTP connection by ID
func (slf *connectionHandler) getByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.APIError{Message: "Invalid ID"})
		return
	}

	connection, err := slf.connectionService.FindByID(uint(id))
	if err != nil {
		slf.logger.Error().Err(err).Uint64("id", id).Msg("Failed to get connection")
		c.JSON(http.StatusNotFound, response.APIError{Message: "Connection not found"})
		return
	}

	c.JSON(http.StatusOK, slf.connectionMapper.ToConnectionResponse(*connection))
}

// create stores a new SFTP connection
func (slf *connectionHandler) create(c *gin.Context) {
	var req request.CreateConnection
	if err := pkg.ParseAndValidate(c, &req); err != nil {
		slf.logger.Error().Err(err).Msg("Failed to parse create connection request")
		c.JSON(http.StatusBadRequest, response.APIError{Message: err.Error()})
		return
	}

	created, err := slf.connectionService.Create(req)
	if err != nil {
		slf.logger.Error().Err(err).Msg("Failed to create connection")
		c.JSON(http.StatusBadRequest, response.APIError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, slf.connectionMapper.ToConnectionResponse(*created))
}

// update patches an existing SFTP connection
func (slf *connectionHandler) update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.APIError{Message: "Invalid ID"})
		return
	}

	var req request.UpdateConnection
	if err := pkg.ParseAndValidate(c, &req); err != nil {
		slf.logger.Error().Err(err).Msg("Failed to parse update connection request")
		c.JSON(http.StatusBadRequest, response.APIError{Message: err.Error()})
		return
	}

	updated, err := slf.connectionService.Update(uint(id), req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, response.APIError{Message: "Connection not found"})
			return
		}
		slf.logger.Error().Err(err).Uint64("id", id).Msg("Failed to update connection")
		c.JSON(http.StatusBadRequest, response.APIError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, slf.connectionMapper.ToConnectionResponse(*updated))
}

// delete removes an SFTP connection
func (slf *connectionHandler) delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.APIError{Message: "Invalid ID"})
		return
	}

	if err := slf.connectionService.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, response.APIError{Message: "Connection not found"})
			return
		}
		slf.logger.Error().Err(err).Uint64("id", id).Msg("Failed to delete connection")
		c.JSON(http.StatusInternalServerError, response.APIError{Message: "Failed to delete connection"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id, "deleted": true})
}
