package service

import (
	"errors"
	"fmt"
	"strings"

	"sftpconfig"
	"sftpconfig/internal/api/handler/mapper"
	"sftpconfig/internal/api/handler/request"
	"sftpconfig/internal/api/models"
	"sftpconfig/internal/api/repo"
	"sftpconfig/internal/connector"
	"sftpconfig/internal/schema"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// SftpConnectionService manages stored SFTP writer configurations.
// Every write is validated against the form schema before it reaches
// the database.
type SftpConnectionService struct {
	connectionRepo   *repo.SftpConnectionRepository
	events           *EventService
	logger           zerolog.Logger
	connectionMapper mapper.ConnectionMapper
}

func NewSftpConnectionService() *SftpConnectionService {
	return &SftpConnectionService{
		connectionRepo:   repo.NewSftpConnectionRepository(),
		events:           NewEventService(),
		logger:           sftpconfig.Logger,
		connectionMapper: mapper.NewConnectionMapper(),
	}
}

func (slf *SftpConnectionService) FindAll() ([]models.SftpConnection, error) {
	return slf.connectionRepo.FindAll()
}

func (slf *SftpConnectionService) FindByID(id uint) (*models.SftpConnection, error) {
	connection, err := slf.connectionRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	return &connection, nil
}

func (slf *SftpConnectionService) Create(req request.CreateConnection) (*models.SftpConnection, error) {
	exists, err := slf.connectionRepo.ExistsByName(req.Name)
	if err != nil {
		slf.logger.Error().Err(err).Msg("Error checking if connection exists")
		return nil, err
	}
	if exists {
		return nil, errors.New("connection with this name already exists")
	}

	connection := slf.connectionMapper.CreateConnection(req)
	if connection.Port == 0 {
		connection.Port = schema.DefaultPort
	}
	if err := slf.validateFields(connection); err != nil {
		return nil, err
	}

	connection.ExternalID = uuid.NewString()
	if err := slf.connectionRepo.Create(&connection); err != nil {
		slf.logger.Error().Err(err).Msg("Error creating connection")
		return nil, err
	}

	slf.events.PublishConnectionEvent(EventCreated, connection)
	slf.logger.Info().Uint("connectionId", connection.ID).Str("name", connection.Name).Msg("Connection created")
	return &connection, nil
}

func (slf *SftpConnectionService) Update(id uint, req request.UpdateConnection) (*models.SftpConnection, error) {
	existing, err := slf.connectionRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	merged := existing
	applyUpdate(&merged, req)
	if err := slf.validateFields(merged); err != nil {
		return nil, err
	}

	patch := slf.connectionMapper.PatchConnection(req)
	if len(patch) > 0 {
		if err := slf.connectionRepo.Updates(id, patch); err != nil {
			slf.logger.Error().Err(err).Uint("connectionId", id).Msg("Error updating connection")
			return nil, err
		}
	}

	updated, err := slf.connectionRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	slf.events.PublishConnectionEvent(EventUpdated, updated)
	return &updated, nil
}

func (slf *SftpConnectionService) Delete(id uint) error {
	connection, err := slf.connectionRepo.FindByID(id)
	if err != nil {
		return err
	}

	if err := slf.connectionRepo.Delete(id); err != nil {
		slf.logger.Error().Err(err).Uint("connectionId", id).Msg("Error deleting connection")
		return err
	}

	slf.events.PublishConnectionEvent(EventDeleted, connection)
	return nil
}

// validateFields runs the form schema over the connection the way the
// configuration UI would, plus a key material check. Secrets never
// appear in the returned error.
func (slf *SftpConnectionService) validateFields(connection models.SftpConnection) error {
	doc := schema.SftpWriter()
	errs := doc.ValidateConfig(map[string]any{
		schema.KeyHostname:   connection.Hostname,
		schema.KeyPort:       connection.Port,
		schema.KeyUser:       connection.User,
		schema.KeyPassword:   connection.Password,
		schema.KeyPrivateKey: connection.PrivateKey,
	})

	if connection.PrivateKey != "" {
		if _, err := connector.ParsePrivateKey(connection.PrivateKey); err != nil {
			errs = append(errs, schema.FieldError{Field: schema.KeyPrivateKey, Message: err.Error()})
		}
	}

	if len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, e := range errs {
			msgs[i] = e.Error()
		}
		return fmt.Errorf("invalid connection: %s", strings.Join(msgs, "; "))
	}
	return nil
}

func applyUpdate(connection *models.SftpConnection, req request.UpdateConnection) {
	if req.Name != nil {
		connection.Name = *req.Name
	}
	if req.Hostname != nil {
		connection.Hostname = *req.Hostname
	}
	if req.Port != nil {
		connection.Port = *req.Port
	}
	if req.User != nil {
		connection.User = *req.User
	}
	if req.Password != nil {
		connection.Password = *req.Password
	}
	if req.PrivateKey != nil {
		connection.PrivateKey = *req.PrivateKey
	}
	if req.Path != nil {
		connection.Path = *req.Path
	}
	if req.AppendDate != nil {
		connection.AppendDate = *req.AppendDate
	}
}
