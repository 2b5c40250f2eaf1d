package mapper

import (
	"sftpconfig/internal/api/handler/request"
	"sftpconfig/internal/api/handler/response"
	"sftpconfig/internal/api/models"
	"sftpconfig/internal/connector"
)

// SecretMask replaces stored secret values in API responses.
const SecretMask = "*****"

// ConnectionMapper maps between SFTP connection entities and DTOs.
type ConnectionMapper struct{}

func NewConnectionMapper() ConnectionMapper {
	return ConnectionMapper{}
}

func (m ConnectionMapper) ToConnectionResponses(entities []models.SftpConnection) []response.Connection {
	responses := make([]response.Connection, len(entities))
	for i, e := range entities {
		responses[i] = m.ToConnectionResponse(e)
	}
	return responses
}

func (m ConnectionMapper) ToConnectionResponse(mo models.SftpConnection) response.Connection {
	cfg := connector.Config{Password: mo.Password, PrivateKey: mo.PrivateKey}
	return response.Connection{
		ID:         mo.ID,
		ExternalID: mo.ExternalID,
		Name:       mo.Name,
		Hostname:   mo.Hostname,
		Port:       mo.Port,
		User:       mo.User,
		Password:   maskSecret(mo.Password),
		PrivateKey: maskSecret(mo.PrivateKey),
		Path:       mo.Path,
		AppendDate: mo.AppendDate,
		AuthMethod: string(cfg.Auth()),
	}
}

func (m ConnectionMapper) CreateConnection(req request.CreateConnection) models.SftpConnection {
	return models.SftpConnection{
		Name:       req.Name,
		Hostname:   req.Hostname,
		Port:       req.Port,
		User:       req.User,
		Password:   req.Password,
		PrivateKey: req.PrivateKey,
		Path:       req.Path,
		AppendDate: req.AppendDate,
	}
}

func (m ConnectionMapper) PatchConnection(req request.UpdateConnection) map[string]any {
	patch := map[string]any{}
	if req.Name != nil {
		patch["name"] = *req.Name
	}
	if req.Hostname != nil {
		patch["hostname"] = *req.Hostname
	}
	if req.Port != nil {
		patch["port"] = *req.Port
	}
	if req.User != nil {
		patch["user"] = *req.User
	}
	if req.Password != nil {
		patch["password"] = *req.Password
	}
	if req.PrivateKey != nil {
		patch["private_key"] = *req.PrivateKey
	}
	if req.Path != nil {
		patch["path"] = *req.Path
	}
	if req.AppendDate != nil {
		patch["append_date"] = *req.AppendDate
	}
	return patch
}

func maskSecret(value string) string {
	if value == "" {
		return ""
	}
	return SecretMask
}
