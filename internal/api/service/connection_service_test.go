package service

import (
	"testing"

	"sftpconfig"
	"sftpconfig/internal/api/handler/request"
	"sftpconfig/internal/api/models"
	"sftpconfig/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupConnectionTestDB(t *testing.T) {
	sftpconfig.InitConfig("../../../.env.test")

	err := sftpconfig.DB.AutoMigrate(&models.SftpConnection{})
	require.NoError(t, err, "Failed to migrate sftp_connections table")
}

func cleanupConnection(t *testing.T, id uint) {
	if id > 0 {
		sftpconfig.DB.Unscoped().Delete(&models.SftpConnection{}, id)
	}
}

func TestConnection_Create(t *testing.T) {
	setupConnectionTestDB(t)

	service := NewSftpConnectionService()

	created, err := service.Create(request.CreateConnection{
		Name:     "Test Connection",
		Hostname: "sftp.example.com",
		Port:     2222,
		User:     "writer",
		Password: "secret",
		Path:     "/upload",
	})
	require.NoError(t, err, "Failed to create connection")
	require.NotNil(t, created)
	require.NotZero(t, created.ID)

	defer cleanupConnection(t, created.ID)

	assert.Equal(t, "Test Connection", created.Name)
	assert.Equal(t, "sftp.example.com", created.Hostname)
	assert.Equal(t, 2222, created.Port)
	assert.Equal(t, "writer", created.User)
	assert.Equal(t, "secret", created.Password)
	assert.Equal(t, "/upload", created.Path)
	assert.NotEmpty(t, created.ExternalID)
}

func TestConnection_Create_DefaultsPort(t *testing.T) {
	setupConnectionTestDB(t)

	service := NewSftpConnectionService()

	created, err := service.Create(request.CreateConnection{
		Name:     "Default Port Connection",
		Hostname: "sftp.example.com",
		User:     "writer",
		Password: "secret",
	})
	require.NoError(t, err)
	defer cleanupConnection(t, created.ID)

	assert.Equal(t, 22, created.Port)
}

func TestConnection_Create_DuplicateName(t *testing.T) {
	setupConnectionTestDB(t)

	service := NewSftpConnectionService()

	created, err := service.Create(request.CreateConnection{
		Name:     "Duplicate Connection",
		Hostname: "sftp.example.com",
		User:     "writer",
		Password: "secret",
	})
	require.NoError(t, err)
	defer cleanupConnection(t, created.ID)

	_, err = service.Create(request.CreateConnection{
		Name:     "Duplicate Connection",
		Hostname: "other.example.com",
		User:     "writer",
		Password: "secret",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestConnection_Create_RejectsBadKeyMaterial(t *testing.T) {
	setupConnectionTestDB(t)

	service := NewSftpConnectionService()

	_, err := service.Create(request.CreateConnection{
		Name:       "Bad Key Connection",
		Hostname:   "sftp.example.com",
		User:       "writer",
		PrivateKey: "not a private key",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "#private_key")
}

func TestConnection_FindByID(t *testing.T) {
	setupConnectionTestDB(t)

	service := NewSftpConnectionService()

	created, err := service.Create(request.CreateConnection{
		Name:     "Find Me Connection",
		Hostname: "sftp.find.com",
		User:     "writer",
		Password: "secret",
	})
	require.NoError(t, err)
	defer cleanupConnection(t, created.ID)

	found, err := service.FindByID(created.ID)
	require.NoError(t, err, "Failed to find connection by ID")
	require.NotNil(t, found)

	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "sftp.find.com", found.Hostname)
	assert.Equal(t, created.ExternalID, found.ExternalID)
}

func TestConnection_FindByID_NotFound(t *testing.T) {
	setupConnectionTestDB(t)

	service := NewSftpConnectionService()

	_, err := service.FindByID(99999)
	require.Error(t, err, "Should return error for non-existent ID")
}

func TestConnection_Update(t *testing.T) {
	setupConnectionTestDB(t)

	service := NewSftpConnectionService()

	created, err := service.Create(request.CreateConnection{
		Name:     "Update Me Connection",
		Hostname: "sftp.example.com",
		User:     "writer",
		Password: "secret",
	})
	require.NoError(t, err)
	defer cleanupConnection(t, created.ID)

	updated, err := service.Update(created.ID, request.UpdateConnection{
		Hostname: pkg.ToPtr("sftp.updated.com"),
		Port:     pkg.ToPtr(2222),
	})
	require.NoError(t, err, "Failed to update connection")

	assert.Equal(t, "sftp.updated.com", updated.Hostname)
	assert.Equal(t, 2222, updated.Port)
	assert.Equal(t, "writer", updated.User, "untouched fields must survive a patch")
}

func TestConnection_Update_NotFound(t *testing.T) {
	setupConnectionTestDB(t)

	service := NewSftpConnectionService()

	_, err := service.Update(99999, request.UpdateConnection{
		Hostname: pkg.ToPtr("sftp.updated.com"),
	})
	require.Error(t, err)
}

func TestConnection_Delete(t *testing.T) {
	setupConnectionTestDB(t)

	service := NewSftpConnectionService()

	created, err := service.Create(request.CreateConnection{
		Name:     "Delete Me Connection",
		Hostname: "sftp.example.com",
		User:     "writer",
		Password: "secret",
	})
	require.NoError(t, err)
	defer cleanupConnection(t, created.ID)

	err = service.Delete(created.ID)
	require.NoError(t, err, "Failed to delete connection")

	_, err = service.FindByID(created.ID)
	require.Error(t, err, "Deleted connection should not be found")
}

func TestConnection_FindAll(t *testing.T) {
	setupConnectionTestDB(t)

	service := NewSftpConnectionService()

	created, err := service.Create(request.CreateConnection{
		Name:     "List Me Connection",
		Hostname: "sftp.example.com",
		User:     "writer",
		Password: "secret",
	})
	require.NoError(t, err)
	defer cleanupConnection(t, created.ID)

	all, err := service.FindAll()
	require.NoError(t, err)
	assert.NotEmpty(t, all)
}
