package repo

import (
	"sftpconfig"
	"sftpconfig/internal/api/models"

	"gorm.io/gorm"
)

type SftpConnectionRepository struct {
	Db *gorm.DB
}

func NewSftpConnectionRepository() *SftpConnectionRepository {
	return &SftpConnectionRepository{Db: sftpconfig.DB}
}

func (slf *SftpConnectionRepository) FindAll() ([]models.SftpConnection, error) {
	var connections []models.SftpConnection
	err := slf.Db.Order("id").Find(&connections).Error
	return connections, err
}

func (slf *SftpConnectionRepository) FindByID(id uint) (models.SftpConnection, error) {
	var connection models.SftpConnection
	err := slf.Db.First(&connection, id).Error
	return connection, err
}

func (slf *SftpConnectionRepository) FindByExternalID(externalID string) (models.SftpConnection, error) {
	var connection models.SftpConnection
	err := slf.Db.Where("external_id = ?", externalID).First(&connection).Error
	return connection, err
}

func (slf *SftpConnectionRepository) Create(connection *models.SftpConnection) error {
	return slf.Db.Create(connection).Error
}

func (slf *SftpConnectionRepository) Updates(id uint, patch map[string]any) error {
	return slf.Db.Model(&models.SftpConnection{}).Where("id = ?", id).Updates(patch).Error
}

func (slf *SftpConnectionRepository) Delete(id uint) error {
	return slf.Db.Delete(&models.SftpConnection{}, id).Error
}

func (slf *SftpConnectionRepository) ExistsByName(name string) (bool, error) {
	var count int64
	err := slf.Db.Model(&models.SftpConnection{}).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}
