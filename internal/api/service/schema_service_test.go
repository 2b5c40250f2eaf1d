package service

import (
	"testing"

	"sftpconfig/internal/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ValidateRaw is hermetic: no database, no cache.

func TestValidateRaw_ValidConfig(t *testing.T) {
	service := NewSchemaService()

	result, err := service.ValidateRaw([]byte(`{
		"hostname": "sftp.example.com",
		"port": 22,
		"user": "writer",
		"#pass": "secret",
		"#private_key": ""
	}`))
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
}

func TestValidateRaw_PortDefaultApplied(t *testing.T) {
	service := NewSchemaService()

	// port is required but carries a default, so an absent port passes
	result, err := service.ValidateRaw([]byte(`{
		"hostname": "sftp.example.com",
		"user": "writer",
		"#pass": "secret",
		"#private_key": ""
	}`))
	require.NoError(t, err)
	assert.True(t, result.Valid)
}

func TestValidateRaw_MissingFields(t *testing.T) {
	service := NewSchemaService()

	result, err := service.ValidateRaw([]byte(`{"hostname": "sftp.example.com"}`))
	require.NoError(t, err)
	assert.False(t, result.Valid)

	fields := make([]string, len(result.Errors))
	for i, e := range result.Errors {
		fields[i] = e.Field
	}
	assert.ElementsMatch(t, []string{schema.KeyUser, schema.KeyPassword, schema.KeyPrivateKey}, fields)
}

func TestValidateRaw_TypeError(t *testing.T) {
	service := NewSchemaService()

	result, err := service.ValidateRaw([]byte(`{
		"hostname": "sftp.example.com",
		"port": "not-a-number",
		"user": "writer",
		"#pass": "secret",
		"#private_key": ""
	}`))
	require.NoError(t, err)
	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, schema.KeyPort, result.Errors[0].Field)
}

func TestValidateRaw_BadKeyMaterial(t *testing.T) {
	service := NewSchemaService()

	result, err := service.ValidateRaw([]byte(`{
		"hostname": "sftp.example.com",
		"user": "writer",
		"#pass": "",
		"#private_key": "garbage"
	}`))
	require.NoError(t, err)
	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, schema.KeyPrivateKey, result.Errors[0].Field)
}

func TestValidateRaw_MalformedJSON(t *testing.T) {
	service := NewSchemaService()

	_, err := service.ValidateRaw([]byte(`not json`))
	require.Error(t, err)
}
