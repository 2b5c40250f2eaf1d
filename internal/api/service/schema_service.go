package service

import (
	"encoding/json"
	"fmt"
	"time"

	"sftpconfig"
	"sftpconfig/internal/api/handler/response"
	"sftpconfig/internal/connector"
	"sftpconfig/internal/schema"
	"sftpconfig/pkg"

	"github.com/rs/zerolog"
)

const (
	schemaCacheKey = "schema:sftp-writer"
	schemaCacheTTL = time.Hour
)

// SchemaService serves the SFTP writer configuration form schema and
// validates raw configuration payloads against it.
type SchemaService struct {
	logger zerolog.Logger
}

func NewSchemaService() *SchemaService {
	return &SchemaService{logger: sftpconfig.Logger}
}

// SftpWriterDocument returns the schema document as served to the form
// renderer. The rendered document is cached in Redis; on any cache
// trouble the embedded document is served directly.
func (slf *SchemaService) SftpWriterDocument() json.RawMessage {
	var cached json.RawMessage
	err := pkg.RedisGet(schemaCacheKey, &cached)
	if err == nil {
		return cached
	}
	if !pkg.IsRedisNil(err) {
		slf.logger.Warn().Err(err).Msg("Schema cache read failed, serving embedded document")
		return schema.SftpWriterJSON()
	}

	doc := json.RawMessage(schema.SftpWriterJSON())
	if err := pkg.RedisSet(schemaCacheKey, doc, schemaCacheTTL); err != nil {
		slf.logger.Warn().Err(err).Msg("Schema cache write failed")
	}
	return doc
}

// ValidateRaw validates a raw configuration object. Defaults are
// applied before validation, the way the form engine fills the
// rendered form. Malformed JSON is an error; field-level problems are
// reported in the result.
func (slf *SchemaService) ValidateRaw(data []byte) (response.ValidationResult, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return response.ValidationResult{}, fmt.Errorf("configuration is not a JSON object: %w", err)
	}

	doc := schema.SftpWriter()
	raw = doc.ApplyDefaults(raw)
	errs := doc.ValidateConfig(raw)

	// Pasted key material gets a deeper check than the type system.
	if key, ok := raw[schema.KeyPrivateKey].(string); ok && key != "" {
		if _, err := connector.ParsePrivateKey(key); err != nil {
			errs = append(errs, schema.FieldError{Field: schema.KeyPrivateKey, Message: err.Error()})
		}
	}

	if errs == nil {
		errs = []schema.FieldError{}
	}
	return response.ValidationResult{Valid: len(errs) == 0, Errors: errs}, nil
}
