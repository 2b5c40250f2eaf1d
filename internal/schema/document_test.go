package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSftpWriter_EmbeddedDocumentIsValidJSON(t *testing.T) {
	var raw map[string]any
	err := json.Unmarshal(SftpWriterJSON(), &raw)
	require.NoError(t, err, "embedded schema must be valid JSON")
}

func TestSftpWriter_DocumentIsWellFormed(t *testing.T) {
	doc, err := Parse(SftpWriterJSON())
	require.NoError(t, err)
	require.NoError(t, doc.Validate())
}

func TestSftpWriter_AllFiveFieldsRequired(t *testing.T) {
	doc := SftpWriter()

	expected := []string{KeyHostname, KeyPort, KeyUser, KeyPassword, KeyPrivateKey}
	assert.ElementsMatch(t, expected, doc.Required)

	for _, name := range expected {
		_, ok := doc.Properties[name]
		assert.True(t, ok, "required field %s must be declared", name)
	}
}

func TestSftpWriter_PortDefaultsTo22(t *testing.T) {
	doc := SftpWriter()

	cfg := doc.ApplyDefaults(map[string]any{
		KeyHostname:   "sftp.example.com",
		KeyUser:       "writer",
		KeyPassword:   "secret",
		KeyPrivateKey: "",
	})

	assert.Equal(t, DefaultPort, cfg[KeyPort])
}

func TestSftpWriter_PropertyOrder(t *testing.T) {
	doc := SftpWriter()

	assert.Equal(t, []string{KeyHostname, KeyPort, KeyUser, KeyPassword, KeyPrivateKey}, doc.OrderedKeys())
	assert.Equal(t, 1, doc.Properties[KeyHostname].PropertyOrder)
	assert.Equal(t, 2, doc.Properties[KeyPort].PropertyOrder)
	assert.Equal(t, 3, doc.Properties[KeyUser].PropertyOrder)
	assert.Equal(t, 4, doc.Properties[KeyPassword].PropertyOrder)
	assert.Equal(t, 5, doc.Properties[KeyPrivateKey].PropertyOrder)
}

func TestSftpWriter_RenderingHints(t *testing.T) {
	doc := SftpWriter()

	assert.Equal(t, "password", doc.Properties[KeyPassword].Format)

	require.NotNil(t, doc.Properties[KeyPrivateKey].Options)
	assert.Equal(t, "textarea", doc.Properties[KeyPrivateKey].Options.Input)
}

func TestSftpWriter_SecretKeys(t *testing.T) {
	doc := SftpWriter()

	assert.Equal(t, []string{KeyPassword, KeyPrivateKey}, doc.SecretKeys())
	assert.True(t, IsSecretKey(KeyPassword))
	assert.True(t, IsSecretKey(KeyPrivateKey))
	assert.False(t, IsSecretKey(KeyHostname))
}

func TestValidateConfig_Valid(t *testing.T) {
	doc := SftpWriter()

	errs := doc.ValidateConfig(map[string]any{
		KeyHostname:   "sftp.example.com",
		KeyPort:       22,
		KeyUser:       "writer",
		KeyPassword:   "secret",
		KeyPrivateKey: "",
	})
	assert.Empty(t, errs)
}

func TestValidateConfig_MissingRequired(t *testing.T) {
	doc := SftpWriter()

	errs := doc.ValidateConfig(map[string]any{
		KeyHostname: "sftp.example.com",
	})

	require.Len(t, errs, 4)
	fields := []string{errs[0].Field, errs[1].Field, errs[2].Field, errs[3].Field}
	assert.Equal(t, []string{KeyPassword, KeyPrivateKey, KeyPort, KeyUser}, fields)
}

func TestValidateConfig_TypeMismatch(t *testing.T) {
	doc := SftpWriter()

	errs := doc.ValidateConfig(map[string]any{
		KeyHostname:   42,
		KeyPort:       "22",
		KeyUser:       "writer",
		KeyPassword:   "secret",
		KeyPrivateKey: "",
	})

	require.Len(t, errs, 2)
	assert.Equal(t, KeyHostname, errs[0].Field)
	assert.Contains(t, errs[0].Message, "expected string")
	assert.Equal(t, KeyPort, errs[1].Field)
	assert.Contains(t, errs[1].Message, "expected integer")
}

func TestValidateConfig_FloatPortFromJSON(t *testing.T) {
	doc := SftpWriter()

	// JSON decoding yields float64 for all numbers; whole values pass.
	errs := doc.ValidateConfig(map[string]any{
		KeyHostname:   "sftp.example.com",
		KeyPort:       float64(2222),
		KeyUser:       "writer",
		KeyPassword:   "secret",
		KeyPrivateKey: "",
	})
	assert.Empty(t, errs)

	errs = doc.ValidateConfig(map[string]any{
		KeyHostname:   "sftp.example.com",
		KeyPort:       22.5,
		KeyUser:       "writer",
		KeyPassword:   "secret",
		KeyPrivateKey: "",
	})
	require.Len(t, errs, 1)
	assert.Equal(t, KeyPort, errs[0].Field)
	assert.Contains(t, errs[0].Message, "fractional")
}

func TestValidateConfig_UnknownKeysAccepted(t *testing.T) {
	doc := SftpWriter()

	errs := doc.ValidateConfig(map[string]any{
		KeyHostname:   "sftp.example.com",
		KeyPort:       22,
		KeyUser:       "writer",
		KeyPassword:   "secret",
		KeyPrivateKey: "",
		"path":        "/upload/",
		"append_date": true,
	})
	assert.Empty(t, errs)
}

func TestApplyDefaults_DoesNotOverwrite(t *testing.T) {
	doc := SftpWriter()

	cfg := doc.ApplyDefaults(map[string]any{KeyPort: 2222})
	assert.Equal(t, 2222, cfg[KeyPort])
}

func TestApplyDefaults_NilConfig(t *testing.T) {
	doc := SftpWriter()

	cfg := doc.ApplyDefaults(nil)
	require.NotNil(t, cfg)
	assert.Equal(t, DefaultPort, cfg[KeyPort])
}

func TestParse_RejectsMalformedJSON(t *testing.T) {
	_, err := Parse([]byte(`{"type": "object",`))
	assert.Error(t, err)
}

func TestDocumentValidate_RejectsNonObjectRoot(t *testing.T) {
	_, err := Parse([]byte(`{"type": "array", "properties": {"a": {"type": "string"}}}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "root type")
}

func TestDocumentValidate_RejectsUnknownPropertyType(t *testing.T) {
	_, err := Parse([]byte(`{"type": "object", "properties": {"a": {"type": "matrix"}}}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported type")
}

func TestDocumentValidate_RejectsUndeclaredRequired(t *testing.T) {
	_, err := Parse([]byte(`{
		"type": "object",
		"required": ["missing"],
		"properties": {"a": {"type": "string"}}
	}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not declared")
}

func TestDocumentValidate_RejectsDuplicatePropertyOrder(t *testing.T) {
	_, err := Parse([]byte(`{
		"type": "object",
		"properties": {
			"a": {"type": "string", "propertyOrder": 1},
			"b": {"type": "string", "propertyOrder": 1}
		}
	}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "propertyOrder")
}

func TestParse_NormalizesIntegerDefault(t *testing.T) {
	doc, err := Parse([]byte(`{
		"type": "object",
		"properties": {"port": {"type": "integer", "default": 22}}
	}`))
	require.NoError(t, err)
	assert.Equal(t, 22, doc.Properties["port"].Default)
}
