package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateResumeDocument_MinimalDocument(t *testing.T) {
	assert.NoError(t, ValidateResumeDocument([]byte(`{}`)))
}

func TestValidateResumeDocument_FullDocument(t *testing.T) {
	data := `{
		"id": "doc-1",
		"title": "My Resume",
		"personalInfo": {"fullName": "Jane Doe", "email": "jane@example.com"},
		"sections": [
			{"id": "s1", "type": "skills", "isVisible": true, "items": [{"id": "i1", "title": "Go"}]}
		],
		"projects": [{"id": "p1", "title": "X", "startDate": "2020", "endDate": "2021"}],
		"settings": {"templateId": "modern", "fontSize": 11, "themeColor": "#FF0000"}
	}`
	assert.NoError(t, ValidateResumeDocument([]byte(data)))
}

func TestValidateResumeDocument_UnknownFieldsTolerated(t *testing.T) {
	data := `{"personalInfo": {"fullName": "Jane"}, "futureField": {"nested": true}}`
	assert.NoError(t, ValidateResumeDocument([]byte(data)))
}

func TestValidateResumeDocument_WrongTypes(t *testing.T) {
	data := `{"sections": "not-an-array", "settings": {"fontSize": "eleven"}}`

	err := ValidateResumeDocument([]byte(data))
	require.Error(t, err)

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.NotEmpty(t, valErr.Errors)
}

func TestValidateResumeDocument_MalformedJSON(t *testing.T) {
	err := ValidateResumeDocument([]byte(`{"broken":`))
	assert.Error(t, err)
}

func TestValidateJSONString_CustomSchema(t *testing.T) {
	schema := `{"type": "object", "required": ["name"], "properties": {"name": {"type": "string"}}}`

	assert.NoError(t, ValidateJSONString(schema, `{"name": "ok"}`))

	err := ValidateJSONString(schema, `{}`)
	require.Error(t, err)

	var valErr *ValidationError
	assert.ErrorAs(t, err, &valErr)
}
