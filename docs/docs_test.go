package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestSwaggerDocument(t *testing.T) {
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var doc struct {
		BasePath string                     `json:"basePath"`
		Paths    map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	assert.Equal(t, "/api/v1", doc.BasePath)

	for _, path := range []string{
		"/feedback",
		"/feedback/latest",
		"/attempts/{feedback_id}",
		"/interviews",
		"/interviews/{interview_id}",
		"/available-interviews",
		"/users/{user_id}/history",
		"/admin/interviews",
		"/healthz",
	} {
		assert.Contains(t, doc.Paths, path)
	}
}
