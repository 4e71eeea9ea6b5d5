package apiv1

import (
	"context"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOpenAPIDocumentIsValid loads the published API document and checks
// that it validates and still describes every registered route.
func TestOpenAPIDocumentIsValid(t *testing.T) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromFile("../../../public/docs/v1/openapi.yml")
	require.NoError(t, err)
	require.NoError(t, doc.Validate(context.Background()))

	expected := []string{
		"/ping",
		"/categories",
		"/providers",
		"/providers/{id}",
		"/plans",
		"/plans/{id}",
		"/plans/{id}/reviews",
		"/compare",
		"/compare/selection",
		"/compare/items",
		"/compare/items/{id}",
		"/compare/share",
	}
	for _, path := range expected {
		assert.NotNil(t, doc.Paths.Find(path), "missing path %s", path)
	}
}
