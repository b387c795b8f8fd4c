package controllers

import (
	"encoding/json"
	"net/http"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/franciscosanchezn/pizza-manager/docs"
)

var ginParam = regexp.MustCompile(`:(\w+)`)

type swaggerDocument struct {
	Paths       map[string]map[string]json.RawMessage `json:"paths"`
	Definitions map[string]json.RawMessage            `json:"definitions"`
}

func readSwaggerDocument(t *testing.T) swaggerDocument {
	t.Helper()
	var doc swaggerDocument
	require.NoError(t, json.Unmarshal([]byte(docs.SwaggerInfo.ReadDoc()), &doc))
	return doc
}

func TestSwaggerDocumentsEveryRoute(t *testing.T) {
	c := setupConsole(t)
	doc := readSwaggerDocument(t)

	documented := 0
	for _, route := range c.router.Routes() {
		if strings.HasPrefix(route.Path, "/swagger/") {
			continue
		}
		path := ginParam.ReplaceAllString(route.Path, "{$1}")
		_, ok := doc.Paths[path][strings.ToLower(route.Method)]
		assert.True(t, ok, "%s %s is missing from the API docs", route.Method, path)
		documented++
	}

	operations := 0
	for _, methods := range doc.Paths {
		operations += len(methods)
	}
	assert.Equal(t, documented, operations, "the API docs describe routes that are not served")
}

func TestSwaggerDefinitionsResolve(t *testing.T) {
	raw := docs.SwaggerInfo.ReadDoc()
	doc := readSwaggerDocument(t)

	refs := regexp.MustCompile(`#/definitions/([\w.]+)`).FindAllStringSubmatch(raw, -1)
	require.NotEmpty(t, refs)
	for _, ref := range refs {
		assert.Contains(t, doc.Definitions, ref[1])
	}
}

func TestSwaggerUIServed(t *testing.T) {
	c := setupConsole(t)

	w := c.do(t, http.MethodGet, "/swagger/doc.json", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Pizza Manager Console API")
}
