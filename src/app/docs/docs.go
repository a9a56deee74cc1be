// Package docs publishes the OpenAPI description of the HTTP API.
//
// The document is maintained by hand in openapi.yaml and embedded in the
// binary. It is served as YAML, as JSON, and through a Swagger UI page.
// Undocumented reports registered routes the document does not describe.
package docs

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v3"
)

// Paths under which the docs are served.
const (
	UIPath   = "/api-docs"
	YAMLPath = "/api-docs/openapi.yaml"
	JSONPath = "/api-docs/openapi.json"
)

//go:embed openapi.yaml
var openapiYAML []byte

// Docs holds the parsed document and its pre-rendered encodings.
type Docs struct {
	yaml  []byte
	json  []byte
	html  []byte
	paths map[string]map[string]struct{}
}

type document struct {
	Paths map[string]map[string]yaml.Node `yaml:"paths"`
}

// New parses the embedded document.
func New() (*Docs, error) {
	return Parse(openapiYAML)
}

// Parse builds Docs from an OpenAPI YAML document.
func Parse(data []byte) (*Docs, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse openapi document: %w", err)
	}
	if raw["openapi"] == nil {
		return nil, errors.New("parse openapi document: missing openapi version")
	}

	encoded, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode openapi document as json: %w", err)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse openapi paths: %w", err)
	}
	paths := make(map[string]map[string]struct{}, len(doc.Paths))
	for p, ops := range doc.Paths {
		methods := make(map[string]struct{}, len(ops))
		for m := range ops {
			methods[strings.ToUpper(m)] = struct{}{}
		}
		paths[p] = methods
	}

	return &Docs{
		yaml:  data,
		json:  encoded,
		html:  []byte(fmt.Sprintf(uiTemplate, JSONPath)),
		paths: paths,
	}, nil
}

// Register mounts the docs routes.
func (d *Docs) Register(r gin.IRoutes) {
	r.GET(UIPath, d.UI)
	r.GET(YAMLPath, d.YAML)
	r.GET(JSONPath, d.JSON)
}

// UI serves the Swagger UI page.
func (d *Docs) UI(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", d.html)
}

// YAML serves the document as written.
func (d *Docs) YAML(c *gin.Context) {
	c.Data(http.StatusOK, "application/yaml; charset=utf-8", d.yaml)
}

// JSON serves the document converted to JSON.
func (d *Docs) JSON(c *gin.Context) {
	c.Data(http.StatusOK, "application/json; charset=utf-8", d.json)
}

// Describes reports whether the document has an operation for method on a
// gin route path such as /items/:id.
func (d *Docs) Describes(method, route string) bool {
	methods, ok := d.paths[openAPIPath(route)]
	if !ok {
		return false
	}
	_, ok = methods[strings.ToUpper(method)]
	return ok
}

// Undocumented returns "METHOD path" for every route missing from the
// document, sorted.
func (d *Docs) Undocumented(routes gin.RoutesInfo) []string {
	var missing []string
	for _, r := range routes {
		if !d.Describes(r.Method, r.Path) {
			missing = append(missing, r.Method+" "+r.Path)
		}
	}
	sort.Strings(missing)
	return missing
}

// openAPIPath rewrites gin parameters (:id, *rest) to OpenAPI templates.
func openAPIPath(route string) string {
	segments := strings.Split(route, "/")
	for i, s := range segments {
		if strings.HasPrefix(s, ":") || strings.HasPrefix(s, "*") {
			segments[i] = "{" + s[1:] + "}"
		}
	}
	return strings.Join(segments, "/")
}

const uiTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>jokebox API</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js" crossorigin></script>
  <script>
    window.onload = function () {
      window.ui = SwaggerUIBundle({ url: "%s", dom_id: "#swagger-ui" });
    };
  </script>
</body>
</html>
`
