package docs

import (
	"encoding/json"
	"strings"
	"testing"
)

type swaggerDoc struct {
	Paths       map[string]map[string]operation `json:"paths"`
	Definitions map[string]json.RawMessage      `json:"definitions"`
}

type operation struct {
	Responses map[string]struct {
		Schema json.RawMessage `json:"schema"`
	} `json:"responses"`
}

func readDoc(t *testing.T) (swaggerDoc, string) {
	t.Helper()
	raw := SwaggerInfo.ReadDoc()
	var doc swaggerDoc
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("invalid swagger JSON: %v", err)
	}
	return doc, raw
}

func TestDoc_SuccessSchemasUseResponseTypes(t *testing.T) {
	doc, _ := readDoc(t)

	want := map[string]string{
		"/api/v1/views/{view}":       "http.viewResp",
		"/api/v1/tasks":              "http.listTasksResp",
		"/api/v1/tasks/{id}/toggle":  "http.taskResp",
		"/api/v1/notes/{id}":         "http.noteResp",
		"/api/v1/notes/{id}/summary": "http.summaryTicketResp",
		"/api/v1/advice":             "http.adviceResp",
		"/api/v1/advice/refresh":     "http.adviceTicketResp",
		"/health":                    "httpserver.healthResp",
	}
	for path, def := range want {
		ops, ok := doc.Paths[path]
		if !ok {
			t.Errorf("path %s missing", path)
			continue
		}
		for method, op := range ops {
			var schema string
			for code, r := range op.Responses {
				if strings.HasPrefix(code, "2") {
					schema = string(r.Schema)
				}
			}
			if !strings.Contains(schema, "#/definitions/"+def) {
				t.Errorf("%s %s success schema = %s, want %s", method, path, schema, def)
			}
		}
	}
}

func TestDoc_AllRefsResolve(t *testing.T) {
	doc, raw := readDoc(t)

	const prefix = `"$ref": "#/definitions/`
	for rest := raw; ; {
		i := strings.Index(rest, prefix)
		if i < 0 {
			break
		}
		rest = rest[i+len(prefix):]
		name := rest[:strings.Index(rest, `"`)]
		if _, ok := doc.Definitions[name]; !ok {
			t.Errorf("unresolved definition %s", name)
		}
	}
}
