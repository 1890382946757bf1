// Package schema publishes a static description of the persisted entity
// shapes for API clients. The registry is assembled at build time; nothing
// here reflects over model types at runtime.
package schema

// Field describes one entity field for introspection
type Field struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
}

// Entity describes one collection's record shape
type Entity struct {
	Name   string  `json:"name"`
	Fields []Field `json:"fields"`
}

// Registry lists the entity shapes in collection order. Collection names
// are the lowercase entity names.
var Registry = []Entity{
	{
		Name: "user",
		Fields: []Field{
			{Name: "name", Type: "string", Required: true},
			{Name: "email", Type: "string", Required: true},
			{Name: "preferences", Type: "map[string]any", Required: false},
			{Name: "avatar_url", Type: "string", Required: false},
			{Name: "is_active", Type: "bool", Required: false},
		},
	},
	{
		Name: "session",
		Fields: []Field{
			{Name: "user_id", Type: "string", Required: false},
			{Name: "title", Type: "string", Required: false},
			{Name: "sentiment", Type: "string", Required: false},
			{Name: "last_message_at", Type: "timestamp", Required: false},
		},
	},
	{
		Name: "message",
		Fields: []Field{
			{Name: "session_id", Type: "string", Required: true},
			{Name: "role", Type: "string", Required: true},
			{Name: "content", Type: "string", Required: true},
			{Name: "emotions", Type: "[]string", Required: false},
			{Name: "sentiment", Type: "string", Required: false},
		},
	},
	{
		Name: "document",
		Fields: []Field{
			{Name: "user_id", Type: "string", Required: false},
			{Name: "title", Type: "string", Required: true},
			{Name: "text", Type: "string", Required: true},
			{Name: "tags", Type: "[]string", Required: false},
			{Name: "source", Type: "string", Required: false},
		},
	},
}

// Describe renders the registry in the wire shape served by GET /schema:
// entity name to a fields map of name to type tag.
func Describe() map[string]map[string]any {
	out := make(map[string]map[string]any, len(Registry))
	for _, entity := range Registry {
		fields := make(map[string]string, len(entity.Fields))
		required := make([]string, 0)
		for _, f := range entity.Fields {
			fields[f.Name] = f.Type
			if f.Required {
				required = append(required, f.Name)
			}
		}
		out[entity.Name] = map[string]any{
			"fields":   fields,
			"required": required,
		}
	}
	return out
}
