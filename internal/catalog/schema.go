package catalog

// subjectBankSchema is the JSON schema every subject bank file must satisfy.
var subjectBankSchema = map[string]any{
	"type":     "object",
	"required": []string{"id", "title", "topics"},
	"properties": map[string]any{
		"id":    map[string]any{"type": "string", "minLength": 1},
		"title": map[string]any{"type": "string", "minLength": 1},
		"topics": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []string{"id", "title"},
				"properties": map[string]any{
					"id":    map[string]any{"type": "string", "minLength": 1},
					"title": map[string]any{"type": "string", "minLength": 1},
					"quizzes": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type":     "object",
							"required": []string{"id", "title"},
							"properties": map[string]any{
								"id":    map[string]any{"type": "string", "minLength": 1},
								"title": map[string]any{"type": "string", "minLength": 1},
							},
							"additionalProperties": false,
						},
					},
					"exercises": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type":     "object",
							"required": []string{"id", "title", "prompt"},
							"properties": map[string]any{
								"id":     map[string]any{"type": "string", "minLength": 1},
								"title":  map[string]any{"type": "string", "minLength": 1},
								"prompt": map[string]any{"type": "string", "minLength": 1},
								"rubric": map[string]any{"type": "string"},
							},
							"additionalProperties": false,
						},
					},
				},
				"additionalProperties": false,
			},
		},
	},
	"additionalProperties": false,
}
