package email

// PreviewData holds sample variables for each template, keyed by template
// name, for local previews and template tests.
var PreviewData = map[Template]map[string]string{
	TemplateClothCreated: {
		"ClothName":  "Linen Summer Shirt",
		"ClothID":    "5b0c7f1e-9d3a-4f57-8a51-3c4f2f6f7a10",
		"ClothPrice": "49.90",
	},
}
