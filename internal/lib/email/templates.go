package email

// Template names an HTML file under templates/.
type Template string

const (
	TemplateClothCreated Template = "cloth_created"
)
