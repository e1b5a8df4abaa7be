package email

import "fmt"

// PreviewData holds sample template data, keyed by template then variable name.
var PreviewData = map[Template]map[string]string{
	TemplateWelcome: {
		"EmployeeFirstName": "Ramesh",
	},
}

// Preview renders name with its sample data.
func Preview(name Template) (string, error) {
	data, ok := PreviewData[name]
	if !ok {
		return "", fmt.Errorf("no preview data for email template %q", name)
	}
	return Render(name, data)
}
