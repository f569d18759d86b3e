// Package infer carries the data contract with the input-inference
// collaborator: an external service that inspects a host canvas node and
// proposes configurable inputs for the generated component. This pipeline
// only consumes its output; it never calls the collaborator itself.
package infer

// Input is one externally-configurable property the generated component
// must declare, with exactly this name, type and default.
type Input struct {
	Name         string `json:"name"`
	Type         string `json:"type"`
	DefaultValue string `json:"default_value"`
}

// Binding wires one inferred input into the component template.
type Binding struct {
	Type       string `json:"type"`
	Target     string `json:"target"`
	Expression string `json:"expression"`
}

// Result is the collaborator's full answer for one host node.
type Result struct {
	Inputs           []Input   `json:"inputs"`
	TemplateBindings []Binding `json:"template_bindings"`
	Warnings         []string  `json:"warnings,omitempty"`
}
