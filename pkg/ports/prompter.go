package ports

// Prompter answers the modal value requests the engine delegates to its
// collaborator. A false ok means the user cancelled.
type Prompter interface {
	// PromptText asks for a line of text for the text tool.
	PromptText(title, label string) (text string, ok bool)

	// PromptFactor asks for a filter factor within [min, max], offering def.
	PromptFactor(title, label string, def, min, max float64) (factor float64, ok bool)
}
