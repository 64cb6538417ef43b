package core

// Prompter is the line based request/response channel between the record operations and the terminal.
type Prompter interface {
	// Prompt writes label without a line break and returns the next input line without its line ending.
	// A closed input yields an error satisfying IsShutdown.
	Prompt(label string) (string, error)
	// Println writes a full line of output.
	Println(a ...interface{})
	// Warn writes a full line of output flagged as a validation message.
	Warn(msg string)
}
