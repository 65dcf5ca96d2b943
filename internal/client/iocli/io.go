package iocli

//go:generate moq -out io_mock.go . IO

// IO abstracts terminal interaction so commands can be tested with a
// scripted console.
type IO interface {
	Println(a ...any)
	Printf(format string, a ...any)

	// ReadInput prompts and reads one trimmed line.
	ReadInput(prompt string) (string, error)

	// ReadPassword prompts and reads a line without echoing it. Used for
	// pairing codes, which grant device registration and must not land in
	// terminal scrollback.
	ReadPassword(prompt string) (string, error)
}
