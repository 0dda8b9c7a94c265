package structures

// CommandRequest is one parsed chat command: the command name, the user id of
// the sender and the remaining whitespace-separated arguments.
type CommandRequest struct {
	Command string
	UID     string
	Args    []string
}

// CommandHandler produces the reply text for a request.
type CommandHandler func(req *CommandRequest) string
