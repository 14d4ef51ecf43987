package domain

type CommandType string

const (
	CommandSearch  CommandType = "search"
	CommandBatch   CommandType = "batch"
	CommandUnknown CommandType = "unknown"
)

func (c CommandType) String() string {
	return string(c)
}

func (c CommandType) IsValid() bool {
	switch c {
	case CommandSearch, CommandBatch:
		return true
	default:
		return false
	}
}

// ParseCommandType maps a wire event name to a CommandType.
func ParseCommandType(value string) CommandType {
	switch CommandType(value) {
	case CommandSearch:
		return CommandSearch
	case CommandBatch:
		return CommandBatch
	default:
		return CommandUnknown
	}
}
