package sigflag

// Raised for malformed command-line input. Terminal for the invocation.
type userError struct {
	msg string
}

func (ue userError) Error() string {
	return ue.msg
}

// ConfigError means the declared signature can't be turned into a parser,
// for example because two parameters map to the same flag. CLI input plays
// no part in it.
type ConfigError struct {
	msg string
}

func (ce ConfigError) Error() string {
	return ce.msg
}
