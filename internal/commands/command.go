package commands

import (
	"fmt"
	"strings"
)

type Type string

const (
	TypeAdd  Type = "add"
	TypeShow Type = "show"
	TypeDone Type = "done"
	TypeRm   Type = "rm"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type AddArgs struct {
	Title    string
	Subject  string
	Due      string
	Priority string
}

type ShowArgs struct {
	Subject string
}

type DoneArgs struct {
	Target string
}

type RmArgs struct {
	Target string
}

type Command struct {
	Type Type
	Raw  string
	Add  *AddArgs
	Show *ShowArgs
	Done *DoneArgs
	Rm   *RmArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeAdd:
		return parseAdd(input, args)
	case TypeShow:
		return parseShow(input, args)
	case TypeDone:
		return parseDone(input, args)
	case TypeRm:
		return parseRm(input, args)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

// parseAdd splits `add <title> subject:<s> due:<when> priority:<p>`. Option
// values run until the next option token, so multi-word subjects and due
// phrases need no quoting.
func parseAdd(raw string, args []string) (Command, error) {
	out := AddArgs{}
	titleWords := make([]string, 0, len(args))
	field := ""
	var fieldWords []string

	flush := func() {
		value := strings.TrimSpace(strings.Join(fieldWords, " "))
		switch field {
		case "subject":
			out.Subject = value
		case "due":
			out.Due = value
		case "priority":
			out.Priority = value
		}
		fieldWords = nil
	}

	for _, token := range args {
		name, rest, isOption := splitOption(token)
		if isOption {
			flush()
			field = name
			if rest != "" {
				fieldWords = append(fieldWords, rest)
			}
			continue
		}
		if field == "" {
			titleWords = append(titleWords, token)
			continue
		}
		fieldWords = append(fieldWords, token)
	}
	flush()

	out.Title = strings.TrimSpace(strings.Join(titleWords, " "))
	if out.Title == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a title"}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &out}, nil
}

func parseShow(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "show requires a subject"}
	}
	return Command{Type: TypeShow, Raw: raw, Show: &ShowArgs{Subject: strings.Join(args, " ")}}, nil
}

func parseDone(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "done requires a task id"}
	}
	return Command{Type: TypeDone, Raw: raw, Done: &DoneArgs{Target: args[0]}}, nil
}

func parseRm(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "rm requires a task id"}
	}
	return Command{Type: TypeRm, Raw: raw, Rm: &RmArgs{Target: args[0]}}, nil
}

func splitOption(token string) (name, rest string, ok bool) {
	for _, candidate := range []string{"subject:", "due:", "priority:"} {
		if strings.HasPrefix(strings.ToLower(token), candidate) {
			return strings.TrimSuffix(candidate, ":"), token[len(candidate):], true
		}
	}
	return "", "", false
}
