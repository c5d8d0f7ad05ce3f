package chat

import "strings"

// CommandType identifies a recognized slash command.
type CommandType string

const (
	CmdStart    CommandType = "start"
	CmdDo       CommandType = "do"
	CmdGo       CommandType = "go"
	CmdNextDay  CommandType = "next-day"
	CmdChoice   CommandType = "choice"
	CmdStatus   CommandType = "status"
	CmdEnding   CommandType = "ending"
	CmdEndings  CommandType = "endings"
	CmdShop     CommandType = "shop"
	CmdBuy      CommandType = "buy"
	CmdRestart  CommandType = "restart"
	CmdHelp     CommandType = "help"
	CmdNone     CommandType = "" // not a recognized command; pass through
)

// Command is a parsed slash command.
type Command struct {
	Type    CommandType
	Args    []string
	Confirm bool // trailing "confirm" keyword
}

var aliases = map[string]CommandType{
	"start":    CmdStart,
	"begin":    CmdStart,
	"do":       CmdDo,
	"go":       CmdGo,
	"next-day": CmdNextDay,
	"nextday":  CmdNextDay,
	"sleep":    CmdNextDay,
	"choice":   CmdChoice,
	"choose":   CmdChoice,
	"status":   CmdStatus,
	"s":        CmdStatus,
	"ending":   CmdEnding,
	"endings":  CmdEndings,
	"shop":     CmdShop,
	"buy":      CmdBuy,
	"restart":  CmdRestart,
	"help":     CmdHelp,
	"h":        CmdHelp,
}

// Parse tokenizes a command line. A leading slash is optional. A bare
// action name ("/kiss lips") parses as an implicit "do" command so
// every catalog action is a first-class slash command. A trailing
// "confirm" token is lifted out of the args.
func Parse(text string) Command {
	trimmed := strings.TrimSpace(text)
	trimmed = strings.TrimPrefix(trimmed, "/")
	if trimmed == "" {
		return Command{Type: CmdNone}
	}

	fields := strings.Fields(strings.ToLower(trimmed))
	cmd := Command{}

	if t, ok := aliases[fields[0]]; ok {
		cmd.Type = t
		cmd.Args = fields[1:]
	} else {
		// Unknown leading token: treat as an implicit action name.
		cmd.Type = CmdDo
		cmd.Args = fields
	}

	if n := len(cmd.Args); n > 0 && cmd.Args[n-1] == "confirm" {
		cmd.Confirm = true
		cmd.Args = cmd.Args[:n-1]
	}
	return cmd
}
