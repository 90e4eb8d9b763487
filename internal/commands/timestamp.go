package commands

import (
	"fmt"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"

	"github.com/kvisle/herald/internal/command"
)

// whenParser reads English time expressions like "in 20 minutes" or
// "friday at 6 pm".
var whenParser = func() *when.Parser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return w
}()

func timestampCommand() *command.Builder {
	return command.New("time", "Post a time as a timestamp everyone sees in their own zone").
		DM().
		Option(command.String("expr", "A time expression, like 'in 20 minutes' or 'friday at 6 pm'")).
		Attach(command.Classic(timestampClassic)).
		Attach(command.Slash(timestampSlash))
}

func timestampClassic(_ *command.Context, req *command.ClassicRequest) (command.Response, error) {
	return timestampReply(req.Args, time.Now())
}

func timestampSlash(_ *command.Context, req *command.SlashRequest) (command.Response, error) {
	return timestampReply(req.Args, time.Now())
}

func timestampReply(args command.Args, now time.Time) (command.Response, error) {
	at := now
	if expr, err := args.String("expr"); err == nil {
		parsed, err := parseTimeExpr(expr, now)
		if err != nil {
			return command.None(), err
		}
		at = parsed
	}
	return command.CreateMessage(fmt.Sprintf("<t:%d:F> (<t:%d:R>)", at.Unix(), at.Unix())), nil
}

func parseTimeExpr(expr string, base time.Time) (time.Time, error) {
	r, err := whenParser.Parse(expr, base)
	if err != nil || r == nil {
		return time.Time{}, &command.ParseError{
			Detail: fmt.Sprintf("cannot read '%s' as a point in time", expr),
			Err:    err,
		}
	}
	return r.Time, nil
}
