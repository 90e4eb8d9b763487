package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/kvisle/herald/internal/command"
	"github.com/kvisle/herald/internal/version"
)

func aboutCommand() *command.Builder {
	return command.New("about", "Show info about the bot").
		DM().
		Attach(command.Classic(aboutClassic)).
		Attach(command.Slash(aboutSlash))
}

func aboutClassic(_ *command.Context, _ *command.ClassicRequest) (command.Response, error) {
	return aboutReply(), nil
}

func aboutSlash(_ *command.Context, _ *command.SlashRequest) (command.Response, error) {
	return aboutReply(), nil
}

func aboutReply() command.Response {
	release := strings.TrimPrefix(version.GoVersion, "go")
	if version.BuildDate != "" {
		if t, err := time.Parse(time.RFC3339, version.BuildDate); err == nil {
			release = fmt.Sprintf("%s (Go %s)", t.Format("2006-01-02"), release)
		}
	}
	return command.CreateMessage(fmt.Sprintf(
		"ℹ️ **%s** — %s\nRelease: %s",
		version.AppName, version.AppDescription, release,
	))
}
