package commands

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/kvisle/herald/internal/command"
)

const jokeURL = "https://v2.jokeapi.dev/joke/Any"

var jokeClient = &http.Client{Timeout: 10 * time.Second}

// Delivered when the joke service is down or returns garbage.
const jokeFallback = "I had a joke about the network, but it timed out."

type jokePayload struct {
	Error    bool   `json:"error"`
	Type     string `json:"type"`
	Joke     string `json:"joke"`
	Setup    string `json:"setup"`
	Delivery string `json:"delivery"`
}

func jokeCommand() *command.Builder {
	return command.New("joke", "Tell a joke").
		DM().
		Attach(command.Classic(jokeClassic)).
		Attach(command.Slash(jokeSlash))
}

func jokeClassic(ctx *command.Context, _ *command.ClassicRequest) (command.Response, error) {
	return jokeReply(ctx), nil
}

func jokeSlash(ctx *command.Context, _ *command.SlashRequest) (command.Response, error) {
	return jokeReply(ctx), nil
}

func jokeReply(ctx *command.Context) command.Response {
	text, err := fetchJoke(jokeClient, jokeURL)
	if err != nil {
		ctx.Log.Warn().Err(err).Msg("joke fetch failed")
		return command.CreateMessage(jokeFallback)
	}
	return command.CreateMessage(text)
}

func fetchJoke(client *http.Client, url string) (string, error) {
	resp, err := client.Get(url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("joke service replied %s", resp.Status)
	}

	var payload jokePayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode joke: %w", err)
	}
	return formatJoke(payload)
}

func formatJoke(p jokePayload) (string, error) {
	if p.Error {
		return "", fmt.Errorf("joke service reported an error")
	}
	switch p.Type {
	case "single":
		if p.Joke == "" {
			return "", fmt.Errorf("empty single joke")
		}
		return p.Joke, nil
	case "twopart":
		if p.Setup == "" || p.Delivery == "" {
			return "", fmt.Errorf("incomplete two-part joke")
		}
		return p.Setup + "\n||" + p.Delivery + "||", nil
	default:
		return "", fmt.Errorf("unknown joke type '%s'", p.Type)
	}
}
