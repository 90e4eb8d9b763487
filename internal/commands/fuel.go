package commands

import (
	"fmt"
	"math"

	"github.com/kvisle/herald/internal/command"
)

func fuelCommand() *command.Builder {
	return command.New("fuel", "Estimate fuel for a race stint").
		DM().
		Option(command.Integer("stint", "Stint length in minutes").Min(1).Required()).
		Option(command.Integer("minutes", "Lap time minutes").Min(0).Required()).
		Option(command.Number("seconds", "Lap time seconds, fractions allowed").Min(0).Max(59.999).Required()).
		Option(command.Number("consumption", "Fuel burned per lap in liters").Min(0.1).Required()).
		Attach(command.Classic(fuelClassic)).
		Attach(command.Slash(fuelSlash))
}

func fuelClassic(_ *command.Context, req *command.ClassicRequest) (command.Response, error) {
	return fuelReply(req.Args)
}

func fuelSlash(_ *command.Context, req *command.SlashRequest) (command.Response, error) {
	return fuelReply(req.Args)
}

func fuelReply(args command.Args) (command.Response, error) {
	stint, err := args.Integer("stint")
	if err != nil {
		return command.None(), err
	}
	minutes, err := args.Integer("minutes")
	if err != nil {
		return command.None(), err
	}
	seconds, err := args.Number("seconds")
	if err != nil {
		return command.None(), err
	}
	consumption, err := args.Number("consumption")
	if err != nil {
		return command.None(), err
	}

	lapSeconds := float64(minutes*60) + seconds
	if lapSeconds <= 0 {
		return command.None(), &command.ParseError{Detail: "lap time must be longer than zero"}
	}

	laps := int64(math.Ceil(float64(stint*60) / lapSeconds))
	fuel := float64(laps) * consumption
	recommended := math.Ceil(fuel + consumption)

	return command.CreateMessage(fmt.Sprintf(
		"⛽ %d laps, %.1f L minimum. Take **%.0f L** to be safe.",
		laps, fuel, recommended,
	)), nil
}
