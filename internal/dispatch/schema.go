package dispatch

import (
	"github.com/oakhall/teambot/internal/gateway"
	"github.com/oakhall/teambot/internal/model"
)

// Commands returns the command schema registered with the gateway on each
// guild sync. The platform validates invocations against this before they
// reach the dispatcher.
func Commands() []gateway.CommandSpec {
	return []gateway.CommandSpec{
		{
			Name:        "ping",
			Description: "A ping command",
		},
		{
			Name:        "id",
			Description: "Get a user id",
			Options: []gateway.OptionSpec{
				{
					Name:        "id",
					Description: "The user to lookup",
					Type:        model.OptionTypeUser,
					Required:    true,
				},
			},
		},
		{
			Name:        "team",
			Description: "Team options",
			Options: []gateway.OptionSpec{
				{
					Name:        "rename",
					Description: "Rename team.",
					Type:        model.OptionTypeSubCommand,
					Options: []gateway.OptionSpec{
						{
							Name:        "name",
							Description: "New team name",
							Type:        model.OptionTypeString,
							Required:    true,
						},
					},
				},
				{
					Name:        "recolor",
					Description: "Recolor team",
					Type:        model.OptionTypeSubCommand,
					Options: []gateway.OptionSpec{
						{
							Name:        "red",
							Description: "Red",
							Type:        model.OptionTypeInteger,
							Required:    true,
						},
						{
							Name:        "green",
							Description: "Green",
							Type:        model.OptionTypeInteger,
							Required:    true,
						},
						{
							Name:        "blue",
							Description: "Blue",
							Type:        model.OptionTypeInteger,
							Required:    true,
						},
					},
				},
				{
					Name:        "create",
					Description: "Create a team out of an existing channel/role pair.",
					Type:        model.OptionTypeSubCommand,
					Options: []gateway.OptionSpec{
						{
							Name:        "channel",
							Description: "Channel to use for team.",
							Type:        model.OptionTypeChannel,
							Required:    true,
						},
						{
							Name:        "role",
							Description: "Role to use for team.",
							Type:        model.OptionTypeRole,
							Required:    true,
						},
					},
				},
				{
					Name:        "score",
					Description: "Team scores.",
					Type:        model.OptionTypeSubCommandGroup,
					Options: []gateway.OptionSpec{
						{
							Name:        "list",
							Description: "View current score of teams",
							Type:        model.OptionTypeSubCommand,
						},
						{
							Name:        "adjust",
							Description: "Adjust score for team",
							Type:        model.OptionTypeSubCommand,
							Options: []gateway.OptionSpec{
								{
									Name:        "amount",
									Description: "Amount to adjust score",
									Type:        model.OptionTypeInteger,
									Required:    true,
								},
							},
						},
					},
				},
			},
		},
	}
}
