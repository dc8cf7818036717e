// Package dispatch routes structured invocations to their handlers and
// produces response strings. Unknown command shapes and malformed
// arguments degrade to descriptive responses; a bad invocation never
// takes down more than its own command.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/oakhall/teambot/internal/gateway"
	"github.com/oakhall/teambot/internal/model"
	"github.com/oakhall/teambot/internal/perms"
	"github.com/oakhall/teambot/internal/registry"
)

// Dispatcher interprets invocations against the registry, the permission
// gate and the gateway session. It holds no registry state of its own:
// it borrows through the registry's synchronized interface per command
// and never across a gateway call.
type Dispatcher struct {
	registry *registry.Registry
	gate     *perms.Gate
	session  gateway.Session
	logger   *slog.Logger
}

// NewDispatcher creates a Dispatcher
func NewDispatcher(reg *registry.Registry, gate *perms.Gate, session gateway.Session, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		registry: reg,
		gate:     gate,
		session:  session,
		logger:   logger,
	}
}

// HandleGuildSync processes a guild ready/sync event: registers the
// command schema with the gateway and resolves the guild's host role
// from the supplied role list.
func (d *Dispatcher) HandleGuildSync(ctx context.Context, guild model.GuildID, roles []model.Role) {
	if err := d.session.RegisterCommands(ctx, guild, Commands()); err != nil {
		d.logger.Warn("command registration failed",
			slog.String("guild", string(guild)),
			slog.String("error", err.Error()),
		)
	}
	d.gate.Sync(guild, roles)
}

// HandleAndRespond handles the invocation and delivers the response
// through the gateway. Delivery failure is logged, not retried; any
// registry mutation the command performed stands.
func (d *Dispatcher) HandleAndRespond(ctx context.Context, inv *model.Invocation) {
	content := d.Handle(ctx, inv)

	if err := d.session.Respond(ctx, inv, content); err != nil {
		deliveryFailuresTotal.Inc()
		d.logger.Error("cannot respond to command",
			slog.String("invocation", inv.ID),
			slog.String("command", commandPath(inv)),
			slog.String("error", err.Error()),
		)
	}
}

// Handle routes the invocation and returns the response text
func (d *Dispatcher) Handle(ctx context.Context, inv *model.Invocation) string {
	start := time.Now()

	var content string
	switch inv.Command {
	case "ping":
		content = responsePong
	case "id":
		content = d.handleID(inv)
	case "team":
		content = d.handleTeam(ctx, inv)
	default:
		content = responseInvalidCommand
	}

	commandsTotal.WithLabelValues(commandPath(inv)).Inc()
	dispatchDurationSeconds.Observe(time.Since(start).Seconds())
	registeredTeams.Set(float64(d.registry.Len()))

	return content
}

func (d *Dispatcher) handleID(inv *model.Invocation) string {
	opt, ok := inv.At(0)
	if !ok {
		return responseInvalidUserArg
	}
	user, ok := opt.UserValue()
	if !ok {
		return responseInvalidUserArg
	}
	return fmt.Sprintf("%s's id is %s", user.Tag(), user.ID)
}

func (d *Dispatcher) handleTeam(ctx context.Context, inv *model.Invocation) string {
	sub, ok := inv.At(0)
	if !ok {
		return responseInvalidTeamSuboption
	}

	switch sub.Name {
	case "rename":
		return d.handleRename(ctx, inv, sub)
	case "recolor":
		return d.handleRecolor(ctx, inv, sub)
	case "create":
		return d.handleCreate(ctx, inv, sub)
	case "score":
		return d.handleScore(ctx, inv, sub)
	default:
		return responseInvalidTeamSuboption
	}
}

func (d *Dispatcher) handleRename(ctx context.Context, inv *model.Invocation, sub model.Option) string {
	nameOpt, ok := sub.At(0)
	if !ok {
		return responseRenameInvalidArgs
	}
	newName, ok := nameOpt.StringValue()
	if !ok || inv.ChannelID == "" {
		return responseRenameInvalidArgs
	}

	// Snapshot the team before the gateway call; the registry lock is
	// never held across platform I/O
	team, ok := d.registry.Get(inv.ChannelID)
	if !ok {
		return responseRenameNoTeam
	}

	_, err := d.session.EditRole(ctx, inv.GuildID, team.Role.ID, gateway.RoleEdit{Name: &newName})
	if err != nil {
		return fmt.Sprintf("Failed to rename team: %v", err)
	}
	return fmt.Sprintf("Team name is now %s", newName)
}

func (d *Dispatcher) handleRecolor(ctx context.Context, inv *model.Invocation, sub model.Option) string {
	// The three integers are consumed positionally as red, green, blue,
	// the order declared in the registration schema
	var components [3]int64
	for i := range components {
		opt, ok := sub.At(i)
		if !ok {
			return responseRecolorInvalidArgs
		}
		value, ok := opt.IntValue()
		if !ok {
			return responseRecolorInvalidArgs
		}
		components[i] = value
	}
	if inv.ChannelID == "" {
		return responseRecolorInvalidArgs
	}

	color, err := model.ColorFromInts(components[0], components[1], components[2])
	if err != nil {
		return responseRecolorOutOfRange
	}

	team, ok := d.registry.Get(inv.ChannelID)
	if !ok {
		return responseRecolorNoTeam
	}

	updated, err := d.session.EditRole(ctx, inv.GuildID, team.Role.ID, gateway.RoleEdit{Color: &color})
	if err != nil {
		return fmt.Sprintf("Failed to recolor team: %v", err)
	}
	return fmt.Sprintf("Team color is now %s", updated.Color)
}

func (d *Dispatcher) handleCreate(ctx context.Context, inv *model.Invocation, sub model.Option) string {
	if denied, resp := d.checkHost(ctx, inv); denied {
		return resp
	}

	channelOpt, ok := sub.At(0)
	if !ok {
		return responseCreateInvalidArgs
	}
	channel, ok := channelOpt.ChannelValue()
	if !ok {
		return responseCreateInvalidArgs
	}
	roleOpt, ok := sub.At(1)
	if !ok {
		return responseCreateInvalidArgs
	}
	role, ok := roleOpt.RoleValue()
	if !ok {
		return responseCreateInvalidArgs
	}

	// Creation is a purely local mutation with no external side effect,
	// so there is nothing to confirm with the platform first
	d.registry.Create(channel, role)
	return responseCreated
}

func (d *Dispatcher) handleScore(ctx context.Context, inv *model.Invocation, sub model.Option) string {
	scoreSub, ok := sub.At(0)
	if !ok {
		return responseInvalidScoreSuboption
	}

	switch scoreSub.Name {
	case "list":
		return d.handleScoreList()
	case "adjust":
		return d.handleScoreAdjust(ctx, inv, scoreSub)
	default:
		return responseInvalidScoreSuboption
	}
}

func (d *Dispatcher) handleScoreList() string {
	teams := d.registry.List()
	if len(teams) == 0 {
		return responseNoTeams
	}

	// Registry ordering is unspecified; sort for a stable response
	sort.Slice(teams, func(i, j int) bool {
		return teams[i].Role.Name < teams[j].Role.Name
	})

	entries := make([]string, 0, len(teams))
	for _, team := range teams {
		entries = append(entries, fmt.Sprintf("%s: %d", team.Role.Name, team.Score))
	}
	return strings.Join(entries, ", ")
}

func (d *Dispatcher) handleScoreAdjust(ctx context.Context, inv *model.Invocation, scoreSub model.Option) string {
	if denied, resp := d.checkHost(ctx, inv); denied {
		return resp
	}

	amountOpt, ok := scoreSub.At(0)
	if !ok {
		return responseAdjustInvalidArg
	}
	amount, ok := amountOpt.IntValue()
	if !ok {
		return responseAdjustInvalidArg
	}

	team, ok := d.registry.AdjustScore(inv.ChannelID, amount)
	if !ok {
		return responseAdjustNoTeam
	}
	return fmt.Sprintf("Team score adjusted by %d, score is now %d in total", amount, team.Score)
}

// checkHost runs the privileged-command gate. It returns (true, response)
// when the command must stop: missing member context, unresolved host
// role, a failed membership lookup, or a plain denial.
func (d *Dispatcher) checkHost(ctx context.Context, inv *model.Invocation) (bool, string) {
	if inv.Member == nil {
		return true, responseNoMember
	}

	err := d.gate.Authorize(ctx, d.session, inv.GuildID, inv.Member.User.ID)
	switch {
	case err == nil:
		return false, ""
	case errors.Is(err, model.ErrHostRoleNotConfigured):
		return true, fmt.Sprintf(responseHostRoleNotConfiguredFmt, d.gate.RoleName())
	case errors.Is(err, model.ErrPermissionDenied):
		return true, responsePermissionDenied
	default:
		d.logger.Error("membership check failed",
			slog.String("guild", string(inv.GuildID)),
			slog.String("user", string(inv.Member.User.ID)),
			slog.String("error", err.Error()),
		)
		return true, responsePermissionCheckFailed
	}
}

// commandPath flattens the invocation's command and subcommand names for
// logging and metrics labels
func commandPath(inv *model.Invocation) string {
	parts := []string{inv.Command}
	opts := inv.Options
	for len(opts) > 0 {
		head := opts[0]
		if head.Type != model.OptionTypeSubCommand && head.Type != model.OptionTypeSubCommandGroup {
			break
		}
		parts = append(parts, head.Name)
		opts = head.Options
	}
	return strings.Join(parts, " ")
}
