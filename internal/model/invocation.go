package model

// OptionType discriminates the typed values an invocation option can carry
type OptionType string

const (
	OptionTypeSubCommand      OptionType = "subcommand"
	OptionTypeSubCommandGroup OptionType = "subcommand_group"
	OptionTypeString          OptionType = "string"
	OptionTypeInteger         OptionType = "integer"
	OptionTypeUser            OptionType = "user"
	OptionTypeChannel         OptionType = "channel"
	OptionTypeRole            OptionType = "role"
)

// Option is one node in an invocation's option tree. Subcommands and
// subcommand groups carry nested Options; leaf options carry exactly one
// typed value. The gateway resolves references before the core sees them,
// so User/Channel/Role values arrive as resolved entities or IDs.
type Option struct {
	Name    string     `json:"name"`
	Type    OptionType `json:"type"`
	String  string     `json:"string,omitempty"`
	Int     int64      `json:"int,omitempty"`
	User    *User      `json:"user,omitempty"`
	Channel ChannelID  `json:"channel,omitempty"`
	Role    *Role      `json:"role,omitempty"`
	Options []Option   `json:"options,omitempty"`
}

// StringValue returns the option's string value, or false if the option
// is not a string option
func (o Option) StringValue() (string, bool) {
	if o.Type != OptionTypeString {
		return "", false
	}
	return o.String, true
}

// IntValue returns the option's integer value, or false if the option is
// not an integer option
func (o Option) IntValue() (int64, bool) {
	if o.Type != OptionTypeInteger {
		return 0, false
	}
	return o.Int, true
}

// UserValue returns the resolved user, or false if absent or mistyped
func (o Option) UserValue() (User, bool) {
	if o.Type != OptionTypeUser || o.User == nil {
		return User{}, false
	}
	return *o.User, true
}

// ChannelValue returns the referenced channel, or false if absent or mistyped
func (o Option) ChannelValue() (ChannelID, bool) {
	if o.Type != OptionTypeChannel || o.Channel == "" {
		return "", false
	}
	return o.Channel, true
}

// RoleValue returns the resolved role, or false if absent or mistyped
func (o Option) RoleValue() (Role, bool) {
	if o.Type != OptionTypeRole || o.Role == nil {
		return Role{}, false
	}
	return *o.Role, true
}

// At returns the i-th nested option, or false if out of range. Dispatch
// never indexes options directly; a missing option is a degraded response,
// not a fault.
func (o Option) At(i int) (Option, bool) {
	if i < 0 || i >= len(o.Options) {
		return Option{}, false
	}
	return o.Options[i], true
}

// Invocation is a structured command request received from the gateway:
// a top-level command name, nested subcommand levels inside Options, and
// the originating context.
type Invocation struct {
	// ID is the platform handle used to deliver the response
	ID string `json:"id"`

	GuildID   GuildID   `json:"guild_id"`
	ChannelID ChannelID `json:"channel_id"`

	// Member is the invoking guild member; nil for invocations that
	// arrive without member context
	Member *Member `json:"member,omitempty"`

	Command string   `json:"command"`
	Options []Option `json:"options,omitempty"`
}

// At returns the i-th top-level option, or false if out of range
func (inv *Invocation) At(i int) (Option, bool) {
	if i < 0 || i >= len(inv.Options) {
		return Option{}, false
	}
	return inv.Options[i], true
}
