package model

import (
	"fmt"
	"time"
)

// Color is an RGB role color
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// ColorFromInts builds a Color from raw integer components, validating
// that each is within 0-255
func ColorFromInts(r, g, b int64) (Color, error) {
	for _, c := range []int64{r, g, b} {
		if c < 0 || c > 255 {
			return Color{}, fmt.Errorf("%w: %d", ErrInvalidColorComponent, c)
		}
	}
	return Color{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

// String formats the color the way it appears in command responses
func (c Color) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.R, c.G, c.B)
}

// Role is the handle of a platform permission group plus its display
// attributes. The platform owns the role; this is a snapshot of it.
type Role struct {
	ID    RoleID `json:"id"`
	Name  string `json:"name"`
	Color Color  `json:"color"`
}

// Team is one competing group: a channel bound to a permission group
// with a running score.
type Team struct {
	// Channel is the registry key; immutable once the team is created
	Channel ChannelID `json:"channel"`
	// Role is the permission group representing team membership
	Role Role `json:"role"`
	// Score starts at 0 and is mutated only by authorized adjustments
	Score int64 `json:"score"`
	// CreatedAt records when the team was registered
	CreatedAt time.Time `json:"created_at"`
}

// User is a platform user as resolved by the gateway
type User struct {
	ID            UserID `json:"id"`
	Username      string `json:"username"`
	Discriminator string `json:"discriminator"`
}

// Tag returns the user's display tag
func (u User) Tag() string {
	return u.Username + "#" + u.Discriminator
}

// Member is a guild member attached to an invocation
type Member struct {
	User User `json:"user"`
}
