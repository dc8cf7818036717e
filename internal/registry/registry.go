package registry

import (
	"sync"

	"github.com/oakhall/teambot/internal/dependencies/clock"
	"github.com/oakhall/teambot/internal/model"
)

// Registry owns the mapping from channel to team. All access goes through
// its methods; every operation holds the lock for its full duration and
// none of them block on I/O, so callers never observe a partial update.
// Returned teams are value snapshots, never live references into the map.
type Registry struct {
	mu    sync.RWMutex
	teams map[model.ChannelID]model.Team
	clock clock.Clock
}

// New creates an empty Registry
func New(clk clock.Clock) *Registry {
	return &Registry{
		teams: make(map[model.ChannelID]model.Team),
		clock: clk,
	}
}

// Create registers a team binding the channel to the role with a zero
// score. Creation is idempotent: if a team already exists for the channel
// it is left untouched. Never fails.
func (r *Registry) Create(channel model.ChannelID, role model.Role) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.teams[channel]; ok {
		return
	}
	r.teams[channel] = model.Team{
		Channel:   channel,
		Role:      role,
		Score:     0,
		CreatedAt: r.clock.Now(),
	}
}

// Get returns a snapshot of the team bound to the channel
func (r *Registry) Get(channel model.ChannelID) (model.Team, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	team, ok := r.teams[channel]
	return team, ok
}

// AdjustScore atomically adds delta to the team's score and returns the
// updated snapshot, or false if no team is bound to the channel. The
// read-modify-write happens under a single critical section so concurrent
// adjustments on the same channel never lose updates.
func (r *Registry) AdjustScore(channel model.ChannelID, delta int64) (model.Team, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	team, ok := r.teams[channel]
	if !ok {
		return model.Team{}, false
	}
	team.Score += delta
	r.teams[channel] = team
	return team, true
}

// List returns a consistent snapshot of all teams. Ordering is
// unspecified; callers must not rely on it.
func (r *Registry) List() []model.Team {
	r.mu.RLock()
	defer r.mu.RUnlock()

	teams := make([]model.Team, 0, len(r.teams))
	for _, team := range r.teams {
		teams = append(teams, team)
	}
	return teams
}

// Len returns the number of registered teams
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.teams)
}
