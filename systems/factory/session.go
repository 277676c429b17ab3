package factory

import (
	"time"

	"github.com/automoto/rockclimber/archetypes"
	"github.com/automoto/rockclimber/climb"
	"github.com/automoto/rockclimber/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSession stores s as the world's session singleton. Holds appear once
// systems.BeginClimb applies the first run reset.
func CreateSession(ecs *ecs.ECS, s *climb.Session, logLimit int) *donburi.Entry {
	entry := archetypes.Session.Spawn(ecs)
	components.Session.SetValue(entry, components.SessionData{
		Session: s,
		Log:     climb.NewLog(logLimit),
		Holds:   make(map[int]donburi.Entity),
		Clock:   time.Now,
	})
	return entry
}
