package systems

import (
	"github.com/automoto/rockclimber/components"
	cfg "github.com/automoto/rockclimber/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings handles the debug toggle and quit actions.
func UpdateSettings(ecs *ecs.ECS) {
	input := GetOrCreateInput(ecs)
	settings := GetOrCreateSettings(ecs)

	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings.Debug = !settings.Debug
	}
	if GetAction(input, cfg.ActionQuit).JustPressed {
		settings.Quit = true
	}
}

// ToggleDebug flips the diagnostics overlay. The run is left untouched.
func ToggleDebug(ecs *ecs.ECS) bool {
	settings := GetOrCreateSettings(ecs)
	settings.Debug = !settings.Debug
	return settings.Debug
}

// GetOrCreateSettings returns the singleton Settings component, creating if needed.
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	if _, ok := components.Settings.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Settings))
		components.Settings.SetValue(ent, components.SettingsData{
			Debug: cfg.Debug.Enabled,
		})
	}

	ent, _ := components.Settings.First(ecs.World)
	return components.Settings.Get(ent)
}
