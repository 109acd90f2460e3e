package component

// Spawner emits walkers inside a Width x Height area centred on its
// Transform. Frequency is the current interval, re-drawn from
// [FrequencyMin, FrequencyMax] after every spawn.
type Spawner struct {
	Width        float64
	Height       float64
	MaxCount     uint64
	FrequencyMin float64
	FrequencyMax float64
	Frequency    float64
	Elapsed      float64
	Spawned      uint64
}

var SpawnerComponent = NewComponent[Spawner]()

// SpawnStats are the level-wide counters shown to the player.
type SpawnStats struct {
	Spawned uint64
	Killed  uint64
	Saved   uint64
	Total   uint64
}

var SpawnStatsComponent = NewComponent[SpawnStats]()
