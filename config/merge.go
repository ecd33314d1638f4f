package config

// mergeFields maps each CLI flag name onto the field it controls.
var mergeFields = []struct {
	flag  string
	apply func(dst, src *Config)
}{
	{"width", func(d, s *Config) { d.Width = s.Width }},
	{"height", func(d, s *Config) { d.Height = s.Height }},
	{"seed", func(d, s *Config) { d.Seed = s.Seed }},
	{"random-seed", func(d, s *Config) { d.UseRandomSeed = s.UseRandomSeed }},
	{"fill", func(d, s *Config) { d.RandomFillPercent = s.RandomFillPercent }},
	{"fill-mode", func(d, s *Config) { d.FillMode = s.FillMode }},
	{"noise-scale", func(d, s *Config) { d.NoiseScale = s.NoiseScale }},
	{"smooth", func(d, s *Config) { d.SmoothingIterations = s.SmoothingIterations }},
	{"wall-threshold", func(d, s *Config) { d.WallThresholdSize = s.WallThresholdSize }},
	{"room-threshold", func(d, s *Config) { d.RoomThresholdSize = s.RoomThresholdSize }},
	{"passage-radius", func(d, s *Config) { d.PassageRadius = s.PassageRadius }},
	{"square-size", func(d, s *Config) { d.SquareSize = s.SquareSize }},
	{"border", func(d, s *Config) { d.BorderSize = s.BorderSize }},
	{"2d", func(d, s *Config) { d.Is2D = s.Is2D }},
	{"wall-height", func(d, s *Config) { d.WallHeight = s.WallHeight }},
	{"tile-amount", func(d, s *Config) { d.TileAmount = s.TileAmount }},
}

// FlagNames lists the flag names Merge understands, in declaration order.
func FlagNames() []string {
	names := make([]string, len(mergeFields))
	for i, f := range mergeFields {
		names[i] = f.flag
	}
	return names
}

// Merge applies file-loaded values into cfg, but only for fields that were
// NOT explicitly set via CLI flags. explicitFlags holds the flag names that
// were provided on the command line.
func Merge(cfg *Config, fromFile *Config, explicitFlags map[string]bool) {
	for _, f := range mergeFields {
		if !explicitFlags[f.flag] {
			f.apply(cfg, fromFile)
		}
	}
}
