package entities

// ProgressionPatch is a partial progression update. Only non-nil fields are
// written.
type ProgressionPatch struct {
	DifficultyLevel *int      `json:"difficulty_level,omitempty"`
	Victories       *int      `json:"victories,omitempty"`
	Points          *int      `json:"points,omitempty"`
	Trophies        *int      `json:"trophies,omitempty"`
	Badges          *int      `json:"badges,omitempty"`
	BossWins        *int      `json:"boss_wins,omitempty"`
	Upgrades        *Upgrades `json:"upgrades,omitempty"`
}

// IsEmpty reports whether the patch changes nothing
func (p ProgressionPatch) IsEmpty() bool {
	return p.DifficultyLevel == nil &&
		p.Victories == nil &&
		p.Points == nil &&
		p.Trophies == nil &&
		p.Badges == nil &&
		p.BossWins == nil &&
		p.Upgrades == nil
}

// ApplyTo writes the set fields onto prog
func (p ProgressionPatch) ApplyTo(prog *Progression) {
	if p.DifficultyLevel != nil {
		prog.DifficultyLevel = *p.DifficultyLevel
	}
	if p.Victories != nil {
		prog.Victories = *p.Victories
	}
	if p.Points != nil {
		prog.Points = *p.Points
	}
	if p.Trophies != nil {
		prog.Trophies = *p.Trophies
	}
	if p.Badges != nil {
		prog.Badges = *p.Badges
	}
	if p.BossWins != nil {
		prog.BossWins = *p.BossWins
	}
	if p.Upgrades != nil {
		prog.Upgrades = *p.Upgrades
	}
}

// FullPatch returns a patch that sets every field of prog
func FullPatch(prog *Progression) ProgressionPatch {
	upgrades := prog.Upgrades
	return ProgressionPatch{
		DifficultyLevel: Int(prog.DifficultyLevel),
		Victories:       Int(prog.Victories),
		Points:          Int(prog.Points),
		Trophies:        Int(prog.Trophies),
		Badges:          Int(prog.Badges),
		BossWins:        Int(prog.BossWins),
		Upgrades:        &upgrades,
	}
}

// Int returns a pointer to v
func Int(v int) *int {
	return &v
}
