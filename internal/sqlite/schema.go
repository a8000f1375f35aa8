package sqlite

var schema = []string{
	`CREATE TABLE IF NOT EXISTS progression (
    player_id TEXT PRIMARY KEY,
    difficulty_level INTEGER NOT NULL DEFAULT 1,
    victories INTEGER NOT NULL DEFAULT 0,
    points INTEGER NOT NULL DEFAULT 0,
    trophies INTEGER NOT NULL DEFAULT 0,
    badges INTEGER NOT NULL DEFAULT 0,
    boss_wins INTEGER NOT NULL DEFAULT 0,
    upgrade_catch_chance INTEGER NOT NULL DEFAULT 0,
    upgrade_rare_luck INTEGER NOT NULL DEFAULT 0,
    upgrade_creature_strength INTEGER NOT NULL DEFAULT 0,
    updated_at_ms INTEGER NOT NULL DEFAULT 0
);`,
	`CREATE TABLE IF NOT EXISTS creatures (
    player_id TEXT NOT NULL,
    id TEXT NOT NULL,
    template_id TEXT NOT NULL,
    name TEXT NOT NULL,
    category TEXT NOT NULL DEFAULT '',
    rarity TEXT NOT NULL,
    level INTEGER NOT NULL DEFAULT 1,
    armor INTEGER NOT NULL,
    strength INTEGER NOT NULL,
    health INTEGER NOT NULL,
    speed INTEGER NOT NULL,
    icon TEXT NOT NULL DEFAULT '',
    description TEXT NOT NULL DEFAULT '',
    captured_at_ns INTEGER NOT NULL,
    PRIMARY KEY (player_id, id)
);`,
	`CREATE INDEX IF NOT EXISTS idx_creatures_player_captured
    ON creatures (player_id, captured_at_ns, id);`,
}
