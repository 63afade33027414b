package progress

// migrateState upgrades an older persisted state in place. Daily records,
// custom tasks and templates are preserved verbatim; the achievement list is
// rebuilt from the current catalog with unlocked status and timestamps
// overlaid from the old records, so badges added since then appear locked
// instead of missing.
func migrateState(state *AppState, fromVersion int) {
	if fromVersion >= StateVersion {
		return
	}

	old := state.Achievements
	next := achievementCatalog()
	for i := range next {
		for j := range old {
			if old[j].ID != next[i].ID || !old[j].Unlocked {
				continue
			}
			next[i].Unlocked = true
			next[i].UnlockedAt = old[j].UnlockedAt
			break
		}
	}
	state.Achievements = next
}
