package tui

import "github.com/mero2-web/credit-system-ai/internal/model"

// snapshotLoadedMsg reports the outcome of one snapshot load.
type snapshotLoadedMsg struct {
	snapshot *model.Snapshot
	err      error
}
