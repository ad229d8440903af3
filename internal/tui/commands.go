package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mero2-web/credit-system-ai/internal/source"
)

// loadTimeout bounds one snapshot fetch.
const loadTimeout = 30 * time.Second

// loadSnapshot drains the record source into a fresh snapshot, honoring the
// current search text.
func (m Model) loadSnapshot() tea.Cmd {
	src := m.src
	search := m.search

	return func() tea.Msg {
		if src == nil {
			return snapshotLoadedMsg{err: fmt.Errorf("record source not configured")}
		}

		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()

		snap, err := source.BuildSnapshot(ctx, src, source.Query{Search: search}, nil)
		return snapshotLoadedMsg{snapshot: snap, err: err}
	}
}
