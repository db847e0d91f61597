// Package tabs renders the calculator tab bar.
package tabs

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/medcalc/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/medcalc/internal/core/domain"
)

// Bar tracks the selected calculator.
type Bar struct {
	styles *styles.Styles
	tabs   []domain.Calculator
	active int
}

// NewBar creates a tab bar over all calculators with the first selected.
func NewBar(s *styles.Styles) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &Bar{
		styles: s,
		tabs:   domain.AllCalculators(),
	}
}

// Active returns the selected calculator.
func (b *Bar) Active() domain.Calculator {
	return b.tabs[b.active]
}

// Select makes calc the active tab. Unknown calculators are ignored.
func (b *Bar) Select(calc domain.Calculator) bool {
	for i, c := range b.tabs {
		if c == calc {
			b.active = i
			return true
		}
	}
	return false
}

// SelectIndex selects by zero-based position.
func (b *Bar) SelectIndex(i int) bool {
	if i < 0 || i >= len(b.tabs) {
		return false
	}
	b.active = i
	return true
}

// Next selects the following tab, wrapping around.
func (b *Bar) Next() domain.Calculator {
	b.active = (b.active + 1) % len(b.tabs)
	return b.Active()
}

// Prev selects the preceding tab, wrapping around.
func (b *Bar) Prev() domain.Calculator {
	b.active = (b.active + len(b.tabs) - 1) % len(b.tabs)
	return b.Active()
}

// View renders "1 BMI  2 BMR  3 BSA" with the active tab highlighted.
func (b *Bar) View() string {
	rendered := make([]string, len(b.tabs))
	for i, c := range b.tabs {
		label := fmt.Sprintf("%d %s", i+1, c.Label())
		if i == b.active {
			rendered[i] = b.styles.ActiveTab.Render(label)
		} else {
			rendered[i] = b.styles.Tab.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
