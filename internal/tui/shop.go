package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pulseguard/pulseguard/internal/host"
	"github.com/pulseguard/pulseguard/pkg/client"
	"github.com/pulseguard/pulseguard/pkg/domain"
)

// shopLoadedMsg carries the catalog fetch result.
type shopLoadedMsg struct {
	items []domain.ShopItem
	err   error
}

// shopBoughtMsg carries the result of a purchase attempt.
type shopBoughtMsg struct {
	itemKey string
	result  *client.BuyResult
	err     error
}

// shopModel is the upgrade shop screen. The catalog is a read-only
// snapshot: every purchase re-fetches it so unlock and level state
// always reflect the server.
type shopModel struct {
	client  *client.Client
	userID  int64
	items   []domain.ShopItem
	cursor  int
	loading bool
	buying  bool
	status  string
}

func newShopModel(c *client.Client) shopModel {
	return shopModel{client: c}
}

// reset prepares the model for a fresh shop visit.
func (m *shopModel) reset(userID int64) {
	m.userID = userID
	m.cursor = 0
	m.status = ""
	m.loading = true
}

// load fetches the catalog.
func (m shopModel) load() tea.Cmd {
	c, id := m.client, m.userID
	return func() tea.Msg {
		items, err := c.GetShop(context.Background(), id)
		return shopLoadedMsg{items: items, err: err}
	}
}

// buy purchases the item under the cursor.
func (m shopModel) buy(key string) tea.Cmd {
	c, id := m.client, m.userID
	return func() tea.Msg {
		res, err := c.Buy(context.Background(), id, key)
		return shopBoughtMsg{itemKey: key, result: res, err: err}
	}
}

func (m *shopModel) clampCursor() {
	if m.cursor >= len(m.items) {
		m.cursor = len(m.items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m shopModel) updateKeys(msg tea.KeyMsg, haptics host.Haptics) (shopModel, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.cursor < len(m.items)-1 {
			m.cursor++
			haptics.Select()
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
			haptics.Select()
		}
	case "enter":
		if m.buying || m.loading || m.cursor >= len(m.items) {
			return m, nil
		}
		item := m.items[m.cursor]
		if item.IsMaxed {
			m.status = "already at max level"
			return m, nil
		}
		if item.IsLocked {
			m.status = "locked: requirements not met"
			return m, nil
		}
		m.buying = true
		m.status = ""
		return m, m.buy(item.Key)
	}
	return m, nil
}

// View renders the catalog with the user's gold for affordability hints.
func (m shopModel) View(gold int) string {
	var b strings.Builder

	b.WriteString(" " + selectedStyle.Render("upgrade shop") + "  " + goldStyle.Render(fmt.Sprintf("%d gold", gold)) + "\n\n")

	switch {
	case m.loading:
		b.WriteString(" " + dimStyle.Render("loading catalog...") + "\n")
		return b.String()
	case len(m.items) == 0:
		b.WriteString(" " + dimStyle.Render("the shop is empty") + "\n")
		return b.String()
	}

	for i, item := range m.items {
		cursor := " "
		nameStyle := normalStyle
		if i == m.cursor {
			cursor = ">"
			nameStyle = selectedStyle
		}

		level := fmt.Sprintf("lv %d/%d", item.CurrentLevel, item.MaxLevel)
		var tag string
		switch {
		case item.IsMaxed:
			tag = goldStyle.Render("MAX")
		case item.IsLocked:
			tag = dimStyle.Render("locked")
		case item.NextPrice > gold:
			tag = dangerStyle.Render(fmt.Sprintf("%d gold", item.NextPrice))
		default:
			tag = goldStyle.Render(fmt.Sprintf("%d gold", item.NextPrice))
		}

		fmt.Fprintf(&b, " %s %s %s  %s  %s\n",
			cursor,
			domain.SportGlyph(domain.SportType(item.SportType)),
			nameStyle.Render(truncStr(item.Name, 28)),
			metaStyle.Render(level),
			tag)
		if i == m.cursor {
			b.WriteString("     " + dimStyle.Render(truncStr(item.Description, 60)) + "\n")
		}
	}

	b.WriteString("\n")
	if m.buying {
		b.WriteString(" " + dimStyle.Render("buying..."))
	} else if m.status != "" {
		b.WriteString(" " + dangerStyle.Render(m.status))
	}
	return b.String()
}
