package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pulseguard/pulseguard/pkg/domain"
)

func (a App) View() string {
	// Header: centered shimmer logo
	logo := renderShimmerLogo(a.frame)
	logoWidth := lipgloss.Width(logo)
	logoPad := (a.width - logoWidth) / 2
	if logoPad < 0 {
		logoPad = 0
	}
	header := strings.Repeat(" ", logoPad) + logo

	var body, help string
	switch a.screen {
	case screenLoading:
		body = a.viewLoading()
		help = " " + helpEntry("q", "quit")
	case screenRules:
		body = a.viewRules()
		help = " " + helpEntry("enter", "join the raid") + "  " + helpEntry("q", "quit")
	case screenWelcome:
		body = a.viewWelcome()
		if a.renaming {
			help = " " + helpEntry("enter", "save name") + "  " + helpEntry("esc", "cancel")
		} else {
			help = " " + helpEntry("enter", "enter the raid") + "  " + helpEntry("r", "rename") + "  " + helpEntry("q", "quit")
		}
	case screenMain:
		body = a.viewMain()
		if a.attack.open {
			help = " " + helpEntry("tab", "next") + "  " + helpEntry("h/l", "sport") + "  " + helpEntry("enter", "strike") + "  " + helpEntry("esc", "close")
		} else {
			help = " " + helpEntry("a", "attack") + "  " + helpEntry("s", "shop") + "  " + helpEntry("c", "copy report") + "  " + helpEntry("q", "quit")
		}
	case screenShop:
		body = a.shop.View(a.userGold())
		help = " " + helpEntry("j/k", "nav") + "  " + helpEntry("enter", "buy") + "  " + helpEntry("esc", "back") + "  " + helpEntry("q", "quit")
	}

	if a.status != "" {
		body += "\n " + dimStyle.Render(a.status)
	}

	// Chrome budget: header(1) + blank(1) + help(1) = 3 lines + body
	chrome := 3
	body = strings.TrimRight(truncateToHeight(body, a.height-chrome), "\n")

	return fmt.Sprintf("%s\n\n%s\n%s", header, body, help)
}

// traitNames flattens the boss trait map into sorted badge labels.
func traitNames(traits map[string]any) []string {
	var names []string
	for name, v := range traits {
		if b, ok := v.(bool); ok && !b {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (a App) userGold() int {
	if a.user == nil {
		return 0
	}
	return a.user.Gold
}

func (a App) viewLoading() string {
	return " " + dimStyle.Render("reaching the titans...")
}

// viewRules is the registration screen shown to unknown guardians.
func (a App) viewRules() string {
	var b strings.Builder
	b.WriteString(" " + selectedStyle.Render("welcome, "+a.identity.DisplayName) + "\n\n")
	b.WriteString(" " + normalStyle.Render("A boss is loose, and every workout is a hit against it.") + "\n\n")
	b.WriteString(" " + dimStyle.Render("· log a run, ride, swim or match — the service turns it into damage") + "\n")
	b.WriteString(" " + dimStyle.Render("· damage earns xp and gold; gold buys gear in the shop") + "\n")
	b.WriteString(" " + dimStyle.Render("· the boss falls when everyone chips in — rewards split by damage") + "\n\n")
	if a.registering {
		b.WriteString(" " + dimStyle.Render("registering..."))
	} else {
		b.WriteString(" " + accentStyle.Render("press enter to join the raid"))
	}
	return b.String()
}

// viewWelcome greets an already-registered guardian.
func (a App) viewWelcome() string {
	var b strings.Builder
	u := a.user
	b.WriteString(" " + selectedStyle.Render("welcome back, "+u.Username) + "\n\n")
	fmt.Fprintf(&b, " %s  %s  %s\n\n",
		normalStyle.Render(fmt.Sprintf("level %d", u.Level)),
		hpStyle.Render(fmt.Sprintf("%d xp", u.XP)),
		goldStyle.Render(fmt.Sprintf("%d gold", u.Gold)))
	if a.renaming {
		b.WriteString(" " + metaStyle.Render("new name:") + " " + a.renameInput + "█\n")
	} else {
		b.WriteString(" " + dimStyle.Render("the boss is waiting."))
	}
	return b.String()
}

// viewMain is the raid screen: boss HP, participant ring, battle log,
// and the attack form overlay when open.
func (a App) viewMain() string {
	snap := a.raid.snapshot
	if snap == nil {
		return " " + dimStyle.Render("contacting the raid...")
	}

	var b strings.Builder

	// Boss header + HP bar
	fmt.Fprintf(&b, " %s %s  %s\n",
		dangerStyle.Render("☠"),
		selectedStyle.Render(snap.BossName),
		metaStyle.Render(snap.BossType))
	barWidth := a.width - 20
	if barWidth < 20 {
		barWidth = 20
	}
	fmt.Fprintf(&b, " %s %s\n", hpBar(snap.HPPercent(), barWidth),
		normalStyle.Render(fmt.Sprintf("%d/%d", snap.CurrentHP, snap.MaxHP)))
	fmt.Fprintf(&b, " %s", metaStyle.Render(fmt.Sprintf("%d guardians online", snap.ActivePlayersCount)))
	if snap.HasDebuff("armor_break") {
		b.WriteString("  " + debuffStyle.Render("🛡 armor broken +15%"))
	}
	for _, trait := range traitNames(snap.Traits) {
		b.WriteString("  " + debuffStyle.Render(trait))
	}
	b.WriteString("\n")

	if a.attack.open {
		b.WriteString("\n" + a.attack.View())
		return b.String()
	}

	// Participant ring
	if len(snap.Participants) > 0 {
		b.WriteString("\n" + renderOrbit(snap.Participants, 4))
	}

	// Battle log
	b.WriteString("\n " + metaStyle.Render("battle log") + "\n")
	if len(snap.RecentLogs) == 0 {
		b.WriteString(" " + dimStyle.Render("all quiet...") + "\n")
	}
	for _, l := range snap.RecentLogs {
		fmt.Fprintf(&b, " %s %s %s %s\n",
			domain.SportGlyph(domain.SportType(l.SportType)),
			normalStyle.Render(l.Username),
			dangerStyle.Render(fmt.Sprintf("-%d", l.Damage)),
			metaStyle.Render(formatTime(l.CreatedAt)))
	}

	// Own status line
	if u := a.user; u != nil {
		fmt.Fprintf(&b, "\n %s %s  %s  %s\n",
			metaStyle.Render("you:"),
			normalStyle.Render(fmt.Sprintf("%s lv%d", u.Username, u.Level)),
			hpStyle.Render(fmt.Sprintf("%d xp", u.XP)),
			goldStyle.Render(fmt.Sprintf("%d gold", u.Gold)))
	}

	return b.String()
}
