package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pulseguard/pulseguard/internal/host"
	"github.com/pulseguard/pulseguard/pkg/client"
	"github.com/pulseguard/pulseguard/pkg/domain"
)

// screen identifies which screen the app is showing. The app is always
// on exactly one screen; subsystems (the raid poller) are tied to screen
// entry/exit hooks so impossible states (polling without a loaded user)
// cannot be reached.
type screen int

const (
	screenLoading screen = iota
	screenRules
	screenWelcome
	screenMain
	screenShop
)

// screenTransitions is the full transition table. Anything not listed
// is an illegal move and is refused.
var screenTransitions = map[screen][]screen{
	screenLoading: {screenRules, screenWelcome},
	screenRules:   {screenMain},
	screenWelcome: {screenMain},
	screenMain:    {screenShop},
	screenShop:    {screenMain},
}

func canTransition(from, to screen) bool {
	for _, s := range screenTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// userSyncEvery is how many applied polls pass between full user
// refetches. The periodic replacement self-heals any drift left behind
// by additive attack merges (server-side level-ups, boss-kill payouts).
const userSyncEvery = 10

// userCheckedMsg carries the startup identity check result.
type userCheckedMsg struct {
	user *domain.User
	err  error
}

// registeredMsg carries the result of a registration attempt.
type registeredMsg struct {
	user *domain.User
	err  error
}

// renamedMsg carries the server-confirmed user after a username change.
type renamedMsg struct {
	user *domain.User
	err  error
}

// userSyncedMsg carries a periodic full user refetch.
type userSyncedMsg struct {
	gen  int
	user *domain.User
	err  error
}

type copyResultMsg struct{ err error }

// App is the root Bubbletea model.
type App struct {
	client   *client.Client
	haptics  host.Haptics
	identity domain.Identity

	screen screen
	user   *domain.User

	// Raid poller state. pollGen is bumped on every arm and disarm so
	// in-flight fetches and pending ticks from a previous arming can be
	// recognized and dropped before they touch the store.
	raid    raidStore
	poller  pollerConfig
	pollGen int
	armed   bool
	seq     uint64 // last issued fetch sequence number
	applied int    // applied polls since arming, drives user sync

	attack attackModel
	shop   shopModel

	registering bool
	renaming    bool
	renameInput string
	status      string

	width  int
	height int
	frame  int // logo shimmer animation frame
}

// NewApp creates the root model. The screen starts in loading; Init
// fires the identity check that routes to rules or welcome.
func NewApp(c *client.Client, h host.Haptics, id domain.Identity, pollInterval time.Duration) App {
	if h == nil {
		h = host.NoopHaptics{}
	}
	return App{
		client:   c,
		haptics:  h,
		identity: id,
		poller:   newPollerConfig(pollInterval),
		screen:   screenLoading,
		attack:   newAttackModel(c),
		shop:     newShopModel(c),
	}
}

func (a App) Init() tea.Cmd {
	return tea.Batch(shimmerTickCmd(), a.checkUser())
}

// checkUser looks up the host identity against the service. Any failure
// other than "found" routes to the rules screen; it is never fatal.
func (a App) checkUser() tea.Cmd {
	c, id := a.client, a.identity.ID
	return func() tea.Msg {
		u, err := c.GetUser(context.Background(), id)
		return userCheckedMsg{user: u, err: err}
	}
}

// register creates the user record from the host identity.
func (a App) register() tea.Cmd {
	c, id := a.client, a.identity
	return func() tea.Msg {
		u, err := c.Register(context.Background(), id.ID, id.DisplayName)
		return registeredMsg{user: u, err: err}
	}
}

// rename submits a username change.
func (a App) rename(username string) tea.Cmd {
	c, id := a.client, a.identity.ID
	return func() tea.Msg {
		u, err := c.Rename(context.Background(), id, username)
		return renamedMsg{user: u, err: err}
	}
}

// syncUser refetches the full user record for periodic reconciliation.
func (a App) syncUser() tea.Cmd {
	c, id, gen := a.client, a.identity.ID, a.pollGen
	return func() tea.Msg {
		u, err := c.GetUser(context.Background(), id)
		return userSyncedMsg{gen: gen, user: u, err: err}
	}
}

// transition moves to another screen, running exit and entry hooks.
// Illegal moves are refused and return nil. The poller is armed exactly
// while the main screen is showing: the shop pauses polling.
func (a *App) transition(to screen) tea.Cmd {
	if !canTransition(a.screen, to) {
		return nil
	}
	if a.screen == screenMain {
		a.disarmPoller()
	}
	a.screen = to
	a.status = ""
	switch to {
	case screenMain:
		return a.armPoller()
	case screenShop:
		a.shop.reset(a.user.ID)
		return a.shop.load()
	}
	return nil
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case shimmerTickMsg:
		a.frame++
		return a, shimmerTickCmd()

	case userCheckedMsg:
		if a.screen != screenLoading {
			return a, nil
		}
		if msg.err != nil {
			// Not registered, or the lookup failed: either way the
			// registration screen is the recovery path.
			return a, a.transition(screenRules)
		}
		a.user = msg.user
		return a, a.transition(screenWelcome)

	case registeredMsg:
		a.registering = false
		if msg.err != nil {
			a.status = msg.err.Error()
			return a, nil
		}
		a.user = msg.user
		a.haptics.Confirm()
		return a, a.transition(screenMain)

	case renamedMsg:
		a.renaming = false
		if msg.err != nil {
			a.status = msg.err.Error()
			return a, nil
		}
		// Server-confirmed replacement of the whole record.
		a.user = msg.user
		a.status = ""
		return a, nil

	case raidTickMsg:
		if !a.armed || msg.gen != a.pollGen {
			return a, nil
		}
		return a, tea.Batch(a.fetchRaid(), a.tick())

	case raidFetchedMsg:
		// A fetch issued before a disarm (or a previous arming) must not
		// write back, and a response that lost the issue-order race must
		// not regress the store.
		if !a.armed || msg.gen != a.pollGen {
			return a, nil
		}
		if msg.err != nil {
			// Swallowed: stale-but-present beats empty, and the tick
			// chain keeps running regardless.
			return a, nil
		}
		if a.raid.apply(msg.seq, msg.snapshot) {
			a.applied++
			if a.applied%userSyncEvery == 0 {
				return a, a.syncUser()
			}
		}
		return a, nil

	case userSyncedMsg:
		if msg.gen != a.pollGen || msg.err != nil || msg.user == nil {
			return a, nil
		}
		a.user = msg.user
		return a, nil

	case attackResolvedMsg:
		a.attack.submitting = false
		if msg.err != nil {
			a.attack.status = msg.err.Error()
			return a, nil
		}
		// Optimistic additive merge, then one out-of-band refresh so the
		// HP bar catches up without waiting for the next tick.
		a.user.ApplyReward(*msg.result)
		a.attack.lastResult = msg.result
		a.attack.status = ""
		a.haptics.Confirm()
		if a.armed {
			return a, a.fetchRaid()
		}
		return a, nil

	case shopLoadedMsg:
		a.shop.loading = false
		if msg.err != nil {
			a.shop.status = msg.err.Error()
			return a, nil
		}
		a.shop.items = msg.items
		a.shop.clampCursor()
		return a, nil

	case shopBoughtMsg:
		a.shop.buying = false
		if msg.err != nil {
			a.shop.status = msg.err.Error()
			return a, nil
		}
		// The server is authoritative for currency after a purchase.
		a.user.Gold = msg.result.GoldLeft
		a.shop.status = ""
		a.haptics.Confirm()
		return a, a.shop.load()

	case copyResultMsg:
		if msg.err != nil {
			a.status = "copy failed: " + msg.err.Error()
		} else {
			a.status = "battle report copied"
		}
		return a, nil

	case tea.KeyMsg:
		return a.updateKeys(msg)
	}

	return a, nil
}

func (a App) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// The attack form captures all keys while open.
	if a.screen == screenMain && a.attack.open {
		var cmd tea.Cmd
		a.attack, cmd = a.attack.updateKeys(msg, a.user.ID, a.haptics)
		return a, cmd
	}

	// Rename editing on the welcome screen.
	if a.screen == screenWelcome && a.renaming {
		switch key {
		case "esc":
			a.renaming = false
			a.renameInput = ""
			return a, nil
		case "enter":
			name := a.renameInput
			a.renameInput = ""
			if name == "" {
				a.renaming = false
				return a, nil
			}
			return a, a.rename(name)
		default:
			a.renameInput = editRune(a.renameInput, key)
			return a, nil
		}
	}

	switch key {
	case "q", "ctrl+c":
		return a, tea.Quit
	}

	switch a.screen {
	case screenRules:
		if key == "enter" && !a.registering {
			a.registering = true
			a.status = ""
			return a, a.register()
		}

	case screenWelcome:
		switch key {
		case "enter":
			return a, a.transition(screenMain)
		case "r":
			a.renaming = true
			a.renameInput = a.user.Username
			return a, nil
		}

	case screenMain:
		switch key {
		case "a":
			a.attack.show()
			return a, nil
		case "s":
			return a, a.transition(screenShop)
		case "c":
			if snap := a.raid.snapshot; snap != nil {
				return a, copyBattleReport(snap)
			}
			return a, nil
		}

	case screenShop:
		switch key {
		case "esc", "s":
			return a, a.transition(screenMain)
		default:
			var cmd tea.Cmd
			a.shop, cmd = a.shop.updateKeys(msg, a.haptics)
			return a, cmd
		}
	}

	return a, nil
}
