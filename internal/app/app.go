// internal/app/app.go
package app

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/reel/internal/carousel"
	"github.com/llehouerou/reel/internal/config"
	"github.com/llehouerou/reel/internal/indicator"
	"github.com/llehouerou/reel/internal/keymap"
	"github.com/llehouerou/reel/internal/media"
	"github.com/llehouerou/reel/internal/mpris"
	"github.com/llehouerou/reel/internal/notify"
	"github.com/llehouerou/reel/internal/state"
	"github.com/llehouerou/reel/internal/ui/pageart"
)

// Remote is the remote-control side of the app (MPRIS on Linux).
type Remote interface {
	Commands() <-chan mpris.Command
	SetStatus(mpris.Status)
}

// Options holds everything New needs.
type Options struct {
	Config *config.Config
	State  state.Interface
	Art    *pageart.Renderer // nil disables page images
	Remote Remote            // nil disables remote control
	Notify notify.Notifier   // nil disables desktop notifications
	Stderr <-chan string     // captured stderr lines, may be nil
	Logger *slog.Logger

	Folder    string // explicit folder; empty means saved or configured
	StartPage int    // -1 restores the saved position
	NoAuto    bool
}

// Model is the root application model.
type Model struct {
	indicatorCfg config.IndicatorConfig
	autoCfg      config.AutoAdvanceConfig
	pagerCfg     config.PagerConfig
	noAuto       bool

	stateMgr state.Interface
	art      *pageart.Renderer
	remote   Remote
	notifier notify.Notifier
	stderr   <-chan string
	logger   *slog.Logger

	keys     *keymap.Resolver
	help     help.Model
	helpKeys keymap.Help
	showHelp bool

	folder    string
	items     []media.Item
	carousel  *carousel.Controller
	startPage int
	loading   bool

	ticking bool
	framing bool

	// release timers carry the version they were started for.
	releaseVersion int

	// escapes to write before the next frame (image transmit/delete)
	artPending string
	artLoading bool

	status        string
	statusVersion int

	Width  int
	Height int
}

// New creates the application model. The folder is scanned by Init.
func New(opts Options) (Model, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = &config.Config{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	art := opts.Art
	if art == nil {
		art = pageart.New(nil, nil)
	}

	folder, err := resolveFolder(opts.Folder, cfg, opts.State)
	if err != nil {
		return Model{}, err
	}

	h := help.New()
	h.ShowAll = true

	return Model{
		indicatorCfg: cfg.GetIndicatorConfig(),
		autoCfg:      cfg.GetAutoAdvanceConfig(),
		pagerCfg:     cfg.GetPagerConfig(),
		noAuto:       opts.NoAuto,
		stateMgr:     opts.State,
		art:          art,
		remote:       opts.Remote,
		notifier:     opts.Notify,
		stderr:       opts.Stderr,
		logger:       logger.With(slog.String("component", "app")),
		keys:         keymap.NewResolver(keymap.All),
		help:         h,
		helpKeys: keymap.NewHelp(
			[]string{keymap.ContextGlobal, keymap.ContextPages, keymap.ContextSlideshow},
			keymap.ActionNextPage, keymap.ActionPrevPage, keymap.ActionTogglePause,
			keymap.ActionHelp, keymap.ActionQuit,
		),
		folder:    folder,
		startPage: opts.StartPage,
		loading:   true,
	}, nil
}

// resolveFolder picks the folder to show: explicit > remembered > configured > cwd.
func resolveFolder(explicit string, cfg *config.Config, st state.Interface) (string, error) {
	folder := explicit
	if folder == "" && st != nil {
		folder = rememberedFolder(st)
	}
	if folder == "" {
		folder = cfg.DefaultFolder
	}
	if folder == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		folder = wd
	}

	abs, err := filepath.Abs(folder)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", folder, err)
	}
	return abs, nil
}

// recentLimit bounds how far back the folder history is searched.
const recentLimit = 10

// rememberedFolder returns the last folder shown or, when that one is gone,
// the most recently viewed folder that still exists.
func rememberedFolder(st state.Interface) string {
	var candidates []string
	if last, err := st.GetLastFolder(); err == nil && last != "" {
		candidates = append(candidates, last)
	}
	if recent, err := st.RecentFolders(recentLimit); err == nil {
		for _, p := range recent {
			candidates = append(candidates, p.Folder)
		}
	}
	for _, f := range candidates {
		if info, err := os.Stat(f); err == nil && info.IsDir() {
			return f
		}
	}
	return ""
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		LoadFolderCmd(m.folder),
		m.waitForRemote(),
		WaitForStderr(m.stderr),
	)
}

func (m Model) waitForRemote() tea.Cmd {
	if m.remote == nil {
		return nil
	}
	return WaitForRemote(m.remote.Commands())
}

// carouselConfig maps the config file onto controller settings.
func (m Model) carouselConfig() carousel.Config {
	end := indicator.EndStop
	if m.wraps() {
		end = indicator.EndWrap
	}
	return carousel.Config{
		CollapsedWidth: m.indicatorCfg.CollapsedWidth,
		Spacing:        *m.indicatorCfg.Spacing,
		AutoAdvance:    *m.autoCfg.Enabled && !m.noAuto,
		Step:           m.autoCfg.Step,
		EndPolicy:      end,
		SettleFactor:   m.pagerCfg.SettleFactor,
	}
}

// Folder returns the folder being shown.
func (m Model) Folder() string {
	return m.folder
}

// Items returns the pages of the folder.
func (m Model) Items() []media.Item {
	return m.items
}

// Carousel returns the page controller, nil until the folder is loaded.
func (m Model) Carousel() *carousel.Controller {
	return m.carousel
}

// Status returns the status line text.
func (m Model) Status() string {
	return m.status
}

// wraps reports whether the slideshow restarts after the last page.
func (m Model) wraps() bool {
	return m.autoCfg.End == indicator.EndWrap.String()
}

// currentItem returns the item on screen.
func (m Model) currentItem() (media.Item, bool) {
	if m.carousel == nil || len(m.items) == 0 {
		return media.Item{}, false
	}
	page := m.carousel.Page()
	if page < 0 || page >= len(m.items) {
		return media.Item{}, false
	}
	return m.items[page], true
}
