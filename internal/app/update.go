// internal/app/update.go
package app

import (
	"errors"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/reel/internal/carousel"
	"github.com/llehouerou/reel/internal/errmsg"
	"github.com/llehouerou/reel/internal/indicator"
	"github.com/llehouerou/reel/internal/keymap"
	"github.com/llehouerou/reel/internal/media"
	"github.com/llehouerou/reel/internal/mpris"
	"github.com/llehouerou/reel/internal/notify"
	"github.com/llehouerou/reel/internal/ui/indicatorbar"
	"github.com/llehouerou/reel/internal/ui/pageart"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Image escapes go out with exactly one frame.
	m.artPending = ""

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case FolderLoadedMsg:
		return m.handleFolderLoaded(msg)

	case AutoTickMsg:
		return m.handleAutoTick()

	case FrameMsg:
		return m.handleFrame()

	case ReleaseMsg:
		return m.handleRelease(msg)

	case PageArtPreparedMsg:
		return m.handleArtPrepared(msg)

	case RemoteMsg:
		return m.handleRemote(msg)

	case StderrMsg:
		cmd := m.setStatus("stderr: " + msg.Line)
		return m, tea.Batch(cmd, WaitForStderr(m.stderr))

	case StatusClearMsg:
		if msg.Version == m.statusVersion {
			m.status = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)
	}

	return m, nil
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height
	m.help.Width = msg.Width
	return m, m.relayout()
}

func (m Model) handleFolderLoaded(msg FolderLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Folder != m.folder {
		return m, nil
	}
	m.loading = false
	m.artPending += m.art.Clear()

	if msg.Err != nil {
		m.items = nil
		m.carousel = nil
		m.publish()
		return m, m.setError(errmsg.FormatWith(errmsg.OpFolderScan, filepath.Base(msg.Folder), msg.Err), msg.Err)
	}

	c, err := carousel.New(len(msg.Items), m.carouselConfig(), m.logger)
	if err != nil {
		m.items = nil
		m.carousel = nil
		return m, m.setError(errmsg.Format(errmsg.OpFolderOpen, err), err)
	}
	m.items = msg.Items
	m.carousel = c

	var cmds []tea.Cmd
	if page := m.initialPage(); page > 0 {
		if _, err := c.Select(page); err != nil {
			cmds = append(cmds, m.setError(errmsg.Format(errmsg.OpPageSelect, err), err))
		}
	}
	m.startPage = -1

	if m.stateMgr != nil {
		if err := m.stateMgr.SaveLastFolder(m.folder); err != nil {
			m.logger.Warn("save last folder failed", "error", err)
		}
	}
	m.logger.Info("folder loaded", "folder", m.folder, "pages", len(m.items), "page", c.Page())

	cmds = append(cmds, m.layoutCarousel(), m.startTicking(), m.requestArt())
	m.publish()
	return m, tea.Batch(cmds...)
}

// initialPage returns the page to open on: the requested one, else the
// saved position.
func (m Model) initialPage() int {
	last := len(m.items) - 1
	if m.startPage >= 0 {
		return min(m.startPage, last)
	}
	if m.stateMgr == nil {
		return 0
	}
	page, ok, err := m.stateMgr.GetPosition(m.folder)
	if err != nil {
		m.logger.Warn(errmsg.Format(errmsg.OpPositionLoad, err))
		return 0
	}
	if !ok || page < 0 || page > last {
		return 0
	}
	return page
}

func (m Model) handleAutoTick() (tea.Model, tea.Cmd) {
	if m.carousel == nil || !m.carousel.AutoAdvanceEnabled() {
		m.ticking = false
		return m, nil
	}

	u, err := m.carousel.Tick()
	cmds := []tea.Cmd{AutoTickCmd(m.autoCfg.Interval)}
	if err != nil && !errors.Is(err, indicator.ErrNotLaidOut) {
		cmds = append(cmds, m.setError(errmsg.Format(errmsg.OpPageAdvance, err), err))
	}
	switch u.Event {
	case indicator.EventAdvanced, indicator.EventRestarted, indicator.EventFinished:
		m.publish()
	}
	if u.Event == indicator.EventFinished {
		cmds = append(cmds, m.notifyFinished())
	}
	cmds = append(cmds, m.apply(u))
	return m, tea.Batch(cmds...)
}

func (m Model) handleFrame() (tea.Model, tea.Cmd) {
	m.framing = false
	if m.carousel == nil {
		return m, nil
	}
	u, err := m.carousel.Frame()
	if err != nil {
		return m, tea.Batch(m.apply(u), m.setError(errmsg.Format(errmsg.OpPageSelect, err), err))
	}
	return m, m.apply(u)
}

func (m Model) handleRelease(msg ReleaseMsg) (tea.Model, tea.Cmd) {
	if msg.Version != m.releaseVersion || m.carousel == nil {
		return m, nil
	}
	u, err := m.carousel.Release()
	if err != nil {
		return m, m.setError(errmsg.Format(errmsg.OpPageSelect, err), err)
	}
	return m, m.apply(u)
}

func (m Model) handleArtPrepared(msg PageArtPreparedMsg) (tea.Model, tea.Cmd) {
	item, ok := m.currentItem()
	if !ok || item.Path != msg.Path {
		return m, nil // page changed meanwhile
	}
	m.artLoading = false

	if msg.Err != nil {
		if errors.Is(msg.Err, media.ErrNoPreview) || errors.Is(msg.Err, pageart.ErrDisabled) {
			m.logger.Debug("no preview", "path", item.Path, "error", msg.Err)
			return m, nil
		}
		return m, m.setError(errmsg.FormatWith(errmsg.OpPageLoad, item.Name, msg.Err), msg.Err)
	}

	cmd, err := m.art.Apply(msg.Prepared)
	if errors.Is(err, pageart.ErrStale) {
		return m, nil
	}
	m.artPending += cmd
	if err != nil {
		return m, m.setError(errmsg.FormatWith(errmsg.OpPageRender, item.Name, err), err)
	}
	return m, nil
}

func (m Model) handleRemote(msg RemoteMsg) (tea.Model, tea.Cmd) {
	wait := m.waitForRemote()
	if m.carousel == nil {
		return m, wait
	}
	m.logger.Debug("remote command", "command", msg.Command)

	var cmd tea.Cmd
	switch msg.Command {
	case mpris.CommandNext:
		cmd = m.swipe(1)
	case mpris.CommandPrevious:
		cmd = m.swipe(-1)
	case mpris.CommandPlayPause:
		m.togglePause()
	case mpris.CommandPlay:
		if m.carousel.Paused() {
			m.togglePause()
		}
	case mpris.CommandPause:
		if !m.carousel.Paused() {
			m.togglePause()
		}
	case mpris.CommandStop:
		if !m.carousel.Paused() {
			m.togglePause()
		}
		cmd = m.selectPage(0)
	}
	return m, tea.Batch(cmd, wait)
}

// keyContexts lists the binding contexts that apply beyond the global one.
func (m Model) keyContexts() []string {
	if m.carousel == nil {
		return nil
	}
	if m.carousel.AutoAdvanceEnabled() {
		return []string{keymap.ContextPages, keymap.ContextSlideshow}
	}
	return []string{keymap.ContextPages}
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Resolve(msg.String(), m.keyContexts()...)

	switch action {
	case keymap.ActionQuit:
		return m, tea.Quit
	case keymap.ActionHelp:
		m.showHelp = !m.showHelp
		return m, m.relayout()
	case keymap.ActionReload:
		m.loading = true
		if m.carousel != nil {
			m.startPage = m.carousel.Page()
		}
		return m, LoadFolderCmd(m.folder)
	}

	if m.carousel == nil {
		return m, nil
	}

	var cmd tea.Cmd
	switch action {
	case keymap.ActionNextPage:
		cmd = m.swipe(1)
	case keymap.ActionPrevPage:
		cmd = m.swipe(-1)
	case keymap.ActionFirstPage:
		cmd = m.selectPage(0)
	case keymap.ActionLastPage:
		cmd = m.selectPage(m.carousel.Pages() - 1)
	case keymap.ActionNudgeForward:
		cmd = m.nudge(1)
	case keymap.ActionNudgeBack:
		cmd = m.nudge(-1)
	case keymap.ActionTogglePause:
		m.togglePause()
	}
	return m, cmd
}

func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.carousel == nil || msg.Action != tea.MouseActionPress {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
		return m, m.nudge(1)
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
		return m, m.nudge(-1)
	case tea.MouseButtonLeft:
		if msg.Y != m.indicatorRow() || !m.carousel.LaidOut() {
			return m, nil
		}
		i := indicatorbar.HitTest(m.carousel.State(), m.indicatorOptions(), msg.X-m.indicatorLeft())
		if i < 0 {
			return m, nil
		}
		return m, m.selectPage(i)
	}
	return m, nil
}

// swipe scrolls steps pages, finishing any drag first.
func (m *Model) swipe(steps int) tea.Cmd {
	var cmds []tea.Cmd
	if m.carousel.Dragging() {
		u, err := m.carousel.Release()
		if err != nil {
			return m.setError(errmsg.Format(errmsg.OpPageSelect, err), err)
		}
		cmds = append(cmds, m.apply(u))
	}

	u, err := m.carousel.Swipe(steps)
	if err != nil {
		if errors.Is(err, indicator.ErrNotLaidOut) {
			return tea.Batch(cmds...)
		}
		return tea.Batch(append(cmds, m.setError(errmsg.Format(errmsg.OpPageSelect, err), err))...)
	}
	return tea.Batch(append(cmds, m.apply(u))...)
}

func (m *Model) selectPage(index int) tea.Cmd {
	u, err := m.carousel.Select(index)
	if err != nil {
		return m.setError(errmsg.Format(errmsg.OpPageSelect, err), err)
	}
	m.publish()
	return m.apply(u)
}

// nudge drags by one nudge step in the given direction and (re)arms the
// release timer.
func (m *Model) nudge(sign float64) tea.Cmd {
	u, err := m.carousel.Nudge(sign * m.pagerCfg.Nudge)
	if errors.Is(err, indicator.ErrNotLaidOut) {
		return nil
	}
	if err != nil {
		return m.setError(errmsg.Format(errmsg.OpPageSelect, err), err)
	}
	m.releaseVersion++
	return tea.Batch(m.apply(u), ReleaseCmd(m.pagerCfg.ReleaseAfter, m.releaseVersion))
}

func (m *Model) togglePause() {
	paused := m.carousel.TogglePause()
	m.logger.Info("slideshow", "paused", paused)
	m.publish()
}

// apply reacts to a controller update: page changes load the new page and
// persist the position; animations get frame ticks.
func (m *Model) apply(u carousel.Update) tea.Cmd {
	var cmds []tea.Cmd
	if u.PageChanged {
		if m.stateMgr != nil {
			m.stateMgr.SavePosition(m.folder, u.Page)
		}
		m.publish()
		cmds = append(cmds, m.requestArt())
	}
	cmds = append(cmds, m.startFrames())
	return tea.Batch(cmds...)
}

func (m *Model) startFrames() tea.Cmd {
	if m.framing || m.carousel == nil || !m.carousel.NeedsFrames() {
		return nil
	}
	m.framing = true
	return FrameCmd(m.pagerCfg.FrameInterval)
}

func (m *Model) startTicking() tea.Cmd {
	if m.ticking || m.carousel == nil || !m.carousel.AutoAdvanceEnabled() {
		return nil
	}
	m.ticking = true
	return AutoTickCmd(m.autoCfg.Interval)
}

// layoutCarousel hands the indicator its width.
func (m *Model) layoutCarousel() tea.Cmd {
	if m.carousel == nil || m.indicatorWidth() == 0 {
		return nil
	}
	u, err := m.carousel.Layout(float64(m.indicatorWidth()))
	if err != nil {
		return m.setError(errmsg.Format(errmsg.OpPageLayout, err), err)
	}
	return m.apply(u)
}

// relayout follows a change of terminal size or footer height.
func (m *Model) relayout() tea.Cmd {
	cmds := []tea.Cmd{m.layoutCarousel()}
	if m.art.SetSize(m.Width, m.pageRows()) {
		cmds = append(cmds, m.requestArt())
	}
	return tea.Batch(cmds...)
}

// requestArt drops the shown image and prepares the current page's one.
func (m *Model) requestArt() tea.Cmd {
	item, ok := m.currentItem()
	if !ok || !m.art.Enabled() {
		return nil
	}
	if m.art.CurrentPath() != "" {
		m.artPending += m.art.Clear()
	}
	m.art.Want(item.Path)

	if w, h := m.art.Size(); w <= 0 || h <= 0 {
		return nil
	}
	m.artLoading = true
	return PrepareArtCmd(m.art, item)
}

// publish shares the slideshow state with the remote control.
func (m *Model) publish() {
	if m.remote == nil {
		return
	}
	s := mpris.Status{
		Folder: filepath.Base(m.folder),
		Wrap:   m.wraps(),
	}
	if item, ok := m.currentItem(); ok {
		s.Path = item.Path
		s.Title = item.Title()
		s.ArtPath = mpris.ArtPath(item.Path, item.Kind == media.KindImage)
		s.Page = m.carousel.Page()
		s.Pages = m.carousel.Pages()
		s.Playing = m.carousel.Running()
	}
	m.remote.SetStatus(s)
}

// notifyFinished announces the end of the slideshow on the desktop.
func (m *Model) notifyFinished() tea.Cmd {
	icon := ""
	if item, ok := m.currentItem(); ok {
		icon = mpris.ArtPath(item.Path, item.Kind == media.KindImage)
	}
	notif := notify.SlideshowFinished(m.folder, len(m.items), icon)
	return NotifyCmd(m.notifier, notif, m.logger)
}

// setError logs err and shows text in the status line.
func (m *Model) setError(text string, err error) tea.Cmd {
	m.logger.Error(text, "error", err)
	return m.setStatus(text)
}

func (m *Model) setStatus(text string) tea.Cmd {
	m.status = text
	m.statusVersion++
	return StatusClearCmd(m.statusVersion)
}
