package tui

import (
	"context"

	"github.com/MKhiriev/go-wallet-admin/internal/i18n"
	"github.com/MKhiriev/go-wallet-admin/internal/service"
	"github.com/MKhiriev/go-wallet-admin/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// model is the whole console: the client list with its filter, the delete
// confirmation overlay and the client detail screen.
type model struct {
	ctx       context.Context
	services  *service.ConsoleServices
	l         *i18n.Localizer
	actor     string
	buildInfo models.AppBuildInfo

	// clients is the last fetched list; the filter narrows it locally.
	clients   []models.Client
	filter    textinput.Model
	filtering bool
	idx       int
	loading   bool
	spinner   spinner.Model
	errKey    string

	confirm  *confirmModel
	deleting bool

	detail *detailModel

	showBuildInfo bool

	copyToClipboard func(string) error
}

func newModel(ctx context.Context, services *service.ConsoleServices, l *i18n.Localizer, actor string, buildInfo models.AppBuildInfo) model {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	f := textinput.New()
	f.Prompt = "/ "
	f.Placeholder = l.T("search")
	f.Width = 40

	return model{
		ctx:             ctx,
		services:        services,
		l:               l,
		actor:           actor,
		buildInfo:       buildInfo,
		filter:          f,
		loading:         true,
		spinner:         s,
		copyToClipboard: clipboard.WriteAll,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoad())
}

// visible returns the clients matching the filter, in list order.
func (m model) visible() []models.Client {
	return service.FilterClients(m.clients, m.filter.Value())
}

func (m model) current() (models.Client, bool) {
	clients := m.visible()
	if m.idx < 0 || m.idx >= len(clients) {
		return models.Client{}, false
	}
	return clients[m.idx], true
}

func (m *model) clampCursor() {
	if n := len(m.visible()); m.idx >= n {
		m.idx = n - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m model) busy() bool {
	return m.loading || m.deleting || (m.detail != nil && m.detail.loading)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case clientsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errKey = errorKey(msg.err)
			m.clients = nil
			return m, nil
		}
		m.errKey = ""
		m.clients = msg.clients
		m.clampCursor()
		return m, nil

	case deleteDoneMsg:
		m.deleting = false
		if msg.err != nil {
			// the list is still the last good fetch; the dialog reports the failure
			if m.confirm != nil {
				confirm := *m.confirm
				confirm.errKey = errorKey(msg.err)
				m.confirm = &confirm
			}
			return m, nil
		}
		m.confirm = nil
		m.detail = nil
		m.errKey = ""
		m.clients = msg.clients
		m.clampCursor()
		return m, nil

	case cardLoadedMsg:
		if m.detail != nil && m.detail.client.ID == msg.id {
			detail := *m.detail
			detail.loading = false
			detail.card = msg.card
			m.detail = &detail
		}
		return m, nil

	case copiedMsg:
		if m.detail != nil {
			detail := *m.detail
			detail.status = m.l.T("copied")
			if msg.err != nil {
				detail.status = msg.err.Error()
			}
			m.detail = &detail
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	return m, nil
}

func (m model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.forceQ) {
		return m, tea.Quit
	}

	switch {
	case m.showBuildInfo:
		if key.Matches(msg, keys.esc, keys.info) {
			m.showBuildInfo = false
		}
		return m, nil
	case m.confirm != nil:
		return m.updateConfirm(msg)
	case m.filtering:
		return m.updateFilter(msg)
	case m.detail != nil:
		return m.updateDetail(msg)
	}

	return m.updateList(msg)
}

func (m model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.visible())-1 {
			m.idx++
		}
	case key.Matches(msg, keys.filter):
		m.filtering = true
		return m, m.filter.Focus()
	case key.Matches(msg, keys.reload):
		if m.busy() {
			return m, nil
		}
		m.loading = true
		return m, m.cmdLoad()
	case key.Matches(msg, keys.info):
		m.showBuildInfo = true
	case key.Matches(msg, keys.enter):
		client, ok := m.current()
		if !ok {
			return m, nil
		}
		m.detail = &detailModel{client: client, loading: true}
		return m, m.cmdCard(client, false)
	case key.Matches(msg, keys.delete):
		return m.openConfirm()
	}

	return m, nil
}

func (m model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.filter.SetValue("")
		m.filter.Blur()
		m.filtering = false
		m.clampCursor()
		return m, nil
	case key.Matches(msg, keys.enter):
		m.filter.Blur()
		m.filtering = false
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.idx = 0
	return m, cmd
}

func (m model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	d := m.detail

	switch {
	case key.Matches(msg, keys.esc):
		m.detail = nil
	case key.Matches(msg, keys.btc):
		if d.loading {
			return m, nil
		}
		detail := *d
		detail.showBTC = !d.showBTC
		detail.loading = true
		detail.status = ""
		m.detail = &detail
		return m, m.cmdCard(detail.client, detail.showBTC)
	case key.Matches(msg, keys.copy):
		if d.client.WalletBTCAddress == "" {
			detail := *d
			detail.status = m.l.T("nothing to copy")
			m.detail = &detail
			return m, nil
		}
		return m, m.cmdCopy(d.client.WalletBTCAddress)
	case key.Matches(msg, keys.delete):
		return m.openConfirm()
	}

	return m, nil
}

// openConfirm is refused while the list is being fetched, so a delete never
// races a reload that would bring the deleted client back.
func (m model) openConfirm() (tea.Model, tea.Cmd) {
	if m.loading || m.deleting {
		return m, nil
	}

	client, ok := m.current()
	if m.detail != nil {
		client, ok = m.detail.client, true
	}
	if !ok {
		return m, nil
	}

	m.confirm = &confirmModel{id: client.ID, name: client.FullName()}
	return m, nil
}

func (m model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.deleting {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.yes):
		if m.loading {
			return m, nil
		}
		confirm := *m.confirm
		confirm.errKey = ""
		m.confirm = &confirm
		m.deleting = true
		return m, m.cmdDelete(confirm.id)
	case key.Matches(msg, keys.no, keys.esc):
		m.confirm = nil
	}
	return m, nil
}

func (m model) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.l, m.buildInfo)
	}

	var screen string
	if m.detail != nil {
		screen = m.detail.View(m.l, m.spinner.View())
	} else {
		screen = m.viewList()
	}

	if m.confirm != nil {
		screen += "\n\n" + m.confirm.View(m.l, m.deleting, m.spinner.View())
	}
	return screen
}

func (m model) cmdLoad() tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		clients, err := m.services.ClientService.List(ctx, "")
		return clientsLoadedMsg{clients: clients, err: err}
	}
}

// cmdDelete deletes id and fetches the list once afterwards.
func (m model) cmdDelete(id string) tea.Cmd {
	ctx, actor := m.ctx, m.actor
	return func() tea.Msg {
		clients, err := m.services.ClientService.DeleteAndReload(ctx, actor, id, "")
		return deleteDoneMsg{id: id, clients: clients, err: err}
	}
}

func (m model) cmdCard(client models.Client, showBTC bool) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return cardLoadedMsg{id: client.ID, card: m.services.BalanceService.Card(ctx, client.Balance, showBTC)}
	}
}

func (m model) cmdCopy(text string) tea.Cmd {
	copyFn := m.copyToClipboard
	return func() tea.Msg {
		return copiedMsg{err: copyFn(text)}
	}
}
