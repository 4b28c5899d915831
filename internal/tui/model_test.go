package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-wallet-admin/internal/adapter"
	"github.com/MKhiriev/go-wallet-admin/internal/app"
	"github.com/MKhiriev/go-wallet-admin/internal/i18n"
	"github.com/MKhiriev/go-wallet-admin/internal/mock"
	"github.com/MKhiriev/go-wallet-admin/internal/service"
	"github.com/MKhiriev/go-wallet-admin/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/text/language"
)

type testConsole struct {
	clients *mock.MockClientService
	balance *mock.MockBalanceService
	model   model
}

func newTestConsole(t *testing.T) *testConsole {
	t.Helper()
	ctrl := gomock.NewController(t)

	bundle, err := i18n.New("")
	require.NoError(t, err)

	tc := &testConsole{
		clients: mock.NewMockClientService(ctrl),
		balance: mock.NewMockBalanceService(ctrl),
	}
	services := &service.ConsoleServices{ClientService: tc.clients, BalanceService: tc.balance}
	tc.model = newModel(context.Background(), services, bundle.Localizer(language.AmericanEnglish), "console:tester", models.NewAppBuildInfo("v1.0.0", "", ""))
	return tc
}

func sampleClients() []models.Client {
	return []models.Client{
		{ID: "a1", FirstName: "Anna", LastName: "Smith", WalletBTCAddress: "bc1qxyz", Balance: decimal.NewFromInt(100)},
		{ID: "b2", FirstName: "Boris", LastName: "Ivanov", Balance: decimal.RequireFromString("12.5")},
		{ID: "c3", FirstName: "Carl", WalletBTCAddress: "1BoatSLRHt", Balance: decimal.Zero},
	}
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "ctrl+d":
		return tea.KeyMsg{Type: tea.KeyCtrlD}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// send feeds msg to m and returns the updated model and command.
func send(t *testing.T, m model, msg tea.Msg) (model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	next, ok := updated.(model)
	require.True(t, ok)
	return next, cmd
}

// loaded returns tc.model with the sample list already fetched.
func (tc *testConsole) loaded(t *testing.T) model {
	t.Helper()
	m, _ := send(t, tc.model, clientsLoadedMsg{clients: sampleClients()})
	return m
}

func TestModel_LoadsListOnce(t *testing.T) {
	tc := newTestConsole(t)
	tc.clients.EXPECT().List(gomock.Any(), "").Return(sampleClients(), nil).Times(1)

	assert.True(t, tc.model.loading)
	assert.Contains(t, tc.model.View(), "Loading...")

	msg := tc.model.cmdLoad()()
	m, _ := send(t, tc.model, msg)

	assert.False(t, m.loading)
	assert.Len(t, m.clients, 3)
	assert.Contains(t, m.View(), "3 found")
	assert.Contains(t, m.View(), "Anna Smith")
	assert.Contains(t, m.View(), "N/A", "empty wallet is shown as N/A")
}

func TestModel_LoadErrorIsTranslated(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "upstream", err: adapter.ErrServiceUnavailable, want: "Service is temporarily unavailable"},
		{name: "network", err: errors.New("dial tcp 127.0.0.1:80: connect: connection refused"), want: "Service is temporarily unavailable"},
		{name: "other", err: errors.New("boom"), want: "An error occurred while loading data"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := newTestConsole(t)

			m, _ := send(t, tc.model, clientsLoadedMsg{err: tt.err})

			assert.Contains(t, m.View(), tt.want)
			assert.NotContains(t, m.View(), "found")
		})
	}
}

func TestModel_CursorStaysInRange(t *testing.T) {
	tc := newTestConsole(t)
	m := tc.loaded(t)

	m, _ = send(t, m, keyPress("up"))
	assert.Equal(t, 0, m.idx)

	for i := 0; i < 5; i++ {
		m, _ = send(t, m, keyPress("down"))
	}
	assert.Equal(t, 2, m.idx)

	m, _ = send(t, m, keyPress("k"))
	assert.Equal(t, 1, m.idx)
}

func TestModel_FilterNarrowsTheList(t *testing.T) {
	tc := newTestConsole(t)
	m := tc.loaded(t)

	m, _ = send(t, m, keyPress("/"))
	require.True(t, m.filtering)
	for _, r := range "ivan" {
		m, _ = send(t, m, keyPress(string(r)))
	}

	assert.Equal(t, []models.Client{sampleClients()[1]}, m.visible())
	assert.Contains(t, m.View(), "1 found")

	m, _ = send(t, m, keyPress("enter"))
	assert.False(t, m.filtering)
	assert.Equal(t, "ivan", m.filter.Value(), "enter keeps the filter")

	m, _ = send(t, m, keyPress("/"))
	m, _ = send(t, m, keyPress("esc"))
	assert.Empty(t, m.filter.Value(), "esc clears the filter")
	assert.Len(t, m.visible(), 3)
}

func TestModel_FilterKeysDoNotTriggerActions(t *testing.T) {
	tc := newTestConsole(t)
	m := tc.loaded(t)

	m, _ = send(t, m, keyPress("/"))
	m, _ = send(t, m, keyPress("q"))
	m, _ = send(t, m, keyPress("v"))

	assert.Equal(t, "qv", m.filter.Value())
	assert.True(t, m.filtering)
	assert.False(t, m.showBuildInfo)
}

func TestModel_ConfirmDialog(t *testing.T) {
	tc := newTestConsole(t)
	m := tc.loaded(t)
	m, _ = send(t, m, keyPress("down"))

	m, _ = send(t, m, keyPress("ctrl+d"))
	require.NotNil(t, m.confirm)
	assert.Equal(t, "b2", m.confirm.id)
	assert.Contains(t, m.View(), "Do you really want to delete this client?")

	closed, _ := send(t, m, keyPress("n"))
	assert.Nil(t, closed.confirm)

	closed, _ = send(t, m, keyPress("esc"))
	assert.Nil(t, closed.confirm)
}

func TestModel_DeleteReloadsOnceAndClosesDialog(t *testing.T) {
	tc := newTestConsole(t)
	remaining := sampleClients()[:1]
	tc.clients.EXPECT().
		DeleteAndReload(gomock.Any(), "console:tester", "b2", "").
		Return(remaining, nil).
		Times(1)
	tc.clients.EXPECT().List(gomock.Any(), gomock.Any()).Times(0)

	m := tc.loaded(t)
	m, _ = send(t, m, keyPress("down"))
	m, _ = send(t, m, keyPress("ctrl+d"))

	m, cmd := send(t, m, keyPress("y"))
	require.NotNil(t, cmd)
	assert.True(t, m.deleting)

	// a second y while deleting is ignored
	m, again := send(t, m, keyPress("y"))
	assert.Nil(t, again)

	m, _ = send(t, m, cmd())

	assert.False(t, m.deleting)
	assert.Nil(t, m.confirm)
	assert.Equal(t, remaining, m.clients)
	assert.Equal(t, 0, m.idx)
	assert.Contains(t, m.View(), "1 found")
}

func TestModel_DeleteFailureKeepsDialogOpen(t *testing.T) {
	tc := newTestConsole(t)
	tc.clients.EXPECT().
		DeleteAndReload(gomock.Any(), "console:tester", "a1", "").
		Return(nil, adapter.ErrServiceUnavailable)

	m := tc.loaded(t)
	m, _ = send(t, m, keyPress("ctrl+d"))
	m, cmd := send(t, m, keyPress("y"))
	m, _ = send(t, m, cmd())

	require.NotNil(t, m.confirm)
	assert.Equal(t, "a1", m.confirm.id)
	assert.Equal(t, app.MsgUpstreamUnavailable, m.confirm.errKey)
	assert.Empty(t, m.errKey)
	assert.False(t, m.deleting)
	assert.Len(t, m.clients, 3)

	view := m.View()
	assert.Contains(t, view, "3 found")
	assert.Contains(t, view, "Anna Smith")
	assert.Contains(t, view, "Service is temporarily unavailable")
}

func TestModel_DeleteRetryAfterFailure(t *testing.T) {
	tc := newTestConsole(t)
	gomock.InOrder(
		tc.clients.EXPECT().DeleteAndReload(gomock.Any(), "console:tester", "a1", "").Return(nil, adapter.ErrNotFound),
		tc.clients.EXPECT().DeleteAndReload(gomock.Any(), "console:tester", "a1", "").Return(sampleClients()[1:], nil),
	)

	m := tc.loaded(t)
	m, _ = send(t, m, keyPress("ctrl+d"))
	m, cmd := send(t, m, keyPress("y"))
	m, _ = send(t, m, cmd())
	require.NotNil(t, m.confirm)
	assert.Contains(t, m.View(), "Client not found")

	m, cmd = send(t, m, keyPress("y"))
	assert.Empty(t, m.confirm.errKey, "a new attempt clears the previous error")
	m, _ = send(t, m, cmd())

	assert.Nil(t, m.confirm)
	assert.Contains(t, m.View(), "2 found")
}

func TestModel_DeleteRefusedWhileReloading(t *testing.T) {
	tc := newTestConsole(t)
	tc.clients.EXPECT().DeleteAndReload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	m := tc.loaded(t)
	m, reload := send(t, m, keyPress("r"))
	require.NotNil(t, reload)
	require.True(t, m.loading)

	m, _ = send(t, m, keyPress("ctrl+d"))
	assert.Nil(t, m.confirm)

	m, cmd := send(t, m, keyPress("y"))
	assert.Nil(t, cmd)
	assert.False(t, m.deleting)
}

func TestModel_ReloadFinishesBeforeDelete(t *testing.T) {
	tc := newTestConsole(t)
	tc.clients.EXPECT().List(gomock.Any(), "").Return(sampleClients(), nil)
	tc.clients.EXPECT().
		DeleteAndReload(gomock.Any(), "console:tester", "a1", "").
		Return(sampleClients()[1:], nil)

	m := tc.loaded(t)
	m, reload := send(t, m, keyPress("r"))
	m, _ = send(t, m, keyPress("ctrl+d"))
	require.Nil(t, m.confirm)

	// only once the reload landed can the delete start, so its result is the
	// last list the console sees
	m, _ = send(t, m, reload())
	m, _ = send(t, m, keyPress("ctrl+d"))
	require.NotNil(t, m.confirm)
	m, del := send(t, m, keyPress("y"))
	m, _ = send(t, m, del())

	require.Len(t, m.clients, 2)
	assert.Equal(t, "b2", m.clients[0].ID)
}

func TestModel_DetailAndBTCToggle(t *testing.T) {
	tc := newTestConsole(t)
	client := sampleClients()[0]
	btc := decimal.RequireFromString("0.002")
	gomock.InOrder(
		tc.balance.EXPECT().Card(gomock.Any(), client.Balance, false).Return(models.BalanceCard{USD: client.Balance}),
		tc.balance.EXPECT().Card(gomock.Any(), client.Balance, true).Return(models.BalanceCard{USD: client.Balance, BTC: &btc}),
	)

	m := tc.loaded(t)
	m, cmd := send(t, m, keyPress("enter"))
	require.NotNil(t, m.detail)
	assert.Equal(t, "a1", m.detail.client.ID)

	m, _ = send(t, m, cmd())
	assert.Contains(t, m.View(), "$ 100")
	assert.NotContains(t, m.View(), " BTC")

	m, cmd = send(t, m, keyPress("b"))
	assert.True(t, m.detail.showBTC)
	m, _ = send(t, m, cmd())
	assert.Contains(t, m.View(), "0.00200000 BTC")

	m, _ = send(t, m, keyPress("esc"))
	assert.Nil(t, m.detail)
}

func TestModel_DetailRateFailure(t *testing.T) {
	tc := newTestConsole(t)
	m := tc.loaded(t)
	m, _ = send(t, m, keyPress("enter"))

	m, _ = send(t, m, cardLoadedMsg{id: "a1", card: models.BalanceCard{USD: decimal.NewFromInt(100), BTCError: app.MsgFailedToFetchBTCRate}})

	assert.Contains(t, m.View(), "Failed to fetch BTC rate")
}

func TestModel_StaleCardIsIgnored(t *testing.T) {
	tc := newTestConsole(t)
	m := tc.loaded(t)
	m, _ = send(t, m, keyPress("enter"))

	m, _ = send(t, m, cardLoadedMsg{id: "b2", card: models.BalanceCard{USD: decimal.NewFromInt(7)}})

	assert.True(t, m.detail.loading)
}

func TestModel_CopyWallet(t *testing.T) {
	tc := newTestConsole(t)
	var copied string
	tc.model.copyToClipboard = func(s string) error {
		copied = s
		return nil
	}

	m := tc.loaded(t)
	m, _ = send(t, m, keyPress("enter"))
	m, cmd := send(t, m, keyPress("c"))
	require.NotNil(t, cmd)
	m, _ = send(t, m, cmd())

	assert.Equal(t, "bc1qxyz", copied)
	assert.Equal(t, "Copied", m.detail.status)
}

func TestModel_CopyWithoutWallet(t *testing.T) {
	tc := newTestConsole(t)
	tc.model.copyToClipboard = func(string) error {
		t.Fatal("clipboard must not be used")
		return nil
	}

	m := tc.loaded(t)
	m, _ = send(t, m, keyPress("down"))
	m, _ = send(t, m, keyPress("enter"))
	m, cmd := send(t, m, keyPress("c"))

	assert.Nil(t, cmd)
	assert.Equal(t, "Nothing to copy", m.detail.status)
}

func TestModel_DeleteFromDetail(t *testing.T) {
	tc := newTestConsole(t)
	m := tc.loaded(t)
	m, _ = send(t, m, keyPress("down"))
	m, _ = send(t, m, keyPress("down"))
	m, _ = send(t, m, keyPress("enter"))

	m, _ = send(t, m, keyPress("ctrl+d"))

	require.NotNil(t, m.confirm)
	assert.Equal(t, "c3", m.confirm.id)
}

func TestModel_BuildInfo(t *testing.T) {
	tc := newTestConsole(t)
	m := tc.loaded(t)

	m, _ = send(t, m, keyPress("v"))
	assert.Contains(t, m.View(), "v1.0.0")
	assert.Contains(t, m.View(), "N/A")

	m, _ = send(t, m, keyPress("esc"))
	assert.False(t, m.showBuildInfo)
}

func TestModel_Quit(t *testing.T) {
	tc := newTestConsole(t)
	m := tc.loaded(t)

	for _, k := range []string{"q", "ctrl+c"} {
		_, cmd := send(t, m, keyPress(k))
		require.NotNil(t, cmd, k)
		_, ok := cmd().(tea.QuitMsg)
		assert.True(t, ok, k)
	}
}

func TestErrorKey(t *testing.T) {
	assert.Empty(t, errorKey(nil))
	assert.Equal(t, app.MsgEmptyClientID, errorKey(service.ErrEmptyClientID))
	assert.Equal(t, app.MsgUpstreamUnavailable, errorKey(context.DeadlineExceeded))
	assert.Equal(t, app.MsgUpstreamUnavailable, errorKey(errors.New("lookup api: no such host")))
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "short", fitText("short", 10))
	assert.Equal(t, "abcdefg...", fitText("abcdefghijklmnop", 10))
	assert.Equal(t, "Бор", fitText("Борис", 3))
	assert.Equal(t, "anything", fitText("anything", 0))
}
