// ============================================================================
// meinBIERKELLER (mBK) - Craft-Beer-Katalog
// ============================================================================
//
// Package:     beerlist
// Description: Main Bubbletea model for browsing the beer catalog
// Author:      msto63
// Created:     2026-08-18
// License:     MIT
// ============================================================================

package beerlist

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/mBK/internal/catalog"
)

// ViewMode represents the active view
type ViewMode int

const (
	ViewList ViewMode = iota
	ViewDetail
)

// Config holds beer list TUI configuration
type Config struct {
	DataFile string
}

// beerItem implements list.Item for the catalog list
type beerItem struct {
	beer catalog.Beer
}

func (i beerItem) Title() string {
	return fmt.Sprintf("%d. %s", i.beer.Ordinal, i.beer.Name)
}

func (i beerItem) Description() string {
	return fmt.Sprintf("%s · %s · %s%% · ★ %s (%s Bewertungen)",
		i.beer.Brewery, i.beer.Type, i.beer.ABVString(),
		i.beer.AverageRating.String(), i.beer.RatingsString())
}

func (i beerItem) FilterValue() string {
	return i.beer.Name + " " + i.beer.Brewery + " " + i.beer.Type
}

// Messages

type beersLoadedMsg struct {
	beers []catalog.Beer
	err   error
}

// Model is the main Bubbletea model for the beer catalog browser
type Model struct {
	// State
	width    int
	height   int
	ready    bool
	loading  bool
	viewMode ViewMode
	err      error

	// Components
	beerList list.Model
	spinner  spinner.Model

	// Catalog state
	beers    []catalog.Beer
	selected catalog.Beer

	// Configuration
	dataFile string
	service  *catalog.Service
}

// New creates a new beer list model
func New(cfg Config) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(ColorPrimary)

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = SelectedItemStyle
	delegate.Styles.NormalTitle = ListItemStyle

	beerList := list.New([]list.Item{}, delegate, 0, 0)
	beerList.Title = "Biere"
	beerList.SetShowHelp(false)
	beerList.SetFilteringEnabled(true)

	return Model{
		spinner:  sp,
		beerList: beerList,
		loading:  true,
		viewMode: ViewList,
		dataFile: cfg.DataFile,
		service:  catalog.NewService(),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.loadBeers,
		tea.EnterAltScreen,
	)
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// While the list filter input is active, keys belong to it
		if m.viewMode == ViewList && m.beerList.FilterState() == list.Filtering {
			break
		}
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 3
		footerHeight := 2
		m.beerList.SetSize(msg.Width-4, msg.Height-headerHeight-footerHeight)
		m.ready = true

	case spinner.TickMsg:
		if m.loading {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case beersLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
		} else {
			m.err = nil
			m.beers = msg.beers
			items := make([]list.Item, len(msg.beers))
			for i, beer := range msg.beers {
				items[i] = beerItem{beer: beer}
			}
			cmds = append(cmds, m.beerList.SetItems(items))
		}
	}

	if m.viewMode == ViewList {
		m.beerList, cmd = m.beerList.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// handleKeyPress handles keyboard input outside of filter mode
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "enter":
		if m.viewMode == ViewList {
			if item, ok := m.beerList.SelectedItem().(beerItem); ok {
				m.selected = item.beer
				m.viewMode = ViewDetail
			}
			return m, nil
		}

	case "esc":
		if m.viewMode == ViewDetail {
			m.viewMode = ViewList
			return m, nil
		}

	case "r":
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.loadBeers)
	}

	var cmd tea.Cmd
	if m.viewMode == ViewList {
		m.beerList, cmd = m.beerList.Update(msg)
	}
	return m, cmd
}

// View implements tea.Model
func (m Model) View() string {
	if !m.ready {
		return "Lade Bierkatalog..."
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	switch {
	case m.err != nil:
		b.WriteString(ErrorStyle.Render("Fehler: " + m.err.Error()))
		b.WriteString("\n")
	case m.loading:
		b.WriteString(m.spinner.View() + " Lade Bierkatalog...")
		b.WriteString("\n")
	case m.viewMode == ViewDetail:
		b.WriteString(m.renderDetail())
		b.WriteString("\n")
	default:
		b.WriteString(m.beerList.View())
		b.WriteString("\n")
	}

	b.WriteString(m.renderHelpBar())

	return b.String()
}

// renderHeader renders the title panel
func (m Model) renderHeader() string {
	logo := LogoStyle.Render(Logo)
	count := StatusBarStyle.Render(fmt.Sprintf("%d Biere", len(m.beers)))

	header := lipgloss.JoinHorizontal(lipgloss.Center,
		logo,
		strings.Repeat(" ", 3),
		count,
	)

	return TitlePanelStyle.Width(m.width - 4).Render(header)
}

// renderDetail renders the detail panel for the selected beer
func (m Model) renderDetail() string {
	beer := m.selected

	row := func(label, value string) string {
		return DetailLabelStyle.Render(label) + DetailValueStyle.Render(value)
	}

	lines := []string{
		row("Platz", fmt.Sprintf("%d", beer.Ordinal)),
		row("Name", beer.Name),
		row("Brauerei", beer.Brewery),
		row("Stil", beer.Type),
		row("Alkohol", beer.ABVString()+"%"),
		row("Bewertungen", beer.RatingsString()),
		DetailLabelStyle.Render("Durchschnitt") + RatingStyle.Render("★ "+beer.AverageRating.String()),
	}

	return DetailPanelStyle.Width(m.width - 4).Render(strings.Join(lines, "\n"))
}

// renderHelpBar renders the help shortcuts bar
func (m Model) renderHelpBar() string {
	var items []string

	if m.viewMode == ViewDetail {
		items = []string{
			RenderKeyHint("Esc", "Zurück"),
			RenderKeyHint("q", "Beenden"),
		}
	} else {
		items = []string{
			RenderKeyHint("↑/↓", "Navigieren"),
			RenderKeyHint("/", "Filtern"),
			RenderKeyHint("Enter", "Details"),
			RenderKeyHint("r", "Neu laden"),
			RenderKeyHint("q", "Beenden"),
		}
	}

	return HelpStyle.Render(strings.Join(items, "  "))
}

// loadBeers parses the catalog file
func (m Model) loadBeers() tea.Msg {
	beers, err := m.service.ParseBeerFile(m.dataFile)
	return beersLoadedMsg{beers: beers, err: err}
}

// Run starts the beer catalog TUI
func Run(cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
