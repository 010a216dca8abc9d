// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/cybrota/arborist/tree"
	"github.com/patrickmn/go-cache"
)

// ExploreMode selects which structure the input line feeds
type ExploreMode int

const (
	ModeAVL ExploreMode = iota
	ModeBST
	ModeCables
)

var modeNames = []string{"AVL tree", "BST", "Cables"}

func (m ExploreMode) String() string {
	return modeNames[m]
}

const exploreHelpMarkdown = `
# Explore

Type values separated by spaces or commas and press **enter**.

* **AVL tree**: values are inserted and the tree rebalances after each one
* **BST**: values are inserted without rebalancing
* **Cables**: values are cable lengths, the cheapest join plan is shown

| key | action |
|-----|--------|
| tab | next structure |
| ctrl+r | clear current structure |
| ctrl+y | copy shape to clipboard |
| f1 | toggle this help |
| esc | quit |
`

// Model represents the explore application state
type Model struct {
	mode  ExploreMode
	ready bool

	textInput textinput.Model
	shapeView viewport.Model

	// Data
	avl       *tree.AVLTree[int]
	bst       *tree.BinarySearchTree[int]
	lastPlan  string
	planCache *cache.Cache

	// State
	showHelp  bool
	status    string
	statusErr bool

	// Styling
	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	width  int
	height int
}

// InitialModel creates the initial model
func InitialModel(pc *cache.Cache) Model {
	ti := textinput.New()
	ti.Placeholder = "Values, e.g. 10 20 5 8"
	ti.Focus()
	ti.CharLimit = 512
	ti.Width = 50

	shapeView := viewport.New(0, 0)

	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	)

	m := Model{
		mode:            ModeAVL,
		textInput:       ti,
		shapeView:       shapeView,
		avl:             tree.NewAVLTree[int](),
		bst:             tree.NewBinarySearchTree[int](),
		planCache:       pc,
		styles:          NewStyles(),
		glamourRenderer: glamourRenderer,
	}
	m.refreshShape()
	return m
}

// Init is called when the program starts
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.mode = (m.mode + 1) % ExploreMode(len(modeNames))
			m.setStatus(fmt.Sprintf("Switched to %s", m.mode), false)
			m.refreshShape()
			return m, nil
		case "f1":
			m.showHelp = !m.showHelp
			m.refreshShape()
			return m, nil
		case "ctrl+r":
			m.reset()
			m.refreshShape()
			return m, nil
		case "ctrl+y":
			if err := clipboard.WriteAll(m.shapeText()); err != nil {
				m.setStatus(fmt.Sprintf("Copy failed: %v", err), true)
			} else {
				m.setStatus("📋 Copied to clipboard", false)
			}
			return m, nil
		case "enter":
			m.apply(m.textInput.Value())
			m.textInput.SetValue("")
			m.refreshShape()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

// apply feeds one input line into the current structure
func (m *Model) apply(line string) {
	if m.mode == ModeCables {
		lengths, err := parseLengths([]string{line})
		if err != nil {
			m.setStatus(err.Error(), true)
			return
		}
		m.lastPlan = GetOrFillPlan(m.planCache, lengths)
		m.setStatus(fmt.Sprintf("Planned %d cables", len(lengths)), false)
		return
	}

	values, err := parseValues([]string{line})
	if err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	if len(values) == 0 {
		m.setStatus(ErrNoValues.Error(), true)
		return
	}

	for _, v := range values {
		if m.mode == ModeAVL {
			m.avl.Insert(v)
		} else {
			m.bst.Insert(v)
		}
	}
	m.setStatus(m.summary(), false)
}

func (m *Model) reset() {
	switch m.mode {
	case ModeAVL:
		m.avl = tree.NewAVLTree[int]()
	case ModeBST:
		m.bst = tree.NewBinarySearchTree[int]()
	case ModeCables:
		m.lastPlan = ""
	}
	m.setStatus(fmt.Sprintf("Cleared %s", m.mode), false)
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

// summary describes the current tree in one line
func (m Model) summary() string {
	switch m.mode {
	case ModeAVL:
		minValue, ok := tree.FindTreeMin(m.avl.RootNode())
		if !ok {
			return "Empty tree"
		}
		return fmt.Sprintf("%d keys; height=%d; min=%d; sum=%d; rotations=%d",
			m.avl.Len(), m.avl.Height(), minValue,
			tree.CalculateTreeSum(m.avl.RootNode()), m.avl.Rotations())
	case ModeBST:
		minValue, ok := m.bst.FindMin()
		if !ok {
			return "Empty BST"
		}
		maxValue, _ := m.bst.FindMax()
		return fmt.Sprintf("%d keys; height=%d; range=%d-%d; sum=%d",
			m.bst.Len(), m.bst.Height(), minValue, maxValue,
			tree.CalculateTreeSum(m.bst.RootNode()))
	}
	return ""
}

// shapeText is the plain text shown in the shape pane
func (m Model) shapeText() string {
	switch m.mode {
	case ModeAVL:
		return renderTree(m.avl.RootNode(), emptyAVLText)
	case ModeBST:
		return renderTree(m.bst.RootNode(), emptyBSTText)
	default:
		if m.lastPlan == "" {
			return "No cables yet\n"
		}
		return m.lastPlan
	}
}

func (m *Model) refreshShape() {
	if m.showHelp && m.glamourRenderer != nil {
		if rendered, err := m.glamourRenderer.Render(exploreHelpMarkdown); err == nil {
			m.shapeView.SetContent(rendered)
			return
		}
	}
	if m.showHelp {
		m.shapeView.SetContent(exploreHelpMarkdown)
		return
	}
	m.shapeView.SetContent(m.shapeText())
}

func (m *Model) updateLayout() {
	inputHeight := 3
	m.textInput.Width = m.width - 8
	m.shapeView.Width = m.width - 4
	m.shapeView.Height = max(m.height-inputHeight-10, 1)
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 30 || m.height < 12 {
		return "Terminal too small. Please resize your terminal."
	}

	var tabs []string
	for i, name := range modeNames {
		if ExploreMode(i) == m.mode {
			tabs = append(tabs, m.styles.ActiveTab.Render(name))
		} else {
			tabs = append(tabs, m.styles.InactiveTab.Render(name))
		}
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.Title.Render("🌳 Arborist"),
		strings.Join(tabs, " "),
	)

	inputBox := m.styles.BorderFocused.
		Width(m.width - 2).
		Padding(0, 1).
		Render(m.styles.InputPrompt.Render("› ") + m.textInput.View())

	shapeBox := m.styles.BorderBlurred.
		Width(m.width - 2).
		Height(m.shapeView.Height).
		Render(m.shapeView.View())

	statusStyle := m.styles.SuccessMessage
	if m.statusErr {
		statusStyle = m.styles.ErrorMessage
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		inputBox,
		shapeBox,
		statusStyle.Render(m.status),
		m.renderHelpFooter(),
	)
}

func (m Model) renderHelpFooter() string {
	keys := []string{"enter", "tab", "ctrl+r", "ctrl+y", "f1", "esc"}
	descs := []string{"insert", "switch structure", "clear", "copy shape", "help", "quit"}

	var helpEntries []string
	for i, key := range keys {
		helpEntries = append(helpEntries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(key),
				m.styles.HelpDesc.Render(descs[i])))
	}

	return lipgloss.NewStyle().
		Padding(1, 0, 0, 2).
		Render(strings.Join(helpEntries, " • "))
}

// runBubbleTeaApp starts the explore UI
func runBubbleTeaApp(pc *cache.Cache) error {
	InitializeColors()

	program := tea.NewProgram(
		InitialModel(pc),
		tea.WithAltScreen(),
	)

	_, err := program.Run()
	return err
}
