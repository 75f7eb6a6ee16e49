package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/afero"

	"github.com/wippyai/wasm-bridge/engine"
	"github.com/wippyai/wasm-bridge/errors"
	"github.com/wippyai/wasm-bridge/runtime"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	funcStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)


type interactiveModel struct {
	err      error
	fs       afero.Fs
	rt       *runtime.Runtime
	instance *runtime.Instance
	module   *runtime.Module
	filename string
	result   string
	funcs    []runtime.Export
	inputs   []textinput.Model
	cfg      engine.Config
	selected int
	focusIdx int
	state    modelState
}

type modelState int

const (
	stateSelectFunc modelState = iota
	stateInputArgs
	stateShowResult
)

func newInteractiveModel(fs afero.Fs, cfg engine.Config, filename string) *interactiveModel {
	return &interactiveModel{
		fs:       fs,
		cfg:      cfg,
		filename: filename,
		state:    stateSelectFunc,
	}
}

type loadedMsg struct {
	err   error
	rt    *runtime.Runtime
	mod   *runtime.Module
	funcs []runtime.Export
}

type callResultMsg struct {
	err    error
	result string
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.loadModule
}

func (m *interactiveModel) loadModule() tea.Msg {
	rt, mod, err := loadModule(context.Background(), m.fs, m.cfg, m.filename)
	if err != nil {
		return loadedMsg{err: err}
	}
	return loadedMsg{funcs: mod.Exports(), rt: rt, mod: mod}
}

func (m *interactiveModel) close() {
	ctx := context.Background()
	if m.instance != nil {
		m.instance.Close(ctx)
	}
	if m.rt != nil {
		m.rt.Close(ctx)
	}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.state == stateInputArgs && msg.String() == "q" {
				break
			}
			m.close()
			return m, tea.Quit

		case "up", "k":
			if m.state == stateSelectFunc && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectFunc && m.selected < len(m.funcs)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectFunc:
				if len(m.funcs) == 0 {
					break
				}
				m.prepareInputs()
				if len(m.inputs) == 0 {
					return m, m.callFunction
				}
				m.state = stateInputArgs

			case stateInputArgs:
				return m, m.callFunction

			case stateShowResult:
				m.state = stateSelectFunc
				m.result = ""
				m.err = nil
			}

		case "tab":
			if m.state == stateInputArgs && len(m.inputs) > 1 {
				m.inputs[m.focusIdx].Blur()
				m.focusIdx = (m.focusIdx + 1) % len(m.inputs)
				m.inputs[m.focusIdx].Focus()
			}

		case "esc":
			switch m.state {
			case stateInputArgs:
				m.state = stateSelectFunc
				m.inputs = nil
			case stateShowResult:
				m.state = stateSelectFunc
				m.result = ""
				m.err = nil
			}
		}

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.funcs = msg.funcs
		m.rt = msg.rt
		m.module = msg.mod

	case callResultMsg:
		m.result = msg.result
		m.err = msg.err
		m.state = stateShowResult
	}

	if m.state == stateInputArgs {
		var cmds []tea.Cmd
		for i := range m.inputs {
			var cmd tea.Cmd
			m.inputs[i], cmd = m.inputs[i].Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m *interactiveModel) prepareInputs() {
	f := m.funcs[m.selected]
	m.inputs = make([]textinput.Model, len(f.Signature.Params))
	for i, t := range f.Signature.Params {
		ti := textinput.New()
		ti.Placeholder = t.String()
		ti.Prompt = argLabel(i) + ": "
		ti.Width = 40
		if i == 0 {
			ti.Focus()
		}
		m.inputs[i] = ti
	}
	m.focusIdx = 0
}

func argLabel(i int) string {
	return fmt.Sprintf("arg%d", i)
}

func (m *interactiveModel) callFunction() tea.Msg {
	ctx := context.Background()

	if m.instance == nil {
		if m.module == nil {
			return callResultMsg{err: errors.NotInitialized(errors.PhaseRuntime, "module")}
		}
		inst, err := m.module.Instantiate(ctx)
		if err != nil {
			return callResultMsg{err: err}
		}
		m.instance = inst
	}

	f := m.funcs[m.selected]
	texts := make([]string, len(m.inputs))
	for i, input := range m.inputs {
		texts[i] = input.Value()
	}
	args, err := parseArgs(f.Name, f.Signature, texts)
	if err != nil {
		return callResultMsg{err: err}
	}

	results, err := m.instance.CallValues(ctx, f.Name, args...)
	if err != nil {
		return callResultMsg{err: err}
	}
	return callResultMsg{result: formatResults(results)}
}

func (m *interactiveModel) View() string {
	if m.err != nil && m.state != stateShowResult {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	if m.module == nil {
		return "Loading module..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("WASM Bridge"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectFunc:
		if len(m.funcs) == 0 {
			b.WriteString("The module exports no functions.\n\n")
			b.WriteString(helpStyle.Render("q quit"))
			break
		}
		b.WriteString("Select a function to call:\n\n")
		for i, f := range m.funcs {
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + formatFunc(f)))
			} else {
				b.WriteString("  " + formatFunc(f))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter call • q quit"))

	case stateInputArgs:
		f := m.funcs[m.selected]
		b.WriteString(fmt.Sprintf("Calling %s\n\n", funcStyle.Render(f.Name)))
		for i, input := range m.inputs {
			b.WriteString(input.View())
			b.WriteString(" ")
			b.WriteString(typeStyle.Render(f.Signature.Params[i].String()))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("tab next field • enter call • esc back"))

	case stateShowResult:
		f := m.funcs[m.selected]
		b.WriteString(fmt.Sprintf("Result of %s:\n\n", funcStyle.Render(f.Name)))
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(m.result))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}

	return b.String()
}

func formatFunc(f runtime.Export) string {
	params := make([]string, len(f.Signature.Params))
	for i, t := range f.Signature.Params {
		params[i] = argLabel(i) + ": " + typeStyle.Render(t.String())
	}
	result := ""
	if len(f.Signature.Results) > 0 {
		types := make([]string, len(f.Signature.Results))
		for i, t := range f.Signature.Results {
			types[i] = t.String()
		}
		result = " -> " + typeStyle.Render(strings.Join(types, ", "))
	}
	return funcStyle.Render(f.Name) + "(" + strings.Join(params, ", ") + ")" + result
}

func runInteractive(fs afero.Fs, cfg engine.Config, filename string) error {
	p := tea.NewProgram(newInteractiveModel(fs, cfg, filename), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
