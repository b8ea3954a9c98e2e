package main

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jsalmi/liftline/internal/catalog"
	"github.com/jsalmi/liftline/internal/program"
)

type step int

const (
	stepGoal step = iota
	stepExperience
	stepDays
	stepSession
	stepEquipment
	stepFocus
	stepSplit
	stepReview
	stepDone
)

type choice struct {
	value string
	label string
	hint  string
}

type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	Toggle     key.Binding
	Select     key.Binding
	Back       key.Binding
	Regenerate key.Binding
	Save       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:     key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		Select:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Back:       key.NewBinding(key.WithKeys("esc", "left"), key.WithHelp("esc", "back")),
		Regenerate: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "regenerate")),
		Save:       key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// generatedMsg carries the outcome of a generation command.
type generatedMsg struct {
	program program.Program
	err     error
}

// savedMsg carries the outcome of a save command.
type savedMsg struct {
	id  int64
	err error
}

// Model walks the user through the program wizard one question at a time.
type Model struct {
	ctx      context.Context
	programs *program.Service

	step         step
	cursor       int
	focusChecked map[int]bool
	answers      program.WizardAnswers
	generated    program.Program
	generating   bool
	saving       bool
	savedID      int64
	err          error

	keys   keyMap
	width  int
	height int
}

func newModel(ctx context.Context, programs *program.Service) Model {
	return Model{
		ctx:          ctx,
		programs:     programs,
		focusChecked: make(map[int]bool),
		keys:         defaultKeyMap(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case generatedMsg:
		m.generating = false
		if msg.err != nil {
			m.err = msg.err
			m.step = stepSplit
			return m, nil
		}
		m.err = nil
		m.generated = msg.program
		m.step = stepReview
		return m, nil

	case savedMsg:
		m.saving = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.savedID = msg.id
		m.step = stepDone
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	if m.generating || m.saving {
		return m, nil
	}

	switch m.step {
	case stepReview:
		return m.handleReviewKey(msg)
	case stepDone:
		if key.Matches(msg, m.keys.Select) {
			return m, tea.Quit
		}
		return m, nil
	default:
		return m.handleQuestionKey(msg)
	}
}

func (m Model) handleQuestionKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	choices := m.choices()

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(choices)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		if m.step == stepFocus {
			m.focusChecked[m.cursor] = !m.focusChecked[m.cursor]
		}
	case key.Matches(msg, m.keys.Back):
		if m.step > stepGoal {
			m.step--
			m.cursor = 0
			m.err = nil
		}
	case key.Matches(msg, m.keys.Select):
		return m.applyChoice(choices)
	}
	return m, nil
}

func (m Model) applyChoice(choices []choice) (tea.Model, tea.Cmd) {
	selected := choices[m.cursor].value

	switch m.step {
	case stepGoal:
		m.answers.Goal = program.Goal(selected)
	case stepExperience:
		m.answers.Experience = catalog.Difficulty(selected)
	case stepDays:
		m.answers.DaysPerWeek = m.cursor + 1
	case stepSession:
		m.answers.SessionLength = program.SessionLength(selected)
	case stepEquipment:
		if preset, ok := catalog.PresetByKey(selected); ok {
			m.answers.Equipment = preset.Equipment
		}
	case stepFocus:
		m.answers.FocusMuscles = nil
		for i, c := range choices {
			if m.focusChecked[i] {
				m.answers.FocusMuscles = append(m.answers.FocusMuscles, c.value)
			}
		}
	case stepSplit:
		m.answers.Split = program.Split(selected)
		m.generating = true
		return m, m.generateCmd()
	}

	m.step++
	m.cursor = 0
	return m, nil
}

func (m Model) handleReviewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Regenerate):
		m.generating = true
		return m, m.generateCmd()
	case key.Matches(msg, m.keys.Save):
		m.saving = true
		return m, m.saveCmd()
	case key.Matches(msg, m.keys.Back):
		m.step = stepSplit
		m.cursor = 0
	}
	return m, nil
}

func (m Model) generateCmd() tea.Cmd {
	answers := m.answers
	return func() tea.Msg {
		generated, err := m.programs.Generate(m.ctx, answers)
		return generatedMsg{program: generated, err: err}
	}
}

func (m Model) saveCmd() tea.Cmd {
	generated := m.generated
	return func() tea.Msg {
		id, err := m.programs.Save(m.ctx, generated)
		return savedMsg{id: id, err: err}
	}
}

// choices returns the options for the current question step.
func (m Model) choices() []choice {
	switch m.step {
	case stepGoal:
		return []choice{
			{value: "strength", label: "Strength", hint: "heavy weight, low reps"},
			{value: "hypertrophy", label: "Hypertrophy", hint: "muscle growth, moderate reps"},
			{value: "endurance", label: "Endurance", hint: "light weight, high reps"},
			{value: "general", label: "General Fitness", hint: "balanced all-around training"},
		}
	case stepExperience:
		return []choice{
			{value: "beginner", label: "Beginner", hint: "less than a year of training"},
			{value: "intermediate", label: "Intermediate", hint: "1-3 years of training"},
			{value: "advanced", label: "Advanced", hint: "3+ years of training"},
		}
	case stepDays:
		days := make([]choice, 7)
		for i := range days {
			days[i] = choice{value: fmt.Sprint(i + 1), label: fmt.Sprintf("%d days per week", i+1)}
		}
		return days
	case stepSession:
		return []choice{
			{value: "short", label: "Short", hint: "around 30-40 minutes"},
			{value: "medium", label: "Medium", hint: "around 45-60 minutes"},
			{value: "long", label: "Long", hint: "around 75-90 minutes"},
		}
	case stepEquipment:
		presets := make([]choice, 0, len(catalog.EquipmentPresets))
		for _, preset := range catalog.EquipmentPresets {
			presets = append(presets, choice{value: preset.Key, label: preset.Label, hint: preset.Description})
		}
		return presets
	case stepFocus:
		muscles := make([]choice, 0, len(catalog.MuscleGroups))
		for _, muscle := range catalog.MuscleGroups {
			muscles = append(muscles, choice{value: muscle, label: muscle})
		}
		return muscles
	case stepSplit:
		suggested := program.SuggestSplit(m.answers.DaysPerWeek, m.answers.Experience)
		return []choice{
			{value: "auto", label: "Auto", hint: fmt.Sprintf("recommended: %s", suggested.Label())},
			{value: "full-body", label: "Full Body", hint: "every muscle every session"},
			{value: "upper-lower", label: "Upper/Lower", hint: "alternate upper and lower days"},
			{value: "push-pull-legs", label: "Push Pull Legs", hint: "rotate by movement pattern"},
			{value: "bro-split", label: "Bro Split", hint: "one muscle group per day"},
		}
	default:
		return nil
	}
}
