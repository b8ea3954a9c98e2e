package main

import (
	"fmt"
	"strings"

	"github.com/jsalmi/liftline/internal/program"
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("LiftLine Program Wizard"))
	b.WriteString("\n")

	switch {
	case m.generating:
		b.WriteString(subtitleStyle.Render("Generating your program..."))
		b.WriteString("\n")
	case m.saving:
		b.WriteString(subtitleStyle.Render("Saving..."))
		b.WriteString("\n")
	case m.step == stepReview:
		m.viewReview(&b)
	case m.step == stepDone:
		m.viewDone(&b)
	default:
		m.viewQuestion(&b)
	}

	if m.err != nil {
		b.WriteString(errorStyle.Render("error: " + m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render(m.helpLine()))
	b.WriteString("\n")
	return b.String()
}

func (m Model) viewQuestion(b *strings.Builder) {
	b.WriteString(subtitleStyle.Render(m.prompt()))
	b.WriteString("\n\n")

	for i, c := range m.choices() {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		line := c.label
		if m.step == stepFocus {
			mark := "[ ] "
			if m.focusChecked[i] {
				mark = checkedStyle.Render("[x] ")
			}
			line = mark + line
		}
		if c.hint != "" {
			line += subtitleStyle.Render("  " + c.hint)
		}

		if i == m.cursor {
			b.WriteString(selectedStyle.Render(cursor) + selectedStyle.Render(line))
		} else {
			b.WriteString(cursor + normalStyle.Render(line))
		}
		b.WriteString("\n")
	}
}

func (m Model) viewReview(b *strings.Builder) {
	b.WriteString(subtitleStyle.Render(m.generated.Name))
	b.WriteString("\n")
	if m.generated.Description != "" {
		b.WriteString(normalStyle.Render(m.generated.Description))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for _, day := range m.generated.Days {
		var box strings.Builder
		box.WriteString(sectionStyle.Render(day.Name))
		box.WriteString("\n")
		for _, ex := range day.Exercises {
			box.WriteString(normalStyle.Render(formatPrescription(ex)))
			box.WriteString("\n")
		}
		b.WriteString(boxStyle.Render(strings.TrimRight(box.String(), "\n")))
		b.WriteString("\n")
	}
}

func (m Model) viewDone(b *strings.Builder) {
	b.WriteString(checkedStyle.Render(fmt.Sprintf("Saved %q as program #%d.", m.generated.Name, m.savedID)))
	b.WriteString("\n")
	b.WriteString(normalStyle.Render("Activate it from the API or start logging workouts against it."))
	b.WriteString("\n")
}

func (m Model) prompt() string {
	switch m.step {
	case stepGoal:
		return "What is your training goal?"
	case stepExperience:
		return "How experienced are you?"
	case stepDays:
		return "How many days per week can you train?"
	case stepSession:
		return "How long should each session be?"
	case stepEquipment:
		return "What equipment do you have?"
	case stepFocus:
		return "Any muscles to emphasize? (space to toggle, enter to continue)"
	case stepSplit:
		return "Which split do you want?"
	default:
		return ""
	}
}

func (m Model) helpLine() string {
	switch m.step {
	case stepReview:
		return "r regenerate · s save · esc back · q quit"
	case stepDone:
		return "enter or q to exit"
	default:
		return "↑/↓ move · enter select · esc back · q quit"
	}
}

func formatPrescription(p program.Prescription) string {
	if p.IsTimed && p.DurationSeconds != nil {
		return fmt.Sprintf("%s  %d x %ds", p.ExerciseName, p.Sets, *p.DurationSeconds)
	}
	if p.RepsMin == p.RepsMax {
		return fmt.Sprintf("%s  %d x %d", p.ExerciseName, p.Sets, p.RepsMin)
	}
	return fmt.Sprintf("%s  %d x %d-%d", p.ExerciseName, p.Sets, p.RepsMin, p.RepsMax)
}
