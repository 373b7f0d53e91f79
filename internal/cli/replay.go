package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/SeamusWaldron/cubesolver/internal/cube"
	"github.com/SeamusWaldron/cubesolver/internal/phase"
	"github.com/SeamusWaldron/cubesolver/internal/solver"
	"github.com/SeamusWaldron/cubesolver/pkg/types"
)

const (
	minSpeed = 0.25
	maxSpeed = 16
)

// phaseMark records the step at which a phase was first completed.
type phaseMark struct {
	phase phase.Phase
	step  int
}

// replayModel plays a solution back on a tracker. The unmerged phase
// solutions are replayed so that every phase boundary is visible.
type replayModel struct {
	tracker  *solver.Tracker
	moves    []types.Move
	bounds   []int // bounds[i] is the step at which phase i+1's moves end
	interval time.Duration
	speed    float64
	stepMode bool
	paused   bool
	marks    []phaseMark
	quitting bool
}

func newReplayModel(t *solver.Tracker, report solver.Report, interval time.Duration, speed float64, stepMode bool) *replayModel {
	if speed <= 0 {
		speed = 1
	}
	m := &replayModel{
		tracker:  t,
		moves:    report.Raw(),
		interval: interval,
		speed:    speed,
		stepMode: stepMode,
		paused:   stepMode,
	}
	end := 0
	for _, p := range report.Phases {
		end += len(p.Moves)
		m.bounds = append(m.bounds, end)
	}
	t.SetPhaseCallback(func(p phase.Phase, step int) {
		m.marks = append(m.marks, phaseMark{phase: p, step: step})
	})
	return m
}

type replayTickMsg time.Time

func (m *replayModel) Init() tea.Cmd {
	if m.paused {
		return nil
	}
	return m.scheduleNext()
}

func (m *replayModel) scheduleNext() tea.Cmd {
	if m.done() {
		return nil
	}
	delay := time.Duration(float64(m.interval) / m.speed)
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return replayTickMsg(t)
	})
}

func (m *replayModel) done() bool {
	return m.tracker.Step() >= len(m.moves)
}

// next applies the next solution move, if any.
func (m *replayModel) next() {
	if m.done() {
		return
	}
	m.tracker.ApplyMove(m.moves[m.tracker.Step()])
}

func (m *replayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case " ", "n":
			if m.stepMode || m.paused {
				m.next()
			} else {
				m.paused = true
			}

		case "b", "backspace":
			m.tracker.Undo()

		case "p":
			m.paused = !m.paused
			if !m.paused && !m.stepMode {
				return m, m.scheduleNext()
			}

		case "r":
			m.tracker.Reset()
			m.marks = nil

		case "+", "=":
			m.speed *= 2
			if m.speed > maxSpeed {
				m.speed = maxSpeed
			}

		case "-":
			m.speed /= 2
			if m.speed < minSpeed {
				m.speed = minSpeed
			}
		}

	case replayTickMsg:
		if !m.paused && !m.stepMode {
			m.next()
			return m, m.scheduleNext()
		}
	}

	return m, nil
}

func (m *replayModel) View() string {
	if m.quitting {
		return "Replay ended.\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Cube Solution Replay"))
	b.WriteString("\n\n")

	step := m.tracker.Step()
	progress := fmt.Sprintf("Move %d/%d", step, len(m.moves))
	if m.paused {
		progress += " [PAUSED]"
	}
	if m.stepMode {
		progress += " [STEP MODE]"
	}
	b.WriteString(statusStyle.Render(progress))
	b.WriteString(fmt.Sprintf(" (%.2gx speed)\n\n", m.speed))

	b.WriteString(renderNet(cube.FromCubie(m.tracker.Cube())))
	b.WriteString("\n\n")

	if m.tracker.IsSolved() {
		b.WriteString(fmt.Sprintf("Cube State: %s\n", phaseStyle.Render("SOLVED!")))
	} else {
		working := m.tracker.HighestPhase() + 1
		b.WriteString(fmt.Sprintf("Working on: %s\n", phaseStyle.Render(working.DisplayName())))
		if done := m.tracker.HighestPhase(); done.Valid() {
			b.WriteString(fmt.Sprintf("Completed: %s\n", statusStyle.Render(done.DisplayName())))
		}
	}
	b.WriteString("\n")

	for i, end := range m.bounds {
		p := phase.Phase(i + 1)
		startStep := 0
		if i > 0 {
			startStep = m.bounds[i-1]
		}
		b.WriteString(fmt.Sprintf("%d %-30s ", p, p.DisplayName()))
		for s := startStep; s < end; s++ {
			text := m.moves[s].Notation()
			switch {
			case s == step:
				b.WriteString(currentMoveStyle.Render(text))
			case s < step:
				b.WriteString(moveStyle.Render(text))
			default:
				b.WriteString(statusStyle.Render(text))
			}
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}

	if len(m.marks) > 0 {
		b.WriteString("\n")
		for _, mk := range m.marks {
			b.WriteString(statusStyle.Render(fmt.Sprintf("%s reached after move %d", mk.phase.DisplayName(), mk.step)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")

	help := "SPACE/n=next  b=back  p=pause  r=reset  +/-=speed  q=quit"
	if m.stepMode {
		help = "SPACE/n=next move  b=back  r=reset  q=quit"
	}
	b.WriteString(helpStyle.Render(help))
	b.WriteString("\n")

	return b.String()
}
