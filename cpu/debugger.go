package cpu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"sixfive/mem"
)

// The debugger single-steps the CPU against a Ram, rendering a slice of
// memory, the register file, and the decoded opcode under the PC.

type model struct {
	cpu *Cpu
	ram *mem.Ram

	offset uint16 // first rendered row of the program area
	prevPC uint16
	spent  uint32 // cycles consumed so far
}

func (m model) Init() tea.Cmd { return nil }

// Update is called when a message is received. Space or j steps one
// instruction; q quits.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case " ", "j":
			m.prevPC = m.cpu.PC
			m.spent += m.cpu.Step(m.ram)
		}
	}
	return m, nil
}

// renderRow renders 16 bytes of memory as a line. The byte under the PC is
// highlighted.
func (m model) renderRow(start uint16) string {
	if start%16 != 0 {
		panic("start must be a multiple of 16")
	}
	s := fmt.Sprintf("%04x | ", start)
	for i := range uint16(16) {
		b := m.ram.Read(start + i)
		if start+i == m.cpu.PC {
			s += fmt.Sprintf("[%02x] ", b)
		} else {
			s += fmt.Sprintf(" %02x  ", b)
		}
	}
	return s
}

func (m model) status() string {
	var flags string
	for _, flag := range []bool{
		m.cpu.Status.Negative(),
		m.cpu.Status.Overflow(),
		false, // bit 5 reads as clear
		m.cpu.Status.Break(),
		m.cpu.Status.Decimal(),
		m.cpu.Status.InterruptDisable(),
		m.cpu.Status.Zero(),
		m.cpu.Status.Carry(),
	} {
		if flag {
			flags += "/ "
		} else {
			flags += "  "
		}
	}
	return fmt.Sprintf(`
PC: %04x (%04x)
SP: %02x
 A: %02x
 X: %02x
 Y: %02x
cycles: %d
N V _ B D I Z C
`,
		m.cpu.PC,
		m.prevPC,
		m.cpu.SP,
		m.cpu.A,
		m.cpu.X,
		m.cpu.Y,
		m.spent,
	) + flags
}

func (m model) memTable() string {
	header := "addr | "
	for b := range 16 {
		header += fmt.Sprintf("  %01x  ", b)
	}

	rows := []string{header}

	// zero page head, the stack page head, and the program area
	offsets := []uint16{
		0x0000, 0x0010,
		0x01f0,
		m.offset &^ 0xf,
		(m.offset &^ 0xf) + 16*1,
		(m.offset &^ 0xf) + 16*2,
		(m.offset &^ 0xf) + 16*3,
	}
	for _, i := range offsets {
		rows = append(rows, m.renderRow(i))
	}
	return strings.Join(rows, "\n")
}

func (m model) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.memTable(),
			m.status(),
		),
		"",
		spew.Sdump(Opcodes[m.ram.Read(m.cpu.PC)]),
	)
}

// Debug starts an interactive single-step TUI over the CPU and the given
// memory. offset controls which memory rows are rendered; execution starts
// wherever PC already points.
func (c *Cpu) Debug(r *mem.Ram, offset uint16) error {
	_, err := tea.NewProgram(model{
		cpu:    c,
		ram:    r,
		offset: offset,
		prevPC: c.PC,
	}).Run()
	return err
}
