package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/shelf/internal/shelf"
)

// Save form fields, in tab order.
const (
	fieldISBN = iota
	fieldTitle
	fieldAuthor
	fieldYear
	formFieldCount
)

// fieldSource remembers what was put into an input and what the input kept
// after its own sanitising, so an untouched field is sent back verbatim.
type fieldSource struct {
	raw   string
	shown string
}

var formLabels = [formFieldCount]string{
	fieldISBN:   "ISBN",
	fieldTitle:  "Title",
	fieldAuthor: "Author",
	fieldYear:   "Publication year",
}

func (m *Model) initFormInputs() {
	placeholders := [formFieldCount]string{
		fieldISBN:   "optional",
		fieldTitle:  "required",
		fieldAuthor: "required",
		fieldYear:   "e.g. 1965",
	}
	for i := range m.formInputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = placeholders[i]
		ti.Width = 40
		m.formInputs[i] = ti
	}
	m.formInputs[fieldYear].CharLimit = yearCharLimit
}

// setFormInputs overwrites every field with form.
func (m *Model) setFormInputs(form shelf.Form) {
	values := [formFieldCount]string{
		fieldISBN:   form.ISBN,
		fieldTitle:  form.Title,
		fieldAuthor: form.Author,
		fieldYear:   form.Year,
	}
	for i, v := range values {
		m.formInputs[i].SetValue(v)
		m.formSource[i] = fieldSource{raw: v, shown: m.formInputs[i].Value()}
	}
}

// currentForm returns the fields as typed. A field the user has not edited
// since it was filled returns the value it was filled with.
func (m Model) currentForm() shelf.Form {
	return shelf.Form{
		ISBN:   m.fieldValue(fieldISBN),
		Title:  m.fieldValue(fieldTitle),
		Author: m.fieldValue(fieldAuthor),
		Year:   m.fieldValue(fieldYear),
	}
}

func (m Model) fieldValue(i int) string {
	v := m.formInputs[i].Value()
	if src := m.formSource[i]; v == src.shown {
		return src.raw
	}
	return v
}

func (m *Model) focusFormField(idx int) tea.Cmd {
	idx = clampRow(idx, formFieldCount)
	m.formInputs[m.formFocusIdx].Blur()
	m.formFocusIdx = idx
	return m.formInputs[idx].Focus()
}

// handleFormKey handles keys while the save form is shown. Enter submits from
// any field.
func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		return m, m.saveCmd(m.currentForm())
	case key.Matches(msg, m.keys.Escape):
		return m.setView(ViewSearch)
	case msg.String() == "down":
		return m, m.focusFormField(m.formFocusIdx + 1)
	case msg.String() == "up":
		return m, m.focusFormField(m.formFocusIdx - 1)
	}

	var cmd tea.Cmd
	m.formInputs[m.formFocusIdx], cmd = m.formInputs[m.formFocusIdx].Update(msg)
	return m, cmd
}

// resizeInputs fits the text inputs to the content box.
func (m *Model) resizeInputs() {
	width := max(m.width-8, 10)
	m.queryInput.Width = min(width, 80)

	fieldWidth := max(width-18, 10)
	for i := range m.formInputs {
		m.formInputs[i].Width = min(fieldWidth, 60)
	}
	m.formInputs[fieldYear].Width = yearCharLimit + 1
}

func (m Model) renderForm(width int) string {
	styles := m.theme.Styles().WithBackground(m.theme.FocusBg)
	bg := NewBgStyle(m.theme.FocusBg)

	labelWidth := 18
	var lines []string
	for i, input := range m.formInputs {
		label := padRight(formLabels[i], labelWidth)
		labelStyle := styles.MutedText
		marker := bg.Spaces(2)
		if i == m.formFocusIdx {
			labelStyle = styles.AccentText.Bold(true)
			marker = bg.Render("▸", styles.AccentText) + bg.Space()
		}
		lines = append(lines, marker+bg.Render(label, labelStyle)+input.View())
		lines = append(lines, "")
	}

	if msg := m.snapshot.FormError; msg != "" {
		lines = append(lines, bg.Render(truncate(msg, width), styles.DangerText))
	} else {
		lines = append(lines, "")
	}
	lines = append(lines, "")

	hint := fmt.Sprintf("Title and author are required. Year must be between 1 and %d.", m.maxYear())
	lines = append(lines, bg.Render(truncate(hint, width), styles.FaintText))
	lines = append(lines, bg.Render("enter saves the book and refreshes My Books.", styles.FaintText))

	return strings.Join(lines, "\n")
}

// maxYear returns the publication year bound when the actions expose one.
func (m Model) maxYear() int {
	if b, ok := m.actions.(interface{ MaxPublicationYear() int }); ok {
		return b.MaxPublicationYear()
	}
	return shelf.DefaultMaxPublicationYear
}
