package filepicker

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"

	"photofolio/cli/commands/library/internal"
	"photofolio/cli/styles"
	"photofolio/shared"
)

const Help = "Enter -> add/remove file | u -> upload selection | Backspace -> parent dir | q -> cancel"

type Model struct {
	Event      internal.Event
	folder     shared.Folder
	filepicker filepicker.Model
	selection  Selection
	quitting   bool
}

func (m Model) Init() tea.Cmd {
	return m.filepicker.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			m.Event = internal.Event{
				Status: internal.StatusCanceled,
				Type:   internal.UploadRequest,
			}
			return m, tea.Quit
		case "u":
			if len(m.selection) == 0 {
				return m, nil
			}

			m.quitting = true
			m.Event = internal.Event{
				Values: m.selection,
				Status: internal.StatusOk,
				Type:   internal.UploadRequest,
				Folder: m.folder,
			}
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.filepicker, cmd = m.filepicker.Update(msg)

	if didSelect, path := m.filepicker.DidSelectFile(msg); didSelect {
		m.selection = m.selection.Toggle(path)
	}

	return m, cmd
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	target := "home"
	if !m.folder.ID.IsHome() {
		target = m.folder.Name
	}

	selected := styles.MutedStyle.Render("No files selected")
	if len(m.selection) > 0 {
		selected = styles.SuccessStyle.Render(fmt.Sprintf("Selected (%d): %s",
			len(m.selection),
			strings.Join(m.selection.Names(), ", ")))
	}

	return styles.BoldStyle.Render(fmt.Sprintf("Select images to upload to '%s':", target)) + "\n" +
		m.filepicker.Styles.Directory.Render(m.filepicker.CurrentDirectory) + "\n" +
		styles.BaseStyle.Render(m.filepicker.View()) + "\n" +
		selected + "\n" +
		styles.HelpStyle.Render(Help)
}

func NewModel(folder shared.Folder) Model {
	fp := filepicker.New()
	fp.CurrentDirectory, _ = os.Getwd()
	fp.AllowedTypes = ImageTypes
	fp.AutoHeight = false
	fp.Height = 20
	fp.ShowPermissions = false

	return Model{
		folder:     folder,
		filepicker: fp,
	}
}

func RunModel(folder shared.Folder) (internal.Event, error) {
	p := tea.NewProgram(NewModel(folder))

	model, err := p.Run()
	if err != nil {
		return internal.Event{Status: internal.StatusCanceled}, err
	}

	return model.(Model).Event, nil
}
