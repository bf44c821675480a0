// Package browser is the main library view: a table of the folders and
// images of the selected folder.
package browser

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"photofolio/cli/commands/library/internal"
	"photofolio/cli/gallery"
	"photofolio/cli/library"
	"photofolio/cli/permission"
	"photofolio/cli/styles"
	"photofolio/shared"
)

const Help = `
Enter -> open | Backspace -> back | n -> new folder | x -> delete  | s -> share
u ---> upload | i -> drive import | f -> filter     | c -> clear   | t -> tree/table
r --> reload  | Esc -> dismiss    | q -> quit`

var (
	errNotOwner     = errors.New("only the owner can do that")
	errSharedFolder = errors.New("shared folders can only be removed by their owner")
	errSyncDisabled = errors.New("drive import is disabled for this folder")
)

type Model struct {
	IncomingEvent internal.Event
	ViewRequest   internal.ViewRequest

	lib      *library.Library
	mode     Mode
	filter   gallery.Filter
	rows     []row
	table    table.Model
	spinner  spinner.Model
	status   Status
	pending  tea.Cmd
	loaded   bool
	quitting bool
}

type Status struct {
	Processing bool
	Message    string
	Success    string
	Err        error
}

type snapshotMsg struct {
	ticket   gallery.Ticket
	snapshot library.Snapshot
	err      error
}

type imagesMsg struct {
	ticket gallery.Ticket
	images []shared.ImageItem
	err    error
}

type folderCreatedMsg struct {
	folder shared.Folder
	err    error
}

type folderDeletedMsg struct {
	id  shared.ID
	err error
}

type imageDeletedMsg struct {
	id  shared.ID
	err error
}

type uploadedMsg struct {
	folderID shared.ID
	results  []library.UploadResult
}

func New(lib *library.Library, mode Mode) Model {
	t := table.New(
		table.WithColumns(columns(nil)),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	t.SetStyles(styles.TableStyles())

	m := Model{
		lib:     lib,
		mode:    mode,
		table:   t,
		spinner: spinner.New(),
	}

	m.spinner.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	m.spinner.Spinner = spinner.Points
	return m
}

// Prepare applies the event a sub-view returned and schedules whatever
// requests it needs. The first call also loads the library.
func (m Model) Prepare(event internal.Event) Model {
	m.IncomingEvent = event
	m.ViewRequest = internal.ViewRequest{}
	m.quitting = false

	var cmds []tea.Cmd
	if !m.loaded {
		m.loaded = true
		cmds = append(cmds, m.reload())
	} else if m.lib.Images.Loading() {
		// the previous program quit before the images arrived
		cmds = append(cmds, m.fetchImages(m.lib.Images.Current()))
	}

	if event.Status == internal.StatusOk {
		cmds = append(cmds, m.handleEvent(event))
	} else if event.Err != nil {
		m.status = Status{Err: event.Err}
	}

	m.refresh()
	m.pending = tea.Batch(cmds...)
	return m
}

// RunModel runs the browser until the user quits or asks for another view.
func RunModel(m Model, event internal.Event) (Model, error) {
	p := tea.NewProgram(m.Prepare(event))
	model, err := p.Run()
	if err != nil {
		return m, err
	}

	return model.(Model), nil
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.pending)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		m.table.SetHeight(max(msg.Height-12, 5))
	case snapshotMsg:
		m.lib.ApplySnapshot(msg.ticket, msg.snapshot, msg.err)
		m.finish(msg.err, "")
	case imagesMsg:
		if m.lib.ResolveImages(msg.ticket, msg.images, msg.err) && msg.err != nil {
			m.status.Err = msg.err
			if m.lib.Revoked(msg.ticket.Selection) {
				cmd := m.open(shared.HomeID)
				m.status.Err = msg.err
				return m, cmd
			}
		}
		m.refresh()
	case folderCreatedMsg:
		if msg.err == nil {
			msg.err = m.lib.InsertFolder(msg.folder)
		}
		m.finish(msg.err, fmt.Sprintf("Created folder '%s'", msg.folder.Name))
	case folderDeletedMsg:
		if msg.err != nil {
			m.finish(msg.err, "")
			break
		}

		removal := m.lib.ApplyFolderDeletion(msg.id)
		m.finish(nil, fmt.Sprintf("Deleted %d folder(s) and %d image(s)",
			len(removal.Folders), removal.Images))
		if removal.Reselected {
			m.table.SetCursor(0)
			cmds = append(cmds, m.fetchImages(removal.Ticket))
		}
	case imageDeletedMsg:
		if msg.err == nil {
			m.lib.ApplyImageDeletion(msg.id)
		}
		m.finish(msg.err, "Image deleted")
	case uploadedMsg:
		added := m.lib.ApplyUploads(msg.folderID, msg.results)
		m.finish(library.UploadErr(msg.results),
			fmt.Sprintf("Uploaded %d of %d file(s)", added, len(msg.results)))
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || (msg.String() == "q" && !m.status.Processing) {
			m.quitting = true
			return m, tea.Quit
		} else if m.status.Processing {
			return m, nil
		}

		m.status.Success = ""
		if cmd, handled := m.handleKey(msg); handled {
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	current, hasRow := m.selectedRow()

	switch msg.String() {
	case "enter":
		if !hasRow {
			return nil, true
		}

		switch current.kind {
		case parentRow:
			return m.up(), true
		case folderRow, sharedRow:
			return m.open(current.id()), true
		case imageRow:
			return m.request(internal.ViewRequest{
				View:  internal.ImageViewerView,
				Type:  internal.ViewImageRequest,
				Image: current.image,
			})
		}
	case "backspace", "h":
		return m.up(), true
	case "esc":
		m.lib.Images.DismissError()
		m.status.Err = nil
		return nil, true
	case "r":
		return m.reload(), true
	case "t":
		if m.mode == TreeMode {
			m.mode = TableMode
		} else {
			m.mode = TreeMode
		}
		m.refresh()
		return nil, true
	case "c":
		m.filter = gallery.Filter{}
		m.refresh()
		return nil, true
	case "f":
		return m.request(internal.ViewRequest{
			View:   internal.FilterView,
			Type:   internal.FilterRequest,
			Filter: m.filter,
		})
	case "n":
		selection := m.lib.Images.Selection()
		folder, owned := m.lib.Tree.Get(selection)
		if !selection.IsHome() && !owned {
			m.status.Err = errNotOwner
			return nil, true
		}

		return m.request(internal.ViewRequest{
			View:   internal.NewFolderView,
			Type:   internal.NewFolderRequest,
			Folder: folder,
		})
	case "x":
		if !hasRow {
			return nil, true
		}

		return m.deleteRequest(current)
	case "s":
		folder, ok := m.shareTarget(current, hasRow)
		if !ok {
			m.status.Err = errNotOwner
			return nil, true
		} else if !permission.CanChangePermissions(m.lib.CapabilityOf(folder.ID)) {
			m.status.Err = library.ErrForbidden
			return nil, true
		}

		return m.request(internal.ViewRequest{
			View:   internal.ShareView,
			Type:   internal.ShareRequest,
			Folder: folder,
		})
	case "u":
		selection := m.lib.Images.Selection()
		if err := m.lib.CanUpload(selection); err != nil {
			m.status.Err = err
			return nil, true
		}

		folder, _ := m.lib.Folder(selection)
		return m.request(internal.ViewRequest{
			View:   internal.FilePickerView,
			Type:   internal.UploadRequest,
			Folder: folder,
		})
	case "i":
		folder, ok := m.lib.Selection()
		if !ok {
			m.status.Err = library.ErrNoFolder
			return nil, true
		} else if !folder.AllowSync {
			m.status.Err = errSyncDisabled
			return nil, true
		} else if err := m.lib.CanUpload(folder.ID); err != nil {
			m.status.Err = err
			return nil, true
		}

		return m.request(internal.ViewRequest{
			View:   internal.ImportView,
			Type:   internal.ImportRequest,
			Folder: folder,
		})
	}

	return nil, false
}

func (m *Model) deleteRequest(current row) (tea.Cmd, bool) {
	switch current.kind {
	case folderRow:
		if m.lib.CapabilityOf(current.folder.ID) != permission.Unrestricted {
			m.status.Err = errNotOwner
			return nil, true
		}

		return m.request(internal.ViewRequest{
			View:   internal.ConfirmationView,
			Type:   internal.DeleteFolderRequest,
			Folder: current.folder,
		})
	case sharedRow:
		m.status.Err = errSharedFolder
		return nil, true
	case imageRow:
		if m.lib.Images.Selection().IsHome() {
			m.status.Err = library.ErrNoFolder
			return nil, true
		} else if !permission.CanDeleteImage(m.lib.Capability()) {
			m.status.Err = library.ErrForbidden
			return nil, true
		}

		return m.request(internal.ViewRequest{
			View:  internal.ConfirmationView,
			Type:  internal.DeleteImageRequest,
			Image: current.image,
		})
	}

	return nil, true
}

// shareTarget is the folder under the cursor, or the selection when the
// cursor is not on a folder.
func (m *Model) shareTarget(current row, hasRow bool) (shared.Folder, bool) {
	if hasRow && current.kind == folderRow {
		return current.folder, true
	} else if hasRow && current.kind == sharedRow {
		return current.entry.AsFolder(), true
	}

	return m.lib.Selection()
}

// request hands control to another view by quitting the program.
func (m *Model) request(req internal.ViewRequest) (tea.Cmd, bool) {
	m.ViewRequest = req
	return tea.Quit, true
}

func (m *Model) handleEvent(event internal.Event) tea.Cmd {
	lib := m.lib
	switch event.Type {
	case internal.NewFolderRequest:
		if len(strings.TrimSpace(event.Value)) == 0 {
			return nil
		}

		parent := event.Folder.ID
		name, err := lib.CheckNewFolder(parent, event.Value)
		if err != nil {
			m.status.Err = err
			return nil
		}

		m.process(fmt.Sprintf("Creating folder '%s'...", name))
		return func() tea.Msg {
			folder, err := lib.SendNewFolder(context.Background(), parent, name)
			return folderCreatedMsg{folder: folder, err: err}
		}
	case internal.DeleteFolderRequest:
		id := event.Folder.ID
		if err := lib.CheckFolderDeletion(id); err != nil {
			m.status.Err = err
			return nil
		}

		m.process(fmt.Sprintf("Deleting '%s'...", event.Folder.Name))
		return func() tea.Msg {
			return folderDeletedMsg{id: id, err: lib.SendFolderDeletion(context.Background(), id)}
		}
	case internal.DeleteImageRequest:
		imageID := event.Image.ID
		folderID, err := lib.CheckImageDeletion(imageID)
		if err != nil {
			m.status.Err = err
			return nil
		}

		m.process(fmt.Sprintf("Deleting '%s'...", event.Image.Name))
		return func() tea.Msg {
			err := lib.SendImageDeletion(context.Background(), folderID, imageID)
			return imageDeletedMsg{id: imageID, err: err}
		}
	case internal.UploadRequest:
		if len(event.Values) == 0 {
			return nil
		}

		folderID := lib.Images.Selection()
		if err := lib.CanUpload(folderID); err != nil {
			m.status.Err = err
			return nil
		}

		paths := event.Values
		m.process(fmt.Sprintf("Uploading %d file(s)...", len(paths)))
		return func() tea.Msg {
			results := lib.SendUploads(context.Background(), folderID, paths)
			return uploadedMsg{folderID: folderID, results: results}
		}
	case internal.FilterRequest:
		m.filter = event.Filter
		m.table.SetCursor(0)
	case internal.ImportRequest:
		if len(event.Value) > 0 {
			m.status.Success = event.Value
			return nil
		} else if event.SyncedFolder != nil {
			if err := lib.ApplySyncedFolder(*event.SyncedFolder); err != nil {
				m.status.Err = err
				return nil
			}
			m.status.Success = fmt.Sprintf("Synced Drive folder '%s'", event.SyncedFolder.Name)
			return nil
		}

		added := lib.ApplyImported(event.Folder.ID, event.Import.Imported)
		m.status.Success = fmt.Sprintf("Imported %d image(s)", added)
		m.status.Err = event.Import.Err()
	case internal.ShareRequest:
		m.status.Success = event.Value
		if len(event.Value) == 0 {
			m.status.Success = fmt.Sprintf("Updated access to '%s'", event.Folder.Name)
		}
	}

	return nil
}

func (m *Model) process(message string) {
	m.status = Status{Processing: true, Message: message}
}

func (m *Model) finish(err error, success string) {
	m.status = Status{Err: err}
	if err == nil {
		m.status.Success = success
	}

	m.refresh()
}

func (m *Model) reload() tea.Cmd {
	lib := m.lib
	ticket := lib.Images.Begin(shared.HomeID)
	m.process("Loading library...")
	return func() tea.Msg {
		snapshot, err := lib.FetchSnapshot(context.Background())
		return snapshotMsg{ticket: ticket, snapshot: snapshot, err: err}
	}
}

func (m *Model) fetchImages(ticket gallery.Ticket) tea.Cmd {
	lib := m.lib
	return func() tea.Msg {
		images, err := lib.FetchImages(context.Background(), ticket)
		return imagesMsg{ticket: ticket, images: images, err: err}
	}
}

func (m *Model) open(id shared.ID) tea.Cmd {
	ticket, err := m.lib.Select(id)
	if err != nil {
		m.status.Err = err
		return nil
	}

	m.status.Err = nil
	m.table.SetCursor(0)
	m.refresh()
	return m.fetchImages(ticket)
}

// up selects the parent of the selection. Shared folders and folders whose
// parent is gone lead back to home.
func (m *Model) up() tea.Cmd {
	selection := m.lib.Images.Selection()
	if selection.IsHome() {
		return nil
	}

	parent := shared.HomeID
	if folder, ok := m.lib.Tree.Get(selection); ok {
		if _, known := m.lib.Tree.Get(folder.Parent); known {
			parent = folder.Parent
		}
	}

	return m.open(parent)
}

func (m *Model) refresh() {
	m.rows = buildRows(m.lib, m.mode, m.filter)
	rows := tableRows(m.rows, time.Now())
	m.table.SetRows(nil)
	m.table.SetColumns(columns(rows))
	m.table.SetRows(rows)

	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(max(len(rows)-1, 0))
	}
}

func (m *Model) selectedRow() (row, bool) {
	cursor := m.table.Cursor()
	if cursor < 0 || cursor >= len(m.rows) {
		return row{}, false
	}

	return m.rows[cursor], true
}

func (m Model) View() string {
	if m.quitting || m.ViewRequest.View > internal.NullView {
		return ""
	}

	view := styles.BoldStyle.Render("photofolio > "+m.breadcrumb()) + "\n" +
		styles.MutedStyle.Render(m.summary()) + "\n" +
		styles.BaseStyle.Render(m.table.View()) + "\n"

	switch {
	case m.status.Err != nil:
		view += styles.ErrStyle.Render("✗ Error: " + m.status.Err.Error())
	case m.lib.Images.Err() != nil:
		view += styles.ErrStyle.Render("✗ Error loading images: " + m.lib.Images.Err().Error())
	case m.status.Processing:
		view += m.spinner.View() + " " + m.status.Message
	case m.lib.Images.Loading():
		view += m.spinner.View() + " Loading images..."
	case len(m.status.Success) > 0:
		view += styles.SuccessStyle.Render(m.status.Success)
	}

	return view + "\n" + styles.HelpStyle.Render(Help)
}

func (m Model) breadcrumb() string {
	selection := m.lib.Images.Selection()
	if selection.IsHome() {
		return "home"
	} else if entry, ok := m.lib.Tree.GetShared(selection); ok {
		return "shared > " + entry.Name
	}

	names := []string{"home"}
	for _, folder := range m.lib.Tree.Path(selection) {
		names = append(names, folder.Name)
	}

	return strings.Join(names, " > ")
}

func (m Model) summary() string {
	parts := []string{
		"access: " + m.lib.Capability().String(),
		fmt.Sprintf("%d image(s)", m.lib.Images.Len()),
		"view: " + string(m.mode),
	}

	if !m.filter.IsEmpty() {
		parts = append(parts, "filter: "+m.filter.String())
	}

	return strings.Join(parts, " · ")
}
