package share

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"

	"photofolio/cli/commands/library/internal"
	"photofolio/cli/sharing"
	"photofolio/cli/styles"
	"photofolio/cli/utils"
	"photofolio/shared"
)

type model struct {
	folder  shared.Folder
	manager *sharing.Manager
	errMsg  string
}

func (m *model) add() {
	var email string
	var confirmed bool
	perm := shared.PermissionRead

	options := make([]huh.Option[shared.Permission], 0, len(shared.Permissions))
	for _, p := range shared.Permissions {
		options = append(options, huh.NewOption(permLabel(p), p))
	}

	_ = huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Share With User").
			Description("Enter the user's email below").
			Placeholder("user@example.com").
			Validate(validateGrantee(m.manager)).
			Value(&email),
		huh.NewSelect[shared.Permission]().
			Title("Permissions").
			Options(options...).
			Value(&perm),
		huh.NewConfirm().
			Affirmative("Add").
			Negative("Cancel").
			Value(&confirmed),
	)).WithTheme(styles.Theme).Run()

	if !confirmed {
		return
	}

	if err := m.manager.AddGrantee(email, perm); err != nil {
		m.errMsg = err.Error()
	}
}

func (m *model) remove() {
	var confirmed bool
	var toRemove []int
	var options []huh.Option[int]
	for i, g := range m.manager.Grantees() {
		options = append(options, huh.NewOption(g.Email, i))
	}

	_ = huh.NewForm(huh.NewGroup(
		huh.NewMultiSelect[int]().
			Title("Remove the following user(s):").
			Description("Press 'x' to select").
			Options(options...).
			Value(&toRemove),
		huh.NewConfirm().
			Affirmative("Confirm").
			Negative("Cancel").
			Value(&confirmed),
	)).WithTheme(styles.Theme).Run()

	if !confirmed {
		return
	}

	removeIndices(m.manager, toRemove)
}

func (m *model) submit() bool {
	var err error
	title := fmt.Sprintf("Sharing '%s' with %d user(s)...", m.folder.Name, m.manager.Len())
	_ = spinner.New().Title(title).
		Action(func() {
			err = m.manager.Submit(context.Background())
		}).Run()

	if err != nil {
		m.errMsg = err.Error()
		return false
	}

	return true
}

func (m *model) fields(action *Action) []huh.Field {
	fields := []huh.Field{
		huh.NewNote().
			Title(utils.GenerateTitle(fmt.Sprintf("Share '%s'", m.folder.Name))).
			Description("Submitting replaces everyone the folder was shared with before."),
		huh.NewNote().
			Title(fmt.Sprintf("%d user(s)", m.manager.Len())).
			Description(describeGrantees(m.manager.Grantees())),
	}

	if len(m.errMsg) > 0 {
		fields = append(fields, huh.NewNote().
			Title(styles.ErrStyle.Render("Error:")).
			Description(styles.ErrStyle.Render(m.errMsg)))
	}

	var options []huh.Option[Action]
	for _, a := range actions(m.manager.Len()) {
		options = append(options, huh.NewOption(a.String(), a))
	}

	return append(fields, huh.NewSelect[Action]().
		Title("Select an action to perform").
		Options(options...).
		Value(action))
}

// RunModel edits the grant list of folder until it is submitted or the user
// returns to the library.
func RunModel(folder shared.Folder, manager *sharing.Manager) (internal.Event, error) {
	m := &model{folder: folder, manager: manager}

	var summary string
	manager.OnSubmitted = func(_ shared.ID, set shared.PermissionSet) {
		summary = fmt.Sprintf("Shared '%s' with %d reader(s), %d of them can upload",
			folder.Name, len(set.Read), len(set.Write))
	}

	for {
		action := Cancel
		err := huh.NewForm(huh.NewGroup(m.fields(&action)...)).
			WithTheme(styles.Theme).
			Run()
		if err != nil {
			return internal.Event{Status: internal.StatusCanceled, Type: internal.ShareRequest}, err
		}

		m.errMsg = ""
		switch action {
		case Add:
			m.add()
		case Remove:
			m.remove()
		case Submit:
			if m.submit() {
				return internal.Event{
					Status: internal.StatusOk,
					Type:   internal.ShareRequest,
					Value:  summary,
					Folder: folder,
				}, nil
			}
		default:
			return internal.Event{Status: internal.StatusCanceled, Type: internal.ShareRequest}, nil
		}
	}
}
