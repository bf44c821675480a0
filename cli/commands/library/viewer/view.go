package viewer

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"

	"photofolio/cli/api"
	"photofolio/cli/commands/library/internal"
	"photofolio/cli/styles"
	"photofolio/cli/utils"
	"photofolio/shared"
)

type action int

const (
	PreviewImage action = iota
	ShowQRCode
	CopyLink
	Return
)

func showNote(title, content string) {
	_ = huh.NewForm(huh.NewGroup(
		huh.NewNote().Title(utils.GenerateTitle(title)).Description(content),
	)).WithTheme(styles.Theme).Run()
}

// RunViewerModel shows an image's details and offers a terminal preview.
func RunViewerModel(c *api.Context, item shared.ImageItem) (internal.Event, error) {
	url := c.ImageURL(item)

	var p preview
	_ = spinner.New().Title("Fetching image...").Action(func() {
		data, err := c.FetchImageData(context.Background(), item)
		if err != nil {
			p = preview{err: err}
			return
		}
		p = decode(data)
	}).Run()

	var options []huh.Option[action]
	if p.img != nil {
		options = append(options, huh.NewOption("Display Image", PreviewImage))
	}

	options = append(options,
		huh.NewOption("Show QR Code", ShowQRCode),
		huh.NewOption("Copy Link", CopyLink),
		huh.NewOption("Return to Library", Return))

	var status string
	for {
		desc := utils.GenerateDescriptionSection("Info", generateInfoView(item, url, p), 21)
		if p.err != nil {
			desc += "\n\n" + styles.ErrStyle.Render("Preview unavailable: "+p.err.Error())
		}
		if len(status) > 0 {
			desc += "\n\n" + status
		}

		selected := Return
		err := huh.NewForm(huh.NewGroup(
			huh.NewNote().
				Title(utils.GenerateTitle(shared.EscapeString(item.Name))).
				Description(desc),
			huh.NewSelect[action]().
				Options(options...).
				Value(&selected),
		)).WithTheme(styles.Theme).Run()
		if err != nil {
			return internal.Event{Status: internal.StatusCanceled, Type: internal.ViewImageRequest}, err
		}

		status = ""
		switch selected {
		case PreviewImage:
			showNote(item.Name, imageToAscii(p.img))
		case ShowQRCode:
			showNote(item.Name, qrCode(url))
		case CopyLink:
			if err := clipboard.WriteAll(url); err != nil {
				status = styles.ErrStyle.Render(fmt.Sprintf("Unable to copy link: %s", err))
			} else {
				status = styles.SuccessStyle.Render("Link copied to clipboard")
			}
		default:
			return internal.Event{
				Status: internal.StatusOk,
				Type:   internal.ViewImageRequest,
				Image:  item,
			}, nil
		}
	}
}
