package viewer

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mdp/qrterminal/v3"
	"github.com/qeesung/image2ascii/convert"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"photofolio/shared"
)

// preview is a downloaded image and what could be decoded from it.
type preview struct {
	data   []byte
	img    image.Image
	format string
	err    error
}

func decode(data []byte) preview {
	p := preview{data: data}
	p.img, p.format, p.err = image.Decode(bytes.NewReader(data))
	return p
}

func imageToAscii(img image.Image) string {
	converter := convert.NewImageConverter()
	options := convert.DefaultOptions
	options.Colored = true

	return converter.Image2ASCIIString(img, &options)
}

func qrCode(url string) string {
	var sb strings.Builder
	qrterminal.GenerateWithConfig(url, qrterminal.Config{
		Level:          qrterminal.L,
		Writer:         &sb,
		HalfBlocks:     true,
		BlackChar:      qrterminal.BLACK_BLACK,
		WhiteBlackChar: qrterminal.WHITE_BLACK,
		WhiteChar:      qrterminal.WHITE_WHITE,
		BlackWhiteChar: qrterminal.BLACK_WHITE,
		QuietZone:      1,
	})

	return sb.String()
}

func generateInfoView(item shared.ImageItem, url string, p preview) string {
	lines := []string{
		shared.EscapeString(item.Name),
		"Link: " + url,
	}

	if item.CreatedAt.Valid() {
		lines = append(lines, fmt.Sprintf("Added: %s (%s)",
			item.CreatedAt.Format("2006-01-02 15:04"),
			humanize.Time(item.CreatedAt.Time)))
	}

	if p.data != nil {
		lines = append(lines, "Size: "+humanize.Bytes(uint64(len(p.data))))
	}

	if p.img != nil {
		bounds := p.img.Bounds()
		lines = append(lines, fmt.Sprintf("Format: %s, %dx%d", p.format, bounds.Dx(), bounds.Dy()))
	}

	return strings.Join(lines, "\n")
}
