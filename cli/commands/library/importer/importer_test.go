package importer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"photofolio/cli/drive"
)

func TestPick(t *testing.T) {
	refs := []drive.ImageRef{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	assert.Equal(t, []drive.ImageRef{{ID: "a"}, {ID: "c"}}, pick(refs, []int{2, 0, 2}))
	assert.Nil(t, pick(refs, nil))
	assert.Nil(t, pick(refs, []int{7}))
}

func TestSummarize(t *testing.T) {
	result := drive.ImportResult{}
	assert.Equal(t, "Imported 0 image(s)", summarize(result))

	result.Failed = []drive.ImportFailure{
		{Ref: drive.ImageRef{Name: "x.jpg"}, Err: errors.New("boom")},
	}
	assert.Equal(t, "Imported 0 image(s), 1 failed: x.jpg", summarize(result))
}

func TestOptions(t *testing.T) {
	options := folderOptions([]drive.FolderRef{{ID: "f", Name: "Camera"}})
	assert.Len(t, options, 1)
	assert.Equal(t, "Camera/", options[0].Key)
	assert.Equal(t, 0, options[0].Value)
}

func TestMenu(t *testing.T) {
	var actions []Action
	for _, option := range menu(false) {
		actions = append(actions, option.Value)
	}
	assert.Equal(t, []Action{ImportImages, AuthorizeServer, Cancel}, actions)

	actions = nil
	for _, option := range menu(true) {
		actions = append(actions, option.Value)
	}
	assert.Equal(t, []Action{ImportImages, SyncFolder, AuthorizeServer, Cancel}, actions)
}
