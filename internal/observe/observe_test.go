package observe

import (
	"io/fs"
	"os"
	"testing"

	"github.com/spf13/afero"
	"gotest.tools/v3/assert"
)

func TestFs(t *testing.T) {
	inner := afero.NewMemMapFs()
	assert.NilError(t, afero.WriteFile(inner, `C:\a`, []byte("a"), fs.ModePerm))

	var hooked []Event
	fsys := New(inner, func(ev Event) { hooked = append(hooked, ev) })

	f, err := fsys.Open(`C:\a`)
	assert.NilError(t, err)
	_ = f.Close()

	_, err = fsys.Open(`C:\missing`)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	_, err = fsys.Stat(`C:\a`)
	assert.NilError(t, err)

	f, err = fsys.OpenFile(`C:\b`, os.O_CREATE|os.O_WRONLY, fs.ModePerm)
	assert.NilError(t, err)
	_ = f.Close()

	assert.DeepEqual(t, fsys.Names("Open"), []string{`C:\a`, `C:\missing`})
	assert.DeepEqual(t, fsys.Names("Stat"), []string{`C:\a`})
	assert.DeepEqual(t, fsys.Names("OpenFile"), []string{`C:\b`})

	history := fsys.History()
	assert.Equal(t, len(history), 4)
	assert.Equal(t, len(hooked), 4)
	assert.ErrorIs(t, history[1].Err, fs.ErrNotExist)

	fsys.Reset()
	assert.Equal(t, len(fsys.History()), 0)
	assert.Equal(t, fsys.Name(), "ObservableFs(MemMapFS)")
}
