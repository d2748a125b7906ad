package patgen

import (
	"fmt"
	"io/ioutil"
	"os"
	"path"
)

const tmpFolder = "./"

// SafeWrite noisily saves ctx under a seed-tagged filename.
func (s Seed) SafeWrite(ctx *Context, prefix, ext string) error {
	fname := s.Filename(prefix, ext)
	if err := WriteFile(ctx, fname); err != nil {
		fmt.Printf("Problem saving %s: %v\n", fname, err)
		return err
	}
	fmt.Printf("Saved to %s\n", fname)
	return nil
}

// WriteFile writes ctx to fname, with the extension picking the format
// (.svg, .pdf or .png). The write goes to a temp file first and is renamed
// into place, so a half-written export never lands under the final name.
func WriteFile(ctx *Context, fname string) error {
	if err := maybeCreateDir(path.Dir(fname)); err != nil {
		return err
	}
	ext := path.Ext(fname)
	tmpfile, err := ioutil.TempFile(tmpFolder, "patgen.*"+ext)
	if err != nil {
		return err
	}
	switch ext {
	case ".png":
		err = ctx.WritePNG(tmpfile.Name())
	case ".svg":
		err = ctx.WriteSVG(tmpfile.Name())
	case ".pdf":
		err = ctx.WritePDF(tmpfile.Name())
	default:
		err = fmt.Errorf("unsupported file format %s", ext)
	}
	if err != nil {
		os.Remove(tmpfile.Name())
		return err
	}
	// Note: the folders here need to be on the same drive
	if err := os.Rename(tmpfile.Name(), fname); err != nil {
		return err
	}
	return os.Chmod(fname, 0664)
}

func maybeCreateDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0775)
}
