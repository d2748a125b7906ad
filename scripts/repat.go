// Repat is a live preview loop: it watches a pattern config file (JSON) and
// on every save regenerates the pattern, re-exports the vector file and
// repaints a window with the result. Given image files as arguments it
// instead browses previously exported patterns.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/ioutil"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/scottkirkwood/patgen"
	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
)

var (
	configFlag = flag.String("config", "pattern.json", "Pattern config file to watch")
	outFlag    = flag.String("out", "pattern.svg", "Vector file re-exported on every change")
)

// current is the most recently rendered preview, swapped in by the watcher
// goroutine and read by the paint handler.
var (
	currentMu sync.Mutex
	current   image.Image
)

func setCurrent(img image.Image) {
	currentMu.Lock()
	current = img
	currentMu.Unlock()
}

func getCurrent() image.Image {
	currentMu.Lock()
	defer currentMu.Unlock()
	return current
}

func main() {
	flag.Parse()

	if args := flag.Args(); len(args) > 0 {
		_, imgs := patgen.DecodeImages(args)
		if len(imgs) == 0 {
			fmt.Println("No images specified could be shown.")
			return
		}
		driver.Main(func(s screen.Screen) {
			display(s, nil, imgs)
		})
		return
	}

	img, err := regenerate()
	if err != nil {
		fmt.Printf("Initial generate failed: %v\n", err)
		return
	}
	setCurrent(img)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		fmt.Printf("Failed to create watcher: %v\n", err)
		return
	}
	defer watcher.Close()

	// Watch the directory, not the file: editors replace the file on save,
	// which silently drops a watch held on the file itself.
	dir := filepath.Dir(*configFlag)
	if dir == "" {
		dir = "."
	}
	if err := watcher.Add(dir); err != nil {
		fmt.Printf("Problem adding folder watcher: %v\n", err)
		return
	}
	fmt.Printf("Monitoring %q\n", *configFlag)

	driver.Main(func(s screen.Screen) {
		display(s, watcher, nil)
	})
}

// regenerate reloads the config, generates the shape grid, re-exports the
// vector file and returns a raster preview of the same result.
func regenerate() (image.Image, error) {
	cfg, err := loadConfig(*configFlag)
	if err != nil {
		return nil, err
	}
	shapes := patgen.Generate(cfg)

	ctx := patgen.NewContext(cfg.Width, cfg.Height)
	if err := patgen.Render(ctx, shapes, cfg); err != nil {
		return nil, err
	}
	if err := patgen.WriteFile(ctx, *outFlag); err != nil {
		return nil, err
	}
	fmt.Printf("Regenerated %d shapes -> %s\n", len(shapes), *outFlag)

	return patgen.RenderImage(shapes, cfg)
}

func loadConfig(fname string) (patgen.Config, error) {
	cfg := patgen.DefaultConfig()
	bytes, err := ioutil.ReadFile(fname)
	if err != nil {
		return cfg, err
	}
	if err := json.Unmarshal(bytes, &cfg); err != nil {
		return cfg, fmt.Errorf("bad config %s: %v", fname, err)
	}
	return cfg, nil
}

func watchForEvents(watcher *fsnotify.Watcher, w screen.Window) {
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != filepath.Base(*configFlag) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			img, err := regenerate()
			if err != nil {
				fmt.Printf("Regenerate failed: %v\n", err)
				continue
			}
			setCurrent(img)
			w.Send(paint.Event{})

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			fmt.Println("ERROR", err)
		}
	}
}

// display runs the window event loop. In watch mode (watcher != nil) it
// paints whatever regenerate produced last; in browse mode the arrow keys
// cycle through imgs.
func display(s screen.Screen, watcher *fsnotify.Watcher, imgs []image.Image) {
	first := getCurrent()
	if len(imgs) > 0 {
		first = imgs[0]
	}
	rect := first.Bounds()
	winSize := image.Point{rect.Dx(), rect.Dy()}
	if winSize.X > 1000 {
		winSize.X = 1000
	}
	if winSize.Y > 768 {
		winSize.Y = 768
	}

	w, err := s.NewWindow(&screen.NewWindowOptions{
		Width:  winSize.X,
		Height: winSize.Y,
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	defer w.Release()

	if watcher != nil {
		go watchForEvents(watcher, w)
	}

	var sz size.Event
	sz.WidthPx, sz.HeightPx = winSize.X, winSize.Y
	i := 0 // index of image to display in browse mode
	for {
		e := w.NextEvent()
		switch e := e.(type) {
		case key.Event:
			if e.Direction != key.DirPress {
				break
			}
			switch e.Code {
			case key.CodeEscape, key.CodeQ:
				return
			case key.CodeRightArrow:
				if len(imgs) > 1 {
					i = (i + 1) % len(imgs)
					w.Send(paint.Event{})
				}
			case key.CodeLeftArrow:
				if len(imgs) > 1 {
					i = (i + len(imgs) - 1) % len(imgs)
					w.Send(paint.Event{})
				}
			}

		case paint.Event:
			img := getCurrent()
			if len(imgs) > 0 {
				img = imgs[i]
			}
			if img == nil {
				break
			}
			b, err := s.NewBuffer(image.Point{sz.WidthPx, sz.HeightPx})
			if err != nil {
				fmt.Println(err)
				return
			}
			w.Fill(sz.Bounds(), color.Black, draw.Src)
			draw.Draw(b.RGBA(), b.Bounds(), img, image.Point{}, draw.Src)
			dp := patgen.VpCenter(img, sz.WidthPx, sz.HeightPx)
			w.Upload(dp, b, b.Bounds())
			b.Release()
			w.Publish()

		case size.Event:
			sz = e

		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return
			}

		case error:
			fmt.Printf("Screen error: %v\n", e)
			return
		}
	}
}
