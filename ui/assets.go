package ui

import (
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pkg/errors"

	"retro-snake/game/types"
)

const (
	FoodImage = "graphics/food.png"
	EatSound  = "sounds/eat.mp3"
	WallSound = "sounds/wall.mp3"
)

// Assets holds the GPU texture and audio clips. Load after the window is
// open; Unload before it closes.
type Assets struct {
	Food rl.Texture2D
	Eat  rl.Sound
	Wall rl.Sound
}

// CheckAssets verifies every asset file exists under dir. raylib only
// logs a warning for missing files, so this runs before any loading.
func CheckAssets(dir string) error {
	for _, name := range []string{FoodImage, EatSound, WallSound} {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err != nil {
			return errors.Wrapf(err, "missing asset %s", name)
		}
		if info.IsDir() {
			return errors.Errorf("asset %s is a directory", path)
		}
	}
	return nil
}

func LoadAssets(dir string) (*Assets, error) {
	if err := CheckAssets(dir); err != nil {
		return nil, err
	}

	a := &Assets{}
	a.Food = rl.LoadTexture(filepath.Join(dir, FoodImage))
	if a.Food.ID == 0 {
		return nil, errors.Errorf("could not load texture %s", FoodImage)
	}

	rl.InitAudioDevice()
	a.Eat = rl.LoadSound(filepath.Join(dir, EatSound))
	a.Wall = rl.LoadSound(filepath.Join(dir, WallSound))
	if a.Eat.FrameCount == 0 || a.Wall.FrameCount == 0 {
		a.Unload()
		return nil, errors.Errorf("could not decode %s or %s", EatSound, WallSound)
	}
	return a, nil
}

func (a *Assets) Unload() {
	rl.UnloadTexture(a.Food)
	rl.UnloadSound(a.Eat)
	rl.UnloadSound(a.Wall)
	rl.CloseAudioDevice()
}

// Cue names one of the sound clips.
type Cue int

const (
	CueEat Cue = iota
	CueWall
)

// cues returns the sounds a tick's events should play, in order. Self
// collisions are silent.
func cues(ev types.Event) []Cue {
	var out []Cue
	if ev.Has(types.EventAte) {
		out = append(out, CueEat)
	}
	if ev.Has(types.EventHitWall) {
		out = append(out, CueWall)
	}
	return out
}

// Play fires the sound cues for a tick's events.
func (a *Assets) Play(ev types.Event) {
	for _, c := range cues(ev) {
		switch c {
		case CueEat:
			rl.PlaySound(a.Eat)
		case CueWall:
			rl.PlaySound(a.Wall)
		}
	}
}
