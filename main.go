package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	sceneName := flag.String("scene", "sandbox.yaml", "scene name in prefabs/scenes/ (.yaml optional)")
	debug := flag.Bool("debug", false, "draw physics shapes and log trigger events")
	tps := flag.Int("tps", 0, "override the scene's ticks per second")
	watch := flag.Bool("watch", true, "hot reload scenes and scripts from prefabs/")
	flag.Parse()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(defaultWidth*2, defaultHeight*2)
	ebiten.SetWindowTitle("triggerzones")

	game, err := NewGame(*sceneName, *debug, *tps, *watch)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
