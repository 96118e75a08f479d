package main

import (
	"flag"
	"log"

	"github.com/automoto/dashjam/config"
	"github.com/automoto/dashjam/fonts"
	"github.com/automoto/dashjam/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	scene scenes.Scene
}

func NewGame() *Game {
	return &Game{scene: scenes.NewPlatformerScene()}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	trace := flag.Bool("trace", false, "Draw resolver candidates every frame")
	edit := flag.Bool("edit", false, "Start in the stage editor")
	scale := flag.Float64("scale", 1, "Window scale")
	flag.Parse()

	config.Debug.TraceResolver = *trace
	config.Debug.StartInEditor = *edit

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	ebiten.SetWindowTitle("dashjam")
	w := float64(config.C.Width) * *scale
	h := float64(config.C.Height) * *scale
	ebiten.SetWindowSize(int(w), int(h))

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
