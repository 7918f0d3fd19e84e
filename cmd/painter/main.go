// cmd/painter/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"go-painter/internal/app"
	"go-painter/internal/config"
	"go-painter/internal/defs"
	"go-painter/internal/state"
	"go-painter/internal/store"
)

const startFromMenu = false // true to show the title screen first

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	stylesPath := flag.String("styles", "", "path to a style definitions JSON file")
	flag.Parse()

	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()

	if *stylesPath != "" {
		if err := defs.LoadStyleDefinitions(*stylesPath); err != nil {
			logrus.WithError(err).Fatal("Failed to load style definitions")
		}
	}

	painter := app.NewPainter(store.GetStore(), time.Now().UnixNano())

	sm := state.NewStateMachine()
	if startFromMenu {
		sm.SetState(state.NewMenuState(sm, painter))
	} else {
		sm.SetState(state.NewPaintState(sm, painter))
	}

	appGame := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Painter")
	if err := ebiten.RunGame(appGame); err != nil {
		log.Fatal(err)
	}
}
