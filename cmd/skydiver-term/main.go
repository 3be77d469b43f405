// Package main runs SkyDiver rounds in a terminal.
//
// Usage:
//
//	go run ./cmd/skydiver-term [flags]
//
// Flags:
//
//	--verbose          Write logs to skydiver-term.log
//	--seed <n>         Random seed; 0 picks one from the clock
//	--config <path>    Round tuning file (.yaml, .yml or .toml)
//
// Controls:
//
//	Mouse release / Space  - Jump, then open the parachute; dismiss the result
//	q / Esc / Ctrl+C       - Quit
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/skydiver/internal/termview"
	"github.com/decker502/skydiver/pkg/config"
)

var (
	verboseFlag = flag.Bool("verbose", false, "Write logs to skydiver-term.log")
	seedFlag    = flag.Int64("seed", 0, "Random seed (0 = time based)")
	configFlag  = flag.String("config", "", "Round tuning file (.yaml, .yml or .toml)")
)

func main() {
	flag.Parse()

	// 终端被界面占用，日志只能写文件
	log.SetOutput(io.Discard)
	if *verboseFlag {
		f, err := os.Create("skydiver-term.log")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	cfg := config.DefaultRoundConfig()
	if *configFlag != "" {
		var err error
		if cfg, err = config.LoadRoundConfig(*configFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.EnableMouse()

	view := termview.New(screen, cfg, rand.New(rand.NewSource(seed)))
	run(screen, view)
}

// run 固定步长推进回合；事件在单独的 goroutine 中读取，在主循环中处理
func run(screen tcell.Screen, view *termview.View) {
	tick := time.Second / config.TicksPerSecond
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	deltaTime := tick.Seconds()
	for {
		select {
		case ev := <-events:
			if !view.HandleEvent(ev) {
				return
			}
		case <-ticker.C:
			view.Step(deltaTime)
			view.Draw()
		}
	}
}
