// Command signal-demo is a small terminal playground for the signal core:
// typed keys, spawned glyphs and state switches all flow through pooled
// signals, with key input crossing goroutines via the deferred queue.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/Vascofr/flixel/audio"
	"github.com/Vascofr/flixel/config"
	"github.com/Vascofr/flixel/game"
	"github.com/Vascofr/flixel/signal"
)

const glyphSet = "abcdefghijklmnopqrstuvwxyz0123456789"

// KeyPayload is carried by the raw key signal
type KeyPayload struct {
	Rune rune
}

// glyph is one character waiting to be typed away
type glyph struct {
	r    rune
	x, y int
}

// playState spawns glyphs and removes them when their key is typed. Its
// hit/miss signals are transient: a state switch releases them in bulk.
// The state subscribes to the demo's persistent raw-key signal on Create
// and must unsubscribe on Destroy
type playState struct {
	rawKey signal.Typed[KeyPayload]
	hit    *signal.Signal
	miss   *signal.Signal

	glyphs    []glyph
	lastSpawn time.Time
	score     int
	spawnGap  time.Duration
}

func newPlayState(rawKey signal.Typed[KeyPayload], spawnGap time.Duration) *playState {
	return &playState{rawKey: rawKey, spawnGap: spawnGap}
}

func (p *playState) Create(g *game.Game) {
	p.hit = signal.Get()
	p.miss = signal.Get()
	p.glyphs = p.glyphs[:0]
	p.score = 0
	p.lastSpawn = time.Now()

	p.rawKey.Add(p.onKey)
}

func (p *playState) Destroy(g *game.Game) {
	// hit/miss are swept by PreStateSwitch; the raw-key subscription
	// lives on a persistent signal and must be removed by hand
	p.rawKey.Remove(p.onKey)
}

func (p *playState) onKey(k KeyPayload) {
	for i := range p.glyphs {
		if p.glyphs[i].r == k.Rune {
			p.glyphs[i] = p.glyphs[len(p.glyphs)-1]
			p.glyphs = p.glyphs[:len(p.glyphs)-1]
			p.score++
			p.hit.Dispatch()
			return
		}
	}
	p.miss.Dispatch()
}

func (p *playState) Update(g *game.Game, dt time.Duration) {
	if time.Since(p.lastSpawn) >= p.spawnGap {
		p.lastSpawn = time.Now()
		p.glyphs = append(p.glyphs, glyph{
			r: rune(glyphSet[rand.Intn(len(glyphSet))]),
			x: rand.Intn(40) + 2,
			y: rand.Intn(15) + 2,
		})
	}
}

type demo struct {
	screen tcell.Screen
	game   *game.Game
	play   *playState
	sounds *audio.SoundManager
	wiring *audio.Wiring

	// Persistent signals bridging the input goroutine to the loop thread.
	// Their pointers never change, so the input goroutine may enqueue
	// against them freely
	rawKey  signal.Typed[KeyPayload]
	restart *signal.Signal

	width  int
	height int
}

func newDemo(cfg config.Config) (*demo, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableFocus()

	d := &demo{
		screen:  screen,
		game:    game.New(),
		rawKey:  signal.NewTyped[KeyPayload](true),
		restart: signal.GetPersist(),
	}
	d.width, d.height = screen.Size()
	d.play = newPlayState(d.rawKey, cfg.SpawnInterval())

	if cfg.AudioEnabled {
		d.sounds = audio.NewSoundManager()
		if err := d.sounds.Initialize(); err != nil {
			// Non-fatal, demo can run without sound
			log.Printf("Audio initialization failed: %v", err)
			d.sounds = nil
		} else {
			d.wiring = audio.Wire(d.sounds)
		}
	}

	game.Signals.Resized.Add(d.onResize)
	d.restart.Add(d.onRestart)
	if d.sounds != nil {
		game.Signals.PostStateSwitch.Add(d.wireStateCues)
	}

	d.game.SwitchState(d.play)
	return d, nil
}

func (d *demo) onResize(r game.ResizePayload) {
	d.width, d.height = r.Width, r.Height
}

// onRestart runs on the loop thread; reinstalling the same state instance
// releases its transient signals and acquires fresh ones
func (d *demo) onRestart(*signal.Signal) {
	d.game.SwitchState(d.play)
}

// wireStateCues attaches audio cues to the freshly created state's
// transient signals after every switch
func (d *demo) wireStateCues(*signal.Signal) {
	ps, ok := d.game.State().(*playState)
	if !ok {
		return
	}
	sm := d.sounds
	ps.hit.Add(func(*signal.Signal) { sm.Play(audio.CueKey) })
	ps.miss.Add(func(*signal.Signal) { sm.Play(audio.CueError) })
}

// pollInput runs on its own goroutine; everything it learns is handed to
// the loop thread through the deferred queue
func (d *demo) pollInput(quit chan<- struct{}) {
	for {
		ev := d.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
				close(quit)
				return
			case ev.Key() == tcell.KeyTab:
				d.game.Queue.Push(d.restart)
			case ev.Key() == tcell.KeyRune:
				d.game.Queue.PushData(d.rawKey.Signal, KeyPayload{Rune: ev.Rune()})
			}
		case *tcell.EventResize:
			w, h := ev.Size()
			d.game.Queue.PushData(game.Signals.Resized.Signal, game.ResizePayload{Width: w, Height: h})
			d.screen.Sync()
		case *tcell.EventFocus:
			if ev.Focused {
				d.game.Queue.Push(game.Signals.FocusGained)
			} else {
				d.game.Queue.Push(game.Signals.FocusLost)
			}
		}
	}
}

func (d *demo) draw() {
	d.screen.Clear()
	style := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	for _, gl := range d.play.glyphs {
		if gl.x < d.width && gl.y < d.height {
			d.screen.SetContent(gl.x, gl.y, gl.r, nil, style)
		}
	}
	status := []rune(fmt.Sprintf("score %d | type the glyphs | Tab restart | Esc quit", d.play.score))
	for i, r := range status {
		if i >= d.width {
			break
		}
		d.screen.SetContent(i, 0, r, nil, tcell.StyleDefault)
	}
	d.screen.Show()
}

func (d *demo) run(interval time.Duration) {
	quit := make(chan struct{})
	go d.pollInput(quit)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-quit:
			return
		case now := <-ticker.C:
			d.game.Update(now.Sub(last))
			last = now
			d.game.Draw(d.draw)
		}
	}
}

func (d *demo) cleanup() {
	if d.wiring != nil {
		d.wiring.Unwire()
	}
	if d.sounds != nil {
		d.sounds.Cleanup()
	}
	d.screen.Fini()
}

func main() {
	configPath := flag.String("config", "", "path to TOML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	d, err := newDemo(cfg)
	if err != nil {
		log.Fatalf("init: %v", err)
	}
	defer d.cleanup()

	d.run(cfg.UpdateInterval())
}
