package term

import (
	"context"
	"time"

	"github.com/automoto/spiralstar/scenes"
	"github.com/gdamore/tcell/v2"
)

// TickRate is how often the terminal loop advances the scene
const TickRate = scenes.ReferenceTickRate

// Loop drives one scene on a terminal screen. Events are read on a separate goroutine
// and handed over a channel; the scene is only ever touched by Run's goroutine.
type Loop struct {
	screen  tcell.Screen
	scene   *scenes.SpiralScene
	onSpawn func()

	lastX, lastY int
	known        bool
	buttonDown   bool
}

// NewLoop binds a scene to an initialized screen and sizes the scene to it
func NewLoop(screen tcell.Screen, scene *scenes.SpiralScene) *Loop {
	l := &Loop{screen: screen, scene: scene}
	cols, rows := screen.Size()
	scene.Resize(SceneSize(cols, rows))
	return l
}

// OnSpawn registers fn to run after every pointer-down spawn
func (l *Loop) OnSpawn(fn func()) { l.onSpawn = fn }

// Run ticks and draws until ctx is done or the user quits
func (l *Loop) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := l.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / TickRate)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if quit := l.Handle(ev); quit {
				return nil
			}
		case now := <-ticker.C:
			l.scene.UpdateElapsed(now.Sub(last))
			last = now
			Draw(l.screen, l.scene)
			l.screen.Show()
		}
	}
}

// Handle applies one terminal event to the scene and reports whether the user asked to quit
func (l *Loop) Handle(ev tcell.Event) bool {
	switch e := ev.(type) {
	case *tcell.EventKey:
		switch {
		case e.Key() == tcell.KeyEscape, e.Key() == tcell.KeyCtrlC:
			return true
		case e.Key() == tcell.KeyRune && e.Rune() == 'q':
			return true
		case e.Key() == tcell.KeyRune && e.Rune() == ' ':
			if l.scene.Running() {
				l.scene.Stop()
			} else {
				l.scene.Start()
			}
		}

	case *tcell.EventMouse:
		cx, cy := e.Position()
		x, y := FromCell(cx, cy)
		if !l.known || cx != l.lastX || cy != l.lastY {
			l.scene.PointerMove(x, y)
		}
		l.lastX, l.lastY, l.known = cx, cy, true

		pressed := e.Buttons()&tcell.Button1 != 0
		if pressed && !l.buttonDown {
			l.scene.PointerDown(x, y)
			if l.onSpawn != nil {
				l.onSpawn()
			}
		}
		l.buttonDown = pressed

	case *tcell.EventResize:
		l.screen.Sync()
		cols, rows := e.Size()
		l.scene.Resize(SceneSize(cols, rows))
	}
	return false
}
