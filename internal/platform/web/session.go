package web

import (
	"context"
	"encoding/json"
	"fmt"
	"image/color"
	"time"

	"github.com/vovakirdan/skyshooter/internal/core"
	"github.com/vovakirdan/skyshooter/internal/games/skyshooter"
	"github.com/vovakirdan/skyshooter/internal/platform"
)

// Message types.
const (
	MsgKeyDown = "keydown"
	MsgKeyUp   = "keyup"
	MsgRestart = "restart"
	MsgExit    = "exit"
	MsgHello   = "hello"
	MsgFrame   = "frame"
)

// Key names sent by the page.
const (
	KeyLeft  = "left"
	KeyRight = "right"
	KeyFire  = "fire"
	KeyPause = "pause"
)

// ClientMessage is the JSON structure received from the browser.
type ClientMessage struct {
	Type string `json:"t"`
	Key  string `json:"k,omitempty"`
}

// Palette tells the page how to colour entities.
type Palette struct {
	Player      string   `json:"player"`
	Wreck       string   `json:"wreck"`
	Projectile  string   `json:"projectile"`
	Enemies     []string `json:"enemies"`
	Backgrounds []string `json:"backgrounds"`
}

// ServerMessage is the JSON structure sent to the browser.
type ServerMessage struct {
	Type    string               `json:"t"`
	Session string               `json:"id,omitempty"`
	Title   string               `json:"title,omitempty"`
	Palette *Palette             `json:"palette,omitempty"`
	Frame   *skyshooter.Snapshot `json:"frame,omitempty"`
}

// Snapshotter is a game that can describe itself in world units.
type Snapshotter interface {
	Snapshot() skyshooter.Snapshot
}

// session owns one runner. Browsers report real key release, so each
// direction is held from its keydown until its keyup, independently of
// the other. Fire presses are counted and fed one per tick.
type session struct {
	id      string
	runner  *platform.Runner
	scene   Snapshotter
	left    bool
	right   bool
	fires   int
	pending core.InputFrame
}

func newSession(id string, runner *platform.Runner) (*session, error) {
	scene, ok := runner.Game().(Snapshotter)
	if !ok {
		return nil, fmt.Errorf("web: game %q has no snapshot", runner.Game().ID())
	}
	return &session{id: id, runner: runner, scene: scene, pending: core.NewInputFrame()}, nil
}

// hello is the first message on a connection.
func (s *session) hello() ServerMessage {
	return ServerMessage{
		Type:    MsgHello,
		Session: s.id,
		Title:   s.runner.Game().Title(),
		Palette: defaultPalette(),
	}
}

// apply records a browser message. Returns true when the player asked to exit.
func (s *session) apply(msg ClientMessage) bool {
	switch msg.Type {
	case MsgKeyDown:
		switch msg.Key {
		case KeyLeft:
			s.left = true
		case KeyRight:
			s.right = true
		case KeyFire:
			s.fires++
		case KeyPause:
			s.pending.Set(core.ActionPause)
		}
	case MsgKeyUp:
		switch msg.Key {
		case KeyLeft:
			s.left = false
		case KeyRight:
			s.right = false
		}
	case MsgRestart:
		s.pending.Set(core.ActionRestart)
	case MsgExit:
		return true
	}
	return false
}

// step advances the session one tick and returns the resulting frame.
func (s *session) step() ServerMessage {
	in := s.pending.Clone()
	if s.left {
		in.Set(core.ActionLeft)
	}
	if s.right {
		in.Set(core.ActionRight)
	}
	if s.fires > 0 {
		in.Set(core.ActionFire)
		s.fires--
	}
	s.runner.Step(in)
	s.pending.Clear()

	snap := s.scene.Snapshot()
	return ServerMessage{Type: MsgFrame, Frame: &snap}
}

// run ticks the session until the context ends, the input channel closes
// or the player exits. Returns true on exit.
func (s *session) run(ctx context.Context, client *Client, inputs <-chan ClientMessage, tickRate int) bool {
	if tickRate <= 0 {
		tickRate = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(tickRate))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return false
		case msg, ok := <-inputs:
			if !ok {
				return false
			}
			if s.apply(msg) {
				return true
			}
		case <-ticker.C:
			data, err := json.Marshal(s.step())
			if err != nil {
				continue
			}
			client.TrySend(data)
		}
	}
}

func defaultPalette() *Palette {
	p := &Palette{
		Player:     core.ColorCyan.Hex(),
		Wreck:      core.ColorBrightRed.Hex(),
		Projectile: core.ColorBrightYellow.Hex(),
	}
	for i := range skyshooter.EnemySprites() {
		_, c := skyshooter.EnemyGlyph(i)
		p.Enemies = append(p.Enemies, c.Hex())
	}
	for i := range skyshooter.BackgroundTints() {
		if i == 0 {
			p.Backgrounds = append(p.Backgrounds, "#000000")
			continue
		}
		p.Backgrounds = append(p.Backgrounds, hex(skyshooter.BackgroundColor(i).Dim(0.35)))
	}
	return p
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
