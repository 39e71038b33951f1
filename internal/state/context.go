// internal/state/context.go
package state

import (
	"image"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-ant-defense/internal/app"
	"go-ant-defense/internal/audio"
	"go-ant-defense/internal/config"
	"go-ant-defense/internal/defs"
	"go-ant-defense/internal/flavor"
	"go-ant-defense/internal/session"
	"go-ant-defense/pkg/render"
)

// Context — общие для всех состояний объекты хоста.
type Context struct {
	Session   *session.Session
	Game      *app.Game
	Library   defs.Library
	Renderer  *render.FieldRenderer
	Face      font.Face
	TitleFace font.Face
	Audio     *audio.Player     // может быть nil
	Announcer *flavor.Announcer // может быть nil
	Logger    *slog.Logger
}

// PollMessage забирает готовый текст анонсера, не блокируясь.
func (c *Context) PollMessage() (string, bool) {
	if c.Announcer == nil {
		return "", false
	}
	select {
	case msg, ok := <-c.Announcer.Messages():
		if !ok {
			return "", false
		}
		return msg.Text, true
	default:
		return "", false
	}
}

// dim затемняет экран под оверлеем.
func dim(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.UIPanelColor, false)
}

func screenRect(top, bottom int) image.Rectangle {
	return image.Rect(0, top, config.ScreenWidth, bottom)
}
