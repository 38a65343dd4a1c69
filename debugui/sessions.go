package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/dotris/session"
)

// SessionViewer lists the live sessions and lets a seat be freed by hand.
type SessionViewer struct {
	sessions *session.Manager
}

func NewSessionViewer(sessions *session.Manager) *SessionViewer {
	return &SessionViewer{sessions: sessions}
}

func (sv *SessionViewer) Render(deltaTime float32) {
	if !imgui.BeginV("Sessions", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	snaps := sv.sessions.Snapshots()
	imgui.Text(fmt.Sprintf("Active: %d", sv.sessions.Len()))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("SessionTable", 8, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Controller")
		imgui.TableSetupColumn("Screen")
		imgui.TableSetupColumn("Piece")
		imgui.TableSetupColumn("Score")
		imgui.TableSetupColumn("Level")
		imgui.TableSetupColumn("Lines")
		imgui.TableSetupColumn("Blocks")
		imgui.TableSetupColumn("")
		imgui.TableHeadersRow()

		var drop []int
		for _, snap := range snaps {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", snap.Controller))
			imgui.TableNextColumn()
			imgui.Text(snap.Screen.String())
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%s r%d (%d,%d) next %s", snap.Current.Kind, snap.Current.Rotation, snap.Current.X, snap.Current.Y, snap.Next.Kind))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", snap.Score))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", snap.Level))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", snap.Lines))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", len(snap.Blocks)))
			imgui.TableNextColumn()
			if imgui.Button(fmt.Sprintf("Kick##%d", snap.Controller)) {
				drop = append(drop, snap.Controller)
			}
		}
		imgui.EndTable()

		for _, c := range drop {
			sv.sessions.Disconnect(c)
		}
	}

	if len(snaps) > 0 && imgui.TreeNodeStr("Highscores") {
		for _, e := range snaps[0].Highscores {
			imgui.BulletText(fmt.Sprintf("%s %d", e.Name, e.Score))
		}
		imgui.TreePop()
	}

	imgui.End()
}
