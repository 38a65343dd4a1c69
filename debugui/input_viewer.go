package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/dotris/input"
)

// InputViewer shows the debounced state of every controller slot.
type InputViewer struct {
	input *input.Manager
}

func NewInputViewer(in *input.Manager) *InputViewer {
	return &InputViewer{input: in}
}

func buttonList(buttons []input.Button) string {
	if len(buttons) == 0 {
		return "-"
	}
	names := make([]string, len(buttons))
	for i, b := range buttons {
		names[i] = b.String()
	}
	return strings.Join(names, " ")
}

func (iv *InputViewer) Render(deltaTime float32) {
	if !imgui.BeginV("Input", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("InputTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Controller")
		imgui.TableSetupColumn("Held")
		imgui.TableSetupColumn("Clicked")
		imgui.TableHeadersRow()

		for c := range iv.input.Controllers() {
			state := iv.input.StateFor(c)
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", c))
			imgui.TableNextColumn()
			imgui.Text(buttonList(state.Held))
			imgui.TableNextColumn()
			imgui.Text(buttonList(state.Clicked))
		}
		imgui.EndTable()
	}

	imgui.End()
}
