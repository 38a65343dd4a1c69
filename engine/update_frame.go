package engine

type UpdateFrame struct {
	Tick      uint64
	DeltaTime float64
	Commands  *Commands
}

func newUpdateFrame(tick uint64, dt float64, commands *Commands) *UpdateFrame {
	return &UpdateFrame{
		Tick:      tick,
		DeltaTime: dt,
		Commands:  commands,
	}
}
