package main

import (
	"ant-colony/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Open the simulation in a window",
		Long: `Open the simulation in a window. The world advances one tick per frame.

Controls:
  left mouse    place food
  right mouse   place walls
  space         pause / resume
  r             reset
  esc           quit`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, sim, logger, closeLog, err := setup(cmd, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer closeLog()

			rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), "Ant Colony")
			rl.SetWindowState(rl.FlagWindowResizable)
			defer rl.CloseWindow()
			rl.SetTargetFPS(int32(cfg.Window.FPS))
			// esc is handled as a quit event
			rl.SetExitKey(0)

			renderer := ui.NewRenderer(int32(cfg.Window.CellSize), cfg.Simulation.MaxIntensity)
			renderer.UpdateDimensions(sim.Snapshot())

			for !rl.WindowShouldClose() && !sim.ShouldQuit() {
				for _, ev := range ui.PollEvents(renderer.Viewport()) {
					sim.HandleEvent(ev)
				}
				sim.Tick()
				renderer.Draw(sim.Snapshot())
			}

			logger.Info("window closed", "stats", sim.Stats())
			return nil
		},
	}
}
