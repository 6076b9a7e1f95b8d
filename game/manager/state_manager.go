package manager

// RunState is the simulation's own state machine
type RunState int

const (
	Running RunState = iota
	Paused
)

func (s RunState) String() string {
	if s == Paused {
		return "paused"
	}
	return "running"
}

// StateManager tracks run state, the quit request and colony counters
type StateManager struct {
	state     RunState
	quit      bool
	tick      uint64
	pickedUp  int
	delivered int
}

func NewStateManager() *StateManager {
	return &StateManager{state: Running}
}

func (sm *StateManager) Pause()  { sm.state = Paused }
func (sm *StateManager) Resume() { sm.state = Running }

func (sm *StateManager) TogglePause() RunState {
	if sm.state == Paused {
		sm.state = Running
	} else {
		sm.state = Paused
	}
	return sm.state
}

func (sm *StateManager) IsPaused() bool { return sm.state == Paused }

// Quit records the request to stop the host loop. It survives Reset.
func (sm *StateManager) Quit()            { sm.quit = true }
func (sm *StateManager) ShouldQuit() bool { return sm.quit }

func (sm *StateManager) Advance()        { sm.tick++ }
func (sm *StateManager) Tick() uint64    { return sm.tick }
func (sm *StateManager) RecordPickUp()   { sm.pickedUp++ }
func (sm *StateManager) RecordDelivery() { sm.delivered++ }

func (sm *StateManager) PickedUp() int  { return sm.pickedUp }
func (sm *StateManager) Delivered() int { return sm.delivered }

// Reset restarts the run: counters cleared and running again
func (sm *StateManager) Reset() {
	sm.state = Running
	sm.tick = 0
	sm.pickedUp = 0
	sm.delivered = 0
}
