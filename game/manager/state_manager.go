package manager

// StateManager tracks the running flag and scoring for the session.
// Nothing here outlives the process.
type StateManager struct {
	running   bool
	score     int
	highScore int
	rounds    int
}

func NewStateManager() *StateManager {
	return &StateManager{}
}

func (sm *StateManager) Running() bool {
	return sm.running
}

// Start arms the game; ticks are ignored until this is called.
func (sm *StateManager) Start() {
	sm.running = true
}

// AddPoint scores one eaten pellet.
func (sm *StateManager) AddPoint() {
	sm.score++
	if sm.score > sm.highScore {
		sm.highScore = sm.score
	}
}

// GameOver stops the game and zeroes the score, returning the score the
// round ended with.
func (sm *StateManager) GameOver() int {
	final := sm.score
	sm.running = false
	sm.score = 0
	sm.rounds++
	return final
}

func (sm *StateManager) GetScore() int {
	return sm.score
}

func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}

func (sm *StateManager) GetRounds() int {
	return sm.rounds
}
