package logger

const SessionStartMsg = "session %s started, canvas %vx%v"
const PointScoredMsg = "%s scored, score %d:%d"
const GameOverMsg = "game over! %s wins %d:%d"
const PlayerQuitMsg = "player left mid-game, score %d:%d"

const PaddleHitMsg = "%s hit the ball, vx:%v vy:%v"

const ScreenInitFailedMsg = "terminal screen init failed: %w"
const PropertiesLoadedMsg = "properties loaded env:%q file:%q"
