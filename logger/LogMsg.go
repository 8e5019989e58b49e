package logger

const GameStartMsg = "%s %s 開始 (%dx%d, %d tps, env=%s)"
const ConfigNotFoundMsg = "找不到 properties/%s.properties，使用預設值"
const GameQuitMsg = "遊戲結束，比分 %d : %d"

const MatchStartMsg = "新比賽開始 match id:%s"
const MatchOverMsg = "比賽結束！%s 獲勝 %d : %d"

const GoalMsg = "%s 得分！比分 %d : %d"
const PaddleHitMsg = "球撞到球拍 (frame %d)"
const WallBounceMsg = "球撞到牆壁 (frame %d)"

const PauseMsg = "遊戲暫停 (frame %d)"
const ResumeMsg = "遊戲繼續 (frame %d)"
const ResizeMsg = "視窗大小改變 %dx%d"

const SoundInitFailedMsg = "音效初始化失敗，改為靜音: %v"
const LevelReloadedMsg = "log level 更新為 %s (%s)"
