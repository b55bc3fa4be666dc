package sqlite

// DSN pragmas applied to every connection
const dsnOptions = "?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)&_txlock=immediate"

// Error Messages
const (
	ErrMsgPathRequired              = "sqlite path is required"
	ErrMsgFailedToOpen              = "failed to open sqlite db"
	ErrMsgFailedToPing              = "failed to ping sqlite db"
	ErrMsgFailedToMigrate           = "failed to run migrations"
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
	ErrMsgFailedToInsertUser        = "failed to insert user"
	ErrMsgFailedToUpdateUser        = "failed to update user"
	ErrMsgFailedToGetUser           = "failed to get user"
	ErrMsgFailedToInsertQuests      = "failed to insert quests"
	ErrMsgFailedToGetQuest          = "failed to get quest"
	ErrMsgFailedToQueryQuests       = "failed to query quests"
	ErrMsgFailedToUpdateQuest       = "failed to update quest"
	ErrMsgFailedToGetHiddenQuest    = "failed to get hidden quest"
)

const userColumns = `id, username, level, current_exp, max_exp, hp, max_hp, sp, max_sp, gold, status, created_at, updated_at`

const questColumns = `id, user_id, chain_id, title, description, difficulty, quest_type, sp_cost,
	reward_gold, reward_exp, is_completed, is_visible, step, created_at, completed_at`

// Queries
const (
	queryInsertUser = `INSERT INTO users (` + userColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	queryGetUserByID       = `SELECT ` + userColumns + ` FROM users WHERE id = ?`
	queryGetUserByUsername = `SELECT ` + userColumns + ` FROM users WHERE username = ?`

	queryUpdateUser = `UPDATE users SET
		level = ?, current_exp = ?, max_exp = ?, hp = ?, max_hp = ?,
		sp = ?, max_sp = ?, gold = ?, status = ?, updated_at = ?
		WHERE id = ?`

	queryInsertQuest = `INSERT INTO quests (` + questColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	queryGetQuest = `SELECT ` + questColumns + ` FROM quests WHERE id = ? AND user_id = ?`

	queryListQuests = `SELECT ` + questColumns + ` FROM quests
		WHERE user_id = ? AND (? OR is_visible)
		ORDER BY created_at, step`

	queryGetHiddenQuestAtStep = `SELECT ` + questColumns + ` FROM quests
		WHERE user_id = ? AND chain_id = ? AND step = ?
		  AND is_visible = 0 AND is_completed = 0
		ORDER BY created_at
		LIMIT 1`

	queryUpdateQuest = `UPDATE quests SET
		is_completed = ?, is_visible = ?, completed_at = ?
		WHERE id = ? AND user_id = ?`
)
